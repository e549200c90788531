package searcher

import "math"

// Hyperparameter defaults for MCTS

// DefaultExploration weights the exploration term of UCB1.
const DefaultExploration = 1.4

// DefaultIterations is the number of search iterations per decision.
const DefaultIterations = 1000

// Win credit per rollout outcome, accumulated into node.wins.
const (
	winCredit  = 1.0
	drawCredit = 0.5
)

// ucb1 scores a child against its siblings:
// UCB1 = w/n + c*sqrt(log2(N)/n), where N is the parent's visit count.
// Selection never evaluates an unvisited child, so zero visits on
// either side is a contract violation, not a runtime condition.
func ucb1(wins float64, visits int, c float64, parentVisits int) float64 {
	if visits == 0 {
		panic("cannot compute UCB1: child has 0 visits")
	}
	if parentVisits == 0 {
		panic("cannot compute UCB1: parent has 0 visits")
	}

	return wins/float64(visits) + c*math.Sqrt(math.Log2(float64(parentVisits))/float64(visits))
}

package searcher

import "tictactoe/game"

// node is a search tree node. The parent pointer is a non-owning back
// reference used only by UCB1's parent-visit term and by backup's
// upward walk; ownership runs strictly parent to children.
type node struct {
	state    game.Board
	mover    game.Player // player whose move produced state
	wins     float64
	visits   int
	children []*node
	parent   *node
	terminal bool
}

func newNode(parent *node, state game.Board, mover game.Player) *node {
	return &node{
		state:    state,
		mover:    mover,
		parent:   parent,
		terminal: state.Terminal(mover),
	}
}

// selectNode descends from n to the node that needs work this
// iteration: a childless node (unexpanded leaf or terminal), or the
// first never-visited child encountered on the way down. Among fully
// visited siblings the max-UCB1 child is followed. Iterative on
// purpose: the exploit path can reach the tree frontier.
func selectNode(n *node, exploration float64) *node {
	current := n
	for {
		if len(current.children) == 0 {
			return current
		}

		unvisited := false
		for _, child := range current.children {
			if child.visits == 0 {
				current = child
				unvisited = true
				break
			}
		}
		if unvisited {
			return current
		}

		current = current.children[maxScoreIndex(current, exploration)]
	}
}

// maxScoreIndex returns the index of the child with the highest UCB1
// score. Ties keep the earliest-indexed child (strict greater-than).
func maxScoreIndex(n *node, exploration float64) int {
	index := 0
	maxScore := ucb1(n.children[0].wins, n.children[0].visits, exploration, n.visits)
	for i := 1; i < len(n.children); i++ {
		score := ucb1(n.children[i].wins, n.children[i].visits, exploration, n.visits)
		if score > maxScore {
			maxScore = score
			index = i
		}
	}
	return index
}

// expand materializes every legal successor of n as a child, in
// row-major cell order, flipping the mover. Expansion happens at most
// once per node for the tree's lifetime.
func (n *node) expand() {
	if len(n.children) > 0 {
		return
	}

	next := n.mover.Other()
	moves := n.state.LegalMoves()
	n.children = make([]*node, 0, len(moves))
	for _, mv := range moves {
		n.children = append(n.children, newNode(n, n.state.Place(mv, next), next))
	}
}

// backup walks from n to the root, crediting the rollout outcome to
// every node on the path. This is the sole writer of wins and visits.
func backup(n *node, outcome Outcome) {
	for current := n; current != nil; current = current.parent {
		current.visits++
		current.wins += outcome.credit(current.mover)
	}
}

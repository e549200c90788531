package searcher

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"tictactoe/experiments/metrics"
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// ErrNoLegalMoves is returned when a decision is requested on a board
// that is already terminal for the acting player.
var ErrNoLegalMoves = errors.New("searcher: no legal moves on a terminal board")

// ErrCorruptTree is returned when the chosen child does not differ from
// the root in exactly one cell. It indicates a tree construction bug
// and is never recovered from.
var ErrCorruptTree = errors.New("searcher: chosen child does not differ from root in exactly one cell")

type Option func(m *MCTS)

// MCTS selects moves by Monte Carlo Tree Search: a fresh tree is built
// per decision, no state is kept between calls, and concurrent callers
// never share nodes.
type MCTS struct {
	iterations  int
	exploration float64
	goroutines  int
	seed        uint64
	metrics     metrics.Collector
	lastMetric  metrics.SearchMetric
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithGoroutines enables root parallelism: n independent trees built
// concurrently, root-child visit totals merged before the final pick.
func WithGoroutines(goroutines int) Option {
	return func(m *MCTS) {
		if goroutines > 0 {
			m.goroutines = goroutines
		}
	}
}

// WithSeed fixes the rollout random stream for reproducible decisions.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  DefaultIterations,
		exploration: DefaultExploration,
		goroutines:  1,
		seed:        uint64(time.Now().UnixNano()),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// Metrics returns the search metric of the most recent decision.
func (m *MCTS) Metrics() metrics.SearchMetric {
	return m.lastMetric
}

// ComputeMove returns the cell the automated player should occupy on
// the given board. human is the player who moved last (or, on an
// opening move, the player the computer plays against): the tree root
// is attributed to them so the first tree ply holds the computer's own
// candidate moves.
func (m *MCTS) ComputeMove(board game.Board, human game.Player) (game.Move, error) {
	root := newNode(nil, board, human)
	if root.terminal {
		return game.Move{}, ErrNoLegalMoves
	}

	m.metrics.Start(m.iterations, m.goroutines, m.exploration)
	tallies, err := m.buildTrees(board, human)
	m.lastMetric = m.metrics.Complete()
	if err != nil {
		return game.Move{}, err
	}

	return bestMove(tallies)
}

// moveTally accumulates visit counts for one immediate root move.
type moveTally struct {
	move   game.Move
	visits int
}

// buildTrees runs the configured number of independent searches and
// merges their root statistics. Trees are never shared between
// goroutines, so no locking is needed on nodes.
func (m *MCTS) buildTrees(board game.Board, human game.Player) ([]moveTally, error) {
	// Split the iteration budget across trees
	perTree := m.iterations / m.goroutines
	if perTree == 0 {
		perTree = 1
	}

	results := make([][]moveTally, m.goroutines)
	errs := make([]error, m.goroutines)
	seeder := rand.New(rand.NewSource(m.seed))

	var wg sync.WaitGroup
	for i := 0; i < m.goroutines; i++ {
		rng := rand.New(rand.NewSource(seeder.Uint64()))

		wg.Add(1)
		go func(i int, rng *rand.Rand) {
			defer wg.Done()

			root := newNode(nil, board, human)
			m.search(root, perTree, rng)
			results[i], errs[i] = tally(root)
		}(i, rng)
	}
	wg.Wait()

	merged := results[0]
	if err := errs[0]; err != nil {
		return nil, err
	}
	for i := 1; i < m.goroutines; i++ {
		if errs[i] != nil {
			return nil, errs[i]
		}
		if len(results[i]) != len(merged) {
			return nil, fmt.Errorf("%w: trees disagree on root move count", ErrCorruptTree)
		}
		for j := range merged {
			merged[j].visits += results[i][j].visits
		}
	}
	return merged, nil
}

// search runs the iteration loop on one tree: select a frontier node,
// simulate from it (expanding first when it has already been visited),
// and credit the outcome back up the path.
func (m *MCTS) search(root *node, iterations int, rng *rand.Rand) {
	for i := 0; i < iterations; i++ {
		current := selectNode(root, m.exploration)

		if current.visits == 0 || current.terminal {
			outcome := rollout(current.state, current.mover, rng)
			backup(current, outcome)
		} else {
			current.expand()
			m.metrics.AddNodes(len(current.children))
			// Simulate the first fresh child; its siblings stay at zero
			// visits and are picked up by selection's unvisited-child
			// preference on later iterations.
			child := current.children[0]
			outcome := rollout(child.state, child.mover, rng)
			backup(child, outcome)
		}
		m.metrics.AddEpisode()
	}
}

// tally extracts the per-move visit counts from a searched tree. Every
// root child must differ from the root in exactly one cell; anything
// else means the tree bookkeeping is broken.
func tally(root *node) ([]moveTally, error) {
	if len(root.children) == 0 {
		return nil, ErrNoLegalMoves
	}

	tallies := make([]moveTally, len(root.children))
	for i, child := range root.children {
		mv, err := diffMove(root.state, child.state)
		if err != nil {
			return nil, err
		}
		tallies[i] = moveTally{move: mv, visits: child.visits}
	}
	return tallies, nil
}

// bestMove picks the most visited root move; ties keep the earliest in
// child order.
func bestMove(tallies []moveTally) (game.Move, error) {
	if len(tallies) == 0 {
		return game.Move{}, ErrNoLegalMoves
	}

	best := 0
	for i := 1; i < len(tallies); i++ {
		if tallies[i].visits > tallies[best].visits {
			best = i
		}
	}
	return tallies[best].move, nil
}

// diffMove returns the single cell where after differs from before.
func diffMove(before, after game.Board) (game.Move, error) {
	found := false
	var mv game.Move
	for r := 0; r < game.Size; r++ {
		for c := 0; c < game.Size; c++ {
			if before.At(r, c) == after.At(r, c) {
				continue
			}
			if found {
				return game.Move{}, fmt.Errorf("%w: boards differ in more than one cell", ErrCorruptTree)
			}
			found = true
			mv = game.Move{Row: r, Col: c}
		}
	}
	if !found {
		return game.Move{}, fmt.Errorf("%w: boards are identical", ErrCorruptTree)
	}
	return mv, nil
}

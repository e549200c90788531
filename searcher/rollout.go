package searcher

import (
	"tictactoe/game"

	"golang.org/x/exp/rand"
)

// Outcome is the result of a rollout: either a win for one player or a
// draw. The zero value is not meaningful; construct via winOutcome or
// drawOutcome.
type Outcome struct {
	winner game.Player
	draw   bool
}

func winOutcome(p game.Player) Outcome {
	return Outcome{winner: p}
}

func drawOutcome() Outcome {
	return Outcome{draw: true}
}

// Draw reports whether the rollout ended with a full board and no
// winner.
func (o Outcome) Draw() bool {
	return o.draw
}

// Winner returns the winning player and whether there is one.
func (o Outcome) Winner() (game.Player, bool) {
	return o.winner, !o.draw
}

// credit is the win credit the outcome grants a node owned by mover.
func (o Outcome) credit(mover game.Player) float64 {
	if o.draw {
		return drawCredit
	}
	if o.winner == mover {
		return winCredit
	}
	return 0
}

// rollout plays uniformly random moves from the given position until it
// is terminal. mover is the player who just moved to reach the state;
// board cells are sampled over the full grid and resampled when
// occupied, which is uniform over the empty cells.
func rollout(board game.Board, mover game.Player, rng *rand.Rand) Outcome {
	current := board
	player := mover
	for !current.Won(player) && !current.Full() {
		row, col := rng.Intn(game.Size), rng.Intn(game.Size)
		for current.At(row, col) != game.Empty {
			row, col = rng.Intn(game.Size), rng.Intn(game.Size)
		}
		player = player.Other()
		current = current.Place(game.Move{Row: row, Col: col}, player)
	}

	if current.Won(player) {
		return winOutcome(player)
	}
	return drawOutcome()
}

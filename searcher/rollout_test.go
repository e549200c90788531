package searcher

import (
	"testing"

	"tictactoe/game"

	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestOutcome(t *testing.T) {
	t.Run("win outcome credits its mover fully", func(t *testing.T) {
		outcome := winOutcome(game.One)

		require.Equal(t, 1.0, outcome.credit(game.One))
		require.Equal(t, 0.0, outcome.credit(game.Two))

		winner, ok := outcome.Winner()
		require.True(t, ok)
		require.Equal(t, game.One, winner)
		require.False(t, outcome.Draw())
	})

	t.Run("draw outcome credits both movers half", func(t *testing.T) {
		outcome := drawOutcome()

		require.Equal(t, 0.5, outcome.credit(game.One))
		require.Equal(t, 0.5, outcome.credit(game.Two))
		require.True(t, outcome.Draw())

		_, ok := outcome.Winner()
		require.False(t, ok)
	})
}

func TestRollout(t *testing.T) {
	t.Run("a won board returns immediately with its winner", func(t *testing.T) {
		board := game.Board{
			{game.CellOne, game.CellOne, game.CellOne},
			{game.CellTwo, game.CellTwo, game.Empty},
			{game.Empty, game.Empty, game.Empty},
		}

		outcome := rollout(board, game.One, rand.New(rand.NewSource(1)))

		winner, ok := outcome.Winner()
		require.True(t, ok)
		require.Equal(t, game.One, winner)
	})

	t.Run("a full drawn board returns a draw immediately", func(t *testing.T) {
		board := game.Board{
			{game.CellOne, game.CellTwo, game.CellOne},
			{game.CellOne, game.CellTwo, game.CellTwo},
			{game.CellTwo, game.CellOne, game.CellOne},
		}

		outcome := rollout(board, game.Two, rand.New(rand.NewSource(1)))

		require.True(t, outcome.Draw())
	})

	t.Run("always reaches a terminal state from an empty board", func(t *testing.T) {
		for seed := uint64(0); seed < 50; seed++ {
			outcome := rollout(game.Board{}, game.One, rand.New(rand.NewSource(seed)))

			if winner, ok := outcome.Winner(); ok {
				require.Contains(t, []game.Player{game.One, game.Two}, winner)
			} else {
				require.True(t, outcome.Draw())
			}
		}
	})

	t.Run("a fixed random source reproduces the outcome", func(t *testing.T) {
		var board game.Board
		board = board.Place(game.Move{Row: 1, Col: 1}, game.One)

		first := rollout(board, game.One, rand.New(rand.NewSource(7)))
		second := rollout(board, game.One, rand.New(rand.NewSource(7)))

		require.Equal(t, first, second)
	})

	t.Run("one empty cell forces the remaining move", func(t *testing.T) {
		// Player one must take (2,2) and no line completes
		board := game.Board{
			{game.CellOne, game.CellOne, game.CellTwo},
			{game.CellTwo, game.CellTwo, game.CellOne},
			{game.CellOne, game.CellTwo, game.Empty},
		}

		outcome := rollout(board, game.Two, rand.New(rand.NewSource(3)))

		require.True(t, outcome.Draw(), "Filling the last cell without a line is a draw")
	})
}

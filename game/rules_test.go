package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	e  = Empty
	o  = CellOne
	t2 = CellTwo
)

func TestWon(t *testing.T) {
	t.Run("detecting each row win", func(t *testing.T) {
		for row := 0; row < Size; row++ {
			var b Board
			for col := 0; col < Size; col++ {
				b[row][col] = o
			}
			require.True(t, b.Won(One), "Row %d should be a win for player one", row)
			require.False(t, b.Won(Two), "Row %d should not be a win for player two", row)
		}
	})

	t.Run("detecting each column win", func(t *testing.T) {
		for col := 0; col < Size; col++ {
			var b Board
			for row := 0; row < Size; row++ {
				b[row][col] = t2
			}
			require.True(t, b.Won(Two), "Column %d should be a win for player two", col)
			require.False(t, b.Won(One), "Column %d should not be a win for player one", col)
		}
	})

	t.Run("detecting the main diagonal win", func(t *testing.T) {
		b := Board{
			{o, e, e},
			{e, o, e},
			{e, e, o},
		}
		require.True(t, b.Won(One))
		require.False(t, b.Won(Two))
	})

	t.Run("detecting the anti-diagonal win", func(t *testing.T) {
		b := Board{
			{e, e, t2},
			{e, t2, e},
			{t2, e, e},
		}
		require.True(t, b.Won(Two))
		require.False(t, b.Won(One))
	})

	t.Run("two in a row is not a win", func(t *testing.T) {
		b := Board{
			{o, o, e},
			{e, e, e},
			{e, e, e},
		}
		require.False(t, b.Won(One))
		require.False(t, b.Won(Two))
	})

	t.Run("empty board is not a win", func(t *testing.T) {
		var b Board
		require.False(t, b.Won(One))
		require.False(t, b.Won(Two))
	})
}

func TestFull(t *testing.T) {
	t.Run("full board with no line is a draw for both players", func(t *testing.T) {
		b := Board{
			{o, t2, o},
			{o, t2, t2},
			{t2, o, o},
		}
		require.True(t, b.Full())
		require.False(t, b.Won(One))
		require.False(t, b.Won(Two))
	})

	t.Run("board with one empty cell is not full", func(t *testing.T) {
		b := Board{
			{o, t2, o},
			{o, t2, t2},
			{t2, o, e},
		}
		require.False(t, b.Full())
	})

	t.Run("full board with a completed line is also full", func(t *testing.T) {
		// Callers must check Won before Full: a full board with a line
		// is a win, not a draw.
		b := Board{
			{o, o, o},
			{t2, t2, o},
			{o, t2, t2},
		}
		require.True(t, b.Full())
		require.True(t, b.Won(One))
	})
}

func TestTerminal(t *testing.T) {
	t.Run("win for the mover is terminal", func(t *testing.T) {
		b := Board{
			{o, o, o},
			{t2, t2, e},
			{e, e, e},
		}
		require.True(t, b.Terminal(One))
	})

	t.Run("win for the opponent only is not terminal for the mover", func(t *testing.T) {
		b := Board{
			{o, o, o},
			{t2, t2, e},
			{e, e, e},
		}
		require.False(t, b.Terminal(Two))
	})

	t.Run("empty board is not terminal", func(t *testing.T) {
		var b Board
		require.False(t, b.Terminal(One))
		require.False(t, b.Terminal(Two))
	})
}

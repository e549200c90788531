package engine

import (
	"errors"
	"strconv"

	"tictactoe/game"
)

// ErrIllegalMove covers out-of-bounds coordinates, occupied cells and
// input that is not a number.
var ErrIllegalMove = errors.New("illegal move")

// ParseMove converts 1-indexed row/column input into a move and checks
// it against board bounds and cell occupancy.
func ParseMove(rowText, colText string, board game.Board) (game.Move, error) {
	row, err := strconv.Atoi(rowText)
	if err != nil {
		return game.Move{}, ErrIllegalMove
	}
	col, err := strconv.Atoi(colText)
	if err != nil {
		return game.Move{}, ErrIllegalMove
	}

	mv := game.Move{Row: row - 1, Col: col - 1}
	if !game.InBounds(mv.Row, mv.Col) {
		return game.Move{}, ErrIllegalMove
	}
	if board.At(mv.Row, mv.Col) != game.Empty {
		return game.Move{}, ErrIllegalMove
	}
	return mv, nil
}

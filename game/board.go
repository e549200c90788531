package game

import "fmt"

// Size is the board edge length. The win detection in rules.go assumes
// three in a row, so this is not a free parameter.
const Size = 3

type Cell uint8

const (
	Empty Cell = iota
	CellOne
	CellTwo
)

// Player identifies one of the two players.
type Player uint8

const (
	One Player = 1
	Two Player = 2
)

// Other returns the opposing player.
func (p Player) Other() Player {
	if p == One {
		return Two
	}
	return One
}

func (p Player) Cell() Cell {
	return Cell(p)
}

func (p Player) String() string {
	return fmt.Sprintf("%d", uint8(p))
}

// Move is a 0-indexed cell coordinate.
type Move struct {
	Row int
	Col int
}

// Board is a fixed 3x3 grid with value semantics: assignment copies the
// whole grid, so snapshots held by different tree nodes never alias.
type Board [Size][Size]Cell

// At returns the cell at the given 0-indexed coordinates.
func (b Board) At(row, col int) Cell {
	return b[row][col]
}

// InBounds reports whether the 0-indexed coordinates are on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Place returns a new board with the move played by the given player.
// The receiver is left untouched.
func (b Board) Place(mv Move, p Player) Board {
	next := b
	next[mv.Row][mv.Col] = p.Cell()
	return next
}

// LegalMoves enumerates the empty cells in row-major order.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

package game

// Won reports whether the player occupies a full row, column or
// diagonal. Rows and columns are checked together per index, then both
// diagonals, short-circuiting on the first match.
func (b Board) Won(p Player) bool {
	mark := p.Cell()
	for i := 0; i < Size; i++ {
		if b[i][0] == mark && b[i][1] == mark && b[i][2] == mark {
			return true
		}
		if b[0][i] == mark && b[1][i] == mark && b[2][i] == mark {
			return true
		}
	}
	if b[0][0] == mark && b[1][1] == mark && b[2][2] == mark {
		return true
	}
	if b[0][2] == mark && b[1][1] == mark && b[2][0] == mark {
		return true
	}
	return false
}

// Full reports whether no empty cell remains. A full board with a
// completed line is a win, not a draw: callers must check Won first.
func (b Board) Full() bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Terminal reports whether the board ends the game from the viewpoint
// of the player who just moved.
func (b Board) Terminal(mover Player) bool {
	return b.Won(mover) || b.Full()
}

package game

// Apply executes a move in the given direction and returns the resulting
// board, the score gained from merges, and whether any tile moved or
// merged. It is a pure function: the input board is never mutated, and
// the caller decides whether to commit the result.
//
// Rows are slid directly for Left/Right; Up/Down transpose first so all
// four directions reduce to slideLine's toward-index-0 convention. The
// four lines are independent within one move.
func Apply(b Board, dir Direction) (Board, int, bool) {
	switch dir {
	case DirLeft:
		return slideRows(b, false)
	case DirRight:
		return slideRows(b, true)
	case DirUp:
		next, score, changed := slideRows(transpose(b), false)
		return transpose(next), score, changed
	case DirDown:
		next, score, changed := slideRows(transpose(b), true)
		return transpose(next), score, changed
	default:
		return b, 0, false
	}
}

// slideRows applies slideLine to every row, reversing each row first and
// after when the motion points toward index 3.
func slideRows(b Board, reverse bool) (Board, int, bool) {
	var next Board
	totalScore := 0

	for r := range Size {
		row := b[r]
		if reverse {
			row = reverseLine(row)
		}
		slid, score := slideLine(row)
		if reverse {
			slid = reverseLine(slid)
		}
		next[r] = slid
		totalScore += score
	}

	return next, totalScore, next != b
}

// transpose returns the matrix transpose.
func transpose(b Board) Board {
	var result Board
	for r := range Size {
		for c := range Size {
			result[r][c] = b[c][r]
		}
	}
	return result
}

// CanMove reports whether any direction would change the board: either
// an empty cell exists or two adjacent tiles share a value.
func CanMove(b Board) bool {
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				return true
			}
			if c < Size-1 && b[r][c+1] == b[r][c] {
				return true
			}
			if r < Size-1 && b[r+1][c] == b[r][c] {
				return true
			}
		}
	}
	return false
}

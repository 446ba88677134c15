// Package game implements the 2048 sliding-tile puzzle: board, move
// engine, tile spawning, and game session state. All operations work on a
// fixed 4x4 grid of power-of-two tiles and are pure computation; the only
// randomness is the injected spawn generator.
package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// Size is the board dimension.
const Size = 4

// MaxTileValue is the practical ceiling for a tile on a 4x4 grid,
// enforced when importing boards from external sources.
const MaxTileValue = 1 << 16

// Board is a 4x4 grid of tile values, row-major, top-to-bottom and
// left-to-right. 0 is an empty cell; every other value is a power of two.
type Board [Size][Size]int

// Cell identifies one board position.
type Cell struct {
	Row, Col int
}

// FromRows builds a Board from a row-major 2D slice, validating
// dimensions and tile invariants. Used at import boundaries (external
// game snapshots, tests); it fails fast rather than sanitizing.
func FromRows(rows [][]int) (Board, error) {
	var b Board
	if len(rows) != Size {
		return b, fmt.Errorf("%w: got %d rows, want %d", ErrInvalidBoard, len(rows), Size)
	}
	for r, row := range rows {
		if len(row) != Size {
			return b, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidBoard, r, len(row), Size)
		}
		copy(b[r][:], row)
	}
	if err := b.Validate(); err != nil {
		return Board{}, err
	}
	return b, nil
}

// Validate checks the tile invariants: every nonzero value a power of
// two between 2 and the practical ceiling. 1 is rejected along with
// negatives: the log2 encoding reserves exponent 0 for empty, so a tile
// of 1 could not survive the round trip.
func (b Board) Validate() error {
	for r := range Size {
		for c := range Size {
			v := b[r][c]
			if v == 0 {
				continue
			}
			if v < 2 || v > MaxTileValue || bits.OnesCount(uint(v)) != 1 {
				return fmt.Errorf("%w: cell (%d,%d) holds %d", ErrInvalidBoard, r, c, v)
			}
		}
	}
	return nil
}

// EmptyCells returns the coordinates of all empty cells in row-major
// order. The stable order matters: the spawn generator indexes into it
// with a random draw, so the same seed always picks the same cell.
func (b Board) EmptyCells() []Cell {
	var cells []Cell
	for r := range Size {
		for c := range Size {
			if b[r][c] == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the largest tile value on the board.
func (b Board) MaxTile() int {
	maxVal := 0
	for r := range Size {
		for c := range Size {
			if b[r][c] > maxVal {
				maxVal = b[r][c]
			}
		}
	}
	return maxVal
}

// Sum returns the total of all tile values. Merges conserve this total;
// a spawn increases it by exactly the spawned value.
func (b Board) Sum() int {
	total := 0
	for r := range Size {
		for c := range Size {
			total += b[r][c]
		}
	}
	return total
}

// Rows returns the board as a row-major 2D slice copy.
func (b Board) Rows() [][]int {
	rows := make([][]int, Size)
	for r := range Size {
		rows[r] = make([]int, Size)
		copy(rows[r], b[r][:])
	}
	return rows
}

// String renders the board for logs and test failures.
func (b Board) String() string {
	var sb strings.Builder
	for r := range Size {
		for c := range Size {
			if c > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%5d", b[r][c])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Exponents returns the board in log2 encoding: 0 stays empty, a tile
// 2^n becomes n. This is the representation browser-observed games
// report, and the exact inverse of FromExponents.
func (b Board) Exponents() [Size][Size]int {
	var exp [Size][Size]int
	for r := range Size {
		for c := range Size {
			if b[r][c] != 0 {
				exp[r][c] = bits.Len(uint(b[r][c])) - 1
			}
		}
	}
	return exp
}

// FromExponents converts a log2-encoded grid back to actual tile values:
// 0 stays empty, n becomes 2^n. Negative or oversized exponents are
// rejected so the round trip with Exponents is an exact identity.
func FromExponents(exp [Size][Size]int) (Board, error) {
	var b Board
	for r := range Size {
		for c := range Size {
			e := exp[r][c]
			if e == 0 {
				continue
			}
			if e < 0 || 1<<e > MaxTileValue {
				return Board{}, fmt.Errorf("%w: cell (%d,%d) exponent %d", ErrInvalidBoard, r, c, e)
			}
			b[r][c] = 1 << e
		}
	}
	return b, nil
}

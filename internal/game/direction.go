package game

import "fmt"

// Direction represents a move direction.
// The numeric values are part of the external interface: controllers and
// game sources exchange moves as integers 0=Up, 1=Down, 2=Left, 3=Right.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists all four directions in their wire order.
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four defined directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection converts an external integer encoding to a Direction.
// Values outside 0-3 are rejected at this boundary rather than deeper
// in the engine.
func ParseDirection(v int) (Direction, error) {
	d := Direction(v)
	if !d.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrBadDirection, v)
	}
	return d, nil
}

package game

import "math/rand"

// DefaultFourProb is the classic probability of spawning a 4 instead of
// a 2.
const DefaultFourProb = 0.10

// Spawner places new tiles into random empty cells. The randomness
// source is injected so callers (and tests) control determinism; there
// is no global random state.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
}

// NewSpawner creates a spawner using the given RNG and probability of
// spawning a 4. Probabilities outside [0,1] fall back to the default.
func NewSpawner(rng *rand.Rand, fourProb float64) *Spawner {
	if fourProb < 0 || fourProb > 1 {
		fourProb = DefaultFourProb
	}
	return &Spawner{rng: rng, fourProb: fourProb}
}

// Spawn writes a 2 (or, with the configured probability, a 4) into a
// uniformly random empty cell of b and returns the cell and value.
// It must only be called after a move that changed the board; a full
// board returns ErrNoEmptyCell.
func (s *Spawner) Spawn(b *Board) (Cell, int, error) {
	empty := b.EmptyCells()
	if len(empty) == 0 {
		return Cell{}, 0, ErrNoEmptyCell
	}

	cell := empty[s.rng.Intn(len(empty))]

	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	b[cell.Row][cell.Col] = value
	return cell, value, nil
}

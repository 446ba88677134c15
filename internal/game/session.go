package game

import (
	"fmt"
	"math/rand"
)

// DefaultWinTarget is the tile value that wins the classic game.
const DefaultWinTarget = 2048

// initialTiles is the number of tiles spawned when a session starts.
const initialTiles = 2

// Status describes the session state machine.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Session owns one game: the board, the cumulative score, and the move
// count. It orchestrates the move engine and the spawner. Sessions are
// not safe for concurrent use; callers needing that must serialize
// access externally.
type Session struct {
	board     Board
	score     int
	moves     int
	winTarget int
	spawner   *Spawner
	imported  bool
}

// Option configures a new Session.
type Option func(*Session) error

// WithWinTarget overrides the winning tile value (default 2048).
func WithWinTarget(target int) Option {
	return func(s *Session) error {
		if target <= 0 {
			return fmt.Errorf("game: win target must be positive, got %d", target)
		}
		s.winTarget = target
		return nil
	}
}

// WithFourProb overrides the probability of spawning a 4 (default 0.10).
func WithFourProb(p float64) Option {
	return func(s *Session) error {
		if p < 0 || p > 1 {
			return fmt.Errorf("game: four-spawn probability %v outside [0,1]", p)
		}
		s.spawner.fourProb = p
		return nil
	}
}

// WithBoard starts the session from an imported board instead of two
// spawned tiles. The board is validated; the session's score starts at
// zero since merge history is unknown.
func WithBoard(b Board) Option {
	return func(s *Session) error {
		if err := b.Validate(); err != nil {
			return err
		}
		s.board = b
		s.imported = true
		return nil
	}
}

// New creates a session seeded by the given RNG. Unless WithBoard is
// used, two initial tiles are spawned before the first move.
func New(rng *rand.Rand, opts ...Option) (*Session, error) {
	s := &Session{
		winTarget: DefaultWinTarget,
		spawner:   NewSpawner(rng, DefaultFourProb),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	if s.imported {
		return s, nil
	}

	for range initialTiles {
		if _, _, err := s.spawner.Spawn(&s.board); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Board returns a snapshot of the current board.
func (s *Session) Board() Board { return s.board }

// Score returns the cumulative score. It never decreases.
func (s *Session) Score() int { return s.score }

// Moves returns the number of committed moves.
func (s *Session) Moves() int { return s.moves }

// MaxTile returns the largest tile currently on the board.
func (s *Session) MaxTile() int { return s.board.MaxTile() }

// WinTarget returns the tile value that counts as a win.
func (s *Session) WinTarget() int { return s.winTarget }

// MoveValid reports whether a move in the given direction would change
// the board. It has no side effects.
func (s *Session) MoveValid(dir Direction) bool {
	if !dir.Valid() {
		return false
	}
	_, _, changed := Apply(s.board, dir)
	return changed
}

// ValidMoves returns the directions that would change the board.
func (s *Session) ValidMoves() []Direction {
	var valid []Direction
	for _, d := range Directions {
		if s.MoveValid(d) {
			valid = append(valid, d)
		}
	}
	return valid
}

// Execute attempts a move. An invalid direction value is an error. A
// move that would not change the board, or any move once the session is
// lost, is a silent no-op returning false: board and score stay
// untouched and nothing spawns. A committed move updates the board, adds
// the merge score, spawns exactly one tile, and returns true.
func (s *Session) Execute(dir Direction) (bool, error) {
	if !dir.Valid() {
		return false, fmt.Errorf("%w: %d", ErrBadDirection, int(dir))
	}

	if s.GameOver() {
		return false, nil
	}

	next, delta, changed := Apply(s.board, dir)
	if !changed {
		return false, nil
	}

	s.board = next
	s.score += delta
	s.moves++

	// A changed move always leaves at least one empty cell.
	if _, _, err := s.spawner.Spawn(&s.board); err != nil {
		return false, err
	}

	return true, nil
}

// Won reports whether any tile has reached the win target. Winning does
// not halt play; the board may still be moved until GameOver.
func (s *Session) Won() bool {
	return s.board.MaxTile() >= s.winTarget
}

// GameOver reports whether no direction can change the board: the board
// is full and no two adjacent cells share a value.
func (s *Session) GameOver() bool {
	return !CanMove(s.board)
}

// Status returns the session state. Lost is terminal and takes
// precedence over Won once no move remains.
func (s *Session) Status() Status {
	switch {
	case s.GameOver():
		return StatusLost
	case s.Won():
		return StatusWon
	default:
		return StatusInProgress
	}
}

package game

// Source is the boundary to an external game instance, such as a live
// browser game observed through an automation layer. Implementations
// live outside this package; the core only defines the surface it
// consumes: a board snapshot, the reported score, and a move channel.
type Source interface {
	// ReadBoard returns the current board snapshot in actual tile
	// values. Implementations reading log2-encoded state convert with
	// FromExponents before returning.
	ReadBoard() (Board, error)

	// ReadScore returns the current score as reported by the game.
	ReadScore() (int, error)

	// SendMove plays a move on the external game using the shared
	// integer encoding (0=Up, 1=Down, 2=Left, 3=Right).
	SendMove(Direction) error
}

// SessionSource adapts a local Session to the Source interface, so
// tooling written against an external game can run against the
// in-process simulation.
type SessionSource struct {
	Session *Session
}

// ReadBoard implements Source.
func (s *SessionSource) ReadBoard() (Board, error) {
	return s.Session.Board(), nil
}

// ReadScore implements Source.
func (s *SessionSource) ReadScore() (int, error) {
	return s.Session.Score(), nil
}

// SendMove implements Source. Invalid directions are surfaced; a
// rejected (no-op) move is not an error.
func (s *SessionSource) SendMove(dir Direction) error {
	_, err := s.Session.Execute(dir)
	return err
}

var _ Source = (*SessionSource)(nil)

package board

import "sync"

// Session holds the live board snapshot for one user. It serialises
// transitions so concurrent drops observe each other's result.
type Session struct {
	ID string

	mu    sync.Mutex
	state *State
}

func NewSession(id string, state *State) *Session {
	return &Session{
		ID:    id,
		state: state,
	}
}

// Snapshot returns the current state.
func (s *Session) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Replace swaps in a freshly loaded state.
func (s *Session) Replace(state *State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
}

// Transition runs fn against the current state and installs the state it
// returns. The board lock is held for the duration.
func (s *Session) Transition(fn func(*State) (*State, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := fn(s.state)
	if next != nil {
		s.state = next
	}
	return err
}

package scan

import "sync"

// Session represents one camera scan session. The capture source itself is an
// external collaborator; the session only tracks lifecycle so teardown is
// safe to call any number of times, including when nothing is running.
type Session struct {
	mu      sync.Mutex
	active  bool
	onStop  func()
	stopped bool
}

// NewSession starts a session. onStop runs exactly once, on the first Stop.
// onStop may be nil.
func NewSession(onStop func()) *Session {
	return &Session{active: true, onStop: onStop}
}

// Active reports whether the session is still running.
func (s *Session) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Stop ends the session. Idempotent: repeated calls and calls on an already
// stopped session are no-ops.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped {
		return
	}
	s.stopped = true
	s.active = false
	if s.onStop != nil {
		s.onStop()
	}
}

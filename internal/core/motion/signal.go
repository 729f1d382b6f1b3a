package motion

// Signal fans out scroll positions to subscribers. It is owned by the UI event
// loop and is not safe for concurrent use.
type Signal struct {
	last   Position
	nextID int
	subs   map[int]func(Position)
}

// NewSignal creates a signal with no subscribers.
func NewSignal() *Signal {
	return &Signal{subs: make(map[int]func(Position))}
}

// Subscribe registers fn and immediately delivers the latest position. The
// returned func releases the subscription; calling it more than once is a no-op.
func (s *Signal) Subscribe(fn func(Position)) (release func()) {
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	fn(s.last)

	released := false
	return func() {
		if released {
			return
		}
		released = true
		delete(s.subs, id)
	}
}

// Publish delivers p to every subscriber. Publishing the same position again
// only recomputes the same values.
func (s *Signal) Publish(p Position) {
	s.last = p
	for _, fn := range s.subs {
		fn(p)
	}
}

// Last returns the most recently published position.
func (s *Signal) Last() Position {
	return s.last
}

// Subscribers returns the number of live subscriptions.
func (s *Signal) Subscribers() int {
	return len(s.subs)
}

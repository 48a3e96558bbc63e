package hashpages

import "sync"

// Signal abstracts the navigation source: a single global string value (the
// location fragment) that any part of the application may read or write.
// The router depends on this interface rather than a hardwired global so it
// can be tested without a real platform environment. Implementations must
// follow native hash-change semantics: setting the current value again fires
// no notification.
type Signal interface {
	// Value returns the current fragment.
	Value() string
	// Set writes a new fragment, notifying subscribers if it changed.
	Set(value string)
	// Subscribe registers fn to run on every change. The returned function
	// removes the subscription.
	Subscribe(fn func(value string)) (unsubscribe func())
}

// MemorySignal is a process-local [Signal]. Notifications run synchronously
// on the goroutine that calls Set, matching the single-threaded event model
// the router assumes.
type MemorySignal struct {
	mu    sync.Mutex
	value string
	subs  map[int]func(string)
	next  int
}

// NewMemorySignal returns a MemorySignal holding the given initial value.
func NewMemorySignal(value string) *MemorySignal {
	return &MemorySignal{value: value, subs: make(map[int]func(string))}
}

func (s *MemorySignal) Value() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

func (s *MemorySignal) Set(value string) {
	s.mu.Lock()
	if value == s.value {
		s.mu.Unlock()
		return
	}
	s.value = value
	fns := make([]func(string), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn(value)
	}
}

func (s *MemorySignal) Subscribe(fn func(string)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

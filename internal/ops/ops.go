// Package ops tracks which entities have a mutating request in flight, so
// views can disable controls and show spinners. It is bookkeeping for the
// UI only — the backend remains the authority on rejecting a second
// concurrent mutation.
package ops

// Set is the collection of busy entity ids. The zero value is not usable;
// call NewSet.
type Set struct {
	busy map[string]struct{}
}

// NewSet returns an empty busy set.
func NewSet() *Set {
	return &Set{busy: make(map[string]struct{})}
}

// Begin marks id busy and returns a release func. The release is
// idempotent, so it can be deferred and also called explicitly on both the
// success and failure message paths without double-release concerns. An id
// must never stay busy after its request settles.
func (s *Set) Begin(id string) (release func()) {
	s.busy[id] = struct{}{}
	done := false
	return func() {
		if done {
			return
		}
		done = true
		delete(s.busy, id)
	}
}

// End removes id from the set directly. Views that route completion through
// a message rather than a closure use this form.
func (s *Set) End(id string) {
	delete(s.busy, id)
}

// Busy reports whether id has an operation in flight.
func (s *Set) Busy(id string) bool {
	_, ok := s.busy[id]
	return ok
}

// Len is the number of in-flight operations.
func (s *Set) Len() int {
	return len(s.busy)
}

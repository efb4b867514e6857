package ops

import (
	"errors"
	"testing"
)

func TestBeginEnd(t *testing.T) {
	s := NewSet()

	release := s.Begin("art-1")
	if !s.Busy("art-1") {
		t.Error("expected art-1 busy after Begin")
	}
	if s.Len() != 1 {
		t.Errorf("expected 1 in flight, got %d", s.Len())
	}

	release()
	if s.Busy("art-1") {
		t.Error("expected art-1 released")
	}
	if s.Len() != 0 {
		t.Errorf("expected 0 in flight, got %d", s.Len())
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	s := NewSet()

	r1 := s.Begin("art-1")
	r1()
	// A second Begin after release must not be undone by a stale release
	s.Begin("art-1")
	r1()
	if !s.Busy("art-1") {
		t.Error("stale release must not clear a newer operation")
	}
}

// fakeEvaluate mimics the request/settle shape the views use: mark busy,
// run, release in all branches.
func fakeEvaluate(s *Set, id string, fail bool) error {
	release := s.Begin(id)
	defer release()

	if fail {
		return errors.New("backend said no")
	}
	return nil
}

func TestReleasedOnSuccessAndFailure(t *testing.T) {
	s := NewSet()

	if err := fakeEvaluate(s, "art-1", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Busy("art-1") {
		t.Error("id stuck busy after success")
	}

	if err := fakeEvaluate(s, "art-2", true); err == nil {
		t.Fatal("expected failure")
	}
	if s.Busy("art-2") {
		t.Error("id stuck busy after failure")
	}
}

func TestIndependentIDs(t *testing.T) {
	s := NewSet()
	s.Begin("a")
	s.Begin("b")
	s.End("a")

	if s.Busy("a") {
		t.Error("expected a released")
	}
	if !s.Busy("b") {
		t.Error("expected b still busy")
	}
}

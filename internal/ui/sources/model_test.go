package sources

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/sortby"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
)

func testDeps() Deps {
	noop := func(id string) tea.Cmd { return nil }
	return Deps{
		Load:    func() tea.Cmd { return nil },
		Trigger: noop,
		Delete:  noop,
		Update:  func(id string, upd api.SourceUpdate) tea.Cmd { return nil },
		Create:  func(ns api.NewSource) tea.Cmd { return nil },
		Preview: func(url string) tea.Cmd { return nil },
	}
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sample() []api.SourceSummary {
	now := time.Now()
	return []api.SourceSummary{
		{ID: "s1", Name: "Baltic Watch", Status: "active", LastRun: now.Add(-time.Hour)},
		{ID: "s2", Name: "Arid Signals", Status: "paused", LastRun: now.Add(-2 * time.Hour)},
		{ID: "s3", Name: "Zephyr Feed", Status: "active"}, // never ran
		{ID: "s4", Name: "Old Source", Status: "deleted", Deleted: true},
	}
}

func TestDeletedHiddenByDefault(t *testing.T) {
	m := New(testDeps(), false)
	m, _ = m.Update(ui.SourcesLoaded{Sources: sample()})

	if len(m.sorted) != 3 {
		t.Fatalf("expected 3 visible sources, got %d", len(m.sorted))
	}
	m, _ = m.Update(key("D"))
	if len(m.sorted) != 4 {
		t.Fatalf("expected 4 sources with deleted shown, got %d", len(m.sorted))
	}
}

func TestSortCycleAndNullsLast(t *testing.T) {
	m := New(testDeps(), false)
	m, _ = m.Update(ui.SourcesLoaded{Sources: sample()})

	// Cycle past alphabetical to last_run
	m, _ = m.Update(key("o"))
	if m.sortField != sortby.LastRun {
		t.Fatalf("expected last_run after one cycle, got %s", m.sortField)
	}
	last := m.sorted[len(m.sorted)-1]
	if last.ID != "s3" {
		t.Errorf("expected never-ran source last in asc order, got %s", last.ID)
	}

	// Flipping the order keeps the undated source at the bottom
	m, _ = m.Update(key("O"))
	last = m.sorted[len(m.sorted)-1]
	if last.ID != "s3" {
		t.Errorf("expected never-ran source last in desc order too, got %s", last.ID)
	}
}

func TestTriggerMarksBusyAndReleases(t *testing.T) {
	m := New(testDeps(), false)
	m, _ = m.Update(ui.SourcesLoaded{Sources: sample()})

	id := m.sorted[0].ID
	m, _ = m.Update(key("t"))
	if !m.busy.Busy(id) {
		t.Fatal("expected selected source busy after trigger")
	}
	// Second trigger while busy is a no-op
	before := m.busy.Len()
	m, _ = m.Update(key("t"))
	if m.busy.Len() != before {
		t.Error("trigger on a busy source must not start another op")
	}

	m, _ = m.Update(ui.OpDone{Kind: "trigger", ID: id})
	if m.busy.Busy(id) {
		t.Error("expected busy released after completion")
	}
}

func TestPauseTogglesStatus(t *testing.T) {
	var got *api.SourceUpdate
	deps := testDeps()
	deps.Update = func(id string, upd api.SourceUpdate) tea.Cmd {
		got = &upd
		return nil
	}

	m := New(deps, false)
	m, _ = m.Update(ui.SourcesLoaded{Sources: sample()})

	// Alphabetical asc puts "Arid Signals" (paused) first
	m, _ = m.Update(key("p"))
	if got == nil || got.Status == nil {
		t.Fatal("expected a status update issued")
	}
	if *got.Status != "active" {
		t.Errorf("pausing a paused source should resume it, got %q", *got.Status)
	}
}

func TestStalePreviewIgnored(t *testing.T) {
	m := New(testDeps(), false)
	m, _ = m.Update(ui.SourcesLoaded{Sources: []api.SourceSummary{
		{ID: "s1", Name: "A", URL: "http://a.example/feed"},
	}})
	m, _ = m.Update(key("v"))

	m, _ = m.Update(ui.PreviewLoaded{URL: "http://other.example/feed"})
	if m.previewRes != nil || m.previewErr != nil {
		t.Error("preview for a different URL must be dropped")
	}
}

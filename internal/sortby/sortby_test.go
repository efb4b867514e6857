package sortby

import (
	"testing"
	"time"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
)

func names(list []api.SourceSummary) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.Name
	}
	return out
}

func TestAlphabetical(t *testing.T) {
	list := []api.SourceSummary{
		{Name: "zeta feed"},
		{Name: "Alpha Wire"},
		{Name: "beacon"},
	}

	got := names(Sources(list, Alphabetical, Asc))
	want := []string{"Alpha Wire", "beacon", "zeta feed"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("asc: expected %v, got %v", want, got)
		}
	}

	got = names(Sources(list, Alphabetical, Desc))
	want = []string{"zeta feed", "beacon", "Alpha Wire"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("desc: expected %v, got %v", want, got)
		}
	}
}

func TestLastRunNullsAlwaysLast(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	list := []api.SourceSummary{
		{Name: "never-ran"}, // zero LastRun
		{Name: "old", LastRun: now.Add(-48 * time.Hour)},
		{Name: "fresh", LastRun: now.Add(-time.Hour)},
		{Name: "also-never"}, // zero LastRun
	}

	for _, order := range []Order{Asc, Desc} {
		got := names(Sources(list, LastRun, order))
		if got[2] != "never-ran" && got[2] != "also-never" {
			t.Errorf("order %s: expected null-dated entries at the end, got %v", order, got)
		}
		if got[3] != "never-ran" && got[3] != "also-never" {
			t.Errorf("order %s: expected null-dated entries at the end, got %v", order, got)
		}
	}

	// Direction still applies among the dated entries
	asc := names(Sources(list, LastRun, Asc))
	if asc[0] != "old" || asc[1] != "fresh" {
		t.Errorf("asc: expected [old fresh ...], got %v", asc)
	}
	desc := names(Sources(list, LastRun, Desc))
	if desc[0] != "fresh" || desc[1] != "old" {
		t.Errorf("desc: expected [fresh old ...], got %v", desc)
	}
}

func TestCreatedDateNullsAlwaysLast(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	list := []api.SourceSummary{
		{Name: "dated", CreatedAt: now},
		{Name: "undated"},
	}
	for _, order := range []Order{Asc, Desc} {
		got := names(Sources(list, CreatedDate, order))
		if got[len(got)-1] != "undated" {
			t.Errorf("order %s: expected undated last, got %v", order, got)
		}
	}
}

func TestNumericFields(t *testing.T) {
	list := []api.SourceSummary{
		{Name: "mid", ArtifactCount: 50, Health: 0.7},
		{Name: "high", ArtifactCount: 900, Health: 0.95},
		{Name: "low", ArtifactCount: 3, Health: 0.1},
	}

	got := names(Sources(list, Artifacts, Desc))
	if got[0] != "high" || got[2] != "low" {
		t.Errorf("artifacts desc: got %v", got)
	}

	got = names(Sources(list, Health, Asc))
	if got[0] != "low" || got[2] != "high" {
		t.Errorf("health asc: got %v", got)
	}
}

func TestStatusUsesRawValue(t *testing.T) {
	// Raw values sort: active < error < paused. Display labels would give a
	// different order (Active < Error < Paused happens to agree, but the
	// comparator must not depend on that).
	list := []api.SourceSummary{
		{Name: "p", Status: "paused"},
		{Name: "a", Status: "active"},
		{Name: "e", Status: "error"},
	}
	got := names(Sources(list, Status, Asc))
	want := []string{"a", "e", "p"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestInputNotMutated(t *testing.T) {
	list := []api.SourceSummary{
		{Name: "b"},
		{Name: "a"},
	}
	Sources(list, Alphabetical, Asc)
	if list[0].Name != "b" {
		t.Error("input slice was mutated")
	}
}

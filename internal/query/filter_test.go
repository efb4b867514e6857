package query

import (
	"testing"
)

func TestDefaultFilter(t *testing.T) {
	f := Default()

	if !f.IncludeDeletedSources {
		t.Error("expected deleted sources included by default")
	}
	if f.SortBy != SortCreatedAt {
		t.Errorf("expected default sort created_at, got %q", f.SortBy)
	}
	if f.SortOrder != Desc {
		t.Errorf("expected default order desc, got %q", f.SortOrder)
	}
	if f.Limit != 50 {
		t.Errorf("expected default limit 50, got %d", f.Limit)
	}
	if f.Skip != 0 {
		t.Errorf("expected default skip 0, got %d", f.Skip)
	}
	if f.ActiveCount() != 0 {
		t.Errorf("expected 0 active filters on default, got %d", f.ActiveCount())
	}
}

func TestSetThenClearRoundTrip(t *testing.T) {
	keys := []struct {
		key string
		val string
	}{
		{KeyLabel, "Signal"},
		{KeySourceID, "src-42"},
		{KeyMimeType, "application/pdf"},
		{KeyCreatedAfter, "2025-01-01"},
		{KeyCreatedBefore, "2025-06-30"},
		{KeyPubDateAfter, "2024-12-01"},
		{KeyPubDateBefore, "2025-01-15"},
		{KeyOrganization, "Reuters"},
		{KeyLanguage, "en"},
		{KeyTopic, "energy"},
		{KeyGeoLocation, "Baltic"},
		{KeyAuthor, "smith"},
		{KeyMinConfidence, "0.3"},
		{KeyMaxConfidence, "0.9"},
		{KeyHasNormalized, "true"},
		{KeySortBy, "confidence"},
		{KeySortOrder, "asc"},
		{KeyLimit, "25"},
		{KeySkip, "100"},
	}

	for _, tc := range keys {
		before := Default().Set(KeyTopic, "baseline")
		after := before.Set(tc.key, tc.val).Clear(tc.key)
		if !after.Equal(before) {
			t.Errorf("set+clear on %q did not round-trip", tc.key)
		}
	}
}

func TestSetEmptyStringClears(t *testing.T) {
	f := Default().Set(KeyOrganization, "Reuters")
	if f.Organization == nil {
		t.Fatal("expected organization set")
	}

	f = f.Set(KeyOrganization, "")
	if f.Organization != nil {
		t.Error("expected empty string to clear the field, not store \"\"")
	}
	if f.ActiveCount() != 0 {
		t.Errorf("expected 0 active after clearing, got %d", f.ActiveCount())
	}
}

func TestSetCoercesMalformedInput(t *testing.T) {
	f := Default().Set(KeyMinConfidence, "0.5")
	if f.MinConfidence == nil {
		t.Fatal("expected min confidence set")
	}

	// Non-numeric input clears rather than errors
	f = f.Set(KeyMinConfidence, "not a number")
	if f.MinConfidence != nil {
		t.Error("expected malformed confidence coerced to nil")
	}

	// Malformed date likewise
	f = f.Set(KeyCreatedAfter, "Jan 1 2025")
	if f.CreatedAfter != nil {
		t.Error("expected malformed date coerced to nil")
	}

	// Out-of-range confidence clamps
	f = f.Set(KeyMaxConfidence, "1.5")
	if f.MaxConfidence == nil || *f.MaxConfidence != 1.0 {
		t.Error("expected confidence clamped to 1.0")
	}
}

func TestSetInvalidEnumValues(t *testing.T) {
	f := Default().Set(KeyLabel, "Garbage")
	if f.Label != nil {
		t.Error("expected unknown label coerced to nil")
	}

	f = Default().Set(KeySortBy, "popularity")
	if f.SortBy != SortCreatedAt {
		t.Errorf("expected unknown sort field to keep default, got %q", f.SortBy)
	}

	f = Default().Set(KeyLimit, "0")
	if f.Limit != 50 {
		t.Errorf("expected non-positive limit to keep default, got %d", f.Limit)
	}

	f = Default().Set(KeySkip, "-10")
	if f.Skip != 0 {
		t.Errorf("expected negative skip to keep default, got %d", f.Skip)
	}
}

func TestActiveCountExclusions(t *testing.T) {
	f := Default()

	// Toggling IncludeDeletedSources never counts
	f = f.Set(KeyIncludeDeleted, "false")
	if f.ActiveCount() != 0 {
		t.Errorf("include_deleted_sources should not count, got %d", f.ActiveCount())
	}

	// Defaults for sort/limit/skip do not count even when set explicitly
	f = Default().
		Set(KeySortBy, "created_at").
		Set(KeySortOrder, "desc").
		Set(KeyLimit, "50").
		Set(KeySkip, "0")
	if f.ActiveCount() != 0 {
		t.Errorf("explicit defaults should not count, got %d", f.ActiveCount())
	}

	// Non-default sort and paging do count
	f = Default().Set(KeySortBy, "title").Set(KeySortOrder, "asc").Set(KeyLimit, "10")
	if f.ActiveCount() != 3 {
		t.Errorf("expected 3 active (sort_by, sort_order, limit), got %d", f.ActiveCount())
	}
}

func TestActiveCountFields(t *testing.T) {
	f := Default().
		Set(KeyLabel, "Review").
		Set(KeyMinConfidence, "0.2").
		Set(KeyTopic, "shipping").
		Set(KeyHasNormalized, "true")
	if f.ActiveCount() != 4 {
		t.Errorf("expected 4 active filters, got %d", f.ActiveCount())
	}
}

func TestValuesRawFloats(t *testing.T) {
	f := Default().
		Set(KeyMinConfidence, "0.2").
		Set(KeyMaxConfidence, "0.9")

	v := f.Values("")
	if got := v.Get("min_confidence"); got != "0.2" {
		t.Errorf("expected min_confidence=0.2 (raw float, not percent), got %q", got)
	}
	if got := v.Get("max_confidence"); got != "0.9" {
		t.Errorf("expected max_confidence=0.9, got %q", got)
	}
}

func TestValuesEndToEnd(t *testing.T) {
	f := Default().
		Set(KeyLabel, "Signal").
		Set(KeyMinConfidence, "0.8").
		Set(KeySortBy, "confidence").
		Set(KeySortOrder, "desc")

	v := f.Values("")
	want := map[string]string{
		"label":          "Signal",
		"min_confidence": "0.8",
		"sort_by":        "confidence",
		"sort_order":     "desc",
		"limit":          "50",
		"skip":           "0",
	}
	for k, w := range want {
		if got := v.Get(k); got != w {
			t.Errorf("param %s: expected %q, got %q", k, w, got)
		}
	}

	// Unset optional fields must not appear at all
	for _, absent := range []string{"source_id", "max_confidence", "search", "include_deleted_sources"} {
		if v.Has(absent) {
			t.Errorf("expected %s absent, got %q", absent, v.Get(absent))
		}
	}
}

func TestValuesSearchTerm(t *testing.T) {
	v := Default().Values("pipeline sabotage")
	if got := v.Get("search"); got != "pipeline sabotage" {
		t.Errorf("expected search term passed through, got %q", got)
	}
}

func TestValuesIncludeDeletedOnlyWhenFalse(t *testing.T) {
	v := Default().Set(KeyIncludeDeleted, "false").Values("")
	if got := v.Get("include_deleted_sources"); got != "false" {
		t.Errorf("expected include_deleted_sources=false, got %q", got)
	}
}

func TestNoCrossFieldValidation(t *testing.T) {
	// Inverted ranges are representable and serialized as-is; the backend
	// decides what to do with them.
	f := Default().
		Set(KeyCreatedAfter, "2025-06-01").
		Set(KeyCreatedBefore, "2025-01-01").
		Set(KeyMinConfidence, "0.9").
		Set(KeyMaxConfidence, "0.1")

	v := f.Values("")
	if v.Get("created_after") != "2025-06-01" || v.Get("created_before") != "2025-01-01" {
		t.Error("expected inverted date range preserved")
	}
	if v.Get("min_confidence") != "0.9" || v.Get("max_confidence") != "0.1" {
		t.Error("expected inverted confidence range preserved")
	}
}

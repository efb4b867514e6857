// Package sortby orders source summaries for display when the backend has
// not already sorted them. Pure: input is never mutated.
package sortby

import (
	"sort"
	"strings"
	"time"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
)

// Field selects the comparison key.
type Field string

const (
	Alphabetical Field = "alphabetical"
	LastRun      Field = "last_run"
	CreatedDate  Field = "created_date"
	Artifacts    Field = "artifacts"
	Health       Field = "health"
	Status       Field = "status"
	Type         Field = "type"
)

// Order is the sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Sources returns a new slice sorted by the given field and order.
//
// Sources that never ran (zero LastRun) or have no created date sort to the
// END of the list in BOTH directions — the direction flip applies only
// among dated entries. Easy to get wrong: nulls-last is order-invariant,
// not "last when descending".
func Sources(list []api.SourceSummary, field Field, order Order) []api.SourceSummary {
	out := make([]api.SourceSummary, len(list))
	copy(out, list)

	less := lessFunc(field)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]

		// Null-date handling is decided before the direction flip.
		if field == LastRun || field == CreatedDate {
			at, bt := dateOf(a, field), dateOf(b, field)
			switch {
			case at.IsZero() && bt.IsZero():
				return false
			case at.IsZero():
				return false // a goes after b
			case bt.IsZero():
				return true // b goes after a
			}
		}

		if order == Desc {
			return less(b, a)
		}
		return less(a, b)
	})
	return out
}

func dateOf(s api.SourceSummary, field Field) time.Time {
	if field == LastRun {
		return s.LastRun
	}
	return s.CreatedAt
}

func lessFunc(field Field) func(a, b api.SourceSummary) bool {
	switch field {
	case LastRun:
		return func(a, b api.SourceSummary) bool { return a.LastRun.Before(b.LastRun) }
	case CreatedDate:
		return func(a, b api.SourceSummary) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case Artifacts:
		return func(a, b api.SourceSummary) bool { return a.ArtifactCount < b.ArtifactCount }
	case Health:
		return func(a, b api.SourceSummary) bool { return a.Health < b.Health }
	case Status:
		// Raw status value, not the display label
		return func(a, b api.SourceSummary) bool { return a.Status < b.Status }
	case Type:
		return func(a, b api.SourceSummary) bool { return a.Type < b.Type }
	default: // Alphabetical
		return func(a, b api.SourceSummary) bool {
			an, bn := strings.ToLower(a.Name), strings.ToLower(b.Name)
			if an == bn {
				return a.Name < b.Name
			}
			return an < bn
		}
	}
}

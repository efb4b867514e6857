// Package format provides pure display-formatting helpers for timestamps,
// crawl schedules, and source state. No side effects, no state.
package format

import (
	"fmt"
	"regexp"
	"time"
)

// TimeAgo buckets elapsed time into a coarse human label. Counts truncate
// (floor), they do not round: 119s is "1 minutes ago".
//
// Known quirk: the unit is never singularized ("1 minutes ago"). The web
// dashboard renders the same string; keep parity until both change.
func TimeAgo(t time.Time) string {
	return timeAgoAt(t, time.Now())
}

// timeAgoAt is the clock-injected form, for tests.
func timeAgoAt(t, now time.Time) string {
	secs := int(now.Sub(t).Seconds())
	if secs < 0 {
		secs = 0
	}
	switch {
	case secs < 60:
		return fmt.Sprintf("%d seconds ago", secs)
	case secs < 3600:
		return fmt.Sprintf("%d minutes ago", secs/60)
	case secs < 86400:
		return fmt.Sprintf("%d hours ago", secs/3600)
	default:
		return fmt.Sprintf("%d days ago", secs/86400)
	}
}

// schedulePresets maps the cron expressions the source editor offers to
// their display labels. Exact match only.
var schedulePresets = map[string]string{
	"*/5 * * * *":  "Every 5 minutes",
	"*/15 * * * *": "Every 15 minutes",
	"*/30 * * * *": "Every 30 minutes",
	"0 * * * *":    "Every hour",
	"0 */2 * * *":  "Every 2 hours",
	"0 */4 * * *":  "Every 4 hours",
	"0 */6 * * *":  "Every 6 hours",
	"0 */12 * * *": "Every 12 hours",
	"0 0 * * *":    "Daily at midnight",
	"0 6 * * *":    "Daily at 6 AM",
	"0 12 * * *":   "Daily at noon",
	"0 0 * * 0":    "Weekly on Sunday",
	"0 0 1 * *":    "Monthly on the 1st",
}

// cronShaped matches strings made only of cron field characters. This is a
// shape check, not a cron parser: validity is the backend's problem.
var cronShaped = regexp.MustCompile(`^[0-9*/,\- \t]+$`)

// Schedule renders a source's cron expression for display. Known presets
// get a friendly label; anything else cron-shaped is shown verbatim; an
// empty or non-cron value means the source only runs when triggered.
func Schedule(cron string) string {
	if cron == "" {
		return "Manual"
	}
	if label, ok := schedulePresets[cron]; ok {
		return label
	}
	if cronShaped.MatchString(cron) {
		return cron
	}
	return "Manual"
}

// HealthLabel buckets a source health score in [0, 1] for display.
func HealthLabel(score float64) string {
	switch {
	case score >= 0.9:
		return "Healthy"
	case score >= 0.5:
		return "Degraded"
	default:
		return "Failing"
	}
}

// StatusLabel maps raw source status values to display text. Unknown
// statuses pass through so new backend states are never hidden.
func StatusLabel(status string) string {
	switch status {
	case "active":
		return "Active"
	case "paused":
		return "Paused"
	case "error":
		return "Error"
	case "deleted":
		return "Deleted"
	}
	return status
}

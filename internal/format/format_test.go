package format

import (
	"testing"
	"time"
)

func TestTimeAgoBuckets(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		elapsed time.Duration
		want    string
	}{
		{0, "0 seconds ago"},
		{30 * time.Second, "30 seconds ago"},
		{59 * time.Second, "59 seconds ago"},
		{60 * time.Second, "1 minutes ago"}, // no singular form, matches the web dashboard
		{119 * time.Second, "1 minutes ago"},
		{3599 * time.Second, "59 minutes ago"},
		{3600 * time.Second, "1 hours ago"},
		{86399 * time.Second, "23 hours ago"},
		{86400 * time.Second, "1 days ago"},
		{3 * 86400 * time.Second, "3 days ago"},
	}

	for _, tc := range tests {
		got := timeAgoAt(now.Add(-tc.elapsed), now)
		if got != tc.want {
			t.Errorf("elapsed %v: expected %q, got %q", tc.elapsed, tc.want, got)
		}
	}
}

func TestTimeAgoFutureClampsToZero(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := timeAgoAt(now.Add(10*time.Second), now)
	if got != "0 seconds ago" {
		t.Errorf("expected future timestamps clamped, got %q", got)
	}
}

func TestSchedulePresets(t *testing.T) {
	tests := []struct {
		cron string
		want string
	}{
		{"*/5 * * * *", "Every 5 minutes"},
		{"*/15 * * * *", "Every 15 minutes"},
		{"0 * * * *", "Every hour"},
		{"0 0 * * *", "Daily at midnight"},
		{"0 0 * * 0", "Weekly on Sunday"},
		{"0 0 1 * *", "Monthly on the 1st"},
	}
	for _, tc := range tests {
		if got := Schedule(tc.cron); got != tc.want {
			t.Errorf("Schedule(%q): expected %q, got %q", tc.cron, tc.want, got)
		}
	}
}

func TestScheduleUnknownButCronShaped(t *testing.T) {
	// Not a preset, but shaped like cron: shown verbatim, unvalidated
	if got := Schedule("1 2 3 4 5"); got != "1 2 3 4 5" {
		t.Errorf("expected cron-shaped string returned unchanged, got %q", got)
	}
	if got := Schedule("*/7 2-4 * * 1,3"); got != "*/7 2-4 * * 1,3" {
		t.Errorf("expected cron-shaped string returned unchanged, got %q", got)
	}
}

func TestScheduleManualFallback(t *testing.T) {
	if got := Schedule(""); got != "Manual" {
		t.Errorf("expected Manual for empty, got %q", got)
	}
	if got := Schedule("whenever you feel like it"); got != "Manual" {
		t.Errorf("expected Manual for non-cron input, got %q", got)
	}
}

func TestHealthLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "Healthy"},
		{0.9, "Healthy"},
		{0.89, "Degraded"},
		{0.5, "Degraded"},
		{0.49, "Failing"},
		{0, "Failing"},
	}
	for _, tc := range tests {
		if got := HealthLabel(tc.score); got != tc.want {
			t.Errorf("HealthLabel(%v): expected %q, got %q", tc.score, tc.want, got)
		}
	}
}

func TestStatusLabelPassthrough(t *testing.T) {
	if got := StatusLabel("active"); got != "Active" {
		t.Errorf("expected Active, got %q", got)
	}
	if got := StatusLabel("quarantined"); got != "quarantined" {
		t.Errorf("expected unknown status passed through, got %q", got)
	}
}

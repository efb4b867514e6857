package coord

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
)

type fakeClient struct {
	mu         sync.Mutex
	health     api.JobsHealth
	active     []api.Job
	sources    []api.SourceSummary
	healthByID map[string]api.SourceHealth
	failHealth map[string]bool
	listErr    error
	pulseErr   error

	healthCalls []string
}

func (f *fakeClient) JobsHealth(ctx context.Context) (api.JobsHealth, error) {
	return f.health, f.pulseErr
}

func (f *fakeClient) ActiveJobs(ctx context.Context) ([]api.Job, error) {
	return f.active, f.pulseErr
}

func (f *fakeClient) ListSources(ctx context.Context) ([]api.SourceSummary, error) {
	return f.sources, f.listErr
}

func (f *fakeClient) SourceHealth(ctx context.Context, id string) (api.SourceHealth, error) {
	f.mu.Lock()
	f.healthCalls = append(f.healthCalls, id)
	f.mu.Unlock()
	if f.failHealth[id] {
		return api.SourceHealth{}, errors.New("health endpoint down")
	}
	return f.healthByID[id], nil
}

type recordingSender struct {
	mu   sync.Mutex
	msgs []tea.Msg
}

func (r *recordingSender) Send(msg tea.Msg) {
	r.mu.Lock()
	r.msgs = append(r.msgs, msg)
	r.mu.Unlock()
}

func (r *recordingSender) pulses() []ui.JobsPulse {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []ui.JobsPulse
	for _, m := range r.msgs {
		if p, ok := m.(ui.JobsPulse); ok {
			out = append(out, p)
		}
	}
	return out
}

func TestPulseSendsCombinedMessage(t *testing.T) {
	fc := &fakeClient{
		health: api.JobsHealth{Queued: 2, Running: 1},
		active: []api.Job{{ID: "j1", Status: "running"}},
	}
	rec := &recordingSender{}

	c := New(fc, time.Minute)
	c.pulse(context.Background(), rec)

	pulses := rec.pulses()
	if len(pulses) != 1 {
		t.Fatalf("expected one pulse, got %d", len(pulses))
	}
	p := pulses[0]
	if p.Err != nil {
		t.Fatalf("unexpected pulse error: %v", p.Err)
	}
	if p.Health.Queued != 2 || len(p.Active) != 1 {
		t.Errorf("pulse payload mismatch: %+v", p)
	}
}

func TestPulseCarriesError(t *testing.T) {
	fc := &fakeClient{pulseErr: errors.New("backend down")}
	rec := &recordingSender{}

	c := New(fc, time.Minute)
	c.pulse(context.Background(), rec)

	pulses := rec.pulses()
	if len(pulses) != 1 || pulses[0].Err == nil {
		t.Fatal("expected an error-carrying pulse")
	}
}

func TestStartStopsOnCancel(t *testing.T) {
	fc := &fakeClient{}
	rec := &recordingSender{}

	ctx, cancel := context.WithCancel(context.Background())
	c := New(fc, 10*time.Millisecond)
	c.Start(ctx, rec)

	time.Sleep(35 * time.Millisecond)
	cancel()
	c.Wait()

	// Immediate pulse plus at least one tick
	if got := len(rec.pulses()); got < 2 {
		t.Errorf("expected immediate pulse plus ticks, got %d", got)
	}
}

func TestLoadSourcesPartialEnrichment(t *testing.T) {
	fc := &fakeClient{
		sources: []api.SourceSummary{
			{ID: "s1", Name: "A"},
			{ID: "s2", Name: "B"},
			{ID: "s3", Name: "C"},
		},
		healthByID: map[string]api.SourceHealth{
			"s1": {SourceID: "s1", Score: 0.95},
			"s3": {SourceID: "s3", Score: 0.4},
		},
		failHealth: map[string]bool{"s2": true},
	}

	sources, health, err := LoadSources(context.Background(), fc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sources) != 3 {
		t.Fatalf("expected 3 sources, got %d", len(sources))
	}
	if len(health) != 2 {
		t.Errorf("expected 2 enriched sources (one failed), got %d", len(health))
	}
	if _, ok := health["s2"]; ok {
		t.Error("failed health fetch must not appear in the map")
	}
	if len(fc.healthCalls) != 3 {
		t.Errorf("expected one health call per source, got %d", len(fc.healthCalls))
	}
}

func TestLoadSourcesListErrorFails(t *testing.T) {
	fc := &fakeClient{listErr: errors.New("502")}
	if _, _, err := LoadSources(context.Background(), fc); err == nil {
		t.Fatal("expected list error to propagate")
	}
}

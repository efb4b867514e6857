// Package coord provides background polling against the LoreGuard backend:
// a jobs-health pulse for the status bar, and the joined sources+health
// enrichment fetch the sources view renders from.
package coord

import (
	"context"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/logging"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
)

// maxConcurrentHealth limits parallel per-source health calls.
const maxConcurrentHealth = 5

// client is the backend surface the coordinator needs; narrowed for tests.
type client interface {
	JobsHealth(ctx context.Context) (api.JobsHealth, error)
	ActiveJobs(ctx context.Context) ([]api.Job, error)
	ListSources(ctx context.Context) ([]api.SourceSummary, error)
	SourceHealth(ctx context.Context, id string) (api.SourceHealth, error)
}

// Coordinator polls the backend on a ticker and pushes messages into the
// running program. Context cancellation is the only stop mechanism.
type Coordinator struct {
	client   client
	interval time.Duration
	wg       sync.WaitGroup
}

// New creates a Coordinator. interval <= 0 defaults to 30s.
func New(c client, interval time.Duration) *Coordinator {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Coordinator{client: c, interval: interval}
}

// sender matches tea.Program's Send; narrowed so tests don't need a real
// program.
type sender interface {
	Send(msg tea.Msg)
}

// Start begins the polling loop. Polls immediately, then on every tick.
func (c *Coordinator) Start(ctx context.Context, program sender) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()

		c.pulse(ctx, program)

		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.pulse(ctx, program)
			}
		}
	}()
}

// Wait blocks until the background goroutine exits.
func (c *Coordinator) Wait() {
	c.wg.Wait()
}

// pulse fetches the jobs health summary and active jobs concurrently and
// sends one combined message.
func (c *Coordinator) pulse(ctx context.Context, program sender) {
	var (
		health api.JobsHealth
		active []api.Job
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		health, err = c.client.JobsHealth(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		active, err = c.client.ActiveJobs(gctx)
		return err
	})
	err := g.Wait()

	if err != nil {
		logging.Warn("jobs pulse failed", "error", err)
	}
	if program != nil {
		program.Send(ui.JobsPulse{Health: health, Active: active, Err: err})
	}
}

// LoadSources fetches the source list, then enriches each source with its
// health detail, all health calls in parallel, joined before returning.
//
// There is intentionally no per-call timeout here: one slow health endpoint
// delays the whole combined result, exactly as the web dashboard behaves.
// A health failure for one source is logged and skipped rather than failing
// the listing.
func LoadSources(ctx context.Context, c client) ([]api.SourceSummary, map[string]api.SourceHealth, error) {
	sources, err := c.ListSources(ctx)
	if err != nil {
		return nil, nil, err
	}

	var mu sync.Mutex
	health := make(map[string]api.SourceHealth, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentHealth)
	for _, src := range sources {
		id := src.ID
		g.Go(func() error {
			h, err := c.SourceHealth(gctx, id)
			if err != nil {
				logging.Warn("source health fetch failed", "source", id, "error", err)
				return nil // partial enrichment is fine
			}
			mu.Lock()
			health[id] = h
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	return sources, health, nil
}

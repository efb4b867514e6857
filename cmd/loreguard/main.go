// Command loreguard is the terminal dashboard for a LoreGuard backend:
// artifact triage, source management, job monitoring and the research
// assistant, all against the backend REST API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/app"
	"github.com/HAF-A57/LoreGuard-sub000/internal/config"
	"github.com/HAF-A57/LoreGuard-sub000/internal/coord"
	"github.com/HAF-A57/LoreGuard-sub000/internal/library"
	"github.com/HAF-A57/LoreGuard-sub000/internal/logging"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := logging.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	client := api.New(cfg.API.BaseURL, cfg.API.APIKey)

	// Local pin library; the dashboard still works without it.
	lib, err := library.Open(cfg.Library())
	if err != nil {
		logging.Warn("library unavailable", "err", err)
		lib = nil
	}

	root := app.New(cfg, client, lib)
	program := tea.NewProgram(root, tea.WithAltScreen())

	interval := time.Duration(cfg.API.PollSeconds) * time.Second
	if interval <= 0 {
		interval = 30 * time.Second
	}
	coordinator := coord.New(client, interval)
	coordinator.Start(ctx, program)

	if _, err := program.Run(); err != nil {
		logging.Error("program exited", "err", err)
		fmt.Fprintf(os.Stderr, "loreguard: %v\n", err)
		os.Exit(1)
	}

	cancel()
	coordinator.Wait()
}

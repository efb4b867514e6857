package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/HAF-A57/LoreGuard-sub000/internal/coord"
	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
	"github.com/HAF-A57/LoreGuard-sub000/internal/sortby"
)

func runSources() {
	fs := flag.NewFlagSet("sources", flag.ExitOnError)
	sortField := fs.String("sort", "alphabetical", "Sort field: alphabetical, last_run, created_date, artifacts, health, status, type")
	order := fs.String("order", "asc", "Sort order: asc, desc")
	deleted := fs.Bool("deleted", false, "Include deleted sources")
	fs.Parse(os.Args[1:])

	client := newClient()
	list, health, err := coord.LoadSources(context.Background(), client)
	if err != nil {
		fatal(err)
	}

	if !*deleted {
		kept := list[:0]
		for _, s := range list {
			if !s.Deleted {
				kept = append(kept, s)
			}
		}
		list = kept
	}
	list = sortby.Sources(list, sortby.Field(*sortField), sortby.Order(*order))

	fmt.Printf("%-28s %-8s %-8s %-9s %9s  %-14s %s\n",
		"NAME", "TYPE", "STATUS", "HEALTH", "ARTIFACTS", "LAST RUN", "SCHEDULE")
	for _, s := range list {
		lastRun := "never"
		if !s.LastRun.IsZero() {
			lastRun = format.TimeAgo(s.LastRun)
		}
		fmt.Printf("%-28s %-8s %-8s %-9s %9d  %-14s %s\n",
			truncate(s.Name, 28),
			s.Type,
			format.StatusLabel(s.Status),
			format.HealthLabel(s.Health),
			s.ArtifactCount,
			lastRun,
			format.Schedule(s.Schedule))
		if h, ok := health[s.ID]; ok && h.LastError != "" {
			fmt.Printf("    last error: %s\n", truncate(h.LastError, 90))
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
)

func runJobs() {
	fs := flag.NewFlagSet("jobs", flag.ExitOnError)
	limit := fs.Int("limit", 30, "Number of recent jobs to list")
	fs.Parse(os.Args[1:])

	client := newClient()
	ctx := context.Background()

	health, err := client.JobsHealth(ctx)
	if err != nil {
		fatal(err)
	}
	fmt.Printf("queued %d · running %d · done(24h) %d · failed(24h) %d · error rate %.1f%%\n\n",
		health.Queued, health.Running, health.Done24h, health.Failed24h, health.ErrorRate*100)

	active, err := client.ActiveJobs(ctx)
	if err != nil {
		fatal(err)
	}
	if len(active) > 0 {
		fmt.Println("ACTIVE")
		for _, j := range active {
			fmt.Printf("  %-12s %-10s %-9s %s\n", truncate(j.ID, 12), j.Type, j.Status, j.SourceID)
		}
		fmt.Println()
	}

	recent, err := client.ListJobs(ctx, *limit)
	if err != nil {
		fatal(err)
	}
	fmt.Println("RECENT")
	for _, j := range recent {
		when := ""
		if !j.CompletedAt.IsZero() {
			when = format.TimeAgo(j.CompletedAt)
		}
		fmt.Printf("  %-12s %-10s %-9s %-28s %s\n",
			truncate(j.ID, 12), j.Type, j.Status, truncate(j.SourceID, 28), when)
		if j.Error != "" {
			fmt.Printf("      %s\n", truncate(j.Error, 90))
		}
	}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
	"github.com/HAF-A57/LoreGuard-sub000/internal/query"
)

func runArtifacts() {
	fs := flag.NewFlagSet("artifacts", flag.ExitOnError)
	label := fs.String("label", "", "Filter by label: Signal, Review, Noise, not_evaluated")
	source := fs.String("source", "", "Filter by source id")
	minConf := fs.Float64("min-confidence", -1, "Minimum confidence [0,1]")
	maxConf := fs.Float64("max-confidence", -1, "Maximum confidence [0,1]")
	search := fs.String("search", "", "Full-text search term")
	sortBy := fs.String("sort", "", "Sort field: created_at, pub_date, confidence, title")
	order := fs.String("order", "", "Sort order: asc, desc")
	limit := fs.Int("limit", 50, "Page size")
	skip := fs.Int("skip", 0, "Offset")
	hideDeleted := fs.Bool("hide-deleted", false, "Exclude artifacts from deleted sources")
	fs.Parse(os.Args[1:])

	// Build the filter through the same Set path the TUI uses, so the CLI
	// inherits its coercion rules.
	f := query.Default()
	f = f.Set(query.KeyLabel, *label)
	f = f.Set(query.KeySourceID, *source)
	if *minConf >= 0 {
		f = f.Set(query.KeyMinConfidence, strconv.FormatFloat(*minConf, 'g', -1, 64))
	}
	if *maxConf >= 0 {
		f = f.Set(query.KeyMaxConfidence, strconv.FormatFloat(*maxConf, 'g', -1, 64))
	}
	f = f.Set(query.KeySortBy, *sortBy)
	f = f.Set(query.KeySortOrder, *order)
	f = f.Set(query.KeyLimit, strconv.Itoa(*limit))
	f = f.Set(query.KeySkip, strconv.Itoa(*skip))
	f.IncludeDeletedSources = !*hideDeleted

	client := newClient()
	page, err := client.ListArtifacts(context.Background(), f, *search)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("%d of %d artifacts\n\n", len(page.Items), page.Total)
	for _, a := range page.Items {
		conf := ""
		if a.Label != "not_evaluated" {
			conf = fmt.Sprintf("%3.0f%%", a.Confidence*100)
		}
		fmt.Printf("%-13s %4s  %-60s %s\n",
			a.Label, conf,
			truncate(a.Title, 60),
			format.TimeAgo(a.CreatedAt))
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/config"
)

// newClient builds an API client from the persisted config plus
// environment overrides, or fatals.
func newClient() *api.Client {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: config: %v\n", err)
		os.Exit(1)
	}
	return api.New(cfg.API.BaseURL, cfg.API.APIKey)
}

// fatal prints an error and exits.
func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// truncate shortens a string to max runes, appending "..." if truncated.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

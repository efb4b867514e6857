// Package preview fetches and parses a candidate feed URL so the operator
// can see what a source emits before registering it with the backend.
package preview

import (
	"context"
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// Item is one entry of a previewed feed.
type Item struct {
	Title     string
	URL       string
	Author    string
	Published time.Time // zero when the feed had no date
}

// Result is a parsed feed preview.
type Result struct {
	Title       string
	Description string
	Items       []Item
}

// maxItems caps how much of a feed the preview shows.
const maxItems = 10

// Fetcher previews feeds.
type Fetcher struct {
	parser *gofeed.Parser
}

// New creates a Fetcher.
func New() *Fetcher {
	return &Fetcher{parser: gofeed.NewParser()}
}

// Fetch parses the feed at url. Honors ctx for cancellation; callers decide
// whether to bound it with a deadline.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Result, error) {
	feed, err := f.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return Result{}, fmt.Errorf("preview %s: %w", url, err)
	}

	r := Result{
		Title:       feed.Title,
		Description: feed.Description,
	}
	for _, entry := range feed.Items {
		if len(r.Items) >= maxItems {
			break
		}
		item := Item{
			Title: entry.Title,
			URL:   entry.Link,
		}
		if entry.PublishedParsed != nil {
			item.Published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			item.Published = *entry.UpdatedParsed
		}
		if entry.Author != nil {
			item.Author = entry.Author.Name
		}
		r.Items = append(r.Items, item)
	}
	return r, nil
}

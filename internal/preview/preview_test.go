package preview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Baltic Maritime Bulletin</title>
    <description>Port and shipping notices</description>
    <item>
      <title>Icebreaker schedule updated</title>
      <link>https://example.com/ice</link>
      <pubDate>Mon, 02 Jun 2025 08:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Dredging notice, channel 7</title>
      <link>https://example.com/dredge</link>
    </item>
  </channel>
</rss>`

func TestFetchParsesFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(sampleFeed))
	}))
	defer srv.Close()

	r, err := New().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if r.Title != "Baltic Maritime Bulletin" {
		t.Errorf("unexpected feed title %q", r.Title)
	}
	if len(r.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(r.Items))
	}
	if r.Items[0].Published.IsZero() {
		t.Error("expected first item dated")
	}
	if !r.Items[1].Published.IsZero() {
		t.Error("expected undated item to have zero time")
	}
}

func TestFetchBadFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not a feed</html>"))
	}))
	defer srv.Close()

	if _, err := New().Fetch(context.Background(), srv.URL); err == nil {
		t.Error("expected parse error for non-feed content")
	}
}

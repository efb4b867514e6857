package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/HAF-A57/LoreGuard-sub000/internal/query"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, ""), srv
}

func TestListArtifactsQueryParams(t *testing.T) {
	var got url.Values
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"items": [], "total": 0}`))
	})
	defer srv.Close()

	f := query.Default().
		Set(query.KeyLabel, "Signal").
		Set(query.KeyMinConfidence, "0.8").
		Set(query.KeySortBy, "confidence")

	if _, err := c.ListArtifacts(context.Background(), f, "baltic"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"label":          "Signal",
		"min_confidence": "0.8",
		"sort_by":        "confidence",
		"sort_order":     "desc",
		"limit":          "50",
		"skip":           "0",
		"search":         "baltic",
	}
	for k, w := range want {
		if got.Get(k) != w {
			t.Errorf("param %s: expected %q, got %q", k, w, got.Get(k))
		}
	}
}

func TestListArtifactsNormalizesDefaults(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		// Sparse backend response: no label, no confidence, no total
		w.Write([]byte(`{"items": [{"id": "a1", "source_id": "s1", "created_at": "2025-05-01T10:00:00Z"}]}`))
	})
	defer srv.Close()

	page, err := c.ListArtifacts(context.Background(), query.Default(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 1 {
		t.Errorf("expected total falling back to item count, got %d", page.Total)
	}

	a := page.Items[0]
	if a.Label != "not_evaluated" {
		t.Errorf("expected missing label -> not_evaluated, got %q", a.Label)
	}
	if a.Confidence != 0 {
		t.Errorf("expected missing confidence -> 0, got %v", a.Confidence)
	}
	if a.Title != "(untitled)" {
		t.Errorf("expected missing title placeholder, got %q", a.Title)
	}
	if !a.PubDate.IsZero() {
		t.Errorf("expected missing pub_date -> zero time, got %v", a.PubDate)
	}
}

func TestErrorDecoding(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail": "min_confidence must be <= max_confidence"}`))
	})
	defer srv.Close()

	_, err := c.ListArtifacts(context.Background(), query.Default(), "")
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %T: %v", err, err)
	}
	if apiErr.Status != 422 {
		t.Errorf("expected status 422, got %d", apiErr.Status)
	}
	if apiErr.Detail != "min_confidence must be <= max_confidence" {
		t.Errorf("expected backend detail, got %q", apiErr.Detail)
	}
}

func TestErrorNonJSONBody(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})
	defer srv.Close()

	_, err := c.ListSources(context.Background())
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *api.Error, got %v", err)
	}
	if apiErr.Detail != "upstream exploded" {
		t.Errorf("expected raw body as detail, got %q", apiErr.Detail)
	}
}

func TestMutationsHitExpectedPaths(t *testing.T) {
	var gotMethod, gotPath string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		w.Write([]byte(`{}`))
	})
	defer srv.Close()

	ctx := context.Background()
	tests := []struct {
		name   string
		call   func() error
		method string
		path   string
	}{
		{"evaluate", func() error { return c.EvaluateArtifact(ctx, "a1") }, "POST", "/api/v1/artifacts/a1/evaluate"},
		{"delete artifact", func() error { return c.DeleteArtifact(ctx, "a1") }, "DELETE", "/api/v1/artifacts/a1"},
		{"trigger", func() error { return c.TriggerSource(ctx, "s1") }, "POST", "/api/v1/sources/s1/trigger"},
		{"cancel job", func() error { return c.CancelJob(ctx, "j1") }, "POST", "/api/v1/jobs/j1/cancel"},
		{"retry job", func() error { return c.RetryJob(ctx, "j1") }, "POST", "/api/v1/jobs/j1/retry"},
	}

	for _, tc := range tests {
		if err := tc.call(); err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if gotMethod != tc.method || gotPath != tc.path {
			t.Errorf("%s: expected %s %s, got %s %s", tc.name, tc.method, tc.path, gotMethod, gotPath)
		}
	}
}

func TestDetectModelsHasDeadline(t *testing.T) {
	var hadDeadline bool
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		_, hadDeadline = r.Context().Deadline()
		w.Write([]byte(`[{"name": "llama3", "context_len": 8192}]`))
	})
	defer srv.Close()

	models, err := c.DetectModels(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(models) != 1 || models[0].Name != "llama3" {
		t.Errorf("unexpected models: %+v", models)
	}
	if !hadDeadline {
		t.Error("expected DetectModels request to carry a deadline")
	}
}

func TestAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New(srv.URL, "secret-key")
	if _, err := c.ListSources(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret-key" {
		t.Errorf("expected bearer header, got %q", gotAuth)
	}
}

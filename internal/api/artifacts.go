package api

import (
	"context"
	"fmt"
	"net/url"

	"github.com/HAF-A57/LoreGuard-sub000/internal/query"
)

// ListArtifacts fetches one page matching the filter plus an optional
// free-text search term.
//
// Overlapping calls for the same view are not sequence-guarded: if the user
// changes the filter while a request is outstanding, whichever response
// arrives last wins. Known hazard, kept to match the web dashboard.
func (c *Client) ListArtifacts(ctx context.Context, f query.Filter, search string) (ArtifactPage, error) {
	var raw rawArtifactPage
	if err := c.get(ctx, "/api/v1/artifacts/", f.Values(search), &raw); err != nil {
		return ArtifactPage{}, err
	}
	return normalizeArtifactPage(raw), nil
}

// GetArtifact fetches one artifact by id.
func (c *Client) GetArtifact(ctx context.Context, id string) (Artifact, error) {
	var raw rawArtifact
	if err := c.get(ctx, "/api/v1/artifacts/"+url.PathEscape(id), nil, &raw); err != nil {
		return Artifact{}, err
	}
	return normalizeArtifact(raw), nil
}

// EvaluateArtifact asks the backend to (re)run evaluation on an artifact.
// The result arrives by refetch, not in this response.
func (c *Client) EvaluateArtifact(ctx context.Context, id string) error {
	return c.post(ctx, "/api/v1/artifacts/"+url.PathEscape(id)+"/evaluate", nil, nil)
}

// DeleteArtifact removes an artifact.
func (c *Client) DeleteArtifact(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/artifacts/"+url.PathEscape(id))
}

// NormalizedContent fetches the extracted text of an artifact.
func (c *Client) NormalizedContent(ctx context.Context, id string) (string, error) {
	var out struct {
		Content string `json:"content"`
	}
	if err := c.get(ctx, "/api/v1/artifacts/"+url.PathEscape(id)+"/normalized-content", nil, &out); err != nil {
		return "", err
	}
	if out.Content == "" {
		return "", fmt.Errorf("api: artifact %s has no normalized content", id)
	}
	return out.Content, nil
}

// ArtifactEvaluations fetches the evaluation history for one artifact.
func (c *Client) ArtifactEvaluations(ctx context.Context, id string) ([]Evaluation, error) {
	var raw []rawEvaluation
	if err := c.get(ctx, "/api/v1/artifacts/"+url.PathEscape(id)+"/evaluations", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]Evaluation, len(raw))
	for i, r := range raw {
		out[i] = normalizeEvaluation(r)
	}
	return out, nil
}

// ListEvaluations fetches the most recent evaluations across all artifacts.
func (c *Client) ListEvaluations(ctx context.Context, limit int) ([]Evaluation, error) {
	if limit <= 0 {
		limit = 50
	}
	params := url.Values{"limit": {fmt.Sprint(limit)}}
	var raw []rawEvaluation
	if err := c.get(ctx, "/api/v1/evaluations/", params, &raw); err != nil {
		return nil, err
	}
	out := make([]Evaluation, len(raw))
	for i, r := range raw {
		out[i] = normalizeEvaluation(r)
	}
	return out, nil
}

// Stats fetches the dashboard overview numbers.
func (c *Client) Stats(ctx context.Context) (DashboardStats, error) {
	var raw rawStats
	if err := c.get(ctx, "/api/v1/artifacts/stats", nil, &raw); err != nil {
		return DashboardStats{}, err
	}
	return normalizeStats(raw), nil
}

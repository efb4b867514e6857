package api

import (
	"context"
	"net/url"
)

// ListSources fetches all configured sources. Deleted sources are included;
// the view decides whether to show them.
func (c *Client) ListSources(ctx context.Context) ([]SourceSummary, error) {
	var raw []rawSourceSummary
	if err := c.get(ctx, "/api/v1/sources/", nil, &raw); err != nil {
		return nil, err
	}
	out := make([]SourceSummary, len(raw))
	for i, r := range raw {
		out[i] = normalizeSourceSummary(r)
	}
	return out, nil
}

// GetSource fetches one source by id.
func (c *Client) GetSource(ctx context.Context, id string) (SourceSummary, error) {
	var raw rawSourceSummary
	if err := c.get(ctx, "/api/v1/sources/"+url.PathEscape(id), nil, &raw); err != nil {
		return SourceSummary{}, err
	}
	return normalizeSourceSummary(raw), nil
}

// SourceHealth fetches health detail for one source. The sources view calls
// this once per listed source, concurrently, joined before render; there is
// deliberately no per-call timeout here (see coord).
func (c *Client) SourceHealth(ctx context.Context, id string) (SourceHealth, error) {
	var raw rawSourceHealth
	if err := c.get(ctx, "/api/v1/sources/"+url.PathEscape(id)+"/health", nil, &raw); err != nil {
		return SourceHealth{}, err
	}
	h := normalizeSourceHealth(raw)
	if h.SourceID == "" {
		h.SourceID = id
	}
	return h, nil
}

// SourceUpdate carries the mutable fields of a source. Nil fields are left
// unchanged by the backend.
type SourceUpdate struct {
	Name     *string `json:"name,omitempty"`
	URL      *string `json:"url,omitempty"`
	Schedule *string `json:"schedule,omitempty"`
	Status   *string `json:"status,omitempty"`
}

// UpdateSource applies a partial update.
func (c *Client) UpdateSource(ctx context.Context, id string, upd SourceUpdate) (SourceSummary, error) {
	var raw rawSourceSummary
	if err := c.put(ctx, "/api/v1/sources/"+url.PathEscape(id), upd, &raw); err != nil {
		return SourceSummary{}, err
	}
	return normalizeSourceSummary(raw), nil
}

// DeleteSource removes a source. Its artifacts remain queryable with
// include_deleted_sources.
func (c *Client) DeleteSource(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/sources/"+url.PathEscape(id))
}

// TriggerSource starts a manual crawl.
func (c *Client) TriggerSource(ctx context.Context, id string) error {
	return c.post(ctx, "/api/v1/sources/"+url.PathEscape(id)+"/trigger", nil, nil)
}

// NewSource is the creation payload for a source.
type NewSource struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	URL      string `json:"url"`
	Schedule string `json:"schedule,omitempty"`
}

// CreateSource registers a new source.
func (c *Client) CreateSource(ctx context.Context, ns NewSource) (SourceSummary, error) {
	var raw rawSourceSummary
	if err := c.post(ctx, "/api/v1/sources/", ns, &raw); err != nil {
		return SourceSummary{}, err
	}
	return normalizeSourceSummary(raw), nil
}

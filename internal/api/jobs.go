package api

import (
	"context"
	"net/url"
	"strconv"
)

// ListJobs fetches recent jobs, newest first.
func (c *Client) ListJobs(ctx context.Context, limit int) ([]Job, error) {
	if limit <= 0 {
		limit = 50
	}
	params := url.Values{"limit": {strconv.Itoa(limit)}}
	var raw []rawJob
	if err := c.get(ctx, "/api/v1/jobs/", params, &raw); err != nil {
		return nil, err
	}
	return normalizeJobs(raw), nil
}

// ActiveJobs fetches jobs currently queued or running.
func (c *Client) ActiveJobs(ctx context.Context) ([]Job, error) {
	var raw []rawJob
	if err := c.get(ctx, "/api/v1/jobs/active/list", nil, &raw); err != nil {
		return nil, err
	}
	return normalizeJobs(raw), nil
}

// JobsHealth fetches the queue health summary.
func (c *Client) JobsHealth(ctx context.Context) (JobsHealth, error) {
	var out JobsHealth
	if err := c.get(ctx, "/api/v1/jobs/health/summary", nil, &out); err != nil {
		return JobsHealth{}, err
	}
	return out, nil
}

// CancelJob cancels a queued or running job.
func (c *Client) CancelJob(ctx context.Context, id string) error {
	return c.post(ctx, "/api/v1/jobs/"+url.PathEscape(id)+"/cancel", nil, nil)
}

// RetryJob requeues a failed job.
func (c *Client) RetryJob(ctx context.Context, id string) error {
	return c.post(ctx, "/api/v1/jobs/"+url.PathEscape(id)+"/retry", nil, nil)
}

func normalizeJobs(raw []rawJob) []Job {
	out := make([]Job, len(raw))
	for i, r := range raw {
		out[i] = normalizeJob(r)
	}
	return out
}

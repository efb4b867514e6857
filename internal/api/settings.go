package api

import (
	"context"
	"net/url"
)

// Rubrics, prompt templates and LLM providers are small CRUD surfaces that
// back the settings view. They share the same request plumbing as the rest
// of the client.

func (c *Client) ListRubrics(ctx context.Context) ([]Rubric, error) {
	var out []Rubric
	if err := c.get(ctx, "/api/v1/rubrics/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateRubric(ctx context.Context, r Rubric) (Rubric, error) {
	var out Rubric
	if err := c.post(ctx, "/api/v1/rubrics/", r, &out); err != nil {
		return Rubric{}, err
	}
	return out, nil
}

func (c *Client) UpdateRubric(ctx context.Context, r Rubric) (Rubric, error) {
	var out Rubric
	if err := c.put(ctx, "/api/v1/rubrics/"+url.PathEscape(r.ID), r, &out); err != nil {
		return Rubric{}, err
	}
	return out, nil
}

func (c *Client) DeleteRubric(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/rubrics/"+url.PathEscape(id))
}

func (c *Client) ListPromptTemplates(ctx context.Context) ([]PromptTemplate, error) {
	var out []PromptTemplate
	if err := c.get(ctx, "/api/v1/prompt-templates/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreatePromptTemplate(ctx context.Context, t PromptTemplate) (PromptTemplate, error) {
	var out PromptTemplate
	if err := c.post(ctx, "/api/v1/prompt-templates/", t, &out); err != nil {
		return PromptTemplate{}, err
	}
	return out, nil
}

func (c *Client) UpdatePromptTemplate(ctx context.Context, t PromptTemplate) (PromptTemplate, error) {
	var out PromptTemplate
	if err := c.put(ctx, "/api/v1/prompt-templates/"+url.PathEscape(t.ID), t, &out); err != nil {
		return PromptTemplate{}, err
	}
	return out, nil
}

func (c *Client) DeletePromptTemplate(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/prompt-templates/"+url.PathEscape(id))
}

// ListProviders fetches the configured LLM providers. Bounded by
// detectTimeout: the settings view must render even when a provider
// endpoint is unreachable.
func (c *Client) ListProviders(ctx context.Context) ([]LLMProvider, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	var out []LLMProvider
	if err := c.get(ctx, "/api/v1/llm-providers/", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProvider(ctx context.Context, p LLMProvider) (LLMProvider, error) {
	var out LLMProvider
	if err := c.post(ctx, "/api/v1/llm-providers/", p, &out); err != nil {
		return LLMProvider{}, err
	}
	return out, nil
}

func (c *Client) UpdateProvider(ctx context.Context, p LLMProvider) (LLMProvider, error) {
	var out LLMProvider
	if err := c.put(ctx, "/api/v1/llm-providers/"+url.PathEscape(p.ID), p, &out); err != nil {
		return LLMProvider{}, err
	}
	return out, nil
}

func (c *Client) DeleteProvider(ctx context.Context, id string) error {
	return c.delete(ctx, "/api/v1/llm-providers/"+url.PathEscape(id))
}

// DetectModels probes a provider endpoint for its available models. Like
// ListProviders this is deadline-bounded so a dead Ollama host can't hang
// the settings view.
func (c *Client) DetectModels(ctx context.Context, providerID string) ([]ModelInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, detectTimeout)
	defer cancel()

	var out []ModelInfo
	path := "/api/v1/llm-providers/" + url.PathEscape(providerID) + "/models"
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

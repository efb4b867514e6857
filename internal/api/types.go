// Package api is the REST client for the LoreGuard backend. The backend
// owns crawling, evaluation, and job scheduling; this package only speaks
// its HTTP surface and normalizes responses at the boundary (decode.go).
package api

import "time"

// Artifact is a single ingested document evaluated by the backend.
type Artifact struct {
	ID            string    `json:"id"`
	SourceID      string    `json:"source_id"`
	SourceName    string    `json:"source_name"`
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	Author        string    `json:"author"`
	Organization  string    `json:"organization"`
	Language      string    `json:"language"`
	Topic         string    `json:"topic"`
	GeoLocation   string    `json:"geo_location"`
	MimeType      string    `json:"mime_type"`
	Summary       string    `json:"summary"`
	Label         string    `json:"label"`      // Signal | Review | Noise | not_evaluated
	Confidence    float64   `json:"confidence"` // [0,1]; 0 when not evaluated
	HasNormalized bool      `json:"has_normalized"`
	CreatedAt     time.Time `json:"created_at"`
	PubDate       time.Time `json:"pub_date"` // zero when the source had none
}

// ArtifactPage is one page of a filtered listing.
type ArtifactPage struct {
	Items []Artifact `json:"items"`
	Total int        `json:"total"`
}

// Evaluation is one scoring pass over an artifact.
type Evaluation struct {
	ID         string    `json:"id"`
	ArtifactID string    `json:"artifact_id"`
	RubricID   string    `json:"rubric_id"`
	Label      string    `json:"label"`
	Confidence float64   `json:"confidence"`
	Rationale  string    `json:"rationale"`
	Model      string    `json:"model"`
	CreatedAt  time.Time `json:"created_at"`
}

// SourceSummary is the listing row for a configured source, enriched with
// health where available.
type SourceSummary struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`     // rss | scraper | api
	Status        string    `json:"status"`   // active | paused | error | deleted
	Schedule      string    `json:"schedule"` // cron expression; empty = manual
	URL           string    `json:"url"`
	ArtifactCount int       `json:"artifact_count"`
	Health        float64   `json:"health"`   // [0,1]
	LastRun       time.Time `json:"last_run"` // zero = never ran
	CreatedAt     time.Time `json:"created_at"`
	Deleted       bool      `json:"deleted"`
}

// SourceHealth is the per-source health detail endpoint payload.
type SourceHealth struct {
	SourceID      string    `json:"source_id"`
	Score         float64   `json:"score"`
	ConsecutiveOK int       `json:"consecutive_ok"`
	LastError     string    `json:"last_error"`
	LastRun       time.Time `json:"last_run"`
	NextRun       time.Time `json:"next_run"`
}

// Job is a backend crawl/evaluation job record.
type Job struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`   // crawl | evaluate | normalize
	Status      string    `json:"status"` // queued | running | done | failed | cancelled
	SourceID    string    `json:"source_id"`
	Error       string    `json:"error"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
}

// JobsHealth is the jobs health summary card.
type JobsHealth struct {
	Queued    int     `json:"queued"`
	Running   int     `json:"running"`
	Failed24h int     `json:"failed_24h"`
	Done24h   int     `json:"done_24h"`
	ErrorRate float64 `json:"error_rate"`
}

// Rubric is a versioned, weighted scoring configuration used by backend
// evaluation.
type Rubric struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Version   int         `json:"version"`
	Active    bool        `json:"active"`
	Criteria  []Criterion `json:"criteria"`
	CreatedAt time.Time   `json:"created_at"`
}

// Criterion is one weighted dimension of a rubric.
type Criterion struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	Prompt string  `json:"prompt"`
}

// PromptTemplate is a named evaluation prompt with substitution slots.
type PromptTemplate struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Template string `json:"template"`
	Purpose  string `json:"purpose"`
}

// LLMProvider is a configured evaluation model endpoint.
type LLMProvider struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Kind     string `json:"kind"` // anthropic | openai | ollama | ...
	Endpoint string `json:"endpoint"`
	Model    string `json:"model"`
	Enabled  bool   `json:"enabled"`
}

// ModelInfo is one detected model on a provider endpoint.
type ModelInfo struct {
	Name       string `json:"name"`
	ContextLen int    `json:"context_len"`
}

// ChatMessage is one turn in an assistant session.
type ChatMessage struct {
	ID        string     `json:"id"`
	Role      string     `json:"role"` // user | assistant | tool
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// ToolCall records a backend tool the assistant invoked while answering;
// rendered as a badge on the transcript.
type ToolCall struct {
	Name   string `json:"name"`
	Input  string `json:"input"`
	Status string `json:"status"` // ok | error
}

// ChatSession is a stored assistant conversation.
type ChatSession struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `json:"messages,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}

// DashboardStats backs the overview cards.
type DashboardStats struct {
	TotalArtifacts int            `json:"total_artifacts"`
	ByLabel        map[string]int `json:"by_label"`
	ActiveSources  int            `json:"active_sources"`
	Ingested24h    int            `json:"ingested_24h"`
	Evaluated24h   int            `json:"evaluated_24h"`
}

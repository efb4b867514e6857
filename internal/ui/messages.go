// Package ui provides the Bubble Tea TUI for the LoreGuard client.
package ui

import (
	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/library"
	"github.com/HAF-A57/LoreGuard-sub000/internal/preview"
)

// StatsLoaded is sent when the dashboard overview numbers arrive.
type StatsLoaded struct {
	Stats api.DashboardStats
	Err   error
}

// ArtifactsLoaded is sent when a filtered artifact page arrives.
//
// It carries no request sequence number: when two fetches overlap, the last
// response to land wins regardless of issue order. Known hazard carried
// over from the web dashboard.
type ArtifactsLoaded struct {
	Page api.ArtifactPage
	Err  error
}

// ContentLoaded is sent when an artifact's normalized text arrives.
type ContentLoaded struct {
	ID      string
	Content string
	Err     error
}

// EvalHistoryLoaded is sent with one artifact's evaluation history.
type EvalHistoryLoaded struct {
	ID    string
	Evals []api.Evaluation
	Err   error
}

// EvaluationsLoaded is sent with the recent-evaluations feed.
type EvaluationsLoaded struct {
	Evals []api.Evaluation
	Err   error
}

// OpDone is sent when a per-item mutation settles, success or failure. The
// receiving view must release the item's busy flag in BOTH cases.
type OpDone struct {
	Kind string // evaluate | delete | trigger | pause | cancel | retry | pin
	ID   string
	Err  error
}

// SourcesLoaded is sent with the source list and its joined health
// enrichment.
type SourcesLoaded struct {
	Sources []api.SourceSummary
	Health  map[string]api.SourceHealth
	Err     error
}

// PreviewLoaded is sent with a parsed feed preview.
type PreviewLoaded struct {
	URL    string
	Result preview.Result
	Err    error
}

// JobsLoaded is sent with the jobs view payload.
type JobsLoaded struct {
	Active []api.Job
	Recent []api.Job
	Health api.JobsHealth
	Err    error
}

// JobsPulse is the coordinator's periodic health heartbeat for the status
// bar; lighter than JobsLoaded.
type JobsPulse struct {
	Health api.JobsHealth
	Active []api.Job
	Err    error
}

// ChatReply is sent when the assistant answers a turn.
type ChatReply struct {
	Reply api.CompletionReply
	Err   error
}

// SessionsLoaded is sent with stored chat sessions.
type SessionsLoaded struct {
	Sessions []api.ChatSession
	Err      error
}

// SessionLoaded is sent with one full transcript.
type SessionLoaded struct {
	Session api.ChatSession
	Err     error
}

// ProvidersLoaded is sent with the configured LLM providers.
type ProvidersLoaded struct {
	Providers []api.LLMProvider
	Err       error
}

// ModelsDetected is sent after probing a provider endpoint.
type ModelsDetected struct {
	ProviderID string
	Models     []api.ModelInfo
	Err        error
}

// RubricsLoaded is sent with the rubric list.
type RubricsLoaded struct {
	Rubrics []api.Rubric
	Err     error
}

// TemplatesLoaded is sent with the prompt template list.
type TemplatesLoaded struct {
	Templates []api.PromptTemplate
	Err       error
}

// LibraryLoaded is sent with the local pinned-artifact list.
type LibraryLoaded struct {
	Entries []library.Entry
	Err     error
}

package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/coord"
	"github.com/HAF-A57/LoreGuard-sub000/internal/library"
	"github.com/HAF-A57/LoreGuard-sub000/internal/logging"
	"github.com/HAF-A57/LoreGuard-sub000/internal/query"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
)

// Commands bridge the views to the API client. Each returns a tea.Cmd
// that performs one call and settles as a ui message. Calls run on the
// Bubble Tea command pool, so none of them block the UI loop.

func (m Model) loadStats() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		stats, err := client.Stats(context.Background())
		return ui.StatsLoaded{Stats: stats, Err: err}
	}
}

func (m Model) loadEvaluations() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		evals, err := client.ListEvaluations(context.Background(), 20)
		return ui.EvaluationsLoaded{Evals: evals, Err: err}
	}
}

func (m Model) loadArtifacts(f query.Filter, search string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		page, err := client.ListArtifacts(context.Background(), f, search)
		if err != nil {
			logging.Error("list artifacts", "err", err)
		}
		return ui.ArtifactsLoaded{Page: page, Err: err}
	}
}

func (m Model) evaluateArtifact(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.EvaluateArtifact(context.Background(), id)
		return ui.OpDone{Kind: "evaluate", ID: id, Err: err}
	}
}

func (m Model) deleteArtifact(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteArtifact(context.Background(), id)
		return ui.OpDone{Kind: "artifact_delete", ID: id, Err: err}
	}
}

func (m Model) loadContent(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		content, err := client.NormalizedContent(context.Background(), id)
		return ui.ContentLoaded{ID: id, Content: content, Err: err}
	}
}

func (m Model) loadHistory(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		evals, err := client.ArtifactEvaluations(context.Background(), id)
		return ui.EvalHistoryLoaded{ID: id, Evals: evals, Err: err}
	}
}

func (m Model) pinArtifact(a api.Artifact) tea.Cmd {
	lib := m.lib
	return func() tea.Msg {
		if lib == nil {
			return ui.OpDone{Kind: "pin", ID: a.ID}
		}
		err := lib.Pin(a, "")
		return ui.OpDone{Kind: "pin", ID: a.ID, Err: err}
	}
}

func (m Model) loadSources() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		srcs, health, err := coord.LoadSources(context.Background(), client)
		return ui.SourcesLoaded{Sources: srcs, Health: health, Err: err}
	}
}

func (m Model) triggerSource(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.TriggerSource(context.Background(), id)
		return ui.OpDone{Kind: "trigger", ID: id, Err: err}
	}
}

func (m Model) updateSource(id string, upd api.SourceUpdate) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.UpdateSource(context.Background(), id, upd)
		return ui.OpDone{Kind: "source_update", ID: id, Err: err}
	}
}

func (m Model) deleteSource(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteSource(context.Background(), id)
		return ui.OpDone{Kind: "source_delete", ID: id, Err: err}
	}
}

func (m Model) createSource(ns api.NewSource) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		created, err := client.CreateSource(context.Background(), ns)
		return ui.OpDone{Kind: "source_create", ID: created.ID, Err: err}
	}
}

func (m Model) previewFeed(url string) tea.Cmd {
	fetcher := m.previewer
	return func() tea.Msg {
		res, err := fetcher.Fetch(context.Background(), url)
		return ui.PreviewLoaded{URL: url, Result: res, Err: err}
	}
}

func (m Model) loadJobs() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		active, err := client.ActiveJobs(context.Background())
		if err != nil {
			return ui.JobsLoaded{Err: err}
		}
		recent, err := client.ListJobs(context.Background(), 30)
		if err != nil {
			return ui.JobsLoaded{Active: active, Err: err}
		}
		health, err := client.JobsHealth(context.Background())
		return ui.JobsLoaded{Active: active, Recent: recent, Health: health, Err: err}
	}
}

func (m Model) cancelJob(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.CancelJob(context.Background(), id)
		return ui.OpDone{Kind: "cancel", ID: id, Err: err}
	}
}

func (m Model) retryJob(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.RetryJob(context.Background(), id)
		return ui.OpDone{Kind: "retry", ID: id, Err: err}
	}
}

func (m Model) loadLibrary(opts library.ListOptions) tea.Cmd {
	lib := m.lib
	return func() tea.Msg {
		if lib == nil {
			return ui.LibraryLoaded{}
		}
		entries, err := lib.List(opts)
		return ui.LibraryLoaded{Entries: entries, Err: err}
	}
}

func (m Model) unpinArtifact(id string) tea.Cmd {
	lib := m.lib
	return func() tea.Msg {
		if lib == nil {
			return ui.OpDone{Kind: "unpin", ID: id}
		}
		err := lib.Unpin(id)
		return ui.OpDone{Kind: "unpin", ID: id, Err: err}
	}
}

func (m Model) sendChat(req api.CompletionRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		reply, err := client.Complete(context.Background(), req)
		return ui.ChatReply{Reply: reply, Err: err}
	}
}

func (m Model) loadSessions() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		sessions, err := client.ListSessions(context.Background())
		return ui.SessionsLoaded{Sessions: sessions, Err: err}
	}
}

func (m Model) openSession(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		session, err := client.GetSession(context.Background(), id)
		return ui.SessionLoaded{Session: session, Err: err}
	}
}

func (m Model) deleteSession(id string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		err := client.DeleteSession(context.Background(), id)
		return ui.OpDone{Kind: "delete_session", ID: id, Err: err}
	}
}

func (m Model) loadProviders() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		providers, err := client.ListProviders(context.Background())
		return ui.ProvidersLoaded{Providers: providers, Err: err}
	}
}

func (m Model) loadRubrics() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		rubrics, err := client.ListRubrics(context.Background())
		return ui.RubricsLoaded{Rubrics: rubrics, Err: err}
	}
}

func (m Model) loadTemplates() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		templates, err := client.ListPromptTemplates(context.Background())
		return ui.TemplatesLoaded{Templates: templates, Err: err}
	}
}

func (m Model) detectModels(providerID string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		models, err := client.DetectModels(context.Background(), providerID)
		return ui.ModelsDetected{ProviderID: providerID, Models: models, Err: err}
	}
}

func (m Model) saveProvider(p api.LLMProvider) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.UpdateProvider(context.Background(), p)
		return ui.OpDone{Kind: "provider", ID: p.ID, Err: err}
	}
}

func (m Model) saveRubric(r api.Rubric) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		_, err := client.UpdateRubric(context.Background(), r)
		return ui.OpDone{Kind: "rubric", ID: r.ID, Err: err}
	}
}

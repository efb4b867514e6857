// Package app holds the root Bubble Tea model: view switching, message
// routing to the per-view models, and the shared status bar.
package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/config"
	"github.com/HAF-A57/LoreGuard-sub000/internal/library"
	"github.com/HAF-A57/LoreGuard-sub000/internal/preview"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/artifacts"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/chat"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/dashboard"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/jobs"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/libview"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/settings"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/sources"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

// View mode
type viewMode int

const (
	modeDashboard viewMode = iota
	modeArtifacts
	modeSources
	modeJobs
	modeLibrary
	modeChat
	modeSettings
)

var modeNames = map[viewMode]string{
	modeDashboard: "dashboard",
	modeArtifacts: "artifacts",
	modeSources:   "sources",
	modeJobs:      "jobs",
	modeLibrary:   "library",
	modeChat:      "chat",
	modeSettings:  "settings",
}

// Model is the root Bubble Tea model.
type Model struct {
	client    *api.Client
	lib       *library.Store
	cfg       *config.Config
	previewer *preview.Fetcher

	dashboard dashboard.Model
	artifacts artifacts.Model
	sources   sources.Model
	jobs      jobs.Model
	library   libview.Model
	chat      chat.Model
	settings  settings.Model

	mode  viewMode
	pulse ui.JobsPulse

	width  int
	height int
}

// New wires the per-view models to their API commands.
func New(cfg *config.Config, client *api.Client, lib *library.Store) Model {
	m := Model{client: client, lib: lib, cfg: cfg, previewer: preview.New(), mode: modeDashboard}

	m.dashboard = dashboard.New(dashboard.Deps{
		Stats:       m.loadStats,
		Evaluations: m.loadEvaluations,
	})
	m.artifacts = artifacts.New(artifacts.Deps{
		Load:     m.loadArtifacts,
		Evaluate: m.evaluateArtifact,
		Delete:   m.deleteArtifact,
		Content:  m.loadContent,
		History:  m.loadHistory,
		Pin:      m.pinArtifact,
	}, cfg.UI.PageSize)
	m.sources = sources.New(sources.Deps{
		Load:    m.loadSources,
		Trigger: m.triggerSource,
		Update:  m.updateSource,
		Delete:  m.deleteSource,
		Create:  m.createSource,
		Preview: m.previewFeed,
	}, cfg.UI.ShowDeleted)
	m.jobs = jobs.New(jobs.Deps{
		Load:   m.loadJobs,
		Cancel: m.cancelJob,
		Retry:  m.retryJob,
	})
	m.library = libview.New(libview.Deps{
		Load:  m.loadLibrary,
		Unpin: m.unpinArtifact,
	})
	m.chat = chat.New(chat.Deps{
		Send:          m.sendChat,
		Sessions:      m.loadSessions,
		OpenSession:   m.openSession,
		DeleteSession: m.deleteSession,
	})
	m.settings = settings.New(settings.Deps{
		Providers:      m.loadProviders,
		Rubrics:        m.loadRubrics,
		Templates:      m.loadTemplates,
		Detect:         m.detectModels,
		ToggleProvider: m.saveProvider,
		ActivateRubric: m.saveRubric,
	})

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.dashboard.Init(),
		m.artifacts.Init(),
		m.sources.Init(),
		m.jobs.Init(),
		m.library.Init(),
		m.chat.Init(),
		m.settings.Init(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		body := msg.Height - 2 // status bar
		m.dashboard.SetSize(msg.Width, body)
		m.artifacts.SetSize(msg.Width, body)
		m.sources.SetSize(msg.Width, body)
		m.jobs.SetSize(msg.Width, body)
		m.library.SetSize(msg.Width, body)
		m.chat.SetSize(msg.Width, body)
		m.settings.SetSize(msg.Width, body)
		return m, nil

	case ui.JobsPulse:
		m.pulse = msg
		m.jobs, _ = m.jobs.Update(msg)
		m.dashboard, _ = m.dashboard.Update(msg)
		return m, nil

	case tea.KeyMsg:
		if cmd, handled := m.handleGlobalKey(msg); handled {
			return m, cmd
		}
	}

	return m.route(msg)
}

// handleGlobalKey processes app-wide shortcuts. Views that are capturing
// text input keep everything except ctrl+c.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		if m.lib != nil {
			m.lib.Close()
		}
		return tea.Quit, true
	}

	if m.capturing() {
		return nil, false
	}

	switch msg.String() {
	case "q":
		if m.lib != nil {
			m.lib.Close()
		}
		return tea.Quit, true
	case "1":
		return m.switchTo(modeDashboard), true
	case "2":
		return m.switchTo(modeArtifacts), true
	case "3":
		return m.switchTo(modeSources), true
	case "4":
		return m.switchTo(modeJobs), true
	case "5":
		return m.switchTo(modeLibrary), true
	case "6":
		return m.switchTo(modeChat), true
	case "7":
		return m.switchTo(modeSettings), true
	}
	return nil, false
}

func (m *Model) switchTo(mode viewMode) tea.Cmd {
	m.mode = mode
	if mode == modeLibrary {
		// Pins may have changed from the artifacts view
		return m.library.Init()
	}
	return nil
}

func (m Model) capturing() bool {
	switch m.mode {
	case modeArtifacts:
		return m.artifacts.Capturing()
	case modeSources:
		return m.sources.Capturing()
	case modeLibrary:
		return m.library.Capturing()
	case modeChat:
		return m.chat.Capturing()
	}
	return false
}

// route delivers a message to the views that consume it. Data messages go
// to their owning view regardless of the active mode; key and spinner
// messages go to the active view only.
func (m Model) route(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case ui.StatsLoaded, ui.EvaluationsLoaded:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ui.ArtifactsLoaded, ui.ContentLoaded, ui.EvalHistoryLoaded:
		m.artifacts, cmd = m.artifacts.Update(msg)
	case ui.SourcesLoaded, ui.PreviewLoaded:
		m.sources, cmd = m.sources.Update(msg)
	case ui.JobsLoaded:
		m.jobs, cmd = m.jobs.Update(msg)
	case ui.LibraryLoaded:
		m.library, cmd = m.library.Update(msg)
	case ui.ChatReply, ui.SessionsLoaded, ui.SessionLoaded:
		m.chat, cmd = m.chat.Update(msg)
	case ui.ProvidersLoaded, ui.ModelsDetected, ui.RubricsLoaded, ui.TemplatesLoaded:
		m.settings, cmd = m.settings.Update(msg)
	case ui.OpDone:
		return m.routeOpDone(msg)
	default:
		return m.updateActive(msg)
	}
	return m, cmd
}

// routeOpDone sends a settled mutation to the view that started it, keyed
// by the operation kind.
func (m Model) routeOpDone(msg ui.OpDone) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg.Kind {
	case "evaluate", "artifact_delete", "pin":
		m.artifacts, cmd = m.artifacts.Update(msg)
	case "trigger", "source_update", "source_delete", "source_create":
		m.sources, cmd = m.sources.Update(msg)
	case "cancel", "retry":
		m.jobs, cmd = m.jobs.Update(msg)
	case "unpin":
		m.library, cmd = m.library.Update(msg)
	case "delete_session":
		m.chat, cmd = m.chat.Update(msg)
	case "provider", "rubric":
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

func (m Model) updateActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case modeArtifacts:
		m.artifacts, cmd = m.artifacts.Update(msg)
	case modeSources:
		m.sources, cmd = m.sources.Update(msg)
	case modeJobs:
		m.jobs, cmd = m.jobs.Update(msg)
	case modeLibrary:
		m.library, cmd = m.library.Update(msg)
	case modeChat:
		m.chat, cmd = m.chat.Update(msg)
	case modeSettings:
		m.settings, cmd = m.settings.Update(msg)
	}
	return m, cmd
}

func (m Model) View() string {
	var body string
	switch m.mode {
	case modeDashboard:
		body = m.dashboard.View()
	case modeArtifacts:
		body = m.artifacts.View()
	case modeSources:
		body = m.sources.View()
	case modeJobs:
		body = m.jobs.View()
	case modeLibrary:
		body = m.library.View()
	case modeChat:
		body = m.chat.View()
	case modeSettings:
		body = m.settings.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar())
}

func (m Model) statusBar() string {
	var tabs []string
	for mode := modeDashboard; mode <= modeSettings; mode++ {
		name := fmt.Sprintf("%d:%s", int(mode)+1, modeNames[mode])
		if mode == m.mode {
			tabs = append(tabs, styles.StatusKey.Render(name))
		} else {
			tabs = append(tabs, name)
		}
	}

	left := strings.Join(tabs, "  ")
	right := fmt.Sprintf("jobs %d/%d", m.pulse.Health.Running, m.pulse.Health.Queued)
	if m.pulse.Err != nil {
		right = styles.ErrorPanel.UnsetBorderStyle().UnsetPadding().Render("backend unreachable")
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		gap = 1
	}
	return styles.StatusBar.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

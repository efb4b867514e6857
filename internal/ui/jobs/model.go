// Package jobs shows the backend job queue: active jobs on top, recent
// completions below, with cancel and retry actions.
package jobs

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ops"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

type Deps struct {
	Load   func() tea.Cmd
	Cancel func(id string) tea.Cmd
	Retry  func(id string) tea.Cmd
}

type Model struct {
	deps Deps

	active []api.Job
	recent []api.Job
	health api.JobsHealth
	cursor int

	busy    *ops.Set
	loading bool
	err     error

	spinner spinner.Model
	width   int
	height  int
}

func New(deps Deps) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Muted
	return Model{deps: deps, busy: ops.NewSet(), loading: true, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.deps.Load(), m.spinner.Tick)
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// rows is the combined navigable list: active first, then recent.
func (m Model) rows() []api.Job {
	rows := make([]api.Job, 0, len(m.active)+len(m.recent))
	rows = append(rows, m.active...)
	rows = append(rows, m.recent...)
	return rows
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.JobsLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.active = msg.Active
		m.recent = msg.Recent
		m.health = msg.Health
		if n := len(m.rows()); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
		return m, nil

	case ui.JobsPulse:
		// Coordinator heartbeat keeps the active list fresh between
		// explicit reloads.
		if msg.Err == nil {
			m.active = msg.Active
			m.health = msg.Health
		}
		return m, nil

	case ui.OpDone:
		m.busy.End(msg.ID)
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		return m, m.deps.Load()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	rows := m.rows()
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(rows) > 0 {
			m.cursor = len(rows) - 1
		}
	case "r":
		m.loading = true
		return m, m.deps.Load()
	case "c":
		if j, ok := m.selected(); ok && cancellable(j.Status) && !m.busy.Busy(j.ID) {
			m.busy.Begin(j.ID)
			return m, m.deps.Cancel(j.ID)
		}
	case "R":
		if j, ok := m.selected(); ok && j.Status == "failed" && !m.busy.Busy(j.ID) {
			m.busy.Begin(j.ID)
			return m, m.deps.Retry(j.ID)
		}
	}
	return m, nil
}

func (m Model) selected() (*api.Job, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return nil, false
	}
	return &rows[m.cursor], true
}

func cancellable(status string) bool {
	return status == "queued" || status == "running"
}

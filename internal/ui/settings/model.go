// Package settings manages evaluation configuration: LLM providers (with
// model detection), rubrics and prompt templates, in three tabbed panes.
package settings

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ops"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

type Deps struct {
	Providers      func() tea.Cmd
	Rubrics        func() tea.Cmd
	Templates      func() tea.Cmd
	Detect         func(providerID string) tea.Cmd
	ToggleProvider func(p api.LLMProvider) tea.Cmd
	ActivateRubric func(r api.Rubric) tea.Cmd
}

type pane int

const (
	paneProviders pane = iota
	paneRubrics
	paneTemplates
	paneCount
)

type Model struct {
	deps Deps
	pane pane

	providers []api.LLMProvider
	rubrics   []api.Rubric
	templates []api.PromptTemplate

	// detected models per provider id, filled by the probe
	detected map[string][]api.ModelInfo

	cursor  [paneCount]int
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
	return Model{
		deps:     deps,
		detected: map[string][]api.ModelInfo{},
		busy:     ops.NewSet(),
		loading:  true,
		spinner:  sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.deps.Providers(), m.deps.Rubrics(), m.deps.Templates(), m.spinner.Tick)
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) paneLen() int {
	switch m.pane {
	case paneProviders:
		return len(m.providers)
	case paneRubrics:
		return len(m.rubrics)
	}
	return len(m.templates)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ProvidersLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.providers = msg.Providers
		return m, nil

	case ui.RubricsLoaded:
		if msg.Err == nil {
			m.rubrics = msg.Rubrics
		}
		return m, nil

	case ui.TemplatesLoaded:
		if msg.Err == nil {
			m.templates = msg.Templates
		}
		return m, nil

	case ui.ModelsDetected:
		m.busy.End(msg.ProviderID)
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.detected[msg.ProviderID] = msg.Models
		return m, nil

	case ui.OpDone:
		m.busy.End(msg.ID)
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		switch msg.Kind {
		case "provider":
			return m, m.deps.Providers()
		case "rubric":
			return m, m.deps.Rubrics()
		}
		return m, nil

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
	switch msg.String() {
	case "tab", "l":
		m.pane = (m.pane + 1) % paneCount
	case "shift+tab", "h":
		m.pane = (m.pane + paneCount - 1) % paneCount
	case "j", "down":
		if m.cursor[m.pane] < m.paneLen()-1 {
			m.cursor[m.pane]++
		}
	case "k", "up":
		if m.cursor[m.pane] > 0 {
			m.cursor[m.pane]--
		}
	case "r":
		m.loading = true
		return m, tea.Batch(m.deps.Providers(), m.deps.Rubrics(), m.deps.Templates())
	case "d":
		// Probe the selected provider's endpoint for available models.
		// This is one of the two calls that carry a deadline.
		if m.pane == paneProviders {
			if p, ok := m.selectedProvider(); ok && !m.busy.Busy(p.ID) {
				m.busy.Begin(p.ID)
				return m, m.deps.Detect(p.ID)
			}
		}
	case "enter", " ":
		switch m.pane {
		case paneProviders:
			if p, ok := m.selectedProvider(); ok && !m.busy.Busy(p.ID) {
				toggled := *p
				toggled.Enabled = !toggled.Enabled
				m.busy.Begin(p.ID)
				return m, m.deps.ToggleProvider(toggled)
			}
		case paneRubrics:
			if r, ok := m.selectedRubric(); ok && !r.Active && !m.busy.Busy(r.ID) {
				activated := *r
				activated.Active = true
				m.busy.Begin(r.ID)
				return m, m.deps.ActivateRubric(activated)
			}
		}
	}
	return m, nil
}

func (m Model) selectedProvider() (*api.LLMProvider, bool) {
	i := m.cursor[paneProviders]
	if i < 0 || i >= len(m.providers) {
		return nil, false
	}
	return &m.providers[i], true
}

func (m Model) selectedRubric() (*api.Rubric, bool) {
	i := m.cursor[paneRubrics]
	if i < 0 || i >= len(m.rubrics) {
		return nil, false
	}
	return &m.rubrics[i], true
}

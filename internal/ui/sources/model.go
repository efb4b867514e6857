// Package sources is the crawl-source management view: a sortable list
// with health enrichment, trigger/pause/delete actions and a feed preview.
package sources

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ops"
	"github.com/HAF-A57/LoreGuard-sub000/internal/preview"
	"github.com/HAF-A57/LoreGuard-sub000/internal/sortby"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

// Deps are the command factories the view fires. Each returns a tea.Cmd
// that settles as a ui message.
type Deps struct {
	Load    func() tea.Cmd
	Trigger func(id string) tea.Cmd
	Update  func(id string, upd api.SourceUpdate) tea.Cmd
	Delete  func(id string) tea.Cmd
	Create  func(ns api.NewSource) tea.Cmd
	Preview func(url string) tea.Cmd
}

type viewState int

const (
	stateList viewState = iota
	stateForm
	statePreview
	stateDetail
)

// sortCycle is the order the "o" key walks through.
var sortCycle = []sortby.Field{
	sortby.Alphabetical,
	sortby.LastRun,
	sortby.CreatedDate,
	sortby.Artifacts,
	sortby.Health,
	sortby.Status,
	sortby.Type,
}

// formFields indexes the add/edit inputs.
const (
	fieldName = iota
	fieldType
	fieldURL
	fieldSchedule
	fieldCount
)

// Model is the sources view model.
type Model struct {
	deps Deps

	state     viewState
	sortField sortby.Field
	sortOrder sortby.Order

	showDeleted bool

	all    []api.SourceSummary // as received, unsorted
	sorted []api.SourceSummary // what the list renders
	health map[string]api.SourceHealth
	cursor int

	busy    *ops.Set
	loading bool
	err     error

	// add/edit form; editID is empty for a new source
	inputs    [fieldCount]textinput.Model
	formFocus int
	editID    string

	previewURL string
	previewRes *preview.Result
	previewErr error

	detail *api.SourceSummary

	spinner spinner.Model
	width   int
	height  int
}

func New(deps Deps, showDeleted bool) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Muted

	var inputs [fieldCount]textinput.Model
	labels := [fieldCount]string{"name", "type (rss|scraper|api)", "url", "schedule (cron, empty = manual)"}
	for i := range inputs {
		in := textinput.New()
		in.Placeholder = labels[i]
		in.CharLimit = 256
		inputs[i] = in
	}

	return Model{
		deps:        deps,
		sortField:   sortby.Alphabetical,
		sortOrder:   sortby.Asc,
		showDeleted: showDeleted,
		health:      map[string]api.SourceHealth{},
		busy:        ops.NewSet(),
		loading:     true,
		inputs:      inputs,
		spinner:     sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.deps.Load(), m.spinner.Tick)
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Capturing reports whether the add/edit form owns the keyboard.
func (m Model) Capturing() bool {
	return m.state == stateForm
}

// resort rebuilds the rendered slice from the raw list, the deleted
// toggle and the current sort. Zero-dated sources stay at the bottom
// in both directions.
func (m *Model) resort() {
	visible := m.all
	if !m.showDeleted {
		visible = visible[:0:0]
		for _, s := range m.all {
			if !s.Deleted {
				visible = append(visible, s)
			}
		}
	}
	m.sorted = sortby.Sources(visible, m.sortField, m.sortOrder)
	if m.cursor >= len(m.sorted) {
		m.cursor = len(m.sorted) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.SourcesLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.all = msg.Sources
		if msg.Health != nil {
			m.health = msg.Health
		}
		m.resort()
		return m, nil

	case ui.OpDone:
		m.busy.End(msg.ID)
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		return m, m.deps.Load()

	case ui.PreviewLoaded:
		if msg.URL != m.previewURL {
			return m, nil // superseded preview request
		}
		m.previewErr = msg.Err
		if msg.Err == nil {
			res := msg.Result
			m.previewRes = &res
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
	switch m.state {
	case stateForm:
		return m.handleFormKey(msg)
	case statePreview:
		switch msg.String() {
		case "esc", "q", "enter", "v":
			m.state = stateList
			m.previewRes = nil
			m.previewErr = nil
		}
		return m, nil
	case stateDetail:
		switch msg.String() {
		case "esc", "q", "enter":
			m.state = stateList
			m.detail = nil
		}
		return m, nil
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.sorted)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.sorted) > 0 {
			m.cursor = len(m.sorted) - 1
		}
	case "o":
		m.sortField = nextSortField(m.sortField)
		m.resort()
	case "O":
		if m.sortOrder == sortby.Asc {
			m.sortOrder = sortby.Desc
		} else {
			m.sortOrder = sortby.Asc
		}
		m.resort()
	case "D":
		m.showDeleted = !m.showDeleted
		m.resort()
	case "r":
		m.loading = true
		return m, m.deps.Load()
	case "t":
		if s, ok := m.selected(); ok && !m.busy.Busy(s.ID) {
			m.busy.Begin(s.ID)
			return m, m.deps.Trigger(s.ID)
		}
	case "p":
		if s, ok := m.selected(); ok && !m.busy.Busy(s.ID) {
			status := "paused"
			if s.Status == "paused" {
				status = "active"
			}
			m.busy.Begin(s.ID)
			return m, m.deps.Update(s.ID, api.SourceUpdate{Status: &status})
		}
	case "x":
		if s, ok := m.selected(); ok && !m.busy.Busy(s.ID) {
			m.busy.Begin(s.ID)
			return m, m.deps.Delete(s.ID)
		}
	case "v":
		if s, ok := m.selected(); ok && s.URL != "" {
			m.state = statePreview
			m.previewURL = s.URL
			m.previewRes = nil
			m.previewErr = nil
			return m, m.deps.Preview(s.URL)
		}
	case "a":
		m.editID = ""
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		return m.openForm()
	case "e":
		if s, ok := m.selected(); ok {
			m.editID = s.ID
			m.inputs[fieldName].SetValue(s.Name)
			m.inputs[fieldType].SetValue(s.Type)
			m.inputs[fieldURL].SetValue(s.URL)
			m.inputs[fieldSchedule].SetValue(s.Schedule)
			return m.openForm()
		}
	case "enter":
		if s, ok := m.selected(); ok {
			sel := *s
			m.detail = &sel
			m.state = stateDetail
		}
	}
	return m, nil
}

func (m Model) openForm() (Model, tea.Cmd) {
	m.state = stateForm
	m.formFocus = fieldName
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	cmd := m.inputs[fieldName].Focus()
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateList
		return m, nil
	case "tab", "down":
		return m.focusField((m.formFocus + 1) % fieldCount)
	case "shift+tab", "up":
		return m.focusField((m.formFocus + fieldCount - 1) % fieldCount)
	case "enter":
		if m.formFocus < fieldCount-1 {
			return m.focusField(m.formFocus + 1)
		}
		return m.submitForm()
	}
	var cmd tea.Cmd
	m.inputs[m.formFocus], cmd = m.inputs[m.formFocus].Update(msg)
	return m, cmd
}

func (m Model) focusField(i int) (Model, tea.Cmd) {
	m.inputs[m.formFocus].Blur()
	m.formFocus = i
	cmd := m.inputs[i].Focus()
	return m, cmd
}

func (m Model) submitForm() (Model, tea.Cmd) {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	typ := strings.TrimSpace(m.inputs[fieldType].Value())
	url := strings.TrimSpace(m.inputs[fieldURL].Value())
	sched := strings.TrimSpace(m.inputs[fieldSchedule].Value())

	if m.editID != "" {
		upd := api.SourceUpdate{Name: &name, URL: &url, Schedule: &sched}
		m.busy.Begin(m.editID)
		m.state = stateList
		return m, m.deps.Update(m.editID, upd)
	}

	if name == "" || url == "" {
		return m, nil // nothing to create yet
	}
	if typ == "" {
		typ = "rss"
	}
	m.state = stateList
	m.loading = true
	return m, m.deps.Create(api.NewSource{Name: name, Type: typ, URL: url, Schedule: sched})
}

func (m Model) selected() (*api.SourceSummary, bool) {
	if m.cursor < 0 || m.cursor >= len(m.sorted) {
		return nil, false
	}
	return &m.sorted[m.cursor], true
}

func nextSortField(f sortby.Field) sortby.Field {
	for i, c := range sortCycle {
		if c == f {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

// Package artifacts is the filtered artifact listing view: paged list,
// filter panel, detail overlay, evaluate/delete actions.
package artifacts

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ops"
	"github.com/HAF-A57/LoreGuard-sub000/internal/query"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

// View states
type viewState int

const (
	stateList viewState = iota
	stateSearch
	stateFilter
	stateFilterEdit
	stateDetail
)

// Deps are the command factories the view calls into. Injected so the view
// never touches the client directly.
type Deps struct {
	Load     func(f query.Filter, search string) tea.Cmd
	Evaluate func(id string) tea.Cmd
	Delete   func(id string) tea.Cmd
	Content  func(id string) tea.Cmd
	History  func(id string) tea.Cmd
	Pin      func(a api.Artifact) tea.Cmd
}

// filterField is one editable row of the filter panel.
type filterField struct {
	key   string
	label string
	// percent marks confidence fields: edited as 0-100, stored as 0-1.
	percent bool
}

// filterFields is the panel layout, top to bottom.
var filterFields = []filterField{
	{key: query.KeyLabel, label: "Label (Signal/Review/Noise/not_evaluated)"},
	{key: query.KeySourceID, label: "Source ID"},
	{key: query.KeyMimeType, label: "Document type"},
	{key: query.KeyCreatedAfter, label: "Created after (YYYY-MM-DD)"},
	{key: query.KeyCreatedBefore, label: "Created before (YYYY-MM-DD)"},
	{key: query.KeyPubDateAfter, label: "Published after (YYYY-MM-DD)"},
	{key: query.KeyPubDateBefore, label: "Published before (YYYY-MM-DD)"},
	{key: query.KeyOrganization, label: "Organization"},
	{key: query.KeyLanguage, label: "Language"},
	{key: query.KeyTopic, label: "Topic"},
	{key: query.KeyGeoLocation, label: "Geo location"},
	{key: query.KeyAuthor, label: "Author"},
	{key: query.KeyMinConfidence, label: "Min confidence (0-100)", percent: true},
	{key: query.KeyMaxConfidence, label: "Max confidence (0-100)", percent: true},
	{key: query.KeyHasNormalized, label: "Has normalized content (true/false)"},
	{key: query.KeySortBy, label: "Sort by (created_at/title/confidence/pub_date)"},
	{key: query.KeySortOrder, label: "Sort order (asc/desc)"},
}

// Model is the artifacts view.
type Model struct {
	deps Deps

	filter query.Filter
	pager  query.Pager
	search string

	items   []api.Artifact
	cursor  int
	busy    *ops.Set
	loading bool
	err     error

	state       viewState
	searchInput textinput.Model
	fieldInput  textinput.Model
	fieldCursor int

	// Detail overlay
	detail     *api.Artifact
	content    viewport.Model
	history    []api.Evaluation
	contentErr error

	spinner       spinner.Model
	width, height int
}

// New creates the artifacts view.
func New(deps Deps, pageSize int) Model {
	si := textinput.New()
	si.Placeholder = "search artifacts..."
	si.CharLimit = 120

	fi := textinput.New()
	fi.CharLimit = 80

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.ColorAccentBlue)

	f := query.Default()
	if pageSize > 0 {
		f.Limit = pageSize
	}

	return Model{
		deps:        deps,
		filter:      f,
		pager:       query.NewPager(f.Limit),
		busy:        ops.NewSet(),
		searchInput: si,
		fieldInput:  fi,
		spinner:     sp,
	}
}

// Init triggers the first load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.spinner.Tick)
}

// load issues a fetch for the current filter, search and page. The filter's
// skip is derived from the pager right before the request.
func (m *Model) load() tea.Cmd {
	m.loading = true
	f := m.filter
	f.Skip = m.pager.Offset()
	return m.deps.Load(f, m.search)
}

// applyFilterChange records a filter mutation: page resets to 1 and a fresh
// load is issued.
func (m *Model) applyFilterChange(f query.Filter) tea.Cmd {
	m.filter = f
	m.pager = m.pager.Reset()
	return m.load()
}

// SetSize updates the layout.
func (m *Model) SetSize(w, h int) {
	m.width, m.height = w, h
	m.content.Width = w - 8
	m.content.Height = h - 10
}

// Capturing reports whether a text input owns the keyboard, so global
// shortcuts must stay out of the way.
func (m Model) Capturing() bool {
	return m.state == stateSearch || m.state == stateFilterEdit
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.ArtifactsLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.items = msg.Page.Items
		m.pager = m.pager.WithTotal(msg.Page.Total)
		if m.cursor >= len(m.items) && len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
		return m, nil

	case ui.OpDone:
		// Release the busy flag on success AND failure: a stuck spinner is
		// worse than a failed request.
		m.busy.End(msg.ID)
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		// State after a mutation comes from refetch, never prediction.
		cmd := m.load()
		return m, cmd

	case ui.ContentLoaded:
		if m.detail != nil && msg.ID == m.detail.ID {
			if msg.Err != nil {
				m.contentErr = msg.Err
			} else {
				m.contentErr = nil
				m.content.SetContent(msg.Content)
			}
		}
		return m, nil

	case ui.EvalHistoryLoaded:
		if m.detail != nil && msg.ID == m.detail.ID && msg.Err == nil {
			m.history = msg.Evals
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
	case stateSearch:
		return m.handleSearchKey(msg)
	case stateFilter:
		return m.handleFilterKey(msg)
	case stateFilterEdit:
		return m.handleFilterEditKey(msg)
	case stateDetail:
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		if len(m.items) > 0 {
			m.cursor = len(m.items) - 1
		}
	case "n", "right":
		if m.pager.Page < m.pager.TotalPages() {
			m.pager = m.pager.Next()
			cmd := m.load()
			return m, cmd
		}
	case "p", "left":
		if m.pager.Page > 1 {
			m.pager = m.pager.Prev()
			cmd := m.load()
			return m, cmd
		}
	case "/":
		m.state = stateSearch
		m.searchInput.SetValue(m.search)
		m.searchInput.Focus()
	case "f":
		m.state = stateFilter
	case "r":
		cmd := m.load()
		return m, cmd
	case "R":
		// Reset everything: filter, search, page
		m.search = ""
		cmd := m.applyFilterChange(query.Default())
		return m, cmd
	case "e":
		if a, ok := m.selected(); ok && !m.busy.Busy(a.ID) {
			m.busy.Begin(a.ID)
			return m, m.deps.Evaluate(a.ID)
		}
	case "x":
		if a, ok := m.selected(); ok && !m.busy.Busy(a.ID) {
			m.busy.Begin(a.ID)
			return m, m.deps.Delete(a.ID)
		}
	case "s":
		if a, ok := m.selected(); ok && m.deps.Pin != nil {
			return m, m.deps.Pin(*a)
		}
	case "enter":
		if a, ok := m.selected(); ok {
			art := *a
			m.detail = &art
			m.state = stateDetail
			m.history = nil
			m.contentErr = nil
			m.content.SetContent("loading...")
			return m, tea.Batch(m.deps.Content(a.ID), m.deps.History(a.ID))
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = stateList
		m.searchInput.Blur()
		term := strings.TrimSpace(m.searchInput.Value())
		if term != m.search {
			m.search = term
			m.pager = m.pager.Reset()
			cmd := m.load()
			return m, cmd
		}
		return m, nil
	case "esc":
		m.state = stateList
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "f", "q":
		m.state = stateList
	case "j", "down":
		if m.fieldCursor < len(filterFields)-1 {
			m.fieldCursor++
		}
	case "k", "up":
		if m.fieldCursor > 0 {
			m.fieldCursor--
		}
	case "enter":
		m.state = stateFilterEdit
		m.fieldInput.SetValue(m.fieldValue(filterFields[m.fieldCursor]))
		m.fieldInput.Focus()
	case "d", "backspace":
		cmd := m.applyFilterChange(m.filter.Clear(filterFields[m.fieldCursor].key))
		return m, cmd
	case "D":
		cmd := m.applyFilterChange(query.Default())
		return m, cmd
	}
	return m, nil
}

func (m Model) handleFilterEditKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.state = stateFilter
		m.fieldInput.Blur()
		field := filterFields[m.fieldCursor]
		raw := strings.TrimSpace(m.fieldInput.Value())
		if field.percent && raw != "" {
			// UI edits confidence as 0-100; the filter stores 0-1.
			if pct, err := strconv.ParseFloat(raw, 64); err == nil {
				raw = strconv.FormatFloat(pct/100, 'g', -1, 64)
			} else {
				raw = "" // malformed input clears, matching Set's coercion
			}
		}
		cmd := m.applyFilterChange(m.filter.Set(field.key, raw))
		return m, cmd
	case "esc":
		m.state = stateFilter
		m.fieldInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.fieldInput, cmd = m.fieldInput.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.state = stateList
		m.detail = nil
		return m, nil
	}
	var cmd tea.Cmd
	m.content, cmd = m.content.Update(msg)
	return m, cmd
}

func (m Model) selected() (*api.Artifact, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil, false
	}
	return &m.items[m.cursor], true
}

// fieldValue renders the current filter value of a panel row for editing.
func (m Model) fieldValue(f filterField) string {
	v := m.filter.Values("").Get(f.key)
	if f.percent && v != "" {
		if c, err := strconv.ParseFloat(v, 64); err == nil {
			return strconv.FormatFloat(c*100, 'g', -1, 64)
		}
	}
	// Defaults read as empty in the panel
	switch f.key {
	case query.KeySortBy:
		if v == string(query.SortCreatedAt) {
			return ""
		}
	case query.KeySortOrder:
		if v == string(query.Desc) {
			return ""
		}
	}
	return v
}

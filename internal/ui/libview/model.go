// Package libview browses the local pin library: artifacts saved from the
// artifacts view, kept in an on-disk store so they survive backend churn.
package libview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
	"github.com/HAF-A57/LoreGuard-sub000/internal/library"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

type Deps struct {
	Load  func(opts library.ListOptions) tea.Cmd
	Unpin func(id string) tea.Cmd
}

type Model struct {
	deps Deps

	entries []library.Entry
	cursor  int

	searching   bool
	searchInput textinput.Model
	search      string
	label       string // label filter cycled with L; empty = all

	err    error
	width  int
	height int
}

var labelCycle = []string{"", "Signal", "Review", "Noise"}

func New(deps Deps) Model {
	in := textinput.New()
	in.Placeholder = "search pins"
	in.CharLimit = 128
	return Model{deps: deps, searchInput: in}
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	return m.deps.Load(library.ListOptions{Label: m.label, Search: m.search})
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// Capturing reports whether the search input owns the keyboard.
func (m Model) Capturing() bool {
	return m.searching
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.LibraryLoaded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.entries = msg.Entries
		if m.cursor >= len(m.entries) && len(m.entries) > 0 {
			m.cursor = len(m.entries) - 1
		}
		return m, nil

	case ui.OpDone:
		if msg.Kind == "unpin" {
			if msg.Err != nil {
				m.err = msg.Err
				return m, nil
			}
			m.err = nil
			return m, m.load()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "enter":
			m.searching = false
			m.searchInput.Blur()
			m.search = strings.TrimSpace(m.searchInput.Value())
			return m, m.load()
		case "esc":
			m.searching = false
			m.searchInput.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "j", "down":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "/":
		m.searching = true
		m.searchInput.SetValue(m.search)
		cmd := m.searchInput.Focus()
		return m, cmd
	case "L":
		m.label = nextLabel(m.label)
		return m, m.load()
	case "r":
		return m, m.load()
	case "x":
		if m.cursor < len(m.entries) {
			return m, m.deps.Unpin(m.entries[m.cursor].Artifact.ID)
		}
	}
	return m, nil
}

func nextLabel(cur string) string {
	for i, l := range labelCycle {
		if l == cur {
			return labelCycle[(i+1)%len(labelCycle)]
		}
	}
	return ""
}

func (m Model) View() string {
	var b strings.Builder

	title := "Library"
	if m.label != "" {
		title += styles.Muted.Render("  label: " + m.label)
	}
	if m.search != "" {
		title += styles.Muted.Render(fmt.Sprintf("  search: %q", m.search))
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString("  " + m.searchInput.View() + "\n\n")
	}

	if m.err != nil {
		b.WriteString(styles.ErrorPanel.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if len(m.entries) == 0 {
		b.WriteString(styles.Muted.Render("  nothing pinned yet (press s on an artifact)"))
		b.WriteString("\n")
	}

	titleWidth := m.width - 44
	if titleWidth < 20 {
		titleWidth = 20
	}

	for i, e := range m.entries {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.Title.Render("> ")
		}
		a := e.Artifact
		b.WriteString(fmt.Sprintf("%s%s %-*s %s\n",
			cursor,
			styles.LabelStyle(a.Label).Render(fmt.Sprintf("%-13s", a.Label)),
			titleWidth, styles.Truncate(a.Title, titleWidth),
			styles.Muted.Render("pinned "+format.TimeAgo(e.PinnedAt))))
		if e.Note != "" {
			b.WriteString(styles.Dim.Render("       "+styles.Truncate(e.Note, m.width-10)) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  / search · L label · x unpin · r reload"))
	return b.String()
}

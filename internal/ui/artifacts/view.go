package artifacts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

// View renders the artifacts view.
func (m Model) View() string {
	switch m.state {
	case stateFilter, stateFilterEdit:
		return m.viewFilterPanel()
	case stateDetail:
		return m.viewDetail()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	title := "Artifacts"
	if n := m.filter.ActiveCount(); n > 0 {
		title += styles.Muted.Render(fmt.Sprintf("  [%d filters]", n))
	}
	if m.search != "" {
		title += styles.Muted.Render(fmt.Sprintf("  search: %q", m.search))
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	if m.state == stateSearch {
		b.WriteString("  " + m.searchInput.View() + "\n\n")
	}

	if m.err != nil {
		b.WriteString(styles.ErrorPanel.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.loading && len(m.items) == 0 {
		b.WriteString("  " + m.spinner.View() + " loading artifacts...\n")
		return b.String()
	}

	if len(m.items) == 0 {
		b.WriteString(styles.Muted.Render("  no artifacts match the current filter"))
		b.WriteString("\n")
	}

	titleWidth := m.width - 46
	if titleWidth < 20 {
		titleWidth = 20
	}

	for i, a := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.StatusKey.Render("> ")
		}

		label := styles.LabelStyle(a.Label).Render(fmt.Sprintf("%-13s", a.Label))
		conf := "    "
		if a.Label != "not_evaluated" {
			conf = fmt.Sprintf("%3.0f%%", a.Confidence*100)
		}
		busy := " "
		if m.busy.Busy(a.ID) {
			busy = m.spinner.View()
		}

		line := fmt.Sprintf("%s%s %s %s  %s %s",
			cursor, busy, label, conf,
			styles.Truncate(a.Title, titleWidth),
			styles.Dim.Render(format.TimeAgo(a.CreatedAt)))
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render(fmt.Sprintf("  page %d/%d · %d total",
		m.pager.Page, m.pager.TotalPages(), m.pager.Total)))
	if m.loading {
		b.WriteString("  " + m.spinner.View())
	}
	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("  enter detail · / search · f filter · e evaluate · x delete · s save · n/p page"))
	return b.String()
}

func (m Model) viewFilterPanel() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Filter artifacts"))
	b.WriteString("\n\n")

	for i, f := range filterFields {
		cursor := "  "
		if i == m.fieldCursor {
			cursor = styles.StatusKey.Render("> ")
		}

		val := m.fieldValue(f)
		shown := styles.Dim.Render("(any)")
		if val != "" {
			shown = styles.LabelStyle("Signal").Render(val)
		}

		if m.state == stateFilterEdit && i == m.fieldCursor {
			b.WriteString(fmt.Sprintf("%s%-44s %s\n", cursor, f.label, m.fieldInput.View()))
		} else {
			b.WriteString(fmt.Sprintf("%s%-44s %s\n", cursor, f.label, shown))
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("  enter edit · d clear field · D clear all · esc back"))
	return b.String()
}

func (m Model) viewDetail() string {
	if m.detail == nil {
		return ""
	}
	a := m.detail

	var b strings.Builder
	b.WriteString(styles.Title.Render(a.Title))
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %s · %s",
		styles.LabelStyle(a.Label).Render(a.Label),
		a.SourceName,
		format.TimeAgo(a.CreatedAt))
	if a.Label != "not_evaluated" {
		meta += fmt.Sprintf(" · confidence %.0f%%", a.Confidence*100)
	}
	b.WriteString(meta + "\n")

	if a.URL != "" {
		b.WriteString(styles.Muted.Render(a.URL) + "\n")
	}
	b.WriteString("\n")

	if m.contentErr != nil {
		b.WriteString(styles.ErrorPanel.Render(m.contentErr.Error()) + "\n")
	} else {
		b.WriteString(styles.Card.Render(m.content.View()) + "\n")
	}

	if len(m.history) > 0 {
		b.WriteString("\n" + styles.Title.Render("Evaluations") + "\n")
		for _, ev := range m.history {
			b.WriteString(fmt.Sprintf("  %s %3.0f%%  %s  %s\n",
				styles.LabelStyle(ev.Label).Render(fmt.Sprintf("%-13s", ev.Label)),
				ev.Confidence*100,
				styles.Muted.Render(ev.Model),
				styles.Truncate(ev.Rationale, m.width-30)))
		}
	}

	b.WriteString("\n" + styles.Dim.Render("  esc back · j/k scroll"))
	return lipgloss.NewStyle().Padding(0, 1).Render(b.String())
}

package settings

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

var paneNames = [paneCount]string{"Providers", "Rubrics", "Templates"}

func (m Model) View() string {
	var b strings.Builder

	var tabs []string
	for i, name := range paneNames {
		if pane(i) == m.pane {
			tabs = append(tabs, styles.Title.Render(name))
		} else {
			tabs = append(tabs, styles.Muted.Render(name))
		}
	}
	b.WriteString(strings.Join(tabs, styles.Dim.Render(" · ")))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.ErrorPanel.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.loading && len(m.providers) == 0 {
		b.WriteString("  " + m.spinner.View() + " loading settings...\n")
		return b.String()
	}

	switch m.pane {
	case paneProviders:
		b.WriteString(m.viewProviders())
	case paneRubrics:
		b.WriteString(m.viewRubrics())
	default:
		b.WriteString(m.viewTemplates())
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  tab pane · enter toggle/activate · d detect models · r reload"))
	return b.String()
}

func (m Model) viewProviders() string {
	var b strings.Builder
	if len(m.providers) == 0 {
		b.WriteString(styles.Muted.Render("  no providers configured") + "\n")
	}
	for i, p := range m.providers {
		cursor := "  "
		if i == m.cursor[paneProviders] && m.pane == paneProviders {
			cursor = styles.Title.Render("> ")
		}
		marker := " "
		if m.busy.Busy(p.ID) {
			marker = m.spinner.View()
		}
		state := styles.Dim.Render("off")
		if p.Enabled {
			state = lipgloss.NewStyle().Foreground(styles.ColorSignal).Render("on ")
		}
		b.WriteString(fmt.Sprintf("%s%s %s %-20s %-10s %s %s\n",
			cursor, marker, state,
			styles.Truncate(p.Name, 20),
			p.Kind,
			styles.Truncate(p.Model, 24),
			styles.Muted.Render(p.Endpoint)))

		if models, ok := m.detected[p.ID]; ok && i == m.cursor[paneProviders] {
			for _, mi := range models {
				b.WriteString(styles.Dim.Render(fmt.Sprintf("        %s (%dk ctx)\n",
					mi.Name, mi.ContextLen/1000)))
			}
		}
	}
	return b.String()
}

func (m Model) viewRubrics() string {
	var b strings.Builder
	if len(m.rubrics) == 0 {
		b.WriteString(styles.Muted.Render("  no rubrics defined") + "\n")
	}
	for i, r := range m.rubrics {
		cursor := "  "
		if i == m.cursor[paneRubrics] && m.pane == paneRubrics {
			cursor = styles.Title.Render("> ")
		}
		active := styles.Dim.Render("      ")
		if r.Active {
			active = lipgloss.NewStyle().Foreground(styles.ColorSignal).Render("active")
		}
		b.WriteString(fmt.Sprintf("%s%s %-24s v%-3d %2d criteria  %s\n",
			cursor, active,
			styles.Truncate(r.Name, 24),
			r.Version,
			len(r.Criteria),
			styles.Muted.Render(format.TimeAgo(r.CreatedAt))))

		if i == m.cursor[paneRubrics] && m.pane == paneRubrics {
			for _, c := range r.Criteria {
				b.WriteString(styles.Dim.Render(fmt.Sprintf("        %-20s weight %.2f\n", c.Name, c.Weight)))
			}
		}
	}
	return b.String()
}

func (m Model) viewTemplates() string {
	var b strings.Builder
	if len(m.templates) == 0 {
		b.WriteString(styles.Muted.Render("  no prompt templates") + "\n")
	}
	for i, t := range m.templates {
		cursor := "  "
		if i == m.cursor[paneTemplates] && m.pane == paneTemplates {
			cursor = styles.Title.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%-24s %-12s %s\n",
			cursor,
			styles.Truncate(t.Name, 24),
			t.Purpose,
			styles.Muted.Render(styles.Truncate(t.Template, m.width-46))))
	}
	return b.String()
}

package jobs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Jobs"))
	b.WriteString(styles.Muted.Render(fmt.Sprintf("  %d queued · %d running · %d failed (24h) · %.0f%% error rate",
		m.health.Queued, m.health.Running, m.health.Failed24h, m.health.ErrorRate*100)))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.ErrorPanel.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.loading && len(m.active) == 0 && len(m.recent) == 0 {
		b.WriteString("  " + m.spinner.View() + " loading jobs...\n")
		return b.String()
	}

	idx := 0
	if len(m.active) > 0 {
		b.WriteString(styles.Muted.Render("  Active") + "\n")
		for _, j := range m.active {
			b.WriteString(m.row(j, idx))
			idx++
		}
		b.WriteString("\n")
	}

	b.WriteString(styles.Muted.Render("  Recent") + "\n")
	if len(m.recent) == 0 {
		b.WriteString(styles.Dim.Render("    none") + "\n")
	}
	for _, j := range m.recent {
		b.WriteString(m.row(j, idx))
		idx++
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  c cancel · R retry failed · r reload"))
	return b.String()
}

func (m Model) row(j api.Job, idx int) string {
	cursor := "  "
	if idx == m.cursor {
		cursor = styles.Title.Render("> ")
	}
	marker := " "
	if m.busy.Busy(j.ID) {
		marker = m.spinner.View()
	}

	when := ""
	switch {
	case !j.CompletedAt.IsZero():
		when = format.TimeAgo(j.CompletedAt)
	case !j.StartedAt.IsZero():
		when = "started " + format.TimeAgo(j.StartedAt)
	}

	line := fmt.Sprintf("%s%s %-10s %s %-28s %s",
		cursor, marker,
		j.Type,
		statusStyle(j.Status).Render(fmt.Sprintf("%-9s", j.Status)),
		styles.Truncate(j.SourceID, 28),
		styles.Muted.Render(when))
	if j.Error != "" {
		line += "\n" + styles.Dim.Render("       "+styles.Truncate(j.Error, m.width-10))
	}
	return line + "\n"
}

func statusStyle(status string) lipgloss.Style {
	switch status {
	case "running":
		return lipgloss.NewStyle().Foreground(styles.ColorAccentBlue)
	case "done":
		return lipgloss.NewStyle().Foreground(styles.ColorSignal)
	case "failed":
		return lipgloss.NewStyle().Foreground(styles.ColorError)
	case "cancelled":
		return styles.Dim
	}
	return styles.Muted
}

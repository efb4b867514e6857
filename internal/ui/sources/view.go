package sources

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

func (m Model) View() string {
	switch m.state {
	case stateForm:
		return m.viewForm()
	case statePreview:
		return m.viewPreview()
	case stateDetail:
		return m.viewDetail()
	}
	return m.viewList()
}

func (m Model) viewList() string {
	var b strings.Builder

	title := "Sources"
	title += styles.Muted.Render(fmt.Sprintf("  sort: %s %s", m.sortField, m.sortOrder))
	if m.showDeleted {
		title += styles.Muted.Render("  [deleted shown]")
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.ErrorPanel.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.loading && len(m.sorted) == 0 {
		b.WriteString("  " + m.spinner.View() + " loading sources...\n")
		return b.String()
	}

	if len(m.sorted) == 0 {
		b.WriteString(styles.Muted.Render("  no sources configured"))
		b.WriteString("\n")
	}

	nameWidth := m.width - 58
	if nameWidth < 16 {
		nameWidth = 16
	}

	for i, s := range m.sorted {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.Title.Render("> ")
		}
		marker := " "
		if m.busy.Busy(s.ID) {
			marker = m.spinner.View()
		}

		name := styles.Truncate(s.Name, nameWidth)
		if s.Deleted {
			name = styles.Dim.Render(name + " (deleted)")
		}

		health := format.HealthLabel(s.Health)
		healthCell := healthStyle(health).Render(fmt.Sprintf("%-8s", health))

		lastRun := "never"
		if !s.LastRun.IsZero() {
			lastRun = format.TimeAgo(s.LastRun)
		}

		b.WriteString(fmt.Sprintf("%s%s %-*s  %-8s %-8s %s %5d  %s\n",
			cursor, marker,
			nameWidth, name,
			s.Type,
			format.StatusLabel(s.Status),
			healthCell,
			s.ArtifactCount,
			styles.Muted.Render(lastRun)))
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  o sort · O order · t trigger · p pause · v preview · a add · e edit · x delete · D deleted · enter detail"))
	return b.String()
}

func (m Model) viewForm() string {
	var b strings.Builder
	if m.editID != "" {
		b.WriteString(styles.Title.Render("Edit source"))
	} else {
		b.WriteString(styles.Title.Render("Add source"))
	}
	b.WriteString("\n\n")

	labels := [fieldCount]string{"Name", "Type", "URL", "Schedule"}
	for i := range m.inputs {
		cursor := "  "
		if i == m.formFocus {
			cursor = styles.Title.Render("> ")
		}
		b.WriteString(fmt.Sprintf("%s%-10s %s\n", cursor, labels[i], m.inputs[i].View()))
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  tab next · enter submit · esc cancel"))
	return b.String()
}

func (m Model) viewPreview() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Feed preview"))
	b.WriteString("  " + styles.Muted.Render(m.previewURL))
	b.WriteString("\n\n")

	switch {
	case m.previewErr != nil:
		b.WriteString(styles.ErrorPanel.Render(m.previewErr.Error()))
		b.WriteString("\n")
	case m.previewRes == nil:
		b.WriteString("  " + m.spinner.View() + " fetching feed...\n")
	default:
		b.WriteString("  " + m.previewRes.Title + "\n")
		if m.previewRes.Description != "" {
			b.WriteString("  " + styles.Muted.Render(styles.Truncate(m.previewRes.Description, m.width-4)) + "\n")
		}
		b.WriteString("\n")
		for _, it := range m.previewRes.Items {
			when := ""
			if !it.Published.IsZero() {
				when = styles.Muted.Render("  " + format.TimeAgo(it.Published))
			}
			b.WriteString("  · " + styles.Truncate(it.Title, m.width-20) + when + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  esc close"))
	return b.String()
}

func (m Model) viewDetail() string {
	s := m.detail
	if s == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(s.Name))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Type", s.Type},
		{"Status", format.StatusLabel(s.Status)},
		{"URL", s.URL},
		{"Schedule", format.Schedule(s.Schedule)},
		{"Artifacts", fmt.Sprintf("%d", s.ArtifactCount)},
		{"Health", fmt.Sprintf("%s (%.0f%%)", format.HealthLabel(s.Health), s.Health*100)},
	}
	if s.LastRun.IsZero() {
		rows = append(rows, [2]string{"Last run", "never"})
	} else {
		rows = append(rows, [2]string{"Last run", format.TimeAgo(s.LastRun)})
	}
	rows = append(rows, [2]string{"Created", format.TimeAgo(s.CreatedAt)})

	if h, ok := m.health[s.ID]; ok {
		rows = append(rows, [2]string{"Consecutive OK", fmt.Sprintf("%d", h.ConsecutiveOK)})
		if !h.NextRun.IsZero() {
			rows = append(rows, [2]string{"Next run", h.NextRun.Format("2006-01-02 15:04")})
		}
		if h.LastError != "" {
			rows = append(rows, [2]string{"Last error", h.LastError})
		}
	}

	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s %s\n", styles.Muted.Render(fmt.Sprintf("%-15s", r[0])), r[1]))
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  esc back"))
	return b.String()
}

func healthStyle(label string) lipgloss.Style {
	switch label {
	case "Healthy":
		return lipgloss.NewStyle().Foreground(styles.ColorSignal)
	case "Degraded":
		return lipgloss.NewStyle().Foreground(styles.ColorReview)
	case "Failing":
		return lipgloss.NewStyle().Foreground(styles.ColorError)
	}
	return styles.Muted
}

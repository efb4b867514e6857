package chat

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

var (
	userTag      = lipgloss.NewStyle().Foreground(styles.ColorAccentBlue).Bold(true)
	assistantTag = lipgloss.NewStyle().Foreground(styles.ColorSignal).Bold(true)
	toolBadge    = lipgloss.NewStyle().
			Foreground(styles.ColorReview).
			Background(styles.ColorSurface).
			Padding(0, 1)
	toolBadgeErr = lipgloss.NewStyle().
			Foreground(styles.ColorError).
			Background(styles.ColorSurface).
			Padding(0, 1)
)

func (m Model) View() string {
	if m.state == stateSessions {
		return m.viewSessions()
	}

	var b strings.Builder
	title := "Assistant"
	if m.sessionID != "" {
		title += styles.Muted.Render("  session " + styles.Truncate(m.sessionID, 12))
	}
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.ErrorPanel.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(m.transcript.View())
	b.WriteString("\n")

	if m.waiting {
		b.WriteString("  " + m.spinner.View() + styles.Muted.Render(" thinking...") + "\n")
	}

	b.WriteString(m.composer.View())
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  ctrl+s send · ctrl+n new · ctrl+o sessions · pgup/pgdn scroll"))
	return b.String()
}

func (m Model) viewSessions() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Sessions"))
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		b.WriteString(styles.Muted.Render("  no stored conversations"))
		b.WriteString("\n")
	}
	for i, s := range m.sessions {
		cursor := "  "
		if i == m.sessionCursor {
			cursor = styles.Title.Render("> ")
		}
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		b.WriteString(fmt.Sprintf("%s%-50s %s\n",
			cursor,
			styles.Truncate(title, 50),
			styles.Muted.Render(format.TimeAgo(s.CreatedAt))))
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("  enter open · x delete · esc back"))
	return b.String()
}

// refreshTranscript re-renders every message into the viewport buffer.
func (m *Model) refreshTranscript() {
	width := m.transcript.Width
	if width < 20 {
		width = 20
	}

	var b strings.Builder
	for _, msg := range m.messages {
		b.WriteString(renderMessage(msg, width))
		b.WriteString("\n")
	}
	m.transcript.SetContent(b.String())
}

func renderMessage(msg api.ChatMessage, width int) string {
	var b strings.Builder

	tag := userTag.Render("you")
	if msg.Role == "assistant" {
		tag = assistantTag.Render("assistant")
	}
	b.WriteString(tag)
	if !msg.CreatedAt.IsZero() {
		b.WriteString("  " + styles.Muted.Render(format.TimeAgo(msg.CreatedAt)))
	}
	b.WriteString("\n")

	for _, tc := range msg.ToolCalls {
		badge := toolBadge
		if tc.Status == "error" {
			badge = toolBadgeErr
		}
		b.WriteString(badge.Render("⚙ "+tc.Name) + " ")
	}
	if len(msg.ToolCalls) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(wrap(msg.Content, width))
	b.WriteString("\n")
	return b.String()
}

// wrap is a simple word wrapper; lipgloss handles styling but not reflow
// of plain transcript text.
func wrap(s string, width int) string {
	var b strings.Builder
	for _, line := range strings.Split(s, "\n") {
		for len(line) > width {
			cut := width
			if idx := strings.LastIndex(line[:width+1], " "); idx > 0 {
				cut = idx
			}
			b.WriteString(line[:cut] + "\n")
			line = strings.TrimLeft(line[cut:], " ")
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

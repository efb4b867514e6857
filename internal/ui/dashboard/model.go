// Package dashboard is the landing view: headline counts, label
// distribution, job queue health and the recent-evaluations feed.
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/HAF-A57/LoreGuard-sub000/internal/api"
	"github.com/HAF-A57/LoreGuard-sub000/internal/format"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui"
	"github.com/HAF-A57/LoreGuard-sub000/internal/ui/styles"
)

type Deps struct {
	Stats       func() tea.Cmd
	Evaluations func() tea.Cmd
}

type Model struct {
	deps Deps

	stats    api.DashboardStats
	haveStat bool
	health   api.JobsHealth
	evals    []api.Evaluation

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
	return Model{deps: deps, loading: true, spinner: sp}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.deps.Stats(), m.deps.Evaluations(), m.spinner.Tick)
}

func (m *Model) SetSize(w, h int) {
	m.width = w
	m.height = h
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ui.StatsLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.stats = msg.Stats
		m.haveStat = true
		return m, nil

	case ui.EvaluationsLoaded:
		if msg.Err == nil {
			m.evals = msg.Evals
		}
		return m, nil

	case ui.JobsPulse:
		if msg.Err == nil {
			m.health = msg.Health
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.String() == "r" {
			m.loading = true
			return m, tea.Batch(m.deps.Stats(), m.deps.Evaluations())
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Dashboard"))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(styles.ErrorPanel.Render(m.err.Error()))
		b.WriteString("\n\n")
	}

	if m.loading && !m.haveStat {
		b.WriteString("  " + m.spinner.View() + " loading overview...\n")
		return b.String()
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		m.card("Artifacts", fmt.Sprintf("%d", m.stats.TotalArtifacts)),
		m.card("Active sources", fmt.Sprintf("%d", m.stats.ActiveSources)),
		m.card("Ingested 24h", fmt.Sprintf("%d", m.stats.Ingested24h)),
		m.card("Evaluated 24h", fmt.Sprintf("%d", m.stats.Evaluated24h)),
	)
	b.WriteString(cards)
	b.WriteString("\n\n")

	b.WriteString(m.labelBar())
	b.WriteString("\n")

	b.WriteString(styles.Muted.Render(fmt.Sprintf("  jobs: %d queued · %d running · %d failed (24h)",
		m.health.Queued, m.health.Running, m.health.Failed24h)))
	b.WriteString("\n\n")

	b.WriteString(styles.Muted.Render("  Recent evaluations") + "\n")
	if len(m.evals) == 0 {
		b.WriteString(styles.Dim.Render("    none yet") + "\n")
	}
	limit := len(m.evals)
	if limit > 8 {
		limit = 8
	}
	for _, e := range m.evals[:limit] {
		b.WriteString(fmt.Sprintf("  %s %3.0f%%  %s  %s\n",
			styles.LabelStyle(e.Label).Render(fmt.Sprintf("%-13s", e.Label)),
			e.Confidence*100,
			styles.Truncate(e.ArtifactID, 28),
			styles.Muted.Render(format.TimeAgo(e.CreatedAt))))
	}

	return b.String()
}

func (m Model) card(title, value string) string {
	inner := styles.Muted.Render(title) + "\n" + styles.Title.Render(value)
	return styles.Card.Render(inner)
}

// labelBar renders the Signal/Review/Noise/not_evaluated distribution as a
// proportional bar with a legend.
func (m Model) labelBar() string {
	order := []string{"Signal", "Review", "Noise", "not_evaluated"}
	total := 0
	for _, k := range order {
		total += m.stats.ByLabel[k]
	}
	if total == 0 {
		return styles.Dim.Render("  no evaluated artifacts yet") + "\n"
	}

	barWidth := m.width - 6
	if barWidth < 20 {
		barWidth = 20
	}

	var bar, legend strings.Builder
	for _, k := range order {
		n := m.stats.ByLabel[k]
		if n == 0 {
			continue
		}
		cells := n * barWidth / total
		if cells < 1 {
			cells = 1
		}
		bar.WriteString(styles.LabelStyle(k).Render(strings.Repeat("█", cells)))
		legend.WriteString(fmt.Sprintf("  %s %d", styles.LabelStyle(k).Render(k), n))
	}
	return "  " + bar.String() + "\n" + legend.String() + "\n"
}

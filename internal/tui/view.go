package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (m Model) View() string {
	switch m.state {
	case stateLoading:
		return m.loadingView()
	case stateMenu:
		return m.menuView()
	case stateChart:
		return m.chartScreen()
	}
	return ""
}

func (m Model) loadingView() string {
	th := m.chart.Theme()
	frame := spinnerFrames[m.spinner%len(spinnerFrames)]
	line := lipgloss.NewStyle().Foreground(th.Accent).Render(frame) + " loading…"
	return "\n" + m.header() + "\n\n  " + line + "\n"
}

func (m Model) menuView() string {
	th := m.chart.Theme()
	var b strings.Builder
	b.WriteString("\n" + m.header() + "\n\n")

	cursorStyle := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(th.Muted)

	for i, c := range m.countries {
		name := displayName(c)
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("  > "+name) + "\n")
		} else {
			b.WriteString("    " + name + "\n")
		}
	}
	b.WriteString("\n" + m.statusLine() + "\n")
	b.WriteString(mutedStyle.Render("  ↑/↓: move · ENTER: select · ?: help · Q: quit") + "\n")
	return b.String()
}

func (m Model) chartScreen() string {
	th := m.chart.Theme()
	mutedStyle := lipgloss.NewStyle().Foreground(th.Muted)

	var b strings.Builder
	b.WriteString("\n" + m.header() + "\n")
	b.WriteString(m.statusLine() + "\n\n")
	b.WriteString(m.chartView)
	b.WriteString("\n" + m.slider() + "\n")
	if m.showHelp {
		b.WriteString("\n" + m.helpView() + "\n")
	} else {
		b.WriteString("\n" + mutedStyle.Render("  SPACE: play/pause · ←/→: year · [/]: ends · T: theme · C: countries · ?: help · Q: quit") + "\n")
	}
	return b.String()
}

func (m Model) header() string {
	th := m.chart.Theme()
	title := "POPULATION PYRAMIDS"
	if m.country != "" {
		title = strings.ToUpper(displayName(m.country))
	}
	return lipgloss.NewStyle().Foreground(th.Accent).Bold(true).Render("  " + title)
}

func (m Model) statusLine() string {
	th := m.chart.Theme()
	var parts []string

	if m.state == stateChart {
		if m.pl.Playing() {
			parts = append(parts, lipgloss.NewStyle().Foreground(th.Success).Bold(true).Render("PLAYING"))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(th.Warning).Bold(true).Render("PAUSED"))
		}
	}
	if m.status != "" {
		var style lipgloss.Style
		switch m.statusLvl {
		case statusError:
			style = lipgloss.NewStyle().Foreground(th.Error)
		case statusWarn:
			style = lipgloss.NewStyle().Foreground(th.Warning)
		default:
			style = lipgloss.NewStyle().Foreground(th.Muted)
		}
		parts = append(parts, style.Render(m.status))
	}
	return "  " + strings.Join(parts, "  ")
}

// slider renders the year track under the chart, one cell per year.
func (m Model) slider() string {
	th := m.chart.Theme()
	mutedStyle := lipgloss.NewStyle().Foreground(th.Muted)
	if len(m.all) <= 1 {
		return mutedStyle.Render("  single year")
	}

	idx := m.pl.Index()
	var track strings.Builder
	for i := range m.all {
		if i == idx {
			track.WriteString(lipgloss.NewStyle().Foreground(th.Accent).Render("●"))
		} else {
			track.WriteString(mutedStyle.Render("─"))
		}
	}
	label := fmt.Sprintf("  %d  (%d/%d)", m.all[idx].Year, idx+1, len(m.all))
	return "  " + track.String() + mutedStyle.Render(label)
}

func (m Model) helpView() string {
	th := m.chart.Theme()
	keyStyle := lipgloss.NewStyle().Foreground(th.Accent).Bold(true)
	rows := [][2]string{
		{"SPACE", "play / pause the animation"},
		{"← / h", "previous year"},
		{"→ / l", "next year"},
		{"[ / ]", "first / last year"},
		{"T", "cycle color theme"},
		{"C", "back to the country list"},
		{"?", "toggle this help"},
		{"Q", "quit"},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-7s", r[0])), r[1]))
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(th.Muted).
		Padding(0, 1)
	return box.Render(strings.TrimRight(b.String(), "\n"))
}

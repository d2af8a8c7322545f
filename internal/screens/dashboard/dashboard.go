// Package dashboard is the home screen for a returning user: their
// cognitive profile, engagement stats, and the menu into the rest of the
// app. Both games are listed weakest area first, with the top entry
// marked as recommended.
package dashboard

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/game"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screen"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/stats"
	"github.com/abhisek/cognitrain/internal/ui/components"
	"github.com/abhisek/cognitrain/internal/ui/layout"
	"github.com/abhisek/cognitrain/internal/ui/theme"
	"github.com/abhisek/cognitrain/internal/view"
)

// DashboardScreen is the returning-user home view.
type DashboardScreen struct {
	name   string
	scores *assessment.ScoreSet
	stats  stats.Snapshot
	menu   components.Menu
}

var _ screen.Screen = (*DashboardScreen)(nil)
var _ screen.KeyHintProvider = (*DashboardScreen)(nil)

func New(name string, scores *assessment.ScoreSet, st stats.Snapshot) *DashboardScreen {
	d := &DashboardScreen{
		name:   name,
		scores: scores,
		stats:  st,
	}

	var items []components.MenuItem
	for i, g := range d.RankedGames() {
		g := g
		label := fmt.Sprintf("Play %s", g.Title())
		if i == 0 {
			label += " (recommended)"
		}
		items = append(items, components.MenuItem{
			Label: label,
			Action: func() tea.Cmd {
				return func() tea.Msg { return flow.GameChosenMsg{Type: g} }
			},
		})
	}
	items = append(items,
		components.MenuItem{
			Label: "Browse games",
			Action: func() tea.Cmd {
				return router.Navigate(view.GameSelection)
			},
		},
		components.MenuItem{
			Label: "Retake assessment",
			Action: func() tea.Cmd {
				return router.Navigate(view.Assessment)
			},
		},
		components.MenuItem{
			Label: "Quit",
			Action: func() tea.Cmd {
				return tea.Quit
			},
		},
	)
	d.menu = components.NewMenu(items)
	return d
}

// RankedGames orders both games by the profile area they train, weakest
// first. Memory Match trains the memory scores, Quick Math the
// processing scores; the first entry is the recommended game. Without
// an assessment Memory Match leads.
func (d *DashboardScreen) RankedGames() []game.Type {
	if d.scores == nil {
		return []game.Type{game.MemoryMatch, game.QuickMath}
	}
	memory := (d.scores.MemoryNumbers + d.scores.MemoryWords) / 2
	processing := (d.scores.Speed + d.scores.WorkingMemory) / 2
	if memory <= processing {
		return []game.Type{game.MemoryMatch, game.QuickMath}
	}
	return []game.Type{game.QuickMath, game.MemoryMatch}
}

func (d *DashboardScreen) Title() string {
	return "Dashboard"
}

func (d *DashboardScreen) Init() tea.Cmd {
	return nil
}

func (d *DashboardScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (d *DashboardScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	d.menu, cmd = d.menu.Update(msg)
	return d, cmd
}

func (d *DashboardScreen) View(width, height int) string {
	var b strings.Builder

	greeting := "Welcome back!"
	if d.name != "" {
		greeting = fmt.Sprintf("Welcome back, %s!", d.name)
	}
	b.WriteString(theme.Title.Width(width).Render(greeting))
	b.WriteString("\n\n")

	if d.scores != nil {
		b.WriteString(d.renderProfile(width))
		b.WriteString("\n")
	}

	b.WriteString(d.renderStats(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, d.menu.View()))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func (d *DashboardScreen) renderProfile(width int) string {
	barWidth := min(width-8, 52)
	bars := []struct {
		label string
		value float64
	}{
		{"Memory (Numbers)", d.scores.MemoryNumbers},
		{"Memory (Words)  ", d.scores.MemoryWords},
		{"Speed           ", d.scores.Speed},
		{"Logic           ", d.scores.Logic},
		{"Working Memory  ", d.scores.WorkingMemory},
	}

	var b strings.Builder
	for _, bar := range bars {
		p := components.NewProgressBar(bar.label, bar.value/100, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.View()))
		b.WriteString("\n")
	}
	return b.String()
}

func (d *DashboardScreen) renderStats(width int) string {
	day := "days"
	if d.stats.CurrentStreak == 1 {
		day = "day"
	}
	line := fmt.Sprintf("🎮 %d games played   ★ %d %s streak", d.stats.GamesPlayed, d.stats.CurrentStreak, day)
	if d.stats.LastPlayed != "" {
		line += fmt.Sprintf("   Last played %s", d.stats.LastPlayed)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Accent).Render(line))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Package loading shows a brief indicator while the snapshot loads.
package loading

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cognitrain/internal/screen"
	"github.com/abhisek/cognitrain/internal/ui/theme"
)

const tickInterval = 250 * time.Millisecond

type tickMsg time.Time

// LoadingScreen animates dots until the root model navigates away.
type LoadingScreen struct {
	ticks int
}

var _ screen.Screen = (*LoadingScreen)(nil)

func New() *LoadingScreen {
	return &LoadingScreen{}
}

func (l *LoadingScreen) Title() string {
	return ""
}

func (l *LoadingScreen) Init() tea.Cmd {
	return tick()
}

func (l *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		l.ticks++
		return l, tick()
	}
	return l, nil
}

func (l *LoadingScreen) View(width, height int) string {
	dots := strings.Repeat(".", l.ticks%4)
	content := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Loading your profile" + dots)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

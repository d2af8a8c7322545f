// Package gameselect lists the training games with each one's play
// history, pulled from the event log.
package gameselect

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cognitrain/internal/game"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screen"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/store"
	"github.com/abhisek/cognitrain/internal/ui/layout"
	"github.com/abhisek/cognitrain/internal/ui/theme"
)

// gameStats is one game's aggregated history.
type gameStats struct {
	Played    int
	BestScore int
}

// statsLoadedMsg delivers the per-game history query.
type statsLoadedMsg struct {
	stats map[game.Type]gameStats
	err   error
}

// SelectScreen lets the user pick a game to play.
type SelectScreen struct {
	events   store.EventRepo
	games    []game.Type
	selected int
	stats    map[game.Type]gameStats
	loaded   bool
}

var _ screen.Screen = (*SelectScreen)(nil)
var _ screen.KeyHintProvider = (*SelectScreen)(nil)

func New(events store.EventRepo) *SelectScreen {
	return &SelectScreen{
		events: events,
		games:  []game.Type{game.MemoryMatch, game.QuickMath},
	}
}

func (s *SelectScreen) Title() string {
	return "Training Games"
}

func (s *SelectScreen) Init() tea.Cmd {
	return s.loadStats()
}

func (s *SelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Play"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SelectScreen) loadStats() tea.Cmd {
	events := s.events
	games := s.games
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stats := make(map[game.Type]gameStats, len(games))
		for _, g := range games {
			results, err := events.GameResults(ctx, string(g), store.QueryOpts{})
			if err != nil {
				return statsLoadedMsg{err: err}
			}
			st := gameStats{Played: len(results)}
			for _, r := range results {
				if r.Score > st.BestScore {
					st.BestScore = r.Score
				}
			}
			stats[g] = st
		}
		return statsLoadedMsg{stats: stats}
	}
}

func (s *SelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.err == nil {
			s.stats = msg.stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.games)-1 {
				s.selected++
			}
		case "enter":
			chosen := s.games[s.selected]
			return s, func() tea.Msg { return flow.GameChosenMsg{Type: chosen} }
		case "esc":
			return s, router.Back()
		}
	}
	return s, nil
}

func (s *SelectScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("Pick a game to train with"))
	b.WriteString("\n\n")

	cardWidth := min(width-8, 60)
	for i, g := range s.games {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.renderGameCard(g, i == s.selected, cardWidth)))
		b.WriteString("\n")
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func (s *SelectScreen) renderGameCard(g game.Type, selected bool, cardWidth int) string {
	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	border := theme.Border
	title := g.Title()
	if selected {
		titleStyle = titleStyle.Foreground(theme.Primary)
		border = theme.Primary
		title = "▸ " + title
	}

	var lines []string
	lines = append(lines, titleStyle.Render(title))
	lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render(g.Description()))

	if st, ok := s.stats[g]; ok && st.Played > 0 {
		history := fmt.Sprintf("Played %d times   Best score %d", st.Played, st.BestScore)
		if st.Played == 1 {
			history = fmt.Sprintf("Played once   Best score %d", st.BestScore)
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.Accent).Render(history))
	} else if s.loaded {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).Render("Not played yet"))
	}

	return lipgloss.NewStyle().
		Width(cardWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

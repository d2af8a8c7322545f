// Package gameplay holds the interactive screens for the training games.
// Each screen owns one game run, translating its timer directives into
// tick commands and reporting the finished result to the root model.
package gameplay

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/cognitrain/internal/game"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screen"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/store"
	"github.com/abhisek/cognitrain/internal/timedphase"
	"github.com/abhisek/cognitrain/internal/ui/layout"
	"github.com/abhisek/cognitrain/internal/ui/theme"
)

const matchColumns = 4

// MemoryMatchScreen plays one Memory Match run.
type MemoryMatchScreen struct {
	run       *game.MemoryMatchRun
	events    store.EventRepo
	clk       timedphase.Clock
	sessionID string

	deadline time.Time
	cursor   int
	reported bool
}

var _ screen.Screen = (*MemoryMatchScreen)(nil)
var _ screen.KeyHintProvider = (*MemoryMatchScreen)(nil)

func NewMemoryMatch(rng *rand.Rand, clk timedphase.Clock, events store.EventRepo) *MemoryMatchScreen {
	return &MemoryMatchScreen{
		run:       game.NewMemoryMatch(rng, clk),
		events:    events,
		clk:       clk,
		sessionID: uuid.NewString(),
	}
}

func (m *MemoryMatchScreen) Title() string {
	return game.MemoryMatch.Title()
}

func (m *MemoryMatchScreen) Init() tea.Cmd {
	arm := m.run.Start()
	m.deadline = m.clk.Now().Add(game.MatchDuration)
	return tea.Batch(
		tea.Tick(arm.Duration, func(time.Time) tea.Msg { return clockTimerMsg{gen: arm.Gen} }),
		secondTick(),
	)
}

func (m *MemoryMatchScreen) KeyHints() []layout.KeyHint {
	if m.run.State() != game.StateRunning {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to games"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓←→", Description: "Move"},
		{Key: "Enter", Description: "Flip card"},
		{Key: "Esc", Description: "Quit game"},
	}
}

func (m *MemoryMatchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTimerMsg:
		if m.run.ExpireClock(msg.gen) {
			return m, m.finishCmd()
		}
		return m, nil

	case flipBackMsg:
		m.run.ResolveFlipBack(msg.gen)
		return m, nil

	case secondTickMsg:
		if m.run.State() == game.StateRunning {
			return m, secondTick()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m *MemoryMatchScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if m.run.State() != game.StateRunning {
		if key == "enter" || key == "esc" {
			return m, router.Back()
		}
		return m, nil
	}

	switch key {
	case "esc":
		m.run.Cancel()
		return m, router.Back()
	case "left", "h":
		if m.cursor%matchColumns > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%matchColumns < matchColumns-1 && m.cursor+1 < len(m.run.Cards()) {
			m.cursor++
		}
	case "up", "k":
		if m.cursor >= matchColumns {
			m.cursor -= matchColumns
		}
	case "down", "j":
		if m.cursor+matchColumns < len(m.run.Cards()) {
			m.cursor += matchColumns
		}
	case "enter", "space", " ":
		return m.flip(m.cursor)
	case "1", "2", "3", "4", "5", "6", "7", "8":
		idx := int(key[0] - '1')
		m.cursor = idx
		return m.flip(idx)
	}
	return m, nil
}

func (m *MemoryMatchScreen) flip(i int) (screen.Screen, tea.Cmd) {
	arm, ok := m.run.FlipCard(i)
	if !ok {
		return m, nil
	}
	if m.run.State() == game.StateEnded {
		return m, m.finishCmd()
	}
	if arm.Armed() {
		return m, tea.Tick(arm.Duration, func(time.Time) tea.Msg { return flipBackMsg{gen: arm.Gen} })
	}
	return m, nil
}

// finishCmd persists the game event and reports the result upward.
func (m *MemoryMatchScreen) finishCmd() tea.Cmd {
	res, ok := m.run.Result()
	if !ok || m.reported {
		return nil
	}
	m.reported = true
	return reportResult(m.events, m.sessionID, res)
}

func (m *MemoryMatchScreen) View(width, height int) string {
	if res, ok := m.run.Result(); ok {
		return renderGameOver(res, width, height)
	}

	var b strings.Builder
	b.WriteString(m.renderStatus(width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, m.renderBoard()))
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func (m *MemoryMatchScreen) renderStatus(width int) string {
	remaining := m.deadline.Sub(m.clk.Now())
	if remaining < 0 {
		remaining = 0
	}
	status := fmt.Sprintf("Score %d   Pairs %d/%d   Time %s",
		m.run.Score(),
		m.run.Pairs(),
		game.MatchCardCount/2,
		formatElapsed(remaining),
	)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(status))
}

func (m *MemoryMatchScreen) renderBoard() string {
	cards := m.run.Cards()
	var rows []string
	for start := 0; start < len(cards); start += matchColumns {
		var row []string
		for i := start; i < start+matchColumns && i < len(cards); i++ {
			row = append(row, m.renderCard(i, cards[i]))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *MemoryMatchScreen) renderCard(i int, c game.Card) string {
	style := lipgloss.NewStyle().
		Width(7).
		Height(3).
		Align(lipgloss.Center, lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)

	switch {
	case c.Matched:
		style = style.BorderForeground(theme.Success)
	case i == m.cursor:
		style = style.BorderForeground(theme.Primary)
	}

	face := "?"
	if c.FaceUp || c.Matched {
		face = c.Icon
	}
	return style.Render(face)
}

// reportResult writes the game event and emits the finished message. A
// failed write is logged and the result still flows upward; the stats
// snapshot carries it from there.
func reportResult(events store.EventRepo, sessionID string, res game.Result) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err := events.AppendGameEvent(ctx, store.GameEventData{
			SessionID:    sessionID,
			GameType:     string(res.Type),
			Score:        res.Score,
			Accuracy:     res.Accuracy,
			DurationSecs: int(res.Elapsed.Seconds()),
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to record game result: %v\n", err)
		}
		return flow.GameFinishedMsg{Result: res}
	}
}

func secondTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return secondTickMsg(t)
	})
}

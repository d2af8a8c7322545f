package gameplay

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/abhisek/cognitrain/internal/game"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screen"
	"github.com/abhisek/cognitrain/internal/store"
	"github.com/abhisek/cognitrain/internal/timedphase"
	"github.com/abhisek/cognitrain/internal/ui/components"
	"github.com/abhisek/cognitrain/internal/ui/layout"
	"github.com/abhisek/cognitrain/internal/ui/theme"
)

// QuickMathScreen plays one Quick Math run.
type QuickMathScreen struct {
	run       *game.QuickMathRun
	events    store.EventRepo
	clk       timedphase.Clock
	sessionID string

	deadline time.Time
	reported bool
}

var _ screen.Screen = (*QuickMathScreen)(nil)
var _ screen.KeyHintProvider = (*QuickMathScreen)(nil)

func NewQuickMath(rng *rand.Rand, clk timedphase.Clock, events store.EventRepo) *QuickMathScreen {
	return &QuickMathScreen{
		run:       game.NewQuickMath(rng, clk),
		events:    events,
		clk:       clk,
		sessionID: uuid.NewString(),
	}
}

func (q *QuickMathScreen) Title() string {
	return game.QuickMath.Title()
}

func (q *QuickMathScreen) Init() tea.Cmd {
	arm := q.run.Start()
	q.deadline = q.clk.Now().Add(game.TimePerProblem)
	return tea.Batch(q.problemTimer(arm), secondTick())
}

func (q *QuickMathScreen) KeyHints() []layout.KeyHint {
	if q.run.State() != game.StateRunning {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Back to games"},
		}
	}
	return []layout.KeyHint{
		{Key: "T/F", Description: "Correct / Wrong"},
		{Key: "Esc", Description: "Quit game"},
	}
}

func (q *QuickMathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemTimerMsg:
		arm, ok := q.run.ExpireProblem(msg.gen)
		if !ok {
			return q, nil
		}
		return q, q.afterAdvance(arm)

	case secondTickMsg:
		if q.run.State() == game.StateRunning {
			return q, secondTick()
		}
		return q, nil

	case tea.KeyMsg:
		return q.handleKey(msg.String())
	}
	return q, nil
}

func (q *QuickMathScreen) handleKey(key string) (screen.Screen, tea.Cmd) {
	if q.run.State() != game.StateRunning {
		if key == "enter" || key == "esc" {
			return q, router.Back()
		}
		return q, nil
	}

	switch key {
	case "esc":
		q.run.Cancel()
		return q, router.Back()
	case "t", "T", "1":
		arm, ok := q.run.Answer(true)
		if !ok {
			return q, nil
		}
		return q, q.afterAdvance(arm)
	case "f", "F", "2":
		arm, ok := q.run.Answer(false)
		if !ok {
			return q, nil
		}
		return q, q.afterAdvance(arm)
	}
	return q, nil
}

// afterAdvance arms the next problem's clock, or reports the finished run.
func (q *QuickMathScreen) afterAdvance(arm timedphase.Arm) tea.Cmd {
	if q.run.State() == game.StateEnded {
		if q.reported {
			return nil
		}
		res, ok := q.run.Result()
		if !ok {
			return nil
		}
		q.reported = true
		return reportResult(q.events, q.sessionID, res)
	}
	q.deadline = q.clk.Now().Add(game.TimePerProblem)
	return q.problemTimer(arm)
}

func (q *QuickMathScreen) problemTimer(arm timedphase.Arm) tea.Cmd {
	if !arm.Armed() {
		return nil
	}
	return tea.Tick(arm.Duration, func(time.Time) tea.Msg { return problemTimerMsg{gen: arm.Gen} })
}

func (q *QuickMathScreen) View(width, height int) string {
	if res, ok := q.run.Result(); ok {
		return renderGameOver(res, width, height)
	}

	problem, pos, ok := q.run.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	counter := fmt.Sprintf("Problem %d of %d   Score %d", pos, q.run.Total(), q.run.Score())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)))
	b.WriteString("\n\n")

	statement := fmt.Sprintf("%s = %d", problem.Text, problem.Shown)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(statement)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("[T] Correct    [F] Wrong")))
	b.WriteString("\n\n")

	remaining := q.deadline.Sub(q.clk.Now())
	if remaining < 0 {
		remaining = 0
	}
	bar := components.NewProgressBar("Time", remaining.Seconds()/game.TimePerProblem.Seconds(), false, min(width-8, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

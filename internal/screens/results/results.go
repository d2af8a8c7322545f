// Package results shows the scored assessment: one bar per cognitive
// area plus the personalized narrative. The narrative usually arrives a
// moment after the screen does; the static fallback covers the gap and
// any narrator failure.
package results

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/narrator"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screen"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/ui/components"
	"github.com/abhisek/cognitrain/internal/ui/layout"
	"github.com/abhisek/cognitrain/internal/ui/theme"
	"github.com/abhisek/cognitrain/internal/view"
)

// ResultsScreen displays one completed assessment.
type ResultsScreen struct {
	name      string
	scores    assessment.ScoreSet
	narrative string
	pending   bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the screen. narrativePending marks that a narrator call is
// in flight, so the fallback is shown with a waiting hint.
func New(name string, scores assessment.ScoreSet, narrativePending bool) *ResultsScreen {
	return &ResultsScreen{
		name:    name,
		scores:  scores,
		pending: narrativePending && scores.Narrative == "",
	}
}

func (r *ResultsScreen) Title() string {
	return "Your Results"
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue to dashboard"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case flow.NarrativeReadyMsg:
		r.pending = false
		if msg.Err == nil && msg.Text != "" {
			r.narrative = msg.Text
		}
		return r, nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			return r, router.Reset(view.Dashboard)
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	heading := fmt.Sprintf("Well done, %s!", r.name)
	if r.name == "" {
		heading = "Well done!"
	}
	b.WriteString(theme.Title.Width(width).Render(heading))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Here is your cognitive profile"))
	b.WriteString("\n\n")

	barWidth := min(width-8, 56)
	bars := []struct {
		label string
		value float64
	}{
		{"Memory (Numbers)", r.scores.MemoryNumbers},
		{"Memory (Words)  ", r.scores.MemoryWords},
		{"Speed           ", r.scores.Speed},
		{"Logic           ", r.scores.Logic},
		{"Working Memory  ", r.scores.WorkingMemory},
	}
	for _, bar := range bars {
		p := components.NewProgressBar(bar.label, bar.value/100, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, p.View()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	text := r.narrative
	if text == "" {
		text = r.scores.Narrative
	}
	if text == "" {
		text = narrator.Fallback
	}
	card := lipgloss.NewStyle().
		Width(min(width-8, 64)).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 2).
		Render(text)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	if r.pending {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("Personalizing your profile...")))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

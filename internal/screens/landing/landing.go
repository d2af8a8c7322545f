// Package landing is the first-run screen: a short pitch and the name
// prompt that creates the user profile.
package landing

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cognitrain/internal/screen"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/ui/components"
	"github.com/abhisek/cognitrain/internal/ui/layout"
	"github.com/abhisek/cognitrain/internal/ui/theme"
)

const maxNameLength = 24

// LandingScreen collects the user's name before the first assessment.
type LandingScreen struct {
	input     components.TextInput
	begin     components.Button
	submitted bool
}

var _ screen.Screen = (*LandingScreen)(nil)
var _ screen.KeyHintProvider = (*LandingScreen)(nil)

func New() *LandingScreen {
	l := &LandingScreen{
		input: components.NewTextInput("Your name...", false, maxNameLength),
	}
	l.begin = components.NewButton("Begin assessment", false, l.submit)
	return l
}

func (l *LandingScreen) submit() tea.Cmd {
	name := strings.TrimSpace(l.input.Value())
	if name == "" || l.submitted {
		return nil
	}
	l.submitted = true
	return func() tea.Msg { return flow.ProfileCreatedMsg{Name: name} }
}

func (l *LandingScreen) Title() string {
	return "Welcome"
}

func (l *LandingScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LandingScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start assessment"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (l *LandingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		var cmd tea.Cmd
		l.begin, cmd = l.begin.Update(msg)
		return l, cmd
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	l.begin.Active = strings.TrimSpace(l.input.Value()) != ""
	return l, cmd
}

func (l *LandingScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("CogniTrain"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Your personal brain training companion"))
	b.WriteString("\n\n")

	intro := lipgloss.NewStyle().
		Width(min(width-8, 64)).
		Foreground(theme.Text).
		Render("A short five-stage assessment maps your memory, speed, logic and " +
			"working memory. Then daily games keep each of them sharp.")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, intro))
	b.WriteString("\n\n")

	prompt := lipgloss.NewStyle().Foreground(theme.Text).Render("What should we call you?")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l.input.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, l.begin.View()))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

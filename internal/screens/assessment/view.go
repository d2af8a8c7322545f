package assessment

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	assess "github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/ui/theme"
)

func (s *AssessmentScreen) View(width, height int) string {
	if s.confirmQuit {
		return renderQuitConfirm(width, height)
	}
	if s.completed {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Scoring your assessment..."))
	}

	var b strings.Builder
	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")

	if !s.started {
		b.WriteString(s.renderInstructions(width))
	} else {
		switch s.orch.Stage() {
		case assess.StageNumberRecall:
			b.WriteString(s.renderNumberRecall(width))
		case assess.StageWordRecall:
			b.WriteString(s.renderWordRecall(width))
		case assess.StageReaction:
			b.WriteString(s.renderReaction(width))
		case assess.StagePatternLogic:
			b.WriteString(s.renderPattern(width))
		case assess.StageWorkingMemory:
			b.WriteString(s.renderMath(width))
		}
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

// renderProgress shows the stage position as a dot strip.
func (s *AssessmentScreen) renderProgress(width int) string {
	stage := s.orch.Stage()
	var dots []string
	for i := assess.StageNumberRecall; i <= assess.StageWorkingMemory; i++ {
		if i < stage {
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Success).Render("●"))
		} else if i == stage {
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Primary).Render("●"))
		} else {
			dots = append(dots, lipgloss.NewStyle().Foreground(theme.Border).Render("○"))
		}
	}

	label := fmt.Sprintf("Stage %d of 5: %s", int(stage)+1, stage)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		strings.Join(dots, " ")+"   "+
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
}

func (s *AssessmentScreen) renderInstructions(width int) string {
	var text string
	switch s.orch.Stage() {
	case assess.StageNumberRecall:
		text = fmt.Sprintf("You will see %d numbers for a few seconds.\nMemorize them, then type them back.", assess.NumberCount)
	case assess.StageWordRecall:
		text = "A list of words will appear briefly.\nMemorize as many as you can, then type them back separated by spaces."
	case assess.StageReaction:
		text = "Wait for the box to turn green, then press Space as fast as you can.\nPressing early counts against you."
	case assess.StagePatternLogic:
		text = "Each puzzle shows a sequence.\nPick the item that comes next."
	case assess.StageWorkingMemory:
		text = "Decide whether each equation is true or false.\nPress T for true, F for false."
	}

	var b strings.Builder
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Render(text)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, theme.Hint.Render("Press Enter to begin")))
	return b.String()
}

func (s *AssessmentScreen) renderNumberRecall(width int) string {
	var b strings.Builder
	if s.orch.Numbers.Phase() == "display" {
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Memorize:")))
		b.WriteString("\n\n")
		spaced := strings.Join(strings.Split(s.orch.Numbers.Digits(), ""), "  ")
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(spaced)))
	} else {
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Render("What were the numbers?")))
		b.WriteString("\n\n")
		b.WriteString(centered(width, s.input.View()))
	}
	return b.String()
}

func (s *AssessmentScreen) renderWordRecall(width int) string {
	var b strings.Builder
	if s.orch.Words.Phase() == "display" {
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Memorize these words:")))
		b.WriteString("\n\n")
		words := s.orch.Words.Words()
		half := (len(words) + 1) / 2
		line1 := strings.Join(words[:half], "   ")
		line2 := strings.Join(words[half:], "   ")
		wordStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		b.WriteString(centered(width, wordStyle.Render(line1)))
		b.WriteString("\n")
		b.WriteString(centered(width, wordStyle.Render(line2)))
	} else {
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Render("Type every word you remember:")))
		b.WriteString("\n\n")
		b.WriteString(centered(width, s.input.View()))
	}
	return b.String()
}

func (s *AssessmentScreen) renderReaction(width int) string {
	var b strings.Builder
	trial := fmt.Sprintf("Trial %d of %d", s.orch.Reaction.Trial()+1, assess.ReactionTrials)
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(trial)))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Width(30).
		Height(5).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)

	if s.orch.Reaction.Phase() == "ready" {
		b.WriteString(centered(width, box.
			Background(theme.Success).
			Foreground(theme.Bg).
			Render("PRESS SPACE!")))
	} else {
		b.WriteString(centered(width, box.
			Background(theme.BgCard).
			Foreground(theme.TextDim).
			Render("Wait for green...")))
	}
	return b.String()
}

func (s *AssessmentScreen) renderPattern(width int) string {
	item, pos, ok := s.orch.Patterns.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	counter := fmt.Sprintf("Puzzle %d of %d", pos, s.orch.Patterns.Total())
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)))
	b.WriteString("\n\n")

	seq := strings.Join(item.Sequence, "   ") + "   " +
		lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("?")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(seq)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if inFeedback, correct := s.orch.Patterns.InFeedback(); inFeedback {
		b.WriteString("\n")
		b.WriteString(centered(width, feedbackLine(correct, item.Hint)))
	}
	return b.String()
}

func (s *AssessmentScreen) renderMath(width int) string {
	item, pos, ok := s.orch.Math.Current()
	if !ok {
		return ""
	}

	var b strings.Builder
	counter := fmt.Sprintf("Equation %d of %d", pos, s.orch.Math.Total())
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render(counter)))
	b.WriteString("\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(item.Problem)))
	b.WriteString("\n\n")

	if inFeedback, correct := s.orch.Math.InFeedback(); inFeedback {
		b.WriteString(centered(width, feedbackLine(correct, "")))
	} else {
		b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render("[T] True    [F] False")))
	}
	return b.String()
}

func feedbackLine(correct bool, hint string) string {
	if correct {
		return theme.Correct.Render("Correct!")
	}
	msg := theme.Incorrect.Render("Not quite")
	if hint != "" {
		msg += lipgloss.NewStyle().Foreground(theme.TextDim).Render("  (" + hint + ")")
	}
	return msg
}

func renderQuitConfirm(width, height int) string {
	var b strings.Builder
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Abandon the assessment?")))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.TextDim).Render("Progress in this run will be lost.")))
	b.WriteString("\n\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] Yes, abandon")))
	b.WriteString("\n")
	b.WriteString(centered(width, lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] No, keep going")))
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func centered(width int, content string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

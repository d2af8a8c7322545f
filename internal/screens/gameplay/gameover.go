package gameplay

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cognitrain/internal/game"
	"github.com/abhisek/cognitrain/internal/ui/theme"
)

// renderGameOver shows the final score card for either game.
func renderGameOver(res game.Result, width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("Game over!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Score  %d", res.Score)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("Accuracy %.0f%%   Time %s", res.Accuracy, formatElapsed(res.Elapsed))))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render("Press Enter to go back"))

	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(b.String())

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func formatElapsed(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

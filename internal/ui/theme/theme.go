package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: calm teal/slate, readable for older eyes. Two variants;
// Apply switches between them and rebuilds the styles, so it must run
// before any rendering (the app applies the persisted setting at startup
// and on toggle).
var (
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
)

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() {
	Apply(true)
}

// Apply selects the dark or light palette and rebuilds every style.
func Apply(dark bool) {
	if dark {
		Primary = lipgloss.Color("#3FA3B0") // Teal (lightened)
		Secondary = lipgloss.Color("#E0E4E3")
		Accent = lipgloss.Color("#E8916A") // Warm orange
		Success = lipgloss.Color("#22C55E")
		Error = lipgloss.Color("#F43F5E")
		Text = lipgloss.Color("#FFFFFF")
		TextDim = lipgloss.Color("#94A3B8")
		Bg = lipgloss.Color("#0F1419") // Deep slate
		BgCard = lipgloss.Color("#1C3A47")
		Border = lipgloss.Color("#334155")
	} else {
		Primary = lipgloss.Color("#2B9BA5") // Teal
		Secondary = lipgloss.Color("#1C3A47")
		Accent = lipgloss.Color("#E8916A")
		Success = lipgloss.Color("#15803D")
		Error = lipgloss.Color("#B91C1C")
		Text = lipgloss.Color("#1A1A1A")
		TextDim = lipgloss.Color("#64748B")
		Bg = lipgloss.Color("#F5F7F6")
		BgCard = lipgloss.Color("#FFFFFF")
		Border = lipgloss.Color("#E0E4E3")
	}
	rebuild()
}

func rebuild() {
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(Accent)

	ProgressEmpty = lipgloss.NewStyle().
		Background(Border)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}

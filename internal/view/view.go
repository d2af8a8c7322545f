// Package view enumerates the application's screens as navigable values.
// The navigator's history holds these rather than screen instances so
// that "go back" re-creates a fresh screen instead of resuming a stale
// one mid-game.
package view

// View identifies one application screen.
type View int

const (
	Loading View = iota
	Landing
	Assessment
	Results
	GameSelection
	Game
	Dashboard
)

func (v View) String() string {
	switch v {
	case Loading:
		return "loading"
	case Landing:
		return "landing"
	case Assessment:
		return "assessment"
	case Results:
		return "results"
	case GameSelection:
		return "game-selection"
	case Game:
		return "game"
	case Dashboard:
		return "dashboard"
	default:
		return "unknown"
	}
}

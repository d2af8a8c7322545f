// Package game drives single playthroughs of the timed mini-games. Each
// runner is a state machine fed by user actions and timer expirations;
// like the phase engine it never schedules real timers, returning Arm
// directives for the screen layer to translate into tick commands.
package game

import "time"

// Type identifies a mini-game. The values double as the game_type field
// on persisted game events.
type Type string

const (
	MemoryMatch Type = "memory_match"
	QuickMath   Type = "quick_math"
)

// Title returns the display name for the game.
func (t Type) Title() string {
	switch t {
	case MemoryMatch:
		return "Memory Match"
	case QuickMath:
		return "Quick Math"
	default:
		return string(t)
	}
}

// Description returns the one-line pitch shown on the selection screen.
func (t Type) Description() string {
	switch t {
	case MemoryMatch:
		return "Flip cards to find matching pairs and sharpen your visual memory."
	case QuickMath:
		return "Solve arithmetic problems rapidly to boost your numerical processing speed."
	default:
		return ""
	}
}

// State describes a runner's lifecycle.
type State int

const (
	StateRunning State = iota
	StateEnded
	StateCancelled
)

// Result is the outcome of one completed playthrough. A cancelled run
// never produces one.
type Result struct {
	Type        Type
	Score       int
	Accuracy    float64
	Elapsed     time.Duration
	CompletedAt time.Time
}

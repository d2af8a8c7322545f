// Package flow defines the messages screens emit to report milestones
// back to the root model: a profile was created, an assessment or game
// finished, a narrative arrived. The root model updates the shared user
// state and persists a snapshot; the active screen sees the same message
// and refreshes its display.
package flow

import (
	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/game"
)

// ProfileCreatedMsg is sent when the landing screen accepts a name.
type ProfileCreatedMsg struct {
	Name string
}

// AssessmentCompletedMsg is sent when the fifth stage scores. The
// orchestrator carries the score set and session identity, and later
// receives the narrative via MergeNarrative.
type AssessmentCompletedMsg struct {
	Orch *assessment.Orchestrator
}

// NarrativeReadyMsg is sent when the narrator call finishes, possibly
// long after the assessment screen is gone.
type NarrativeReadyMsg struct {
	SessionID string
	Text      string
	Err       error
}

// GameChosenMsg is sent when the selection screen picks a game.
type GameChosenMsg struct {
	Type game.Type
}

// GameFinishedMsg is sent when a game run ends with a result. Cancelled
// runs never produce one.
type GameFinishedMsg struct {
	Result game.Result
}

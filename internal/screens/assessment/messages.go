package assessment

import (
	assess "github.com/abhisek/cognitrain/internal/assessment"
)

// stageTimerMsg is a fired phase timer, tagged with the stage that armed
// it so a leftover timer from a finished stage can never reach the next
// stage's engine.
type stageTimerMsg struct {
	stage assess.Stage
	gen   uint64
}

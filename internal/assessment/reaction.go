package assessment

import (
	"math/rand"
	"time"

	"github.com/abhisek/cognitrain/internal/scoring"
	"github.com/abhisek/cognitrain/internal/timedphase"
)

const (
	phaseWaiting = "waiting"
	phaseReady   = "ready"
)

// trialRecord is the payload logged with each completed trial.
type trialRecord struct {
	Sample time.Duration
	Early  bool
}

// skippedStimulus marks a ready phase consumed by an early click.
type skippedStimulus struct{}

// ReactionStage runs the wait→react trials. All trials share one
// phase-engine run (waiting, ready, waiting, ready, ...) so a waiting
// timer that fires after an early click is stale by generation, never
// mistaken for the next trial's stimulus. Trial delays are drawn up
// front from the injected rng.
type ReactionStage struct {
	clk     timedphase.Clock
	engine  *timedphase.Engine
	samples []time.Duration
	readyAt time.Time
	trial   int
	score   float64
	done    bool
}

func NewReaction(rng *rand.Rand, clk timedphase.Clock) *ReactionStage {
	phases := make([]timedphase.Phase, 0, ReactionTrials*2)
	for i := 0; i < ReactionTrials; i++ {
		phases = append(phases,
			timedphase.Phase{Name: phaseWaiting, Duration: reactionDelay(rng)},
			timedphase.Phase{Name: phaseReady, Manual: true},
		)
	}
	return &ReactionStage{
		clk:    clk,
		engine: timedphase.New(phases...),
	}
}

// Start begins the first trial's waiting phase.
func (s *ReactionStage) Start() timedphase.Arm {
	return s.engine.Start()
}

// Expire handles a waiting timer: the stimulus appears and the reaction
// clock starts. Stale fires are no-ops.
func (s *ReactionStage) Expire(gen uint64) bool {
	if _, ok := s.engine.Expire(gen); !ok {
		return false
	}
	s.readyAt = s.clk.Now()
	return true
}

// Click handles the user's press. During ready it records the measured
// reaction time; during waiting it is an early click, recording the
// fixed penalty sample and skipping that trial's stimulus. Either way
// the next trial's waiting phase is armed, or the stage completes.
func (s *ReactionStage) Click() (timedphase.Arm, bool) {
	p, ok := s.engine.Current()
	if !ok {
		return timedphase.Arm{}, false
	}

	var arm timedphase.Arm
	switch p.Name {
	case phaseWaiting:
		s.samples = append(s.samples, scoring.EarlyClickPenalty)
		s.engine.Advance(trialRecord{Sample: scoring.EarlyClickPenalty, Early: true})
		arm, _ = s.engine.Advance(skippedStimulus{})
	case phaseReady:
		sample := s.clk.Now().Sub(s.readyAt)
		s.samples = append(s.samples, sample)
		arm, _ = s.engine.Advance(trialRecord{Sample: sample})
	default:
		return timedphase.Arm{}, false
	}

	s.trial++
	if s.engine.Done() {
		s.score = scoring.ReactionTime(s.samples)
		s.done = true
	}
	return arm, true
}

// Cancel tears down the stage and its pending timer.
func (s *ReactionStage) Cancel() {
	s.engine.Cancel()
}

// Score returns the stage score once all trials are complete.
func (s *ReactionStage) Score() (float64, bool) {
	return s.score, s.done
}

// Trial returns the number of completed trials.
func (s *ReactionStage) Trial() int {
	return s.trial
}

// Samples returns the recorded reaction times, penalties included.
func (s *ReactionStage) Samples() []time.Duration {
	return s.samples
}

// Phase returns the current phase name, or "" outside a run.
func (s *ReactionStage) Phase() string {
	p, ok := s.engine.Current()
	if !ok {
		return ""
	}
	return p.Name
}

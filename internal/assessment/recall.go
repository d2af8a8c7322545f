package assessment

import (
	"math/rand"

	"github.com/abhisek/cognitrain/internal/scoring"
	"github.com/abhisek/cognitrain/internal/timedphase"
)

const (
	phaseDisplay = "display"
	phaseRecall  = "recall"
)

// NumberRecallStage shows a digit string for a fixed time, then waits for
// the user to type it back.
type NumberRecallStage struct {
	digits string
	engine *timedphase.Engine
	score  float64
	done   bool
}

func NewNumberRecall(rng *rand.Rand) *NumberRecallStage {
	return &NumberRecallStage{
		digits: randomDigits(rng, NumberCount),
		engine: timedphase.New(
			timedphase.Phase{Name: phaseDisplay, Duration: NumberDisplayTime},
			timedphase.Phase{Name: phaseRecall, Manual: true},
		),
	}
}

// Start begins the display phase and returns its timer directive.
func (s *NumberRecallStage) Start() timedphase.Arm {
	return s.engine.Start()
}

// Expire handles the display timer, moving to recall. Stale fires are
// no-ops.
func (s *NumberRecallStage) Expire(gen uint64) bool {
	_, ok := s.engine.Expire(gen)
	return ok
}

// Submit scores the typed digits. Only valid during the recall phase.
func (s *NumberRecallStage) Submit(input string) (float64, bool) {
	p, ok := s.engine.Current()
	if !ok || p.Name != phaseRecall {
		return 0, false
	}
	s.engine.Advance(input)
	s.score = scoring.NumberRecall(input, s.digits)
	s.done = true
	return s.score, true
}

// Cancel tears down the stage and its pending timer.
func (s *NumberRecallStage) Cancel() {
	s.engine.Cancel()
}

// Digits returns the string to memorize (shown during display).
func (s *NumberRecallStage) Digits() string {
	return s.digits
}

// Phase returns the current phase name, or "" outside a run.
func (s *NumberRecallStage) Phase() string {
	p, ok := s.engine.Current()
	if !ok {
		return ""
	}
	return p.Name
}

// WordRecallStage shows the word pool for a fixed time, then waits for
// the user to list what they remember.
type WordRecallStage struct {
	words  []string
	engine *timedphase.Engine
	score  float64
	done   bool
}

func NewWordRecall(rng *rand.Rand) *WordRecallStage {
	return &WordRecallStage{
		words: shuffledWords(rng),
		engine: timedphase.New(
			timedphase.Phase{Name: phaseDisplay, Duration: WordDisplayTime},
			timedphase.Phase{Name: phaseRecall, Manual: true},
		),
	}
}

// Start begins the display phase and returns its timer directive.
func (s *WordRecallStage) Start() timedphase.Arm {
	return s.engine.Start()
}

// Expire handles the display timer, moving to recall.
func (s *WordRecallStage) Expire(gen uint64) bool {
	_, ok := s.engine.Expire(gen)
	return ok
}

// Submit scores the recalled words. Only valid during the recall phase.
func (s *WordRecallStage) Submit(input string) (float64, bool) {
	p, ok := s.engine.Current()
	if !ok || p.Name != phaseRecall {
		return 0, false
	}
	s.engine.Advance(input)
	s.score = scoring.WordRecall(input, s.words)
	s.done = true
	return s.score, true
}

// Cancel tears down the stage and its pending timer.
func (s *WordRecallStage) Cancel() {
	s.engine.Cancel()
}

// Words returns the words to memorize (shown during display).
func (s *WordRecallStage) Words() []string {
	return s.words
}

// Phase returns the current phase name, or "" outside a run.
func (s *WordRecallStage) Phase() string {
	p, ok := s.engine.Current()
	if !ok {
		return ""
	}
	return p.Name
}

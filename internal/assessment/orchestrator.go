package assessment

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/abhisek/cognitrain/internal/timedphase"
)

// Stage identifies one of the five battery stages, in run order.
type Stage int

const (
	StageNumberRecall Stage = iota
	StageWordRecall
	StageReaction
	StagePatternLogic
	StageWorkingMemory
	stageCount
)

func (s Stage) String() string {
	switch s {
	case StageNumberRecall:
		return "Number Recall"
	case StageWordRecall:
		return "Word Recall"
	case StageReaction:
		return "Reaction Time"
	case StagePatternLogic:
		return "Pattern Logic"
	case StageWorkingMemory:
		return "Working Memory"
	default:
		return "Finished"
	}
}

// ScoreSet is the assembled result of one assessment. The five numeric
// fields are written exactly once each, in stage order; Narrative may
// arrive strictly later and is merged write-once without touching the
// scores.
type ScoreSet struct {
	MemoryNumbers float64
	MemoryWords   float64
	Speed         float64
	Logic         float64
	WorkingMemory float64
	Narrative     string
}

// Hooks receive orchestrator progress. Either may be nil.
type Hooks struct {
	// OnStageScore fires once per stage, in order, as its score is
	// recorded.
	OnStageScore func(Stage, float64)

	// OnComplete fires once, after the fifth stage, with the assembled
	// set. The narrative is not yet present.
	OnComplete func(ScoreSet)
}

// Orchestrator sequences the five stages. It owns the active stage
// runner; exactly one is live at a time and each must report done before
// its score can be recorded, so no stage scores twice.
type Orchestrator struct {
	SessionID string

	rng   *rand.Rand
	clk   timedphase.Clock
	hooks Hooks

	stage    Stage
	scores   ScoreSet
	finished bool

	Numbers  *NumberRecallStage
	Words    *WordRecallStage
	Reaction *ReactionStage
	Patterns *PatternQuizStage
	Math     *MathQuizStage
}

// NewOrchestrator prepares a run with the first stage constructed but
// not started.
func NewOrchestrator(rng *rand.Rand, clk timedphase.Clock, hooks Hooks) *Orchestrator {
	o := &Orchestrator{
		SessionID: uuid.NewString(),
		rng:       rng,
		clk:       clk,
		hooks:     hooks,
	}
	o.Numbers = NewNumberRecall(rng)
	return o
}

// Stage returns the active stage; once finished it reports stageCount's
// String form via Finished instead.
func (o *Orchestrator) Stage() Stage {
	return o.stage
}

// Finished reports whether all five stages have scored. The narrative
// may still be pending.
func (o *Orchestrator) Finished() bool {
	return o.finished
}

// CompleteStage records the active stage's score and constructs the next
// stage runner. It refuses to record unless the active runner actually
// finished, which makes double-completion impossible.
func (o *Orchestrator) CompleteStage(score float64) bool {
	if o.finished || !o.activeRunnerDone() {
		return false
	}

	switch o.stage {
	case StageNumberRecall:
		o.scores.MemoryNumbers = score
	case StageWordRecall:
		o.scores.MemoryWords = score
	case StageReaction:
		o.scores.Speed = score
	case StagePatternLogic:
		o.scores.Logic = score
	case StageWorkingMemory:
		o.scores.WorkingMemory = score
	}
	if o.hooks.OnStageScore != nil {
		o.hooks.OnStageScore(o.stage, score)
	}

	o.stage++
	switch o.stage {
	case StageWordRecall:
		o.Words = NewWordRecall(o.rng)
	case StageReaction:
		o.Reaction = NewReaction(o.rng, o.clk)
	case StagePatternLogic:
		o.Patterns = NewPatternQuiz(o.rng)
	case StageWorkingMemory:
		o.Math = NewMathQuiz(o.rng)
	default:
		o.finished = true
		if o.hooks.OnComplete != nil {
			o.hooks.OnComplete(o.scores)
		}
	}
	return true
}

func (o *Orchestrator) activeRunnerDone() bool {
	switch o.stage {
	case StageNumberRecall:
		return o.Numbers != nil && o.Numbers.done
	case StageWordRecall:
		return o.Words != nil && o.Words.done
	case StageReaction:
		return o.Reaction != nil && o.Reaction.done
	case StagePatternLogic:
		return o.Patterns != nil && o.Patterns.done
	case StageWorkingMemory:
		return o.Math != nil && o.Math.done
	default:
		return false
	}
}

// Scores returns the set assembled so far. Complete once Finished.
func (o *Orchestrator) Scores() ScoreSet {
	return o.scores
}

// MergeNarrative writes the narrator's text into the completed set.
// Write-once: later arrivals and pre-completion arrivals are dropped.
func (o *Orchestrator) MergeNarrative(text string) bool {
	if !o.finished || o.scores.Narrative != "" || text == "" {
		return false
	}
	o.scores.Narrative = text
	return true
}

// Cancel tears down the active stage runner and its timers. The run
// cannot continue afterwards.
func (o *Orchestrator) Cancel() {
	switch o.stage {
	case StageNumberRecall:
		if o.Numbers != nil {
			o.Numbers.Cancel()
		}
	case StageWordRecall:
		if o.Words != nil {
			o.Words.Cancel()
		}
	case StageReaction:
		if o.Reaction != nil {
			o.Reaction.Cancel()
		}
	case StagePatternLogic:
		if o.Patterns != nil {
			o.Patterns.Cancel()
		}
	case StageWorkingMemory:
		if o.Math != nil {
			o.Math.Cancel()
		}
	}
}

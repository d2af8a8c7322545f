package assessment

import (
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/cognitrain/internal/timedphase"
)

// runAllStages drives every stage of the orchestrator to completion with
// deterministic inputs. clk must be the clock the orchestrator was built
// with.
func runAllStages(t *testing.T, o *Orchestrator, clk *timedphase.FakeClock) {
	t.Helper()

	// Stage 1: number recall, perfect.
	arm := o.Numbers.Start()
	o.Numbers.Expire(arm.Gen)
	score, _ := o.Numbers.Submit(o.Numbers.Digits())
	if !o.CompleteStage(score) {
		t.Fatal("number recall completion rejected")
	}

	// Stage 2: word recall, perfect.
	arm = o.Words.Start()
	o.Words.Expire(arm.Gen)
	input := ""
	for _, w := range o.Words.Words() {
		input += w + " "
	}
	score, _ = o.Words.Submit(input)
	if !o.CompleteStage(score) {
		t.Fatal("word recall completion rejected")
	}

	// Stage 3: reaction.
	arm = o.Reaction.Start()
	for i := 0; i < ReactionTrials; i++ {
		o.Reaction.Expire(arm.Gen)
		clk.Step(100 * time.Millisecond)
		arm, _ = o.Reaction.Click()
	}
	score, _ = o.Reaction.Score()
	if !o.CompleteStage(score) {
		t.Fatal("reaction completion rejected")
	}

	// Stage 4: patterns, all correct.
	o.Patterns.Start()
	for i := 0; i < o.Patterns.Total(); i++ {
		item, _, _ := o.Patterns.Current()
		fb, _ := o.Patterns.Choose(item.Next)
		o.Patterns.ExpireFeedback(fb.Gen)
	}
	score, _ = o.Patterns.Score()
	if !o.CompleteStage(score) {
		t.Fatal("pattern completion rejected")
	}

	// Stage 5: math, all correct.
	o.Math.Start()
	for i := 0; i < o.Math.Total(); i++ {
		item, _, _ := o.Math.Current()
		fb, _ := o.Math.Answer(item.Answer)
		o.Math.ExpireFeedback(fb.Gen)
	}
	score, _ = o.Math.Score()
	if !o.CompleteStage(score) {
		t.Fatal("math completion rejected")
	}
}

func TestFiveScoresInOrderBeforeComplete(t *testing.T) {
	var stages []Stage
	completed := false
	hooks := Hooks{
		OnStageScore: func(s Stage, score float64) {
			if completed {
				t.Error("stage score recorded after completion")
			}
			stages = append(stages, s)
		},
		OnComplete: func(set ScoreSet) {
			completed = true
		},
	}
	clk := testClock()
	o := NewOrchestrator(rand.New(rand.NewSource(1)), clk, hooks)
	runAllStages(t, o, clk)

	want := []Stage{StageNumberRecall, StageWordRecall, StageReaction, StagePatternLogic, StageWorkingMemory}
	if len(stages) != len(want) {
		t.Fatalf("stage callbacks = %d, want %d", len(stages), len(want))
	}
	for i, s := range stages {
		if s != want[i] {
			t.Errorf("callback %d = %v, want %v", i, s, want[i])
		}
	}
	if !completed {
		t.Error("complete callback never fired")
	}
	if !o.Finished() {
		t.Error("orchestrator not finished")
	}

	set := o.Scores()
	if set.MemoryNumbers != 100 || set.MemoryWords != 100 || set.Logic != 100 || set.WorkingMemory != 100 {
		t.Errorf("scores = %+v, want perfect recall/logic/math", set)
	}
	// 100ms average → 80.
	if set.Speed != 80 {
		t.Errorf("speed = %v, want 80", set.Speed)
	}
}

func TestCompleteStageRejectedWithoutFinishedRunner(t *testing.T) {
	o := NewOrchestrator(rand.New(rand.NewSource(1)), testClock(), Hooks{})

	// First stage is still in its display phase.
	o.Numbers.Start()
	if o.CompleteStage(100) {
		t.Error("completion accepted for unfinished stage")
	}
	if o.Stage() != StageNumberRecall {
		t.Errorf("stage = %v, want NumberRecall", o.Stage())
	}
}

func TestCompleteStageAfterFinishIsNoOp(t *testing.T) {
	clk := testClock()
	o := NewOrchestrator(rand.New(rand.NewSource(1)), clk, Hooks{})
	runAllStages(t, o, clk)

	if o.CompleteStage(99) {
		t.Error("completion accepted after finish")
	}
}

func TestMergeNarrative(t *testing.T) {
	clk := testClock()
	o := NewOrchestrator(rand.New(rand.NewSource(1)), clk, Hooks{})

	// Narrative cannot arrive before the stages finish.
	if o.MergeNarrative("too early") {
		t.Error("narrative merged before completion")
	}

	runAllStages(t, o, clk)

	if !o.MergeNarrative("a sharp mind today") {
		t.Error("narrative merge rejected")
	}
	if o.Scores().Narrative != "a sharp mind today" {
		t.Errorf("narrative = %q", o.Scores().Narrative)
	}

	// Write-once: a second arrival is dropped.
	if o.MergeNarrative("second opinion") {
		t.Error("second narrative overwrote the first")
	}
	if o.Scores().Narrative != "a sharp mind today" {
		t.Errorf("narrative = %q after second merge", o.Scores().Narrative)
	}
}

func TestSessionIDAssigned(t *testing.T) {
	o := NewOrchestrator(rand.New(rand.NewSource(1)), testClock(), Hooks{})
	if o.SessionID == "" {
		t.Error("empty session id")
	}
}

func TestCancelMidStage(t *testing.T) {
	o := NewOrchestrator(rand.New(rand.NewSource(1)), testClock(), Hooks{})
	arm := o.Numbers.Start()
	o.Cancel()

	if o.Numbers.Expire(arm.Gen) {
		t.Error("display timer processed after cancel")
	}
	if _, ok := o.Numbers.Submit("12345"); ok {
		t.Error("submit accepted after cancel")
	}
}

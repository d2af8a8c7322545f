package assessment

import (
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/cognitrain/internal/scoring"
	"github.com/abhisek/cognitrain/internal/timedphase"
)

func testClock() *timedphase.FakeClock {
	return &timedphase.FakeClock{Current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestNumberRecallFlow(t *testing.T) {
	s := NewNumberRecall(rand.New(rand.NewSource(1)))
	if len(s.Digits()) != NumberCount {
		t.Fatalf("digits = %q, want %d digits", s.Digits(), NumberCount)
	}

	arm := s.Start()
	if !arm.Armed() || arm.Duration != NumberDisplayTime {
		t.Fatalf("arm = %+v, want %v display timer", arm, NumberDisplayTime)
	}
	if s.Phase() != "display" {
		t.Errorf("phase = %q, want display", s.Phase())
	}

	// Submitting during display is rejected.
	if _, ok := s.Submit(s.Digits()); ok {
		t.Error("submit accepted during display phase")
	}

	if !s.Expire(arm.Gen) {
		t.Fatal("display expiry rejected")
	}
	if s.Phase() != "recall" {
		t.Errorf("phase = %q, want recall", s.Phase())
	}

	score, ok := s.Submit(s.Digits())
	if !ok {
		t.Fatal("submit rejected during recall")
	}
	if score != 100 {
		t.Errorf("score = %v, want 100", score)
	}
}

func TestWordRecallFlow(t *testing.T) {
	s := NewWordRecall(rand.New(rand.NewSource(1)))
	if len(s.Words()) != len(wordPool) {
		t.Fatalf("words = %d, want %d", len(s.Words()), len(wordPool))
	}

	arm := s.Start()
	s.Expire(arm.Gen)

	// Recall half the words.
	input := ""
	for _, w := range s.Words()[:5] {
		input += w + " "
	}
	score, ok := s.Submit(input)
	if !ok {
		t.Fatal("submit rejected")
	}
	if score != 50 {
		t.Errorf("score = %v, want 50", score)
	}
}

func TestReactionFlow(t *testing.T) {
	clk := testClock()
	s := NewReaction(rand.New(rand.NewSource(1)), clk)

	arm := s.Start()
	for trial := 0; trial < ReactionTrials; trial++ {
		if !arm.Armed() {
			t.Fatalf("trial %d: waiting phase not armed", trial)
		}
		if arm.Duration < ReactionMinDelay || arm.Duration >= ReactionMaxDelay {
			t.Errorf("trial %d: delay %v outside [%v, %v)", trial, arm.Duration, ReactionMinDelay, ReactionMaxDelay)
		}
		if !s.Expire(arm.Gen) {
			t.Fatalf("trial %d: waiting expiry rejected", trial)
		}
		clk.Step(250 * time.Millisecond)
		next, ok := s.Click()
		if !ok {
			t.Fatalf("trial %d: click rejected", trial)
		}
		arm = next
	}

	score, done := s.Score()
	if !done {
		t.Fatal("stage not done after all trials")
	}
	// 250ms average → 100 × (1 − 250/500) = 50.
	if score != 50 {
		t.Errorf("score = %v, want 50", score)
	}
}

func TestReactionEarlyClickPenalty(t *testing.T) {
	clk := testClock()
	s := NewReaction(rand.New(rand.NewSource(1)), clk)

	arm := s.Start()

	// Early click during the first waiting phase.
	next, ok := s.Click()
	if !ok {
		t.Fatal("early click rejected")
	}
	if s.Trial() != 1 {
		t.Errorf("trial = %d, want 1", s.Trial())
	}
	if got := s.Samples()[0]; got != 1000*time.Millisecond {
		t.Errorf("penalty sample = %v, want 1s", got)
	}

	// The first waiting timer fires late: stale, no transition.
	if s.Expire(arm.Gen) {
		t.Error("stale waiting timer transitioned the stage")
	}

	// Remaining trials proceed normally.
	arm = next
	for trial := 1; trial < ReactionTrials; trial++ {
		s.Expire(arm.Gen)
		clk.Step(100 * time.Millisecond)
		arm, _ = s.Click()
	}
	if _, done := s.Score(); !done {
		t.Error("stage not done")
	}
}

func TestReactionTrialPayloads(t *testing.T) {
	clk := testClock()
	s := NewReaction(rand.New(rand.NewSource(1)), clk)

	s.Start()

	// Early click on the first trial, then a normal measured trial.
	arm, _ := s.Click()
	s.Expire(arm.Gen)
	clk.Step(200 * time.Millisecond)
	s.Click()

	trials := s.engine.Trials()
	if len(trials) != 3 {
		t.Fatalf("trials = %d, want 3 (early record, skipped stimulus, measured record)", len(trials))
	}
	first, ok := trials[0].(trialRecord)
	if !ok || !first.Early || first.Sample != scoring.EarlyClickPenalty {
		t.Errorf("trials[0] = %#v, want early trialRecord with penalty sample", trials[0])
	}
	if _, ok := trials[1].(skippedStimulus); !ok {
		t.Errorf("trials[1] = %#v, want skippedStimulus", trials[1])
	}
	third, ok := trials[2].(trialRecord)
	if !ok || third.Early || third.Sample != 200*time.Millisecond {
		t.Errorf("trials[2] = %#v, want measured 200ms trialRecord", trials[2])
	}
}

func TestPatternQuizFlow(t *testing.T) {
	s := NewPatternQuiz(rand.New(rand.NewSource(1)))
	s.Start()

	for i := 0; i < s.Total(); i++ {
		item, n, ok := s.Current()
		if !ok || n != i+1 {
			t.Fatalf("item %d: current = %d (%v)", i, n, ok)
		}

		// Answer correctly on even items.
		answer := item.Next
		if i%2 == 1 {
			for _, c := range item.Choices {
				if c != item.Next {
					answer = c
					break
				}
			}
		}
		arm, ok := s.Choose(answer)
		if !ok {
			t.Fatalf("item %d: choose rejected", i)
		}
		if !arm.Armed() || arm.Duration != FeedbackPause {
			t.Fatalf("item %d: feedback arm = %+v, want %v", i, arm, FeedbackPause)
		}

		// A second answer during feedback is rejected.
		if _, ok := s.Choose(item.Next); ok {
			t.Errorf("item %d: choose accepted during feedback", i)
		}

		if !s.ExpireFeedback(arm.Gen) {
			t.Fatalf("item %d: feedback expiry rejected", i)
		}
	}

	score, done := s.Score()
	if !done {
		t.Fatal("quiz not done")
	}
	// 3 of 5 correct (items 0, 2, 4).
	if score != 60 {
		t.Errorf("score = %v, want 60", score)
	}
}

func TestMathQuizFlow(t *testing.T) {
	s := NewMathQuiz(rand.New(rand.NewSource(1)))
	s.Start()

	for i := 0; i < s.Total(); i++ {
		item, _, ok := s.Current()
		if !ok {
			t.Fatalf("no item at %d", i)
		}
		arm, ok := s.Answer(item.Answer)
		if !ok {
			t.Fatalf("item %d: answer rejected", i)
		}
		feedback, correct := s.InFeedback()
		if !feedback || !correct {
			t.Errorf("item %d: feedback = %v/%v, want showing/correct", i, feedback, correct)
		}
		s.ExpireFeedback(arm.Gen)
	}

	score, done := s.Score()
	if !done {
		t.Fatal("quiz not done")
	}
	if score != 100 {
		t.Errorf("score = %v, want 100", score)
	}
}

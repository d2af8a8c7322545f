// Package assessment is the screen that walks the user through the
// five-stage battery, translating engine timer directives into tick
// commands and stage completions into orchestrator calls.
package assessment

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"

	assess "github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screen"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/store"
	"github.com/abhisek/cognitrain/internal/timedphase"
	"github.com/abhisek/cognitrain/internal/ui/components"
	"github.com/abhisek/cognitrain/internal/ui/layout"
)

// AssessmentScreen drives one full battery run.
type AssessmentScreen struct {
	orch   *assess.Orchestrator
	events store.EventRepo

	input  components.TextInput
	choice components.MultiChoice

	started     bool
	confirmQuit bool
	completed   bool
}

var _ screen.Screen = (*AssessmentScreen)(nil)
var _ screen.KeyHintProvider = (*AssessmentScreen)(nil)

// New creates the screen with a fresh orchestrator.
func New(rng *rand.Rand, clk timedphase.Clock, events store.EventRepo) *AssessmentScreen {
	return &AssessmentScreen{
		orch:   assess.NewOrchestrator(rng, clk, assess.Hooks{}),
		events: events,
	}
}

func (s *AssessmentScreen) Title() string {
	return "Assessment"
}

func (s *AssessmentScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessmentScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Abandon assessment"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if !s.started {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Begin stage"},
			{Key: "Esc", Description: "Quit assessment"},
		}
	}
	switch s.orch.Stage() {
	case assess.StageReaction:
		return []layout.KeyHint{
			{Key: "Space", Description: "React"},
			{Key: "Esc", Description: "Quit assessment"},
		}
	case assess.StageWorkingMemory:
		return []layout.KeyHint{
			{Key: "T/F", Description: "True / False"},
			{Key: "Esc", Description: "Quit assessment"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Quit assessment"},
		}
	}
}

func (s *AssessmentScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stageTimerMsg:
		return s.handleTimer(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.recallInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// handleTimer routes a fired timer to the engine that armed it. A timer
// from a stage that already completed is dropped outright; within the
// stage the generation check makes superseded timers no-ops.
func (s *AssessmentScreen) handleTimer(msg stageTimerMsg) (screen.Screen, tea.Cmd) {
	if s.completed || msg.stage != s.orch.Stage() {
		return s, nil
	}

	switch msg.stage {
	case assess.StageNumberRecall:
		if s.orch.Numbers.Expire(msg.gen) {
			s.input = components.NewTextInput("Type the numbers...", true, assess.NumberCount)
			return s, s.input.Init()
		}

	case assess.StageWordRecall:
		if s.orch.Words.Expire(msg.gen) {
			s.input = components.NewTextInput("Type the words you remember...", false, 0)
			return s, s.input.Init()
		}

	case assess.StageReaction:
		s.orch.Reaction.Expire(msg.gen)

	case assess.StagePatternLogic:
		if s.orch.Patterns.ExpireFeedback(msg.gen) {
			if score, done := s.orch.Patterns.Score(); done {
				return s.completeStage(score)
			}
			s.refreshPattern()
		}

	case assess.StageWorkingMemory:
		if s.orch.Math.ExpireFeedback(msg.gen) {
			if score, done := s.orch.Math.Score(); done {
				return s.completeStage(score)
			}
		}
	}
	return s, nil
}

func (s *AssessmentScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmQuit {
		switch key {
		case "y", "Y":
			s.orch.Cancel()
			return s, router.Back()
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	if key == "esc" {
		s.confirmQuit = true
		return s, nil
	}

	if s.completed {
		return s, nil
	}

	if !s.started {
		if key == "enter" {
			return s, s.startStage()
		}
		return s, nil
	}

	switch s.orch.Stage() {
	case assess.StageNumberRecall:
		if key == "enter" && s.orch.Numbers.Phase() == "recall" {
			if score, ok := s.orch.Numbers.Submit(s.input.Value()); ok {
				return s.completeStage(score)
			}
			return s, nil
		}

	case assess.StageWordRecall:
		if key == "enter" && s.orch.Words.Phase() == "recall" {
			if score, ok := s.orch.Words.Submit(s.input.Value()); ok {
				return s.completeStage(score)
			}
			return s, nil
		}

	case assess.StageReaction:
		if key == "space" || key == " " || key == "enter" {
			arm, ok := s.orch.Reaction.Click()
			if !ok {
				return s, nil
			}
			if score, done := s.orch.Reaction.Score(); done {
				return s.completeStage(score)
			}
			return s, s.armCmd(arm)
		}
		return s, nil

	case assess.StagePatternLogic:
		return s.handlePatternKey(msg)

	case assess.StageWorkingMemory:
		return s.handleMathKey(key)
	}

	if s.recallInputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *AssessmentScreen) handlePatternKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if inFeedback, _ := s.orch.Patterns.InFeedback(); inFeedback {
		return s, nil
	}
	item, _, ok := s.orch.Patterns.Current()
	if !ok {
		return s, nil
	}

	// Number keys select and submit in one press.
	switch msg.String() {
	case "1", "2", "3", "4":
		idx := int(msg.String()[0] - '1')
		if idx < len(item.Choices) {
			s.choice.Selected = idx
			s.choice.Submitted = true
			s.choice.ChosenIndex = idx
		}
	default:
		s.choice, _ = s.choice.Update(msg)
	}

	if !s.choice.Submitted {
		return s, nil
	}
	arm, ok := s.orch.Patterns.Choose(item.Choices[s.choice.ChosenIndex])
	if !ok {
		return s, nil
	}
	return s, s.armCmd(arm)
}

func (s *AssessmentScreen) handleMathKey(key string) (screen.Screen, tea.Cmd) {
	if inFeedback, _ := s.orch.Math.InFeedback(); inFeedback {
		return s, nil
	}

	var saysTrue bool
	switch key {
	case "t", "T", "1":
		saysTrue = true
	case "f", "F", "2":
		saysTrue = false
	default:
		return s, nil
	}

	arm, ok := s.orch.Math.Answer(saysTrue)
	if !ok {
		return s, nil
	}
	return s, s.armCmd(arm)
}

// startStage begins the active runner and prepares its widgets.
func (s *AssessmentScreen) startStage() tea.Cmd {
	var arm timedphase.Arm
	switch s.orch.Stage() {
	case assess.StageNumberRecall:
		arm = s.orch.Numbers.Start()
	case assess.StageWordRecall:
		arm = s.orch.Words.Start()
	case assess.StageReaction:
		arm = s.orch.Reaction.Start()
	case assess.StagePatternLogic:
		arm = s.orch.Patterns.Start()
		s.refreshPattern()
	case assess.StageWorkingMemory:
		arm = s.orch.Math.Start()
	}
	s.started = true
	return s.armCmd(arm)
}

// completeStage records the score and either prepares the next stage or
// finishes the run.
func (s *AssessmentScreen) completeStage(score float64) (screen.Screen, tea.Cmd) {
	if !s.orch.CompleteStage(score) {
		return s, nil
	}

	if !s.orch.Finished() {
		s.started = false
		return s, nil
	}

	s.completed = true
	orch := s.orch
	events := s.events
	return s, func() tea.Msg {
		return recordCompletion(events, orch)
	}
}

// recordCompletion persists the finished run's scores and hands the
// orchestrator upward. A failed write is logged but never blocks the
// results screen; the scores still live in the orchestrator.
func recordCompletion(events store.EventRepo, orch *assess.Orchestrator) tea.Msg {
	scores := orch.Scores()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := events.AppendAssessmentEvent(ctx, store.AssessmentEventData{
		SessionID:     orch.SessionID,
		MemoryNumbers: scores.MemoryNumbers,
		MemoryWords:   scores.MemoryWords,
		Speed:         scores.Speed,
		Logic:         scores.Logic,
		WorkingMemory: scores.WorkingMemory,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to record assessment result: %v\n", err)
	}
	return flow.AssessmentCompletedMsg{Orch: orch}
}

// refreshPattern rebuilds the choice widget for the current item.
func (s *AssessmentScreen) refreshPattern() {
	item, _, ok := s.orch.Patterns.Current()
	if !ok {
		return
	}
	correct := 0
	for i, c := range item.Choices {
		if c == item.Next {
			correct = i
			break
		}
	}
	s.choice = components.NewMultiChoice("What comes next?", item.Choices, correct)
}

func (s *AssessmentScreen) armCmd(arm timedphase.Arm) tea.Cmd {
	if !arm.Armed() {
		return nil
	}
	stage := s.orch.Stage()
	gen := arm.Gen
	return tea.Tick(arm.Duration, func(time.Time) tea.Msg {
		return stageTimerMsg{stage: stage, gen: gen}
	})
}

func (s *AssessmentScreen) recallInputActive() bool {
	if !s.started || s.confirmQuit || s.completed {
		return false
	}
	switch s.orch.Stage() {
	case assess.StageNumberRecall:
		return s.orch.Numbers.Phase() == "recall"
	case assess.StageWordRecall:
		return s.orch.Words.Phase() == "recall"
	}
	return false
}

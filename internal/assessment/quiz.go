package assessment

import (
	"fmt"
	"math/rand"

	"github.com/abhisek/cognitrain/internal/scoring"
	"github.com/abhisek/cognitrain/internal/timedphase"
)

const (
	phaseChoice   = "choice"
	phaseFeedback = "feedback"
)

// quiz is the shared machinery of the pattern and math stages: a run of
// await-choice → timed-feedback pairs, one per item, scored as the
// fraction answered correctly.
type quiz struct {
	engine      *timedphase.Engine
	idx         int
	total       int
	correct     int
	lastCorrect bool
	score       float64
	done        bool
}

func newQuiz(total int) quiz {
	phases := make([]timedphase.Phase, 0, total*2)
	for i := 0; i < total; i++ {
		phases = append(phases,
			timedphase.Phase{Name: phaseChoice, Manual: true},
			timedphase.Phase{Name: fmt.Sprintf("%s-%d", phaseFeedback, i), Duration: FeedbackPause},
		)
	}
	return quiz{engine: timedphase.New(phases...), total: total}
}

func (q *quiz) start() timedphase.Arm {
	return q.engine.Start()
}

// answer commits one judgment and moves into the feedback pause.
func (q *quiz) answer(correct bool, payload any) (timedphase.Arm, bool) {
	p, ok := q.engine.Current()
	if !ok || p.Name != phaseChoice {
		return timedphase.Arm{}, false
	}
	if correct {
		q.correct++
	}
	q.lastCorrect = correct
	arm, _ := q.engine.Advance(payload)
	return arm, true
}

// expireFeedback ends the pause and advances to the next item or
// completes the stage. Stale fires are no-ops.
func (q *quiz) expireFeedback(gen uint64) bool {
	if _, ok := q.engine.Expire(gen); !ok {
		return false
	}
	q.idx++
	if q.engine.Done() {
		q.score = scoring.ChoiceAccuracy(q.correct, q.total)
		q.done = true
	}
	return true
}

func (q *quiz) inFeedback() bool {
	p, ok := q.engine.Current()
	return ok && p.Name != phaseChoice
}

// PatternQuizStage presents the sequence-completion items.
type PatternQuizStage struct {
	quiz
	items []Pattern
}

func NewPatternQuiz(rng *rand.Rand) *PatternQuizStage {
	items := shuffledPatterns(rng)
	return &PatternQuizStage{quiz: newQuiz(len(items)), items: items}
}

// Start begins the first item.
func (s *PatternQuizStage) Start() timedphase.Arm {
	return s.start()
}

// Choose judges the selected answer and arms the feedback pause.
func (s *PatternQuizStage) Choose(answer string) (timedphase.Arm, bool) {
	if s.idx >= len(s.items) {
		return timedphase.Arm{}, false
	}
	return s.answer(answer == s.items[s.idx].Next, answer)
}

// ExpireFeedback ends the feedback pause for generation gen.
func (s *PatternQuizStage) ExpireFeedback(gen uint64) bool {
	return s.expireFeedback(gen)
}

// Cancel tears down the stage and its pending timer.
func (s *PatternQuizStage) Cancel() {
	s.engine.Cancel()
}

// Current returns the active item and its 1-based position.
func (s *PatternQuizStage) Current() (Pattern, int, bool) {
	if s.done || s.idx >= len(s.items) {
		return Pattern{}, 0, false
	}
	return s.items[s.idx], s.idx + 1, true
}

// InFeedback reports whether the feedback pause is showing, and whether
// the last answer was correct.
func (s *PatternQuizStage) InFeedback() (bool, bool) {
	return s.inFeedback(), s.lastCorrect
}

// Score returns the stage score once all items are answered.
func (s *PatternQuizStage) Score() (float64, bool) {
	return s.score, s.done
}

// Total returns the item count.
func (s *PatternQuizStage) Total() int {
	return s.total
}

// MathQuizStage presents the true/false equations.
type MathQuizStage struct {
	quiz
	items []Equation
}

func NewMathQuiz(rng *rand.Rand) *MathQuizStage {
	items := shuffledEquations(rng)
	return &MathQuizStage{quiz: newQuiz(len(items)), items: items}
}

// Start begins the first item.
func (s *MathQuizStage) Start() timedphase.Arm {
	return s.start()
}

// Answer judges the true/false response and arms the feedback pause.
func (s *MathQuizStage) Answer(saysTrue bool) (timedphase.Arm, bool) {
	if s.idx >= len(s.items) {
		return timedphase.Arm{}, false
	}
	return s.answer(saysTrue == s.items[s.idx].Answer, saysTrue)
}

// ExpireFeedback ends the feedback pause for generation gen.
func (s *MathQuizStage) ExpireFeedback(gen uint64) bool {
	return s.expireFeedback(gen)
}

// Cancel tears down the stage and its pending timer.
func (s *MathQuizStage) Cancel() {
	s.engine.Cancel()
}

// Current returns the active item and its 1-based position.
func (s *MathQuizStage) Current() (Equation, int, bool) {
	if s.done || s.idx >= len(s.items) {
		return Equation{}, 0, false
	}
	return s.items[s.idx], s.idx + 1, true
}

// InFeedback reports whether the feedback pause is showing, and whether
// the last answer was correct.
func (s *MathQuizStage) InFeedback() (bool, bool) {
	return s.inFeedback(), s.lastCorrect
}

// Score returns the stage score once all items are answered.
func (s *MathQuizStage) Score() (float64, bool) {
	return s.score, s.done
}

// Total returns the item count.
func (s *MathQuizStage) Total() int {
	return s.total
}

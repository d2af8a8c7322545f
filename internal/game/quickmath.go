package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/abhisek/cognitrain/internal/scoring"
	"github.com/abhisek/cognitrain/internal/timedphase"
)

const (
	// ProblemCount is the fixed length of a Quick Math run.
	ProblemCount = 10

	// TimePerProblem is the per-problem answer window.
	TimePerProblem = 10 * time.Second

	// problemOperandMax bounds the generated operands (1..20).
	problemOperandMax = 20

	// shownTrueChance is the probability that the displayed answer is
	// the actual one.
	shownTrueChance = 0.7
)

// Problem is one true/false arithmetic statement. Shown may differ from
// the actual result by a small random offset; the player judges whether
// it is correct.
type Problem struct {
	Text   string
	Actual int
	Shown  int
}

// Truth reports whether the displayed answer is the actual one.
func (p Problem) Truth() bool {
	return p.Shown == p.Actual
}

// QuickMathRun is one playthrough of Quick Math: a fixed sequence of
// generated statements, each on its own clock. A single phase-engine run
// spans all problems, so its continuous generation counter makes a late
// problem timer harmless after the player has already answered and moved
// on.
type QuickMathRun struct {
	clk     timedphase.Clock
	started time.Time

	problems []Problem
	idx      int
	score    int
	correct  int

	state  State
	engine *timedphase.Engine
	result *Result
}

// NewQuickMath generates the problem sequence. The rng is injected so
// tests can fix the statements.
func NewQuickMath(rng *rand.Rand, clk timedphase.Clock) *QuickMathRun {
	problems := make([]Problem, ProblemCount)
	phases := make([]timedphase.Phase, ProblemCount)
	for i := range problems {
		problems[i] = generateProblem(rng)
		phases[i] = timedphase.Phase{Name: fmt.Sprintf("problem-%d", i), Duration: TimePerProblem}
	}
	return &QuickMathRun{
		clk:      clk,
		problems: problems,
		engine:   timedphase.New(phases...),
	}
}

// generateProblem builds one a±b statement with operands in 1..20. 70% of
// the time the shown answer is true; otherwise it is offset by ±1..5.
func generateProblem(rng *rand.Rand) Problem {
	a := rng.Intn(problemOperandMax) + 1
	b := rng.Intn(problemOperandMax) + 1
	op := "+"
	actual := a + b
	if rng.Float64() < 0.5 {
		op = "-"
		actual = a - b
	}

	shown := actual
	if rng.Float64() >= shownTrueChance {
		offset := rng.Intn(5) + 1
		if rng.Float64() < 0.5 {
			offset = -offset
		}
		shown = actual + offset
	}

	return Problem{
		Text:   fmt.Sprintf("%d %s %d", a, op, b),
		Actual: actual,
		Shown:  shown,
	}
}

// Start arms the first problem's clock.
func (g *QuickMathRun) Start() timedphase.Arm {
	g.started = g.clk.Now()
	return g.engine.Start()
}

// Answer judges the current problem: saysTrue is the player's claim that
// the shown answer is correct. The score delta commits immediately and
// the next problem's clock is armed, or the run ends after the last
// problem.
func (g *QuickMathRun) Answer(saysTrue bool) (timedphase.Arm, bool) {
	if g.state != StateRunning {
		return timedphase.Arm{}, false
	}
	correct := saysTrue == g.problems[g.idx].Truth()
	arm, ok := g.engine.Advance(saysTrue)
	if !ok {
		return timedphase.Arm{}, false
	}
	g.commit(correct)
	g.next()
	return arm, true
}

// ExpireProblem handles a problem clock firing: the problem counts as
// incorrect and the run advances. Stale fires are no-ops.
func (g *QuickMathRun) ExpireProblem(gen uint64) (timedphase.Arm, bool) {
	if g.state != StateRunning {
		return timedphase.Arm{}, false
	}
	arm, ok := g.engine.Expire(gen)
	if !ok {
		return timedphase.Arm{}, false
	}
	g.commit(false)
	g.next()
	return arm, true
}

func (g *QuickMathRun) commit(correct bool) {
	g.score += scoring.QuickMathDelta(correct)
	if correct {
		g.correct++
	}
}

func (g *QuickMathRun) next() {
	g.idx++
	if g.engine.Done() {
		g.end()
	}
}

// Cancel discards the run without producing a result.
func (g *QuickMathRun) Cancel() {
	if g.state != StateRunning {
		return
	}
	g.state = StateCancelled
	g.engine.Cancel()
}

func (g *QuickMathRun) end() {
	g.state = StateEnded
	now := g.clk.Now()
	g.result = &Result{
		Type:        QuickMath,
		Score:       g.score,
		Accuracy:    scoring.QuickMathAccuracy(g.correct, len(g.problems)),
		Elapsed:     now.Sub(g.started),
		CompletedAt: now,
	}
}

// Result returns the game outcome once the run has ended.
func (g *QuickMathRun) Result() (Result, bool) {
	if g.result == nil {
		return Result{}, false
	}
	return *g.result, true
}

// Current returns the active problem and its 1-based position.
func (g *QuickMathRun) Current() (Problem, int, bool) {
	if g.state != StateRunning || g.idx >= len(g.problems) {
		return Problem{}, 0, false
	}
	return g.problems[g.idx], g.idx + 1, true
}

// Score returns the running score.
func (g *QuickMathRun) Score() int {
	return g.score
}

// Total returns the problem count.
func (g *QuickMathRun) Total() int {
	return len(g.problems)
}

// State returns the run's lifecycle state.
func (g *QuickMathRun) State() State {
	return g.state
}

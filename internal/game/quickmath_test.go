package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/cognitrain/internal/timedphase"
)

func newTestQuickMath(t *testing.T) (*QuickMathRun, *timedphase.FakeClock) {
	t.Helper()
	clk := &timedphase.FakeClock{Current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	g := NewQuickMath(rand.New(rand.NewSource(1)), clk)
	return g, clk
}

func TestProblemGeneration(t *testing.T) {
	g, _ := newTestQuickMath(t)
	if g.Total() != ProblemCount {
		t.Fatalf("total = %d, want %d", g.Total(), ProblemCount)
	}
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		p := generateProblem(rng)
		if p.Text == "" {
			t.Fatal("empty problem text")
		}
		if p.Shown != p.Actual {
			diff := p.Shown - p.Actual
			if diff < -5 || diff > 5 || diff == 0 {
				t.Errorf("false answer offset = %d, want ±1..5", diff)
			}
		}
	}
}

func TestCorrectAndIncorrectDeltas(t *testing.T) {
	g, _ := newTestQuickMath(t)
	g.Start()

	p, n, ok := g.Current()
	if !ok || n != 1 {
		t.Fatalf("current = %d (%v), want problem 1", n, ok)
	}

	// Judge the first problem correctly.
	if _, ok := g.Answer(p.Truth()); !ok {
		t.Fatal("answer rejected")
	}
	if g.Score() != 100 {
		t.Errorf("score = %d, want 100", g.Score())
	}

	// Judge the second problem incorrectly.
	p, _, _ = g.Current()
	if _, ok := g.Answer(!p.Truth()); !ok {
		t.Fatal("answer rejected")
	}
	if g.Score() != 50 {
		t.Errorf("score = %d, want 50 (100 - 50)", g.Score())
	}
}

func TestTimeoutCountsAsIncorrect(t *testing.T) {
	g, _ := newTestQuickMath(t)
	arm := g.Start()

	next, ok := g.ExpireProblem(arm.Gen)
	if !ok {
		t.Fatal("timeout rejected")
	}
	if g.Score() != -50 {
		t.Errorf("score = %d, want -50", g.Score())
	}
	if !next.Armed() || next.Duration != TimePerProblem {
		t.Errorf("next arm = %+v, want %v clock", next, TimePerProblem)
	}
}

func TestLateTimerAfterAnswerIsNoOp(t *testing.T) {
	g, _ := newTestQuickMath(t)
	arm := g.Start()

	p, _, _ := g.Current()
	g.Answer(p.Truth())
	score := g.Score()

	// The first problem's clock fires after the answer already advanced.
	if _, ok := g.ExpireProblem(arm.Gen); ok {
		t.Error("stale problem timer advanced the run")
	}
	if g.Score() != score {
		t.Errorf("score changed by stale timer: %d -> %d", score, g.Score())
	}
}

func TestRunEndsAfterLastProblem(t *testing.T) {
	g, clk := newTestQuickMath(t)
	g.Start()
	clk.Step(42 * time.Second)

	correct := 0
	for i := 0; i < ProblemCount; i++ {
		p, _, ok := g.Current()
		if !ok {
			t.Fatalf("no current problem at %d", i)
		}
		ans := p.Truth()
		if i%3 == 0 {
			ans = !ans // miss every third
		} else {
			correct++
		}
		if _, ok := g.Answer(ans); !ok {
			t.Fatalf("answer %d rejected", i)
		}
	}

	if g.State() != StateEnded {
		t.Fatalf("state = %v, want ended", g.State())
	}
	res, ok := g.Result()
	if !ok {
		t.Fatal("no result")
	}
	wantScore := correct*100 + (ProblemCount-correct)*-50
	if res.Score != wantScore {
		t.Errorf("score = %d, want %d", res.Score, wantScore)
	}
	wantAcc := float64(correct) / ProblemCount * 100
	if res.Accuracy != wantAcc {
		t.Errorf("accuracy = %v, want %v", res.Accuracy, wantAcc)
	}
	if res.Elapsed != 42*time.Second {
		t.Errorf("elapsed = %v, want 42s", res.Elapsed)
	}
}

func TestCancelMidRun(t *testing.T) {
	g, _ := newTestQuickMath(t)
	arm := g.Start()

	p, _, _ := g.Current()
	g.Answer(p.Truth())

	g.Cancel()

	if _, ok := g.Result(); ok {
		t.Error("cancelled run produced a result")
	}
	if _, ok := g.ExpireProblem(arm.Gen + 1); ok {
		t.Error("problem timer processed after cancel")
	}
	if _, ok := g.Answer(true); ok {
		t.Error("answer accepted after cancel")
	}
}

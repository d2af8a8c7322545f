package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/abhisek/cognitrain/internal/timedphase"
)

func newTestMatch(t *testing.T) (*MemoryMatchRun, *timedphase.FakeClock) {
	t.Helper()
	clk := &timedphase.FakeClock{Current: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	g := NewMemoryMatch(rand.New(rand.NewSource(1)), clk)
	return g, clk
}

// pairIndex finds the other card with the same icon as cards[i].
func pairIndex(cards []Card, i int) int {
	for j, c := range cards {
		if j != i && c.Icon == cards[i].Icon {
			return j
		}
	}
	return -1
}

// mismatchIndex finds a card with a different icon than cards[i].
func mismatchIndex(cards []Card, i int) int {
	for j, c := range cards {
		if j != i && c.Icon != cards[i].Icon {
			return j
		}
	}
	return -1
}

func TestBoardLayout(t *testing.T) {
	g, _ := newTestMatch(t)
	cards := g.Cards()
	if len(cards) != MatchCardCount {
		t.Fatalf("cards = %d, want %d", len(cards), MatchCardCount)
	}
	counts := map[string]int{}
	for _, c := range cards {
		counts[c.Icon]++
		if c.FaceUp || c.Matched {
			t.Error("card dealt face-up or matched")
		}
	}
	if len(counts) != MatchCardCount/2 {
		t.Errorf("distinct icons = %d, want %d", len(counts), MatchCardCount/2)
	}
	for ic, n := range counts {
		if n != 2 {
			t.Errorf("icon %s appears %d times, want 2", ic, n)
		}
	}
}

func TestMatchScoresAndLocks(t *testing.T) {
	g, _ := newTestMatch(t)
	g.Start()

	first := 0
	second := pairIndex(g.Cards(), first)

	if _, ok := g.FlipCard(first); !ok {
		t.Fatal("first flip rejected")
	}
	arm, ok := g.FlipCard(second)
	if !ok {
		t.Fatal("second flip rejected")
	}
	if arm.Armed() {
		t.Error("match armed a flip-back timer")
	}
	if g.Score() != 100 || g.Pairs() != 1 {
		t.Errorf("score = %d, pairs = %d, want 100, 1", g.Score(), g.Pairs())
	}
	if !g.Cards()[first].Matched || !g.Cards()[second].Matched {
		t.Error("matched cards not locked")
	}
}

func TestMismatchBlocksThirdFlip(t *testing.T) {
	g, _ := newTestMatch(t)
	g.Start()

	first := 0
	second := mismatchIndex(g.Cards(), first)
	g.FlipCard(first)
	arm, ok := g.FlipCard(second)
	if !ok {
		t.Fatal("second flip rejected")
	}
	if !arm.Armed() || arm.Duration != FlipBackDelay {
		t.Fatalf("expected flip-back arm of %v, got %+v", FlipBackDelay, arm)
	}

	// A third flip while the mismatch is unresolved must be rejected.
	third := pairIndex(g.Cards(), first)
	if _, ok := g.FlipCard(third); ok {
		t.Error("third flip accepted while mismatch pending")
	}
	if g.Cards()[third].FaceUp {
		t.Error("third card flipped despite rejection")
	}

	// Resolution unblocks the board.
	if !g.ResolveFlipBack(arm.Gen) {
		t.Fatal("flip-back rejected")
	}
	if g.Cards()[first].FaceUp || g.Cards()[second].FaceUp {
		t.Error("mismatched cards still face-up after flip-back")
	}
	if _, ok := g.FlipCard(third); !ok {
		t.Error("flip rejected after mismatch resolved")
	}
}

func TestStaleFlipBackIsNoOp(t *testing.T) {
	g, _ := newTestMatch(t)
	g.Start()

	first := 0
	second := mismatchIndex(g.Cards(), first)
	g.FlipCard(first)
	arm, _ := g.FlipCard(second)

	g.ResolveFlipBack(arm.Gen)
	if g.ResolveFlipBack(arm.Gen) {
		t.Error("second fire of the same flip-back resolved again")
	}
}

func TestAllPairsEndsGame(t *testing.T) {
	g, clk := newTestMatch(t)
	g.Start()
	clk.Step(30 * time.Second)

	matched := map[int]bool{}
	for i := range g.Cards() {
		if matched[i] {
			continue
		}
		j := pairIndex(g.Cards(), i)
		g.FlipCard(i)
		g.FlipCard(j)
		matched[i], matched[j] = true, true
	}

	if g.State() != StateEnded {
		t.Fatalf("state = %v, want ended", g.State())
	}
	res, ok := g.Result()
	if !ok {
		t.Fatal("no result after completion")
	}
	if res.Score != 400 {
		t.Errorf("score = %d, want 400", res.Score)
	}
	if res.Accuracy != 100 {
		t.Errorf("accuracy = %v, want 100", res.Accuracy)
	}
	if res.Elapsed != 30*time.Second {
		t.Errorf("elapsed = %v, want 30s", res.Elapsed)
	}
}

func TestClockExpiryEndsGame(t *testing.T) {
	g, _ := newTestMatch(t)
	arm := g.Start()

	first := 0
	g.FlipCard(first)
	g.FlipCard(pairIndex(g.Cards(), first))

	if !g.ExpireClock(arm.Gen) {
		t.Fatal("clock expiry rejected")
	}
	res, ok := g.Result()
	if !ok {
		t.Fatal("no result after clock expiry")
	}
	if res.Score != 100 {
		t.Errorf("score = %d, want 100", res.Score)
	}
	if res.Accuracy != 25 {
		t.Errorf("accuracy = %v, want 25", res.Accuracy)
	}
}

func TestCancelEmitsNoResult(t *testing.T) {
	g, _ := newTestMatch(t)
	clockArm := g.Start()

	first := 0
	second := mismatchIndex(g.Cards(), first)
	g.FlipCard(first)
	flipArm, _ := g.FlipCard(second)

	g.Cancel()

	if _, ok := g.Result(); ok {
		t.Error("cancelled run produced a result")
	}
	// Pending timers firing after cancellation change nothing.
	if g.ResolveFlipBack(flipArm.Gen) {
		t.Error("flip-back resolved after cancel")
	}
	if g.ExpireClock(clockArm.Gen) {
		t.Error("clock expiry processed after cancel")
	}
	if _, ok := g.FlipCard(0); ok {
		t.Error("flip accepted after cancel")
	}
	if _, ok := g.Result(); ok {
		t.Error("result appeared after post-cancel events")
	}
}

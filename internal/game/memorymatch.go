package game

import (
	"math/rand"
	"time"

	"github.com/abhisek/cognitrain/internal/scoring"
	"github.com/abhisek/cognitrain/internal/timedphase"
)

const (
	// MatchCardCount is the board size: four icon pairs.
	MatchCardCount = 8

	// MatchDuration is the overall game clock.
	MatchDuration = 60 * time.Second

	// FlipBackDelay is how long a mismatched pair stays face-up.
	FlipBackDelay = 1000 * time.Millisecond
)

var matchIcons = []string{"🧠", "💡", "🌟", "🧩"}

// Card is one board position.
type Card struct {
	Icon    string
	FaceUp  bool
	Matched bool
}

// MemoryMatchRun is one playthrough of Memory Match. The overall clock is
// a phase-engine run; the mismatch flip-back delay carries its own
// generation counter because an arbitrary number of mismatches can occur
// within one game and each must invalidate the last.
type MemoryMatchRun struct {
	clk     timedphase.Clock
	started time.Time

	cards   []Card
	flipped []int
	pairs   int
	score   int

	state State
	clock *timedphase.Engine

	flipGen     uint64
	flipPending bool

	result *Result
}

// NewMemoryMatch deals a shuffled board. The rng is injected so tests can
// fix the layout.
func NewMemoryMatch(rng *rand.Rand, clk timedphase.Clock) *MemoryMatchRun {
	icons := make([]string, 0, MatchCardCount)
	for _, ic := range matchIcons {
		icons = append(icons, ic, ic)
	}
	rng.Shuffle(len(icons), func(i, j int) {
		icons[i], icons[j] = icons[j], icons[i]
	})

	cards := make([]Card, len(icons))
	for i, ic := range icons {
		cards[i] = Card{Icon: ic}
	}

	return &MemoryMatchRun{
		clk:   clk,
		cards: cards,
		clock: timedphase.New(timedphase.Phase{Name: "clock", Duration: MatchDuration}),
	}
}

// Start begins the game clock and returns its timer directive.
func (g *MemoryMatchRun) Start() timedphase.Arm {
	g.started = g.clk.Now()
	return g.clock.Start()
}

// FlipCard reveals the card at index i. The flip is rejected when the game
// is over, the index is invalid, the card is already face-up or matched,
// or two cards are face-up awaiting resolution. A second flip resolves
// immediately: a match locks both cards and scores; a mismatch returns an
// armed flip-back directive and blocks further flips until it fires.
func (g *MemoryMatchRun) FlipCard(i int) (timedphase.Arm, bool) {
	if g.state != StateRunning || i < 0 || i >= len(g.cards) {
		return timedphase.Arm{}, false
	}
	if g.cards[i].FaceUp || g.cards[i].Matched || len(g.flipped) == 2 {
		return timedphase.Arm{}, false
	}

	g.cards[i].FaceUp = true
	g.flipped = append(g.flipped, i)
	if len(g.flipped) < 2 {
		return timedphase.Arm{}, true
	}

	a, b := g.flipped[0], g.flipped[1]
	if g.cards[a].Icon == g.cards[b].Icon {
		g.cards[a].Matched = true
		g.cards[b].Matched = true
		g.pairs++
		g.score += scoring.MatchReward
		g.flipped = g.flipped[:0]
		if g.pairs*2 == len(g.cards) {
			g.end()
		}
		return timedphase.Arm{}, true
	}

	g.flipGen++
	g.flipPending = true
	return timedphase.Arm{Gen: g.flipGen, Duration: FlipBackDelay}, true
}

// ResolveFlipBack handles the flip-back timer for generation gen, turning
// the mismatched pair face-down again. Stale or post-game fires are
// no-ops.
func (g *MemoryMatchRun) ResolveFlipBack(gen uint64) bool {
	if g.state != StateRunning || !g.flipPending || gen != g.flipGen {
		return false
	}
	for _, i := range g.flipped {
		g.cards[i].FaceUp = false
	}
	g.flipped = g.flipped[:0]
	g.flipPending = false
	return true
}

// ExpireClock handles the overall game clock firing. Ends the game with
// whatever was matched.
func (g *MemoryMatchRun) ExpireClock(gen uint64) bool {
	if g.state != StateRunning {
		return false
	}
	if _, ok := g.clock.Expire(gen); !ok {
		return false
	}
	g.end()
	return true
}

// Cancel discards the run without producing a result.
func (g *MemoryMatchRun) Cancel() {
	if g.state != StateRunning {
		return
	}
	g.state = StateCancelled
	g.clock.Cancel()
	g.flipPending = false
	g.flipGen++
}

func (g *MemoryMatchRun) end() {
	g.state = StateEnded
	g.clock.Cancel()
	g.flipPending = false
	g.flipGen++

	now := g.clk.Now()
	g.result = &Result{
		Type:        MemoryMatch,
		Score:       scoring.MemoryMatchScore(g.pairs),
		Accuracy:    scoring.MemoryMatchAccuracy(g.pairs, len(g.cards)),
		Elapsed:     now.Sub(g.started),
		CompletedAt: now,
	}
}

// Result returns the game outcome once the run has ended.
func (g *MemoryMatchRun) Result() (Result, bool) {
	if g.result == nil {
		return Result{}, false
	}
	return *g.result, true
}

// Cards returns the board for rendering.
func (g *MemoryMatchRun) Cards() []Card {
	return g.cards
}

// Score returns the running score.
func (g *MemoryMatchRun) Score() int {
	return g.score
}

// Pairs returns the number of matched pairs so far.
func (g *MemoryMatchRun) Pairs() int {
	return g.pairs
}

// State returns the run's lifecycle state.
func (g *MemoryMatchRun) State() State {
	return g.state
}

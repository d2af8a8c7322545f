// Package assessment sequences the five-stage cognitive battery and
// aggregates its scores.
package assessment

import (
	"math/rand"
	"strings"
	"time"
)

const (
	// NumberCount digits are shown for NumberDisplayTime, then recalled.
	NumberCount       = 5
	NumberDisplayTime = 3000 * time.Millisecond

	// The full word pool is shown for WordDisplayTime, then recalled.
	WordDisplayTime = 5000 * time.Millisecond

	// ReactionTrials wait→react cycles, each with a random delay in
	// [ReactionMinDelay, ReactionMaxDelay).
	ReactionTrials   = 3
	ReactionMinDelay = 1000 * time.Millisecond
	ReactionMaxDelay = 3000 * time.Millisecond

	// FeedbackPause is shown after each pattern or equation answer
	// before auto-advancing.
	FeedbackPause = 1500 * time.Millisecond
)

var wordPool = []string{
	"apple", "house", "river", "cloud", "chair",
	"music", "dream", "light", "ocean", "happy",
}

// Pattern is one sequence-completion item.
type Pattern struct {
	Sequence []string
	Next     string
	Hint     string
	Choices  []string
}

var patterns = []Pattern{
	{
		Sequence: []string{"A", "B", "C", "D"},
		Next:     "E",
		Hint:     "Alphabetical sequence",
		Choices:  []string{"C", "F", "E", "Z"},
	},
	{
		Sequence: []string{"2", "4", "6", "8"},
		Next:     "10",
		Hint:     "Even numbers",
		Choices:  []string{"9", "11", "10", "12"},
	},
	{
		Sequence: []string{"▲", "△", "▲", "△"},
		Next:     "▲",
		Hint:     "Alternating shapes",
		Choices:  []string{"▲", "△", "◼︎", "◻︎"},
	},
	{
		Sequence: []string{"1", "1", "2", "3", "5"},
		Next:     "8",
		Hint:     "Fibonacci sequence",
		Choices:  []string{"7", "8", "9", "13"},
	},
	{
		Sequence: []string{"Sun", "Mon", "Tue"},
		Next:     "Wed",
		Hint:     "Days of the week",
		Choices:  []string{"Sat", "Thur", "Wed", "Fri"},
	},
}

// Equation is one true/false mental-arithmetic item.
type Equation struct {
	Problem string
	Answer  bool
}

var equations = []Equation{
	{Problem: "8 + 5 - 3 = 10", Answer: true},
	{Problem: "12 - 4 + 7 = 15", Answer: true},
	{Problem: "9 + 6 - 2 = 12", Answer: false},
	{Problem: "7 + 3 - 5 = 5", Answer: true},
	{Problem: "15 - 8 + 1 = 6", Answer: false},
}

// randomDigits generates the digit string for number recall.
func randomDigits(rng *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rng.Intn(9)))
	}
	return b.String()
}

// shuffledWords returns the word pool in random order.
func shuffledWords(rng *rand.Rand) []string {
	words := make([]string, len(wordPool))
	copy(words, wordPool)
	rng.Shuffle(len(words), func(i, j int) {
		words[i], words[j] = words[j], words[i]
	})
	return words
}

// shuffledPatterns returns the pattern items in random order.
func shuffledPatterns(rng *rand.Rand) []Pattern {
	ps := make([]Pattern, len(patterns))
	copy(ps, patterns)
	rng.Shuffle(len(ps), func(i, j int) {
		ps[i], ps[j] = ps[j], ps[i]
	})
	return ps
}

// shuffledEquations returns the equation items in random order.
func shuffledEquations(rng *rand.Rand) []Equation {
	eqs := make([]Equation, len(equations))
	copy(eqs, equations)
	rng.Shuffle(len(eqs), func(i, j int) {
		eqs[i], eqs[j] = eqs[j], eqs[i]
	})
	return eqs
}

// reactionDelay picks one trial's waiting duration.
func reactionDelay(rng *rand.Rand) time.Duration {
	spread := ReactionMaxDelay - ReactionMinDelay
	return ReactionMinDelay + time.Duration(rng.Int63n(int64(spread)))
}

// Package scoring converts raw trial data into 0-100 stage scores and
// game score deltas. Everything here is a pure function; the state
// machines in assessment and game own the raw data and call in once per
// stage or turn.
package scoring

import (
	"strings"
	"time"
	"unicode"
)

const (
	// ReactionCeiling is the average reaction time that maps to a score
	// of zero. Faster averages scale linearly up to 100 at 0ms.
	ReactionCeiling = 500 * time.Millisecond

	// EarlyClickPenalty is the sample recorded for a trial where the user
	// clicked before the stimulus appeared.
	EarlyClickPenalty = 1000 * time.Millisecond

	// MatchReward is the flat score per matched pair in Memory Match.
	MatchReward = 100

	// QuickMathReward and QuickMathPenalty are the per-judgment deltas.
	QuickMathReward  = 100
	QuickMathPenalty = -50
)

// NumberRecall scores a digit-recall attempt positionally. Non-digit
// characters in the input are filtered out before comparison, so stray
// spaces or punctuation cost nothing; missing or wrong digits do.
func NumberRecall(input, target string) float64 {
	if len(target) == 0 {
		return 0
	}
	var digits []rune
	for _, r := range input {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
		}
	}
	correct := 0
	for i, r := range target {
		if i < len(digits) && digits[i] == r {
			correct++
		}
	}
	return float64(correct) / float64(len(target)) * 100
}

// WordRecall scores a word-recall attempt. Matching is case-insensitive
// and order-independent; the input is split on whitespace and commas, and
// each remembered word can be consumed at most once, so repeating a guess
// never scores twice.
func WordRecall(input string, remembered []string) float64 {
	if len(remembered) == 0 {
		return 0
	}

	pool := make(map[string]int, len(remembered))
	for _, w := range remembered {
		pool[strings.ToLower(w)]++
	}

	tokens := strings.FieldsFunc(input, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	matched := 0
	for _, tok := range tokens {
		w := strings.ToLower(strings.TrimSpace(tok))
		if w == "" {
			continue
		}
		if pool[w] > 0 {
			pool[w]--
			matched++
		}
	}
	return float64(matched) / float64(len(remembered)) * 100
}

// ChoiceAccuracy scores a multiple-choice or true/false stage as the
// fraction of correct answers.
func ChoiceAccuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// ReactionTime converts reaction samples to a score: 100 at an average of
// 0ms, falling linearly to 0 at ReactionCeiling, clamped so slow averages
// never go negative.
func ReactionTime(samples []time.Duration) float64 {
	if len(samples) == 0 {
		return 0
	}
	var total time.Duration
	for _, s := range samples {
		total += s
	}
	avg := float64(total.Milliseconds()) / float64(len(samples))
	score := 100 * (1 - avg/float64(ReactionCeiling.Milliseconds()))
	if score < 0 {
		return 0
	}
	return score
}

// MemoryMatchScore is the flat per-pair reward; no time bonus.
func MemoryMatchScore(matchedPairs int) int {
	return matchedPairs * MatchReward
}

// MemoryMatchAccuracy is the fraction of the board cleared.
func MemoryMatchAccuracy(matchedPairs, totalCards int) float64 {
	if totalCards == 0 {
		return 0
	}
	return float64(matchedPairs*2) / float64(totalCards) * 100
}

// QuickMathDelta is the score change for one judgment. Timeouts count as
// incorrect.
func QuickMathDelta(correct bool) int {
	if correct {
		return QuickMathReward
	}
	return QuickMathPenalty
}

// QuickMathAccuracy is the fraction of problems judged correctly.
func QuickMathAccuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

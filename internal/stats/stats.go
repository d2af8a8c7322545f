// Package stats maintains the engagement counters: games played and the
// daily streak. The arithmetic is whole calendar days, not 24-hour
// windows, so a game at 23:59 and one at 00:01 the next day still extend
// the streak.
package stats

import "time"

// DateLayout is the persisted form of LastPlayed.
const DateLayout = "2006-01-02"

// Snapshot holds the persisted counters. LastPlayed is empty until the
// first game completes.
type Snapshot struct {
	GamesPlayed   int
	CurrentStreak int
	LastPlayed    string
}

// Update applies one completed game to the snapshot. GamesPlayed always
// increments. The streak extends only when the previous play was exactly
// one calendar day ago; the same day leaves it unchanged, and any other
// gap (including clock skew backwards) resets it to 1. Call at most once
// per completed game.
func Update(s Snapshot, today time.Time) Snapshot {
	out := s
	out.GamesPlayed++

	todayStr := today.Format(DateLayout)
	switch {
	case s.LastPlayed == "":
		out.CurrentStreak = 1
	case s.LastPlayed == todayStr:
		// Already played today; streak unchanged.
	case dayDiff(s.LastPlayed, todayStr) == 1:
		out.CurrentStreak++
	default:
		out.CurrentStreak = 1
	}
	out.LastPlayed = todayStr
	return out
}

// dayDiff returns whole days from one date string to another. An
// unparseable date yields a sentinel that the caller treats as a reset.
func dayDiff(from, to string) int {
	a, err := time.Parse(DateLayout, from)
	if err != nil {
		return -1
	}
	b, err := time.Parse(DateLayout, to)
	if err != nil {
		return -1
	}
	return int(b.Sub(a).Hours() / 24)
}

package stats

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestConsecutiveDaysExtendStreak(t *testing.T) {
	s := Snapshot{}
	dates := []string{"2025-06-01", "2025-06-02", "2025-06-03"}
	for i, d := range dates {
		s = Update(s, day(d))
		if s.CurrentStreak != i+1 {
			t.Errorf("after %s: streak = %d, want %d", d, s.CurrentStreak, i+1)
		}
	}
	if s.GamesPlayed != 3 {
		t.Errorf("gamesPlayed = %d, want 3", s.GamesPlayed)
	}
}

func TestGapResetsStreak(t *testing.T) {
	s := Snapshot{GamesPlayed: 10, CurrentStreak: 5, LastPlayed: "2025-06-01"}
	s = Update(s, day("2025-06-04"))
	if s.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 after 3-day gap", s.CurrentStreak)
	}
	if s.GamesPlayed != 11 {
		t.Errorf("gamesPlayed = %d, want 11", s.GamesPlayed)
	}
	if s.LastPlayed != "2025-06-04" {
		t.Errorf("lastPlayed = %q, want 2025-06-04", s.LastPlayed)
	}
}

func TestSameDayKeepsStreak(t *testing.T) {
	s := Snapshot{}
	s = Update(s, day("2025-06-01"))
	s = Update(s, day("2025-06-01"))
	if s.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 after two same-day games", s.CurrentStreak)
	}
	if s.GamesPlayed != 2 {
		t.Errorf("gamesPlayed = %d, want 2 (both games counted)", s.GamesPlayed)
	}
}

func TestClockSkewBackwardsResets(t *testing.T) {
	s := Snapshot{GamesPlayed: 4, CurrentStreak: 4, LastPlayed: "2025-06-10"}
	s = Update(s, day("2025-06-08"))
	if s.CurrentStreak != 1 {
		t.Errorf("streak = %d, want 1 on backwards date", s.CurrentStreak)
	}
}

func TestFirstGameStartsStreak(t *testing.T) {
	s := Update(Snapshot{}, day("2025-06-01"))
	if s.CurrentStreak != 1 || s.GamesPlayed != 1 || s.LastPlayed != "2025-06-01" {
		t.Errorf("snapshot = %+v, want streak 1, played 1", s)
	}
}

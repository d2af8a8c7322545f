package app

import (
	"testing"

	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/stats"
	"github.com/abhisek/cognitrain/internal/store"
)

func TestStateRoundTrip(t *testing.T) {
	s := newUserState()
	s.Name = "Ada"
	s.Assessment = &assessment.ScoreSet{
		MemoryNumbers: 60,
		MemoryWords:   70,
		Speed:         80,
		Logic:         55,
		WorkingMemory: 65,
		Narrative:     "Sharp and steady.",
	}
	s.Stats = stats.Snapshot{GamesPlayed: 3, CurrentStreak: 2, LastPlayed: "2026-09-01"}
	s.Settings["theme"] = "light"

	got := stateFromSnapshot(&store.Snapshot{Data: s.snapshotData()})

	if got.Name != "Ada" {
		t.Errorf("name = %q, want Ada", got.Name)
	}
	if got.Assessment == nil || *got.Assessment != *s.Assessment {
		t.Errorf("assessment = %+v, want %+v", got.Assessment, s.Assessment)
	}
	if got.Stats != s.Stats {
		t.Errorf("stats = %+v, want %+v", got.Stats, s.Stats)
	}
	if got.Settings["theme"] != "light" {
		t.Errorf("theme = %q, want light", got.Settings["theme"])
	}
}

func TestStateFromNilSnapshot(t *testing.T) {
	s := stateFromSnapshot(nil)
	if s.Name != "" || s.Assessment != nil {
		t.Error("expected an empty state from a fresh database")
	}
	if s.Settings == nil {
		t.Error("expected settings map to be initialized")
	}
}

func TestHasProfile(t *testing.T) {
	s := newUserState()
	if s.hasProfile() {
		t.Error("empty state should not have a profile")
	}

	s.Name = "Ada"
	if s.hasProfile() {
		t.Error("a name without an assessment is not a full profile")
	}

	s.Assessment = &assessment.ScoreSet{}
	if !s.hasProfile() {
		t.Error("name plus assessment should count as a profile")
	}
}

func TestDarkThemeDefault(t *testing.T) {
	s := newUserState()
	if !s.darkTheme() {
		t.Error("dark theme should be the default")
	}

	s.Settings["theme"] = "light"
	if s.darkTheme() {
		t.Error("light setting should disable dark theme")
	}
}

func TestEmptyStatsOmittedFromSnapshot(t *testing.T) {
	s := newUserState()
	s.Name = "Ada"

	d := s.snapshotData()
	if d.Stats != nil {
		t.Error("expected zero stats to be omitted")
	}
	if d.Assessment != nil {
		t.Error("expected missing assessment to be omitted")
	}
	if d.Profile == nil || d.Profile.Name != "Ada" {
		t.Error("expected the profile to be persisted")
	}
}

package app

import (
	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/stats"
	"github.com/abhisek/cognitrain/internal/store"
)

const snapshotVersion = 1

// userState is the in-memory copy of the persisted user: profile,
// latest assessment, engagement counters, settings. The root model owns
// it; screens receive the pieces they render and report changes back as
// flow messages.
type userState struct {
	Name       string
	Assessment *assessment.ScoreSet
	Stats      stats.Snapshot
	Settings   map[string]string
}

func newUserState() *userState {
	return &userState{Settings: map[string]string{}}
}

// stateFromSnapshot rebuilds the state from the latest snapshot. A nil
// snapshot (fresh database) yields the empty state.
func stateFromSnapshot(snap *store.Snapshot) *userState {
	s := newUserState()
	if snap == nil {
		return s
	}

	d := snap.Data
	if d.Profile != nil {
		s.Name = d.Profile.Name
	}
	if d.Assessment != nil {
		s.Assessment = &assessment.ScoreSet{
			MemoryNumbers: d.Assessment.MemoryNumbers,
			MemoryWords:   d.Assessment.MemoryWords,
			Speed:         d.Assessment.Speed,
			Logic:         d.Assessment.Logic,
			WorkingMemory: d.Assessment.WorkingMemory,
			Narrative:     d.Assessment.Narrative,
		}
	}
	if d.Stats != nil {
		s.Stats = stats.Snapshot{
			GamesPlayed:   d.Stats.GamesPlayed,
			CurrentStreak: d.Stats.CurrentStreak,
			LastPlayed:    d.Stats.LastPlayed,
		}
	}
	for k, v := range d.Settings {
		s.Settings[k] = v
	}
	return s
}

// snapshotData converts the state for persistence.
func (s *userState) snapshotData() store.SnapshotData {
	d := store.SnapshotData{Version: snapshotVersion}

	if s.Name != "" {
		d.Profile = &store.ProfileData{Name: s.Name}
	}
	if s.Assessment != nil {
		d.Assessment = &store.AssessmentData{
			MemoryNumbers: s.Assessment.MemoryNumbers,
			MemoryWords:   s.Assessment.MemoryWords,
			Speed:         s.Assessment.Speed,
			Logic:         s.Assessment.Logic,
			WorkingMemory: s.Assessment.WorkingMemory,
			Narrative:     s.Assessment.Narrative,
		}
	}
	if s.Stats.GamesPlayed > 0 {
		d.Stats = &store.StatsData{
			GamesPlayed:   s.Stats.GamesPlayed,
			CurrentStreak: s.Stats.CurrentStreak,
			LastPlayed:    s.Stats.LastPlayed,
		}
	}
	if len(s.Settings) > 0 {
		d.Settings = s.Settings
	}
	return d
}

// hasProfile reports whether a returning user should land on the
// dashboard.
func (s *userState) hasProfile() bool {
	return s.Name != "" && s.Assessment != nil
}

// darkTheme reports the persisted theme choice. Dark is the default.
func (s *userState) darkTheme() bool {
	return s.Settings["theme"] != "light"
}

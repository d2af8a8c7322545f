package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Timestamp: now,
		Data: SnapshotData{
			Version: 1,
			Profile: &ProfileData{Name: "Ada"},
			Stats:   &StatsData{GamesPlayed: 3, CurrentStreak: 2, LastPlayed: "2025-06-01"},
		},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 1 {
		t.Errorf("sequence = %d, want 1 from the global counter", snap.Sequence)
	}
	if snap.Data.Profile == nil || snap.Data.Profile.Name != "Ada" {
		t.Errorf("profile = %+v, want name Ada", snap.Data.Profile)
	}
	if snap.Data.Stats == nil || snap.Data.Stats.CurrentStreak != 2 {
		t.Errorf("stats = %+v, want streak 2", snap.Data.Stats)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: i + 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 3 {
		t.Errorf("sequence = %d, want 3", snap.Sequence)
	}
	if snap.Data.Version != 3 {
		t.Errorf("data.version = %d, want 3", snap.Data.Version)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be sequence 7.
	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotSequenceOrdersAgainstEvents(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := s.EventRepo()
	snaps := s.SnapshotRepo()

	if err := events.AppendGameEvent(ctx, GameEventData{SessionID: "a", GameType: "quick_math"}); err != nil {
		t.Fatalf("append before: %v", err)
	}
	saved := &Snapshot{Timestamp: time.Now(), Data: SnapshotData{Version: 1}}
	if err := snaps.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := events.AppendGameEvent(ctx, GameEventData{SessionID: "b", GameType: "quick_math"}); err != nil {
		t.Fatalf("append after: %v", err)
	}

	if saved.Sequence != 2 {
		t.Errorf("snapshot sequence = %d, want 2 (between the two events)", saved.Sequence)
	}
	snap, err := snaps.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 2 {
		t.Errorf("persisted snapshot sequence = %d, want 2", snap.Sequence)
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestGameEventsRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	games := []GameEventData{
		{SessionID: "a", GameType: "memory_match", Score: 400, Accuracy: 100, DurationSecs: 45},
		{SessionID: "b", GameType: "quick_math", Score: 650, Accuracy: 80, DurationSecs: 60},
		{SessionID: "c", GameType: "memory_match", Score: 200, Accuracy: 50, DurationSecs: 60},
	}
	for i, g := range games {
		if err := repo.AppendGameEvent(ctx, g); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	results, err := repo.GameResults(ctx, "memory_match", QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	// Oldest first.
	if results[0].SessionID != "a" || results[1].SessionID != "c" {
		t.Errorf("order = %q, %q, want a, c", results[0].SessionID, results[1].SessionID)
	}
	if results[0].Score != 400 {
		t.Errorf("score = %d, want 400", results[0].Score)
	}

	limited, err := repo.GameResults(ctx, "memory_match", QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("limited query: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited results = %d, want 1", len(limited))
	}
}

func TestAssessmentEventAppend(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendAssessmentEvent(ctx, AssessmentEventData{
		SessionID:     "sess-1",
		MemoryNumbers: 100,
		MemoryWords:   70,
		Speed:         82.5,
		Logic:         60,
		WorkingMemory: 80,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().AssessmentEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestAutoMigrationCreatesTable(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	var name string
	err := db.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name='snapshots'",
	).Scan(&name)
	if err != nil {
		t.Fatalf("query sqlite_master: %v", err)
	}
	if name != "snapshots" {
		t.Errorf("table name = %q, want 'snapshots'", name)
	}
}

package dashboard

import (
	"testing"

	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/game"
	"github.com/abhisek/cognitrain/internal/stats"
)

func TestRankedGamesWithoutAssessment(t *testing.T) {
	d := New("Ada", nil, stats.Snapshot{})
	got := d.RankedGames()
	if len(got) != 2 {
		t.Fatalf("expected both games, got %d", len(got))
	}
	if got[0] != game.MemoryMatch || got[1] != game.QuickMath {
		t.Errorf("expected memory match first without an assessment, got %v", got)
	}
}

func TestRankedGamesWeakestFirst(t *testing.T) {
	tests := []struct {
		name   string
		scores assessment.ScoreSet
		want   []game.Type
	}{
		{
			name: "weak memory",
			scores: assessment.ScoreSet{
				MemoryNumbers: 30,
				MemoryWords:   40,
				Speed:         80,
				WorkingMemory: 90,
			},
			want: []game.Type{game.MemoryMatch, game.QuickMath},
		},
		{
			name: "weak processing",
			scores: assessment.ScoreSet{
				MemoryNumbers: 85,
				MemoryWords:   90,
				Speed:         40,
				WorkingMemory: 35,
			},
			want: []game.Type{game.QuickMath, game.MemoryMatch},
		},
		{
			name: "tie goes to memory match",
			scores: assessment.ScoreSet{
				MemoryNumbers: 50,
				MemoryWords:   50,
				Speed:         50,
				WorkingMemory: 50,
			},
			want: []game.Type{game.MemoryMatch, game.QuickMath},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New("Ada", &tt.scores, stats.Snapshot{})
			got := d.RankedGames()
			if len(got) != 2 {
				t.Fatalf("expected both games, got %d", len(got))
			}
			if got[0] != tt.want[0] || got[1] != tt.want[1] {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestMenuListsBothGamesWithRecommendation(t *testing.T) {
	scores := assessment.ScoreSet{
		MemoryNumbers: 85,
		MemoryWords:   90,
		Speed:         40,
		WorkingMemory: 35,
	}
	d := New("Ada", &scores, stats.Snapshot{})

	labels := make([]string, len(d.menu.Items))
	for i, item := range d.menu.Items {
		labels[i] = item.Label
	}
	want := []string{
		"Play Quick Math (recommended)",
		"Play Memory Match",
		"Browse games",
		"Retake assessment",
		"Quit",
	}
	if len(labels) != len(want) {
		t.Fatalf("menu labels = %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("menu item %d = %q, want %q", i, labels[i], want[i])
		}
	}
}

package gameselect

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cognitrain/internal/game"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/store"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	results map[string][]store.GameEventData
}

func (m *mockEventRepo) AppendGameEvent(_ context.Context, _ store.GameEventData) error {
	return nil
}
func (m *mockEventRepo) GameResults(_ context.Context, gameType string, _ store.QueryOpts) ([]store.GameEventData, error) {
	return m.results[gameType], nil
}
func (m *mockEventRepo) AppendAssessmentEvent(_ context.Context, _ store.AssessmentEventData) error {
	return nil
}
func (m *mockEventRepo) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}
func (m *mockEventRepo) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) GetLLMEvent(_ context.Context, _ int) (*store.LLMRequestEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStat, error) {
	return nil, nil
}
func (m *mockEventRepo) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func loadedScreen(t *testing.T, repo *mockEventRepo) *SelectScreen {
	t.Helper()
	s := New(repo)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected Init to load stats")
	}
	s.Update(cmd())
	return s
}

func TestStatsLoaded(t *testing.T) {
	repo := &mockEventRepo{results: map[string][]store.GameEventData{
		string(game.MemoryMatch): {
			{Score: 40},
			{Score: 75},
		},
	}}
	s := loadedScreen(t, repo)

	st, ok := s.stats[game.MemoryMatch]
	if !ok {
		t.Fatal("expected stats for memory match")
	}
	if st.Played != 2 {
		t.Errorf("expected 2 plays, got %d", st.Played)
	}
	if st.BestScore != 75 {
		t.Errorf("expected best score 75, got %d", st.BestScore)
	}
}

func TestSelectAndChoose(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{})

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command after choosing a game")
	}
	msg, ok := cmd().(flow.GameChosenMsg)
	if !ok {
		t.Fatalf("expected GameChosenMsg, got %T", cmd())
	}
	if msg.Type != game.QuickMath {
		t.Errorf("expected quick math after moving down, got %s", msg.Type)
	}
}

func TestSelectionClampsAtEdges(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{})

	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("expected selection clamped at 0, got %d", s.selected)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.selected != len(s.games)-1 {
		t.Errorf("expected selection clamped at last game, got %d", s.selected)
	}
}

func TestEscapeGoesBack(t *testing.T) {
	s := loadedScreen(t, &mockEventRepo{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on escape")
	}
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Fatalf("expected BackMsg, got %T", cmd())
	}
}

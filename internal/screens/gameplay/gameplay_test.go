package gameplay

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"os"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cognitrain/internal/game"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/store"
	"github.com/abhisek/cognitrain/internal/timedphase"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	gameEvents []store.GameEventData
	appendErr  error
}

func (m *mockEventRepo) AppendGameEvent(_ context.Context, data store.GameEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.gameEvents = append(m.gameEvents, data)
	return nil
}
func (m *mockEventRepo) GameResults(_ context.Context, _ string, _ store.QueryOpts) ([]store.GameEventData, error) {
	return nil, nil
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

func TestQuickMathFullRunReportsResult(t *testing.T) {
	repo := &mockEventRepo{}
	q := NewQuickMath(rand.New(rand.NewSource(7)), timedphase.SystemClock{}, repo)
	q.Init()

	var last tea.Cmd
	for i := 0; i < q.run.Total(); i++ {
		_, cmd := q.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
		last = cmd
	}

	if q.run.State() != game.StateEnded {
		t.Fatal("expected the run to end after answering every problem")
	}
	if last == nil {
		t.Fatal("expected the final answer to produce a report command")
	}
	msg, ok := last().(flow.GameFinishedMsg)
	if !ok {
		t.Fatalf("expected GameFinishedMsg, got %T", last())
	}
	if msg.Result.Type != game.QuickMath {
		t.Errorf("expected quick math result, got %s", msg.Result.Type)
	}
	if len(repo.gameEvents) != 1 {
		t.Fatalf("expected one persisted game event, got %d", len(repo.gameEvents))
	}
	if repo.gameEvents[0].GameType != string(game.QuickMath) {
		t.Errorf("persisted game type = %q", repo.gameEvents[0].GameType)
	}
}

func TestQuickMathEscapeCancelsWithoutResult(t *testing.T) {
	repo := &mockEventRepo{}
	q := NewQuickMath(rand.New(rand.NewSource(7)), timedphase.SystemClock{}, repo)
	q.Init()

	_, cmd := q.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on escape")
	}
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Fatalf("expected BackMsg, got %T", cmd())
	}
	if _, ok := q.run.Result(); ok {
		t.Error("expected no result from a cancelled run")
	}
	if len(repo.gameEvents) != 0 {
		t.Error("expected no persisted event for a cancelled run")
	}
}

func TestMemoryMatchClockExpiryEndsRun(t *testing.T) {
	repo := &mockEventRepo{}
	m := NewMemoryMatch(rand.New(rand.NewSource(7)), timedphase.SystemClock{}, repo)
	m.Init()

	// The game clock is armed with generation 1 at start.
	_, cmd := m.Update(clockTimerMsg{gen: 1})
	if m.run.State() != game.StateEnded {
		t.Fatal("expected the run to end when the clock expires")
	}
	if cmd == nil {
		t.Fatal("expected a report command on clock expiry")
	}
	if _, ok := cmd().(flow.GameFinishedMsg); !ok {
		t.Fatalf("expected GameFinishedMsg, got %T", cmd())
	}

	// A duplicate expiry must not report twice.
	_, cmd = m.Update(clockTimerMsg{gen: 1})
	if cmd != nil {
		t.Error("expected a stale clock expiry to be a no-op")
	}
	if len(repo.gameEvents) != 1 {
		t.Errorf("expected one persisted game event, got %d", len(repo.gameEvents))
	}
}

// captureStderr runs fn with os.Stderr swapped for a pipe and returns
// what was written.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = orig }()

	fn()
	w.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read captured stderr: %v", err)
	}
	return string(out)
}

func TestReportResultWarnsOnStoreError(t *testing.T) {
	repo := &mockEventRepo{appendErr: errors.New("database is locked")}
	res := game.Result{Type: game.QuickMath, Score: 350, Accuracy: 70}

	var msg tea.Msg
	out := captureStderr(t, func() {
		msg = reportResult(repo, "sess-1", res)()
	})

	fin, ok := msg.(flow.GameFinishedMsg)
	if !ok {
		t.Fatalf("expected GameFinishedMsg despite the store error, got %T", msg)
	}
	if fin.Result.Score != 350 {
		t.Errorf("result score = %d, want 350", fin.Result.Score)
	}
	if !strings.Contains(out, "failed to record game result") {
		t.Errorf("stderr = %q, want a record-game-result warning", out)
	}
	if !strings.Contains(out, "database is locked") {
		t.Errorf("stderr = %q, want the underlying error included", out)
	}
}

func TestMemoryMatchCursorStaysOnBoard(t *testing.T) {
	m := NewMemoryMatch(rand.New(rand.NewSource(7)), timedphase.SystemClock{}, &mockEventRepo{})
	m.Init()

	m.Update(tea.KeyPressMsg{Code: tea.KeyLeft})
	m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("expected cursor pinned at 0, got %d", m.cursor)
	}

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyPressMsg{Code: tea.KeyRight})
		m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if m.cursor < 0 || m.cursor >= len(m.run.Cards()) {
		t.Errorf("cursor %d escaped the board", m.cursor)
	}
}

package assessment

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"os"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	assess "github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/store"
	"github.com/abhisek/cognitrain/internal/timedphase"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	assessments []store.AssessmentEventData
	appendErr   error
}

func (m *mockEventRepo) AppendGameEvent(_ context.Context, _ store.GameEventData) error {
	return nil
}
func (m *mockEventRepo) GameResults(_ context.Context, _ string, _ store.QueryOpts) ([]store.GameEventData, error) {
	return nil, nil
}
func (m *mockEventRepo) AppendAssessmentEvent(_ context.Context, data store.AssessmentEventData) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.assessments = append(m.assessments, data)
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

func newTestScreen() *AssessmentScreen {
	rng := rand.New(rand.NewSource(42))
	return New(rng, timedphase.SystemClock{}, &mockEventRepo{})
}

func TestEnterBeginsFirstStage(t *testing.T) {
	s := newTestScreen()

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !s.started {
		t.Fatal("expected stage to start on enter")
	}
	if cmd == nil {
		t.Fatal("expected a timer command for the display phase")
	}
	if s.orch.Numbers.Phase() != "display" {
		t.Errorf("expected display phase, got %q", s.orch.Numbers.Phase())
	}
}

func TestKeysBeforeStartIgnored(t *testing.T) {
	s := newTestScreen()

	_, cmd := s.Update(tea.KeyPressMsg{Code: 't', Text: "t"})
	if s.started || cmd != nil {
		t.Error("expected non-enter keys to do nothing before the stage starts")
	}
}

func TestDisplayTimerMovesToRecall(t *testing.T) {
	s := newTestScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	// The first start arms generation 1.
	s.Update(stageTimerMsg{stage: assess.StageNumberRecall, gen: 1})
	if s.orch.Numbers.Phase() != "recall" {
		t.Fatalf("expected recall phase after display timer, got %q", s.orch.Numbers.Phase())
	}
}

func TestStaleTimerIgnored(t *testing.T) {
	s := newTestScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	s.Update(stageTimerMsg{stage: assess.StageNumberRecall, gen: 99})
	if s.orch.Numbers.Phase() != "display" {
		t.Error("expected a stale generation to be dropped")
	}
}

func TestTimerFromOtherStageIgnored(t *testing.T) {
	s := newTestScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	s.Update(stageTimerMsg{stage: assess.StageWordRecall, gen: 1})
	if s.orch.Numbers.Phase() != "display" {
		t.Error("expected a timer tagged with another stage to be dropped")
	}
}

func TestRecallSubmitAdvancesStage(t *testing.T) {
	s := newTestScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	s.Update(stageTimerMsg{stage: assess.StageNumberRecall, gen: 1})

	for _, r := range s.orch.Numbers.Digits() {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.orch.Stage() != assess.StageWordRecall {
		t.Fatalf("expected word recall stage after submitting, got %s", s.orch.Stage())
	}
	if s.started {
		t.Error("expected the next stage to wait for enter")
	}
	if got := s.orch.Scores().MemoryNumbers; got != 100 {
		t.Errorf("expected a perfect recall score, got %.1f", got)
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

func TestRecordCompletionPersistsScores(t *testing.T) {
	repo := &mockEventRepo{}
	orch := assess.NewOrchestrator(rand.New(rand.NewSource(42)), timedphase.SystemClock{}, assess.Hooks{})

	msg := recordCompletion(repo, orch)

	done, ok := msg.(flow.AssessmentCompletedMsg)
	if !ok {
		t.Fatalf("expected AssessmentCompletedMsg, got %T", msg)
	}
	if done.Orch != orch {
		t.Error("expected the same orchestrator to flow upward")
	}
	if len(repo.assessments) != 1 {
		t.Fatalf("expected one persisted assessment event, got %d", len(repo.assessments))
	}
	if repo.assessments[0].SessionID != orch.SessionID {
		t.Errorf("persisted session = %q, want %q", repo.assessments[0].SessionID, orch.SessionID)
	}
}

func TestRecordCompletionWarnsOnStoreError(t *testing.T) {
	repo := &mockEventRepo{appendErr: errors.New("database is locked")}
	orch := assess.NewOrchestrator(rand.New(rand.NewSource(42)), timedphase.SystemClock{}, assess.Hooks{})

	var msg tea.Msg
	out := captureStderr(t, func() {
		msg = recordCompletion(repo, orch)
	})

	if _, ok := msg.(flow.AssessmentCompletedMsg); !ok {
		t.Fatalf("expected AssessmentCompletedMsg despite the store error, got %T", msg)
	}
	if !strings.Contains(out, "failed to record assessment result") {
		t.Errorf("stderr = %q, want a record-assessment warning", out)
	}
	if !strings.Contains(out, "database is locked") {
		t.Errorf("stderr = %q, want the underlying error included", out)
	}
}

func TestQuitConfirmFlow(t *testing.T) {
	s := newTestScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if !s.confirmQuit {
		t.Fatal("expected escape to prompt for confirmation")
	}

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.confirmQuit {
		t.Fatal("expected n to dismiss the prompt")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("expected a command after confirming quit")
	}
	if _, ok := cmd().(router.BackMsg); !ok {
		t.Fatalf("expected BackMsg, got %T", cmd())
	}
}

package results

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cognitrain/internal/assessment"
	"github.com/abhisek/cognitrain/internal/router"
	"github.com/abhisek/cognitrain/internal/screens/flow"
	"github.com/abhisek/cognitrain/internal/view"
)

func TestNarrativeArrivalClearsPending(t *testing.T) {
	r := New("Ada", assessment.ScoreSet{Speed: 70}, true)
	if !r.pending {
		t.Fatal("expected pending narrative at start")
	}

	r.Update(flow.NarrativeReadyMsg{Text: "You think fast."})
	if r.pending {
		t.Error("expected pending cleared after narrative arrives")
	}
	if !strings.Contains(r.View(80, 30), "You think fast.") {
		t.Error("expected the narrative in the rendered view")
	}
}

func TestNarrativeFailureFallsBack(t *testing.T) {
	r := New("Ada", assessment.ScoreSet{}, true)

	r.Update(flow.NarrativeReadyMsg{Err: errors.New("provider timeout")})
	if r.pending {
		t.Error("expected pending cleared after a failed narrative")
	}
	if r.narrative != "" {
		t.Error("expected no narrative text on failure")
	}
}

func TestEnterResetsToDashboard(t *testing.T) {
	r := New("Ada", assessment.ScoreSet{}, false)

	_, cmd := r.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg, ok := cmd().(router.ResetMsg)
	if !ok {
		t.Fatalf("expected ResetMsg, got %T", cmd())
	}
	if msg.View != view.Dashboard {
		t.Errorf("expected dashboard, got %v", msg.View)
	}
}

package landing

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cognitrain/internal/screens/flow"
)

func typeText(t *testing.T, l *LandingScreen, text string) {
	t.Helper()
	for _, r := range text {
		l.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func pressEnter(l *LandingScreen) tea.Cmd {
	_, cmd := l.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestSubmitEmitsProfileCreated(t *testing.T) {
	l := New()
	typeText(t, l, "Ada")

	cmd := pressEnter(l)
	if cmd == nil {
		t.Fatal("expected a command after submitting a name")
	}
	msg, ok := cmd().(flow.ProfileCreatedMsg)
	if !ok {
		t.Fatalf("expected ProfileCreatedMsg, got %T", cmd())
	}
	if msg.Name != "Ada" {
		t.Errorf("expected name Ada, got %q", msg.Name)
	}
}

func TestSubmitTrimsWhitespace(t *testing.T) {
	l := New()
	typeText(t, l, "  Ada  ")

	cmd := pressEnter(l)
	if cmd == nil {
		t.Fatal("expected a command after submitting a name")
	}
	msg := cmd().(flow.ProfileCreatedMsg)
	if msg.Name != "Ada" {
		t.Errorf("expected trimmed name Ada, got %q", msg.Name)
	}
}

func TestEmptyNameIgnored(t *testing.T) {
	l := New()

	if cmd := pressEnter(l); cmd != nil {
		t.Error("expected no command for an empty name")
	}

	typeText(t, l, "   ")
	if cmd := pressEnter(l); cmd != nil {
		t.Error("expected no command for a whitespace-only name")
	}
}

func TestSecondSubmitIgnored(t *testing.T) {
	l := New()
	typeText(t, l, "Ada")

	if cmd := pressEnter(l); cmd == nil {
		t.Fatal("expected first submit to produce a command")
	}
	if cmd := pressEnter(l); cmd != nil {
		t.Error("expected second submit to be ignored")
	}
}

func TestButtonActivatesWithInput(t *testing.T) {
	l := New()
	if l.begin.Active {
		t.Error("button should start inactive")
	}

	typeText(t, l, "A")
	if !l.begin.Active {
		t.Error("button should activate once a name is typed")
	}
}

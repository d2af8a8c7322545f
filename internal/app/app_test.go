package app

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/abhisek/cognitrain/internal/view"
)

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

func TestStateLoadErrorWarnsAndFallsBack(t *testing.T) {
	m := newAppModel(Options{})

	out := captureStderr(t, func() {
		m.Update(stateLoadedMsg{state: newUserState(), err: errors.New("disk read failed")})
	})

	if !strings.Contains(out, "failed to load saved state") {
		t.Errorf("stderr = %q, want a load-state warning", out)
	}
	if !strings.Contains(out, "disk read failed") {
		t.Errorf("stderr = %q, want the underlying error included", out)
	}
	// With no saved profile the app still lands on the landing screen.
	if got := m.nav.Current(); got != view.Landing {
		t.Errorf("current view = %s, want landing", got)
	}
}

func TestStateLoadSuccessIsQuiet(t *testing.T) {
	m := newAppModel(Options{})

	out := captureStderr(t, func() {
		m.Update(stateLoadedMsg{state: newUserState()})
	})
	if out != "" {
		t.Errorf("stderr = %q, want nothing on a clean load", out)
	}
}

func TestSnapshotSaveErrorWarns(t *testing.T) {
	m := newAppModel(Options{})

	out := captureStderr(t, func() {
		m.Update(snapshotSavedMsg{err: errors.New("database is locked")})
	})

	if !strings.Contains(out, "failed to save snapshot") {
		t.Errorf("stderr = %q, want a save-snapshot warning", out)
	}
	if !strings.Contains(out, "database is locked") {
		t.Errorf("stderr = %q, want the underlying error included", out)
	}
}

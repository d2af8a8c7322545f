package timedphase

import (
	"testing"
	"time"
)

func TestStartArmsFirstPhase(t *testing.T) {
	e := New(
		Phase{Name: "display", Duration: 3 * time.Second},
		Phase{Name: "recall", Manual: true},
	)

	arm := e.Start()
	if !arm.Armed() {
		t.Fatal("expected armed directive for display phase")
	}
	if arm.Duration != 3*time.Second {
		t.Errorf("duration = %v, want 3s", arm.Duration)
	}

	p, ok := e.Current()
	if !ok || p.Name != "display" {
		t.Errorf("current = %+v (%v), want display", p, ok)
	}
}

func TestExpireTransitions(t *testing.T) {
	e := New(
		Phase{Name: "display", Duration: 3 * time.Second},
		Phase{Name: "recall", Manual: true},
	)
	arm := e.Start()

	next, ok := e.Expire(arm.Gen)
	if !ok {
		t.Fatal("expected expiry to transition")
	}
	if next.Armed() {
		t.Error("manual phase should not arm a timer")
	}

	p, _ := e.Current()
	if p.Name != "recall" {
		t.Errorf("current = %q, want recall", p.Name)
	}
}

func TestStaleExpireIsNoOp(t *testing.T) {
	e := New(
		Phase{Name: "a", Duration: time.Second},
		Phase{Name: "b", Duration: time.Second},
	)
	arm := e.Start()

	// Manual advance supersedes the pending timer.
	if _, ok := e.Advance(nil); !ok {
		t.Fatal("advance failed")
	}
	p, _ := e.Current()
	if p.Name != "b" {
		t.Fatalf("current = %q, want b", p.Name)
	}

	// The display timer fires late: must not move the engine.
	if _, ok := e.Expire(arm.Gen); ok {
		t.Error("stale timer fire transitioned the engine")
	}
	p, _ = e.Current()
	if p.Name != "b" {
		t.Errorf("current = %q after stale fire, want b", p.Name)
	}
}

func TestAdvanceRecordsPayload(t *testing.T) {
	e := New(
		Phase{Name: "recall", Manual: true},
	)
	e.Start()
	e.Advance("12345")

	if !e.Done() {
		t.Fatal("expected run to complete after last phase")
	}
	trials := e.Trials()
	if len(trials) != 1 || trials[0] != "12345" {
		t.Errorf("trials = %v, want [12345]", trials)
	}
}

func TestAdvanceAfterDoneIsNoOp(t *testing.T) {
	e := New(Phase{Name: "only", Manual: true})
	e.Start()
	e.Advance(1)

	if _, ok := e.Advance(2); ok {
		t.Error("advance on completed engine transitioned")
	}
	if len(e.Trials()) != 1 {
		t.Errorf("trials = %d, want 1", len(e.Trials()))
	}
}

func TestZeroDurationPassesThrough(t *testing.T) {
	e := New(
		Phase{Name: "instant", Duration: 0},
		Phase{Name: "negative", Duration: -time.Second},
		Phase{Name: "real", Duration: time.Second},
	)
	arm := e.Start()

	if !arm.Armed() {
		t.Fatal("expected armed directive")
	}
	p, _ := e.Current()
	if p.Name != "real" {
		t.Errorf("current = %q, want real (instant phases skipped)", p.Name)
	}
}

func TestEmptySequenceCompletesImmediately(t *testing.T) {
	e := New()
	arm := e.Start()
	if arm.Armed() {
		t.Error("empty run armed a timer")
	}
	if !e.Done() {
		t.Error("empty run did not complete")
	}
}

func TestCancelInvalidatesTimers(t *testing.T) {
	e := New(Phase{Name: "a", Duration: time.Second})
	arm := e.Start()

	e.Cancel()
	e.Cancel() // idempotent

	if e.State() != StatusCancelled {
		t.Fatalf("state = %v, want cancelled", e.State())
	}
	if _, ok := e.Expire(arm.Gen); ok {
		t.Error("timer fire after cancel transitioned the engine")
	}
	if _, ok := e.Advance(nil); ok {
		t.Error("advance after cancel transitioned the engine")
	}
}

func TestFullSequenceCompletion(t *testing.T) {
	e := New(
		Phase{Name: "q1", Duration: time.Second},
		Phase{Name: "q2", Duration: time.Second},
		Phase{Name: "q3", Duration: time.Second},
	)
	arm := e.Start()
	for i := 0; i < 3; i++ {
		next, ok := e.Expire(arm.Gen)
		if !ok {
			t.Fatalf("expire %d failed", i)
		}
		arm = next
	}
	if !e.Done() {
		t.Error("run did not complete after all phases expired")
	}
	if arm.Armed() {
		t.Error("completed run returned an armed directive")
	}
}

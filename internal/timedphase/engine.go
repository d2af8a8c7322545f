// Package timedphase drives ordered sequences of timed phases.
//
// Every timed test and game in the app is a run of named phases: a display
// phase that expires into a recall phase, a waiting phase that expires into
// a ready phase, a per-problem clock that expires into the next problem.
// The engine owns the state machine only; it never schedules real timers.
// Instead each transition returns an Arm directive telling the caller what
// timer to schedule, tagged with the generation that armed it. When a timer
// fires the caller reports it back via Expire with that generation; a fire
// from a superseded generation is a no-op. This makes cancellation and
// manual-advance races safe without relying on timer cleanup ordering.
package timedphase

import "time"

// Phase is one named step of a run. A phase with Manual set waits for an
// explicit Advance; otherwise it expires after Duration. A non-manual phase
// with Duration <= 0 is treated as already expired and is passed through
// without ever arming a timer.
type Phase struct {
	Name     string
	Duration time.Duration
	Manual   bool
}

// Arm tells the caller to schedule a timer for the current phase. The zero
// Arm means no timer is needed (manual phase, or the run is over).
type Arm struct {
	Gen      uint64
	Duration time.Duration
}

// Armed reports whether a timer should actually be scheduled.
func (a Arm) Armed() bool {
	return a.Duration > 0
}

// Status describes where a run is in its lifecycle.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusDone
	StatusCancelled
)

// Engine executes one run of a phase sequence. It is not safe for
// concurrent use; the caller serializes all transitions (the Bubble Tea
// update loop already does).
type Engine struct {
	phases []Phase
	idx    int
	gen    uint64
	status Status
	trials []any
}

// New creates an engine for the given phase sequence. The run does not
// begin until Start is called.
func New(phases ...Phase) *Engine {
	return &Engine{phases: phases}
}

// Start enters the first phase and returns its timer directive. Starting
// an empty sequence completes immediately. Start on anything but an idle
// engine is a no-op.
func (e *Engine) Start() Arm {
	if e.status != StatusIdle {
		return Arm{}
	}
	e.status = StatusRunning
	e.idx = -1
	return e.enterNext()
}

// Expire handles a timer fire for generation gen. A stale generation (the
// phase was already advanced, transitioned, or the run was cancelled) is a
// no-op. The bool reports whether a transition actually happened.
func (e *Engine) Expire(gen uint64) (Arm, bool) {
	if e.status != StatusRunning || gen != e.gen {
		return Arm{}, false
	}
	return e.enterNext(), true
}

// Advance manually completes the current phase, recording payload (a
// submitted answer, a click) in the trial accumulator. Any pending timer
// for the phase is invalidated. Advance on a completed or cancelled run is
// a no-op.
func (e *Engine) Advance(payload any) (Arm, bool) {
	if e.status != StatusRunning {
		return Arm{}, false
	}
	e.trials = append(e.trials, payload)
	return e.enterNext(), true
}

// Cancel stops the run and invalidates all pending timers. Safe to call
// multiple times; a cancelled engine ignores every further event.
func (e *Engine) Cancel() {
	if e.status == StatusRunning || e.status == StatusIdle {
		e.status = StatusCancelled
		e.gen++
	}
}

// enterNext moves to the following phase, skipping through any non-manual
// phases with no positive duration. Bumping the generation first makes any
// timer armed for the outgoing phase stale.
func (e *Engine) enterNext() Arm {
	for {
		e.gen++
		e.idx++
		if e.idx >= len(e.phases) {
			e.status = StatusDone
			return Arm{}
		}
		p := e.phases[e.idx]
		if p.Manual {
			return Arm{Gen: e.gen}
		}
		if p.Duration > 0 {
			return Arm{Gen: e.gen, Duration: p.Duration}
		}
		// Zero or negative duration: already expired, keep going.
	}
}

// Current returns the active phase. The second return is false when the
// run is not in a phase (idle, done, or cancelled).
func (e *Engine) Current() (Phase, bool) {
	if e.status != StatusRunning {
		return Phase{}, false
	}
	return e.phases[e.idx], true
}

// Status returns the run's lifecycle state.
func (e *Engine) State() Status {
	return e.status
}

// Done reports whether the run completed normally.
func (e *Engine) Done() bool {
	return e.status == StatusDone
}

// Trials returns the payloads recorded by manual advances, in order.
func (e *Engine) Trials() []any {
	return e.trials
}

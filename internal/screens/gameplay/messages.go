package gameplay

import "time"

// clockTimerMsg is the Memory Match overall game clock firing.
type clockTimerMsg struct {
	gen uint64
}

// flipBackMsg is the Memory Match mismatch flip-back delay firing.
type flipBackMsg struct {
	gen uint64
}

// problemTimerMsg is a Quick Math per-problem clock firing.
type problemTimerMsg struct {
	gen uint64
}

// secondTickMsg refreshes the countdown display once per second.
type secondTickMsg time.Time

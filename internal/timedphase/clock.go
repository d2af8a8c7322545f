package timedphase

import "time"

// Clock abstracts wall-clock reads so reaction measurements can be tested
// deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// FakeClock is a manually advanced clock for tests.
type FakeClock struct {
	Current time.Time
}

func (c *FakeClock) Now() time.Time {
	return c.Current
}

// Step moves the fake clock forward.
func (c *FakeClock) Step(d time.Duration) {
	c.Current = c.Current.Add(d)
}

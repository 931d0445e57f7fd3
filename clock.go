package alphablend

import "time"

// Clock is the monotonic time source used to measure every backend.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// SystemClock reads the monotonic reading of time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Since returns the time elapsed since t.
func (SystemClock) Since(t time.Time) time.Duration { return time.Since(t) }

// measure runs fn and returns how long it took on c.
func measure(c Clock, fn func()) time.Duration {
	start := c.Now()
	fn()
	return c.Since(start)
}

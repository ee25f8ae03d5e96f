// Package clock abstracts the current time so services can be tested with a
// fixed instant.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. Use Set to move it in tests.
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}

// Set moves the clock to t.
func (f *Fixed) Set(t time.Time) {
	f.T = t
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.T = f.T.Add(d)
}

var (
	_ Clock = Real{}
	_ Clock = (*Fixed)(nil)
)

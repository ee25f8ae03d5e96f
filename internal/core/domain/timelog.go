package domain

import (
	"errors"
	"time"

	"github.com/samber/mo"
)

// TimestampLayout is the format clock timestamps are stored and reported in.
const TimestampLayout = "2006-01-02 15:04:05"

// TimeLogState represents where a user is in the clock-in/clock-out cycle.
type TimeLogState string

const (
	StateNotClockedIn TimeLogState = "not_clocked_in"
	StateClockedIn    TimeLogState = "clocked_in"
	StateClockedOut   TimeLogState = "clocked_out"
)

var ErrAlreadyClockedIn = errors.New("already clocked in")
var ErrNotClockedIn = errors.New("not clocked in")
var ErrTimeLogNotFound = errors.New("time log not found")
var ErrInvalidTimeLog = errors.New("invalid time log")

// TimeLogEntry is one user's current work session.
type TimeLogEntry struct {
	ClockIn  mo.Option[time.Time]
	ClockOut mo.Option[time.Time]
	Total    time.Duration
}

// TimeLogs maps user IDs to their entry. It is loaded and saved as a unit.
type TimeLogs map[string]TimeLogEntry

// State derives the clock state from which timestamps are present.
func (e TimeLogEntry) State() TimeLogState {
	switch {
	case e.ClockIn.IsAbsent():
		return StateNotClockedIn
	case e.ClockOut.IsAbsent():
		return StateClockedIn
	default:
		return StateClockedOut
	}
}

// StartSession clocks in at now. A completed session is overwritten.
func (e TimeLogEntry) StartSession(now time.Time) (TimeLogEntry, error) {
	if e.State() == StateClockedIn {
		return e, ErrAlreadyClockedIn
	}
	return TimeLogEntry{
		ClockIn:  mo.Some(now),
		ClockOut: mo.None[time.Time](),
	}, nil
}

// EndSession clocks out at now and records the elapsed time.
// Ending an already closed session recomputes from the stored clock-in.
func (e TimeLogEntry) EndSession(now time.Time) (TimeLogEntry, error) {
	in, ok := e.ClockIn.Get()
	if !ok {
		return e, ErrNotClockedIn
	}

	total := now.Sub(in)
	if total < 0 {
		total = 0
	}

	return TimeLogEntry{
		ClockIn:  e.ClockIn,
		ClockOut: mo.Some(now),
		Total:    total,
	}, nil
}

// Hours returns the recorded total in hours.
func (e TimeLogEntry) Hours() float64 {
	return e.Total.Seconds() / 3600
}

// Validate checks the entry invariants: a clock-out needs a clock-in and the
// total is never negative.
func (e TimeLogEntry) Validate() error {
	if e.Total < 0 {
		return ErrInvalidTimeLog
	}
	if e.ClockOut.IsPresent() && e.ClockIn.IsAbsent() {
		return ErrInvalidTimeLog
	}
	return nil
}

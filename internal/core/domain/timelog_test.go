package domain

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2024, 3, 1, 10, 0, 0, 0, time.Local)

func TestTimeLogEntry_State(t *testing.T) {
	tests := []struct {
		name  string
		entry TimeLogEntry
		want  TimeLogState
	}{
		{"empty", TimeLogEntry{}, StateNotClockedIn},
		{"open session", TimeLogEntry{ClockIn: mo.Some(t0)}, StateClockedIn},
		{"closed session", TimeLogEntry{ClockIn: mo.Some(t0), ClockOut: mo.Some(t0.Add(time.Hour))}, StateClockedOut},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.State())
		})
	}
}

func TestTimeLogEntry_StartSession(t *testing.T) {
	t.Run("new user", func(t *testing.T) {
		got, err := TimeLogEntry{}.StartSession(t0)
		require.NoError(t, err)
		assert.Equal(t, t0, got.ClockIn.MustGet())
		assert.True(t, got.ClockOut.IsAbsent())
		assert.Zero(t, got.Total)
	})

	t.Run("already clocked in", func(t *testing.T) {
		open := TimeLogEntry{ClockIn: mo.Some(t0)}
		got, err := open.StartSession(t0.Add(time.Minute))
		assert.ErrorIs(t, err, ErrAlreadyClockedIn)
		assert.Equal(t, open, got)
	})

	t.Run("overwrites completed session", func(t *testing.T) {
		closed := TimeLogEntry{ClockIn: mo.Some(t0), ClockOut: mo.Some(t0.Add(time.Hour)), Total: time.Hour}
		later := t0.Add(2 * time.Hour)

		got, err := closed.StartSession(later)
		require.NoError(t, err)
		assert.Equal(t, later, got.ClockIn.MustGet())
		assert.True(t, got.ClockOut.IsAbsent())
		assert.Zero(t, got.Total)
	})
}

func TestTimeLogEntry_EndSession(t *testing.T) {
	t.Run("never clocked in", func(t *testing.T) {
		_, err := TimeLogEntry{}.EndSession(t0)
		assert.ErrorIs(t, err, ErrNotClockedIn)
	})

	t.Run("records elapsed time", func(t *testing.T) {
		out := t0.Add(5 * time.Second)
		got, err := TimeLogEntry{ClockIn: mo.Some(t0)}.EndSession(out)
		require.NoError(t, err)
		assert.Equal(t, out, got.ClockOut.MustGet())
		assert.Equal(t, 5*time.Second, got.Total)
		assert.InDelta(t, 5.0/3600, got.Hours(), 1e-12)
		assert.Equal(t, StateClockedOut, got.State())
	})

	t.Run("second clock-out recomputes from clock-in", func(t *testing.T) {
		closed := TimeLogEntry{ClockIn: mo.Some(t0), ClockOut: mo.Some(t0.Add(time.Hour)), Total: time.Hour}
		got, err := closed.EndSession(t0.Add(3 * time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 3*time.Hour, got.Total)
	})

	t.Run("clock moved backwards", func(t *testing.T) {
		got, err := TimeLogEntry{ClockIn: mo.Some(t0)}.EndSession(t0.Add(-time.Minute))
		require.NoError(t, err)
		assert.Zero(t, got.Total)
	})
}

func TestTimeLogEntry_Validate(t *testing.T) {
	assert.NoError(t, TimeLogEntry{}.Validate())
	assert.NoError(t, TimeLogEntry{ClockIn: mo.Some(t0)}.Validate())
	assert.ErrorIs(t, TimeLogEntry{ClockOut: mo.Some(t0)}.Validate(), ErrInvalidTimeLog)
	assert.ErrorIs(t, TimeLogEntry{ClockIn: mo.Some(t0), Total: -time.Second}.Validate(), ErrInvalidTimeLog)
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(ErrAlreadyClockedIn))
	assert.Equal(t, KindConflict, KindOf(fmt.Errorf("clock out: %w", ErrNotClockedIn)))
	assert.Equal(t, KindNotFound, KindOf(ErrTimeLogNotFound))
	assert.Equal(t, KindInternal, KindOf(errors.New("disk full")))
	assert.Equal(t, "conflict", KindConflict.String())
}

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/99minutos/time-tracker/internal/core/domain"
	"github.com/99minutos/time-tracker/internal/core/ports"
	"github.com/99minutos/time-tracker/internal/pkg/clock"
)

var secondsPerHour = decimal.NewFromInt(3600)

// TimeLogService implements ports.TimeLogService. Every operation loads the
// whole mapping, changes at most one entry and saves the whole mapping back.
type TimeLogService struct {
	repo  ports.TimeLogRepository
	clock clock.Clock
	log   zerolog.Logger

	// mu serializes load-modify-save within this process.
	mu sync.Mutex
}

func NewTimeLogService(repo ports.TimeLogRepository, clk clock.Clock, log zerolog.Logger) *TimeLogService {
	if clk == nil {
		clk = clock.Real{}
	}
	return &TimeLogService{repo: repo, clock: clk, log: log}
}

// ClockIn opens a session for userID. It fails with domain.ErrAlreadyClockedIn
// when the user has an open session; a completed session is overwritten.
func (s *TimeLogService) ClockIn(ctx context.Context, userID string) (*ports.ClockInResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("clock in: load: %w", err)
	}

	now := s.now()
	entry, err := logs[userID].StartSession(now)
	if err != nil {
		s.log.Info().Str("user_id", userID).Msg("user is already clocked in")
		return nil, fmt.Errorf("clock in %s: %w", userID, err)
	}

	logs[userID] = entry
	if err := s.repo.Save(ctx, logs); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to save clock in")
		return nil, fmt.Errorf("clock in: save: %w", err)
	}

	s.log.Info().
		Str("user_id", userID).
		Str("clock_in_time", now.Format(domain.TimestampLayout)).
		Msg("user clocked in")

	return &ports.ClockInResult{UserID: userID, ClockInTime: now}, nil
}

// ClockOut closes the session for userID and records the elapsed time. It
// fails with domain.ErrNotClockedIn when the user never clocked in.
func (s *TimeLogService) ClockOut(ctx context.Context, userID string) (*ports.ClockOutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("clock out: load: %w", err)
	}

	now := s.now()
	entry, err := logs[userID].EndSession(now)
	if err != nil {
		s.log.Info().Str("user_id", userID).Msg("user is not clocked in")
		return nil, fmt.Errorf("clock out %s: %w", userID, err)
	}

	logs[userID] = entry
	if err := s.repo.Save(ctx, logs); err != nil {
		s.log.Error().Err(err).Str("user_id", userID).Msg("failed to save clock out")
		return nil, fmt.Errorf("clock out: save: %w", err)
	}

	s.log.Info().
		Str("user_id", userID).
		Str("clock_out_time", now.Format(domain.TimestampLayout)).
		Str("hours", formatHours(entry.Total)).
		Msg("user clocked out")

	return &ports.ClockOutResult{
		UserID:       userID,
		ClockOutTime: now,
		TotalTime:    entry.Total,
		TotalHours:   entry.Hours(),
	}, nil
}

// View returns the stored entry for userID or domain.ErrTimeLogNotFound.
func (s *TimeLogService) View(ctx context.Context, userID string) (*ports.TimeLogView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	logs, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("view time log: load: %w", err)
	}

	entry, ok := logs[userID]
	if !ok {
		s.log.Debug().Str("user_id", userID).Msg("no time log found")
		return nil, fmt.Errorf("view time log %s: %w", userID, domain.ErrTimeLogNotFound)
	}

	return &ports.TimeLogView{
		UserID:       userID,
		ClockInTime:  entry.ClockIn.ToPointer(),
		ClockOutTime: entry.ClockOut.ToPointer(),
		TotalTime:    entry.Total,
		TotalHours:   entry.Hours(),
	}, nil
}

// now is truncated to whole seconds so the stored timestamp and the computed
// duration agree after a round trip through the file.
func (s *TimeLogService) now() time.Time {
	return s.clock.Now().Truncate(time.Second)
}

func formatHours(d time.Duration) string {
	return decimal.NewFromFloat(d.Seconds()).Div(secondsPerHour).StringFixed(2)
}

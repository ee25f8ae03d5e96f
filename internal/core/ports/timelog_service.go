package ports

import (
	"context"
	"time"
)

// ClockInResult is returned by the service after a successful clock-in.
type ClockInResult struct {
	UserID      string
	ClockInTime time.Time
}

// ClockOutResult is returned by the service after a successful clock-out.
type ClockOutResult struct {
	UserID       string
	ClockOutTime time.Time
	TotalTime    time.Duration
	// TotalHours is TotalTime expressed in hours.
	TotalHours float64
}

// TimeLogView is the stored state of one user's entry.
type TimeLogView struct {
	UserID       string
	ClockInTime  *time.Time // nil when absent
	ClockOutTime *time.Time // nil when absent
	TotalTime    time.Duration
	TotalHours   float64
}

// TimeLogService defines the clock-in / clock-out use cases.
type TimeLogService interface {
	ClockIn(ctx context.Context, userID string) (*ClockInResult, error)
	ClockOut(ctx context.Context, userID string) (*ClockOutResult, error)
	View(ctx context.Context, userID string) (*TimeLogView, error)
}

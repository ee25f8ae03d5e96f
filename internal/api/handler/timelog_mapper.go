package handler

import (
	"fmt"
	"time"

	"github.com/99minutos/time-tracker/internal/core/domain"
	"github.com/99minutos/time-tracker/internal/core/ports"
)

// --- Service result → HTTP response ---

func toClockInResponse(r *ports.ClockInResult) messageResponse {
	return messageResponse{
		Message: fmt.Sprintf("User %s clocked in at %s.", r.UserID, r.ClockInTime.Format(domain.TimestampLayout)),
	}
}

func toClockOutResponse(r *ports.ClockOutResult) clockOutResponse {
	return clockOutResponse{
		Message:         fmt.Sprintf("User %s clocked out at %s.", r.UserID, r.ClockOutTime.Format(domain.TimestampLayout)),
		TotalTimeWorked: r.TotalHours,
	}
}

func toTimeLogResponse(v *ports.TimeLogView) timeLogResponse {
	return timeLogResponse{
		UserID:          v.UserID,
		ClockInTime:     formatTimestamp(v.ClockInTime),
		ClockOutTime:    formatTimestamp(v.ClockOutTime),
		TotalTimeWorked: v.TotalHours,
	}
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.TimestampLayout)
	return &s
}

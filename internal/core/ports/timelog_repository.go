package ports

import (
	"context"

	"github.com/99minutos/time-tracker/internal/core/domain"
)

// TimeLogRepository defines persistence for the full user → entry mapping.
type TimeLogRepository interface {
	// Load returns every entry. A missing store yields an empty mapping.
	Load(ctx context.Context) (domain.TimeLogs, error)
	// Save replaces the stored mapping with logs.
	Save(ctx context.Context, logs domain.TimeLogs) error
	// Ping reports whether the store is usable.
	Ping(ctx context.Context) error
}

package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/samber/mo"

	"github.com/99minutos/time-tracker/internal/core/domain"
)

// TimeLogRepository implements ports.TimeLogRepository on a single JSON file.
// Every Save rewrites the whole document; writes are not atomic.
type TimeLogRepository struct {
	path string
	loc  *time.Location
}

// maxTotalSeconds bounds total_time to what a time.Duration can hold.
var maxTotalSeconds = float64(math.MaxInt64) / float64(time.Second)

// fileRecord is the on-disk shape of one entry. TotalTime is a pointer so a
// missing total_time is told apart from zero.
type fileRecord struct {
	ClockInTime  *string  `json:"clock_in_time"`
	ClockOutTime *string  `json:"clock_out_time"`
	TotalTime    *float64 `json:"total_time"`
}

// NewTimeLogRepository prepares the data directory and returns a repository
// for cfg.Path. The file itself is created on the first Save.
func NewTimeLogRepository(cfg Config) (*TimeLogRepository, error) {
	cfg = cfg.withDefaults()
	if err := ensureDir(cfg.Path); err != nil {
		return nil, err
	}
	return &TimeLogRepository{path: cfg.Path, loc: cfg.Location}, nil
}

// Path returns the file the repository reads and writes.
func (r *TimeLogRepository) Path() string {
	return r.path
}

// Load reads the full mapping. A missing file is an empty mapping; an
// unreadable or malformed one is an error.
func (r *TimeLogRepository) Load(ctx context.Context) (domain.TimeLogs, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.TimeLogs{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read time logs: %w", err)
	}

	var records map[string]*fileRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode time logs %s: %w", r.path, err)
	}

	logs := make(domain.TimeLogs, len(records))
	for userID, rec := range records {
		entry, err := r.toEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("decode time log for %q: %w", userID, err)
		}
		logs[userID] = entry
	}
	return logs, nil
}

// Save overwrites the file with logs.
func (r *TimeLogRepository) Save(ctx context.Context, logs domain.TimeLogs) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	records := make(map[string]fileRecord, len(logs))
	for userID, entry := range logs {
		records[userID] = r.toRecord(entry)
	}

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("encode time logs: %w", err)
	}

	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write time logs: %w", err)
	}
	return nil
}

// Ping checks that the data directory exists and that the current document,
// if any, decodes.
func (r *TimeLogRepository) Ping(ctx context.Context) error {
	dir := filepath.Dir(r.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("stat data dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", dir)
	}

	_, err = r.Load(ctx)
	return err
}

func (r *TimeLogRepository) toEntry(rec *fileRecord) (domain.TimeLogEntry, error) {
	if rec == nil {
		return domain.TimeLogEntry{}, fmt.Errorf("null entry: %w", domain.ErrInvalidTimeLog)
	}
	if rec.TotalTime == nil {
		return domain.TimeLogEntry{}, fmt.Errorf("missing total_time: %w", domain.ErrInvalidTimeLog)
	}
	secs := *rec.TotalTime
	if secs < 0 || secs >= maxTotalSeconds {
		return domain.TimeLogEntry{}, fmt.Errorf("total_time %v out of range: %w", secs, domain.ErrInvalidTimeLog)
	}

	in, err := r.parseTimestamp(rec.ClockInTime)
	if err != nil {
		return domain.TimeLogEntry{}, fmt.Errorf("clock_in_time: %w", err)
	}
	out, err := r.parseTimestamp(rec.ClockOutTime)
	if err != nil {
		return domain.TimeLogEntry{}, fmt.Errorf("clock_out_time: %w", err)
	}

	entry := domain.TimeLogEntry{
		ClockIn:  in,
		ClockOut: out,
		Total:    time.Duration(secs * float64(time.Second)),
	}
	if err := entry.Validate(); err != nil {
		return domain.TimeLogEntry{}, err
	}
	return entry, nil
}

func (r *TimeLogRepository) toRecord(e domain.TimeLogEntry) fileRecord {
	total := e.Total.Seconds()
	return fileRecord{
		ClockInTime:  r.formatTimestamp(e.ClockIn),
		ClockOutTime: r.formatTimestamp(e.ClockOut),
		TotalTime:    &total,
	}
}

func (r *TimeLogRepository) parseTimestamp(s *string) (mo.Option[time.Time], error) {
	if s == nil {
		return mo.None[time.Time](), nil
	}
	t, err := time.ParseInLocation(domain.TimestampLayout, *s, r.loc)
	if err != nil {
		return mo.None[time.Time](), err
	}
	return mo.Some(t), nil
}

func (r *TimeLogRepository) formatTimestamp(t mo.Option[time.Time]) *string {
	v, ok := t.Get()
	if !ok {
		return nil
	}
	s := v.In(r.loc).Format(domain.TimestampLayout)
	return &s
}

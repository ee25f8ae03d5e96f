package jsonfile

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/time-tracker/internal/core/domain"
)

func newTestRepo(t *testing.T) *TimeLogRepository {
	t.Helper()
	repo, err := NewTimeLogRepository(Config{
		Path:     filepath.Join(t.TempDir(), "data", "time_logs.json"),
		Location: time.UTC,
	})
	require.NoError(t, err)
	return repo
}

func TestNewTimeLogRepository_CreatesDataDir(t *testing.T) {
	repo := newTestRepo(t)

	info, err := os.Stat(filepath.Dir(repo.Path()))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	repo := newTestRepo(t)

	logs, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, logs)
	assert.Empty(t, logs)
}

func TestSaveThenLoad(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	in := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	logs := domain.TimeLogs{
		"user123": {ClockIn: mo.Some(in), ClockOut: mo.Some(in.Add(5 * time.Second)), Total: 5 * time.Second},
		"open":    {ClockIn: mo.Some(in), ClockOut: mo.None[time.Time]()},
	}
	require.NoError(t, repo.Save(ctx, logs))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	done := got["user123"]
	assert.True(t, done.ClockIn.MustGet().Equal(in))
	assert.True(t, done.ClockOut.MustGet().Equal(in.Add(5*time.Second)))
	assert.Equal(t, 5*time.Second, done.Total)

	open := got["open"]
	assert.Equal(t, domain.StateClockedIn, open.State())
	assert.Zero(t, open.Total)
}

func TestSave_WritesDocumentLayout(t *testing.T) {
	repo := newTestRepo(t)
	in := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(context.Background(), domain.TimeLogs{
		"user123": {ClockIn: mo.Some(in)},
	}))

	data, err := os.ReadFile(repo.Path())
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	entry := doc["user123"]
	assert.Equal(t, "2024-03-01 10:00:00", entry["clock_in_time"])
	assert.Nil(t, entry["clock_out_time"])
	assert.Contains(t, entry, "clock_out_time")
	assert.Equal(t, float64(0), entry["total_time"])
}

func TestSaveLoadRoundTripIsNoOp(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	in := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, domain.TimeLogs{
		"a": {ClockIn: mo.Some(in), ClockOut: mo.Some(in.Add(90 * time.Minute)), Total: 90 * time.Minute},
		"b": {ClockIn: mo.Some(in)},
	}))
	before, err := os.ReadFile(repo.Path())
	require.NoError(t, err)

	logs, err := repo.Load(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, logs))

	after, err := os.ReadFile(repo.Path())
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestLoad_ReadsPythonWrittenDocument(t *testing.T) {
	repo := newTestRepo(t)
	doc := `{
    "user123": {
        "clock_in_time": "2024-03-01 10:00:00",
        "clock_out_time": "2024-03-01 10:00:05",
        "total_time": 5.0
    }
}`
	require.NoError(t, os.WriteFile(repo.Path(), []byte(doc), 0o644))

	logs, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, logs["user123"].Total)
	assert.Equal(t, domain.StateClockedOut, logs["user123"].State())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed json", `{"user123": `},
		{"empty file", ``},
		{"bad timestamp", `{"u": {"clock_in_time": "yesterday", "clock_out_time": null, "total_time": 0}}`},
		{"clock out without clock in", `{"u": {"clock_in_time": null, "clock_out_time": "2024-03-01 10:00:05", "total_time": 5}}`},
		{"negative total", `{"u": {"clock_in_time": "2024-03-01 10:00:00", "clock_out_time": null, "total_time": -1}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepo(t)
			require.NoError(t, os.WriteFile(repo.Path(), []byte(tt.doc), 0o644))

			_, err := repo.Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	repo := newTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, repo.Save(ctx, domain.TimeLogs{}), context.Canceled)
}

func TestPing(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	assert.NoError(t, repo.Ping(ctx))

	require.NoError(t, os.WriteFile(repo.Path(), []byte("not json"), 0o644))
	assert.Error(t, repo.Ping(ctx))
}

func TestLoad_RejectsIncompleteEntries(t *testing.T) {
	docs := map[string]string{
		"null entry":     `{"u": null}`,
		"missing total":  `{"u": {"clock_in_time": "2024-03-01 10:00:00", "clock_out_time": null}}`,
		"total overflow": `{"u": {"clock_in_time": "2024-03-01 10:00:00", "clock_out_time": "2024-03-01 10:00:05", "total_time": 9300000000}}`,
	}
	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepo(t)
			require.NoError(t, os.WriteFile(repo.Path(), []byte(doc), 0o644))

			logs, err := repo.Load(context.Background())
			assert.ErrorIs(t, err, domain.ErrInvalidTimeLog)
			assert.Nil(t, logs)
		})
	}
}

package jsonfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const defaultPath = "time_logs.json"

// Config captures where the time log document lives.
type Config struct {
	// Path of the JSON document. Defaults to time_logs.json in the working directory.
	Path string
	// Location timestamps are written and parsed in. Defaults to time.Local.
	Location *time.Location
}

func (c Config) withDefaults() Config {
	if c.Path == "" {
		c.Path = defaultPath
	}
	if c.Location == nil {
		c.Location = time.Local
	}
	return c
}

// ensureDir creates the parent directory of path if it does not exist yet.
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return nil
}

// Package logger builds the service's zerolog logger.
//
// main builds one logger with New and hands it to every component; nothing
// reads a package-level instance.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls how the logger is built.
type Options struct {
	// Level is the minimum level: trace, debug, info, warn or error.
	// Empty or unknown values mean info.
	Level string
	// Pretty switches to coloured console output for local runs.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
	// Service is stamped on every line as "service" when set.
	Service string
}

// New returns a logger for opts and applies its level globally so
// zerolog.Ctx and library loggers agree with it.
func New(opts Options) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.DateTime}
	}

	lvl := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(lvl)

	ctx := zerolog.New(out).Level(lvl).With().Timestamp().Caller()
	if opts.Service != "" {
		ctx = ctx.Str("service", opts.Service)
	}
	return ctx.Logger()
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

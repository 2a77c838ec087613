// Package logger builds the hclog loggers used across the app.
package logger

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
)

// Name is the root logger name
const Name = "ytpick"

// Options configures New
type Options struct {
	Level  string // trace, debug, info, warn, error or off
	JSON   bool
	Color  bool
	Output io.Writer // stderr when nil
}

// New creates the root logger. Unknown levels fall back to warn.
func New(opts Options) hclog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	level := hclog.LevelFromString(opts.Level)
	if level == hclog.NoLevel {
		level = hclog.Warn
	}

	color := hclog.ColorOff
	if opts.Color && !opts.JSON {
		color = hclog.AutoColor
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       Name,
		Level:      level,
		Output:     out,
		JSONFormat: opts.JSON,
		Color:      color,
	})
}

// Discard returns a logger that drops everything, for tests and library callers.
func Discard() hclog.Logger {
	return hclog.NewNullLogger()
}

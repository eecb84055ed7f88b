package main

import (
	"io"
	"log/slog"
)

// Attribute keys for diagnostic log records.
const (
	logKeyConfig   = "config"
	logKeyTarget   = "target"
	logKeyTargets  = "targets"
	logKeyOutput   = "output"
	logKeyWorkers  = "workers"
	logKeyDuration = "duration"
	logKeyVariable = "variable"
)

// newLogger returns a text logger for CLI diagnostics. Verbose runs log at
// debug level, quiet runs only log errors. Timestamps are dropped.
func newLogger(w io.Writer, quiet, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	switch {
	case verbose:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

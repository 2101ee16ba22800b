// Package logging routes slog output to a file, since the screen owns stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"movieapp/config"
)

// ParseLevel maps a config level name to a slog level. "off" reports false.
func ParseLevel(name string) (slog.Level, bool, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true, nil
	case "", "info":
		return slog.LevelInfo, true, nil
	case "warn", "warning":
		return slog.LevelWarn, true, nil
	case "error":
		return slog.LevelError, true, nil
	case "off":
		return slog.LevelInfo, false, nil
	default:
		return slog.LevelInfo, false, fmt.Errorf("unknown log level %q", name)
	}
}

// Setup installs the default slog logger described by cfg and returns a
// closer for the underlying file.
func Setup(cfg config.LogConfig) (io.Closer, error) {
	level, enabled, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if !enabled {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nopCloser{}, nil
	}

	path := strings.TrimSpace(cfg.File)
	if path == "" {
		path, err = config.DefaultLogFile()
		if err != nil {
			return nil, err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// newFileLogger opens a JSON slog logger under dataDir/logs. The TUI owns
// stdout, so nothing is ever logged there.
func newFileLogger(dataDir string, debug bool) (*slog.Logger, func() error, error) {
	logDir := filepath.Join(dataDir, "logs")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nopLogger(), func() error { return nil }, err
	}
	path := filepath.Join(logDir, "snipai.log")
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nopLogger(), func() error { return nil }, err
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, file.Close, nil
}

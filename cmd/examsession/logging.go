package main

import (
	"log/slog"
	"os"
	"strings"
)

func newLogger(level string) *slog.Logger {
	var lvl slog.Level

	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

// slogAdapter satisfies the dependency-free Logger interfaces of the
// postgres and notify packages.
type slogAdapter struct {
	logger *slog.Logger
}

func (a slogAdapter) Debug(msg string, args ...any) { a.logger.Debug(msg, args...) }
func (a slogAdapter) Info(msg string, args ...any)  { a.logger.Info(msg, args...) }
func (a slogAdapter) Warn(msg string, args ...any)  { a.logger.Warn(msg, args...) }
func (a slogAdapter) Error(msg string, args ...any) { a.logger.Error(msg, args...) }

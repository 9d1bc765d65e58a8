package ods2

import (
	"context"
	"log/slog"
)

// slogLevelTrace sits below slog.LevelDebug for per-block-read and
// per-decode tracing that is too noisy for ordinary debug logging.
const slogLevelTrace = slog.LevelDebug - 2

// trace/debug/info/warn/logerror are no-ops on a nil logger, so every
// call site in the core can log unconditionally without a guard.

func trace(l *slog.Logger, msg string, args ...any) {
	if l == nil {
		return
	}
	l.Log(context.Background(), slogLevelTrace, msg, args...)
}

func debug(l *slog.Logger, msg string, args ...any) {
	if l == nil {
		return
	}
	l.Debug(msg, args...)
}

func info(l *slog.Logger, msg string, args ...any) {
	if l == nil {
		return
	}
	l.Info(msg, args...)
}

func warn(l *slog.Logger, msg string, args ...any) {
	if l == nil {
		return
	}
	l.Warn(msg, args...)
}

func logerror(l *slog.Logger, msg string, args ...any) {
	if l == nil {
		return
	}
	l.Error(msg, args...)
}

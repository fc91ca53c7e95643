package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const (
	runIDKey       ctxKey = "runID"
	gameVersionKey ctxKey = "gameVersion"
)

// InitLogger installs the default slog logger writing to stderr.
func InitLogger(cfg Config) *slog.Logger {
	return InitLoggerWithWriter(cfg, os.Stderr)
}

// InitLoggerWithWriter installs the default slog logger writing to w.
func InitLoggerWithWriter(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	handler = handler.WithAttrs(cfg.BaseAttributes())

	l := slog.New(handler)
	slog.SetDefault(l)
	return l
}

// GenerateRunID creates a new UUID identifying one extraction run.
func GenerateRunID() string {
	return uuid.NewString()
}

// WithRunID returns a new context containing the run ID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunIDFromContext extracts the run ID from the context, if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(runIDKey).(string)
	return id, ok
}

// WithGameVersion returns a new context carrying the version of the game
// being extracted.
func WithGameVersion(ctx context.Context, version string) context.Context {
	return context.WithValue(ctx, gameVersionKey, version)
}

// FromContext returns a logger that includes the run_id and game_version
// attributes when present.
func FromContext(ctx context.Context) *slog.Logger {
	l := slog.Default()
	if id, ok := RunIDFromContext(ctx); ok {
		l = l.With(AttrKeyRunID, id)
	}
	if v, ok := ctx.Value(gameVersionKey).(string); ok {
		l = l.With(AttrKeyGameVersion, v)
	}
	return l
}

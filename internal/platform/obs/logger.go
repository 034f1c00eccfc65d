package obs

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	RunIDKey  ctxKey = "run_id"
	loggerKey ctxKey = "logger"
)

// NewLogger builds a JSON production logger for appEnv "production"
// and a human-readable development logger otherwise.
func NewLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "production" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func WithLogger(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// Logger returns the logger stored in ctx, or a no-op logger.
func Logger(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(loggerKey).(*zap.Logger); ok && l != nil {
		return l
	}
	return zap.NewNop()
}

func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RunIDKey, id)
}

func RunID(ctx context.Context) string {
	id, _ := ctx.Value(RunIDKey).(string)
	return id
}

package obs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Time logs the duration of an operation when the returned func is called.
// Usage: defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()

	log := Logger(ctx)
	runID := RunID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		fields := []zap.Field{
			zap.String("run_id", runID),
			zap.String("op", name),
			zap.Int64("dur_ms", dur.Milliseconds()),
		}

		if errp != nil && *errp != nil {
			log.Warn("operation failed", append(fields, zap.Error(*errp))...)
			return
		}
		log.Info("operation finished", fields...)
	}
}

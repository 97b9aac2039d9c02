package async

import (
	"context"

	"github.com/Anuja-3248/VitaGaurd/pkg/utils/logging"
)

// Dispatch executes handler in a new goroutine with a background context that keeps the caller's logger.
// Errors and panics are logged, never propagated.
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := logging.With(context.Background(), logging.From(ctx))

	go func() {
		defer func() {
			if r := recover(); r != nil {
				logging.From(bgCtx).Error("panic in async handler", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logging.From(bgCtx).Warn("async handler failed", "error", err)
		}
	}()
}

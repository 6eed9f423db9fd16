package queries

import (
	"context"
	"time"
)

// bounded limits a read to timeout. A non-positive timeout only adds
// cancellation.
func bounded(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

package distance

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"
)

// Distance Matrix statuses worth retrying; the maps client reports them in
// the error text.
var transientStatuses = []string{"OVER_QUERY_LIMIT", "UNKNOWN_ERROR", "RESOURCE_EXHAUSTED"}

func isTransient(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	msg := err.Error()
	for _, s := range transientStatuses {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}

// withRetry retries transient failures (network errors, quota and server
// statuses) using exponential backoff while respecting context cancellation.
func withRetry[T any](ctx context.Context, call func() (T, error)) (T, error) {
	const maxAttempts = 4
	backoff := 200 * time.Millisecond

	var zero T
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		res, err := call()
		if err == nil {
			return res, nil
		}
		lastErr = err

		if !isTransient(err) || attempt == maxAttempts {
			break
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}

	return zero, fmt.Errorf("after retries: %w", lastErr)
}

// Package inflight keeps at most one holder per key at a time. It backs the
// per-user "routine generation already running" check.
package inflight

import (
	"context"
	"errors"
	"time"
)

// ErrBusy is returned by Acquire when another holder owns the key.
var ErrBusy = errors.New("inflight: key busy")

// Release gives the key back. Calling it more than once is harmless.
type Release func()

type Guard interface {
	// Acquire claims key for at most ttl. The TTL bounds how long a crashed
	// holder can keep the key.
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}

const DefaultTTL = 3 * time.Minute

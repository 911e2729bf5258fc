// Package httpx classifies outbound HTTP failures and paces retries.
package httpx

import (
	"context"
	"errors"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// HTTPStatusCoder is implemented by errors that carry an upstream status.
type HTTPStatusCoder interface {
	HTTPStatusCode() int
}

// IsRetryableStatus is true for 408, 429 and every 5xx.
func IsRetryableStatus(code int) bool {
	switch {
	case code == http.StatusRequestTimeout, code == http.StatusTooManyRequests:
		return true
	default:
		return code >= 500 && code <= 599
	}
}

// IsRetryableError reports whether err looks transient. A cancelled caller
// context is never retryable; a deadline hit inside the transport is.
func IsRetryableError(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	var sc HTTPStatusCoder
	if errors.As(err, &sc) {
		return IsRetryableStatus(sc.HTTPStatusCode())
	}
	return false
}

// Backoff doubles from Base up to Max. A Retry-After header on the failed
// response replaces the computed delay, still capped at Max.
type Backoff struct {
	Base time.Duration
	Max  time.Duration
	// Jitter spreads each delay by +/- this fraction. Zero disables it.
	Jitter float64
}

// Delay is the wait before retry number attempt (0-based).
func (b Backoff) Delay(attempt int, resp *http.Response) time.Duration {
	d := b.Base
	for i := 0; i < attempt && (b.Max <= 0 || d < b.Max); i++ {
		d *= 2
	}
	if ra, ok := RetryAfter(resp, time.Now()); ok {
		d = ra
	}
	if b.Max > 0 && d > b.Max {
		d = b.Max
	}
	return jitter(d, b.Jitter)
}

// RetryAfter parses the Retry-After header as delta-seconds or an HTTP date.
func RetryAfter(resp *http.Response, now time.Time) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	raw := strings.TrimSpace(resp.Header.Get("Retry-After"))
	if raw == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		if secs <= 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(raw); err == nil && at.After(now) {
		return at.Sub(now), true
	}
	return 0, false
}

func jitter(d time.Duration, frac float64) time.Duration {
	if d <= 0 || frac <= 0 {
		return d
	}
	spread := float64(d) * frac
	return time.Duration(float64(d) - spread + rand.Float64()*2*spread)
}

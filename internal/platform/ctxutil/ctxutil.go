// Package ctxutil carries per-request values on a context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type key int

const (
	traceKey key = iota
	callerKey
)

// TraceData identifies one request across logs and spans.
type TraceData struct {
	TraceID   string
	RequestID string
}

// RequestData is the authenticated caller attached by the auth middleware.
type RequestData struct {
	TokenString string
	UserID      uuid.UUID
}

// Default returns context.Background() when ctx is nil.
func Default(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func WithTraceData(ctx context.Context, td *TraceData) context.Context {
	return context.WithValue(Default(ctx), traceKey, td)
}

func GetTraceData(ctx context.Context) *TraceData { return lookup[*TraceData](ctx, traceKey) }

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(Default(ctx), callerKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData { return lookup[*RequestData](ctx, callerKey) }

// UserID returns the authenticated user, or uuid.Nil.
func UserID(ctx context.Context) uuid.UUID {
	if rd := GetRequestData(ctx); rd != nil {
		return rd.UserID
	}
	return uuid.Nil
}

func lookup[T any](ctx context.Context, k key) T {
	var zero T
	if ctx == nil {
		return zero
	}
	v, _ := ctx.Value(k).(T)
	return v
}

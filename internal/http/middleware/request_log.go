package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/studytrack-backend/internal/platform/ctxutil"
	"github.com/yungbote/studytrack-backend/internal/platform/logger"
)

// RequestLogger writes one access line per request, at Warn for 4xx and
// Error for 5xx.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	if log == nil {
		return func(c *gin.Context) { c.Next() }
	}
	log = log.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := requestFields(c, status, time.Since(start))
		switch {
		case status >= 500:
			log.Error("request", fields...)
		case status >= 400:
			log.Warn("request", fields...)
		default:
			log.Info("request", fields...)
		}
	}
}

func requestFields(c *gin.Context, status int, took time.Duration) []any {
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	fields := []any{
		"method", c.Request.Method,
		"route", route,
		"path", c.Request.URL.Path,
		"status", status,
		"bytes", c.Writer.Size(),
		"duration_ms", took.Milliseconds(),
	}
	ctx := c.Request.Context()
	if td := ctxutil.GetTraceData(ctx); td != nil {
		fields = append(fields, "trace_id", td.TraceID, "request_id", td.RequestID)
	}
	if uid := ctxutil.UserID(ctx); uid != uuid.Nil {
		fields = append(fields, "user_id", uid.String())
	}
	if len(c.Errors) > 0 {
		fields = append(fields, "errors", c.Errors.String())
	}
	return fields
}

package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	chiMw "github.com/go-chi/chi/v5/middleware"
	"github.com/migudevelop/openapi-mock-generator/internal/logger"
)

// DurationHeader carries the handler time in milliseconds.
const DurationHeader = "X-Mock-Duration"

type ctxKey string

const startTimeKey ctxKey = "startTime"

// StartTimeMiddleware stores request start time in context.
func StartTimeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), startTimeKey, time.Now())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SetDurationHeader sets DurationHeader based on start time from context.
func SetDurationHeader(w http.ResponseWriter, r *http.Request) {
	if start, ok := r.Context().Value(startTimeKey).(time.Time); ok {
		duration := float64(time.Since(start).Microseconds()) / 1000
		w.Header().Set(DurationHeader, fmt.Sprintf("%.3fms", duration))
	}
}

// LoggerMiddleware logs every request through sink once it has been served.
func LoggerMiddleware(sink logger.Sink) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chiMw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			args := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration", time.Since(start).String(),
			}
			msg := fmt.Sprintf("Incoming HTTP request: %s", r.URL.String())
			if ww.Status() >= http.StatusInternalServerError {
				sink.Error(msg, args...)
				return
			}
			sink.Info(msg, args...)
		})
	}
}

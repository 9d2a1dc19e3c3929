package muxhandlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/vitalvas/pathtrie/mux"
)

// AccessLogConfig configures the access log middleware.
type AccessLogConfig struct {
	// Logger receives one record per request. When nil, slog.Default()
	// is used.
	Logger *slog.Logger

	// Level is the level of the records. Defaults to slog.LevelInfo.
	Level slog.Level
}

// AccessLogMiddleware returns a middleware that logs every routed request
// with its matched pattern, captured variables, status, size and duration.
func AccessLogMiddleware(cfg AccessLogConfig) mux.MiddlewareFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !logger.Enabled(r.Context(), cfg.Level) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := newStatusRecorder(w)
			next.ServeHTTP(rec, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("pattern", mux.CurrentPattern(r)),
				slog.Int("status", rec.status),
				slog.Int("bytes", rec.bytes),
				slog.Duration("duration", time.Since(start)),
			}
			if vars := mux.Vars(r); len(vars) > 0 {
				attrs = append(attrs, slog.Any("vars", vars))
			}
			if id := RequestIDFromContext(r.Context()); id != "" {
				attrs = append(attrs, slog.String("request_id", id))
			}

			logger.LogAttrs(r.Context(), cfg.Level, "request", attrs...)
		})
	}
}

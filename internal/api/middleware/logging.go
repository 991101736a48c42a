package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// FieldLogger логгер со структурированными полями
type FieldLogger interface {
	WithFields(fields map[string]interface{}) *logrus.Entry
}

// Logging пишет access-лог по каждому запросу
func Logging(logger FieldLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := newStatusRecorder(w)

			next.ServeHTTP(wrapped, r)

			logger.WithFields(logrus.Fields{
				"request_id":  GetRequestID(r.Context()),
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      wrapped.status,
				"duration_ms": time.Since(start).Milliseconds(),
				"remote_addr": r.RemoteAddr,
			}).Info("HTTP request")
		})
	}
}

package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/budgetbrew/budgetbrew-server/internal/logging"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestIDHeader carries the per-request correlation id in both directions.
const RequestIDHeader = "X-Request-Id"

// maxRequestIDLen bounds client-supplied request ids.
const maxRequestIDLen = 64

// maxAPIBody caps request bodies on /api routes.
const maxAPIBody = 100 << 10

// requestID tags every request with an id, reusing the client's when it is a
// short printable token. The id is stored where middleware.GetReqID finds it.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), middleware.RequestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogger logs each HTTP request with method, path, status code and
// duration. Static file requests are logged at debug level only.
func requestLogger(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			kv := []interface{}{
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", time.Since(start).Round(time.Microsecond).String(),
				"request_id", middleware.GetReqID(r.Context()),
			}

			if strings.HasPrefix(r.URL.Path, "/api/") {
				logger.Info("request", kv...)
				return
			}
			logger.Debug("static request", kv...)
		})
	}
}

// validRequestID accepts 1 to maxRequestIDLen visible ASCII characters.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '!' || id[i] > '~' {
			return false
		}
	}
	return true
}

// limitBody caps how much of a request body a handler may read. Bodies of
// any content type are accepted; nothing is read unless a handler asks.
func limitBody(next http.Handler) http.Handler {
	return middleware.RequestSize(maxAPIBody)(next)
}

package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/abgdnv/products-api/internal/apperrors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// APIKeyHeader carries the client credential on protected routes.
const APIKeyHeader = "X-API-Key"

// RequestIDInjector creates a middleware that injects request id
func RequestIDInjector(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := middleware.GetReqID(r.Context())
		if reqID == "" {
			reqID = uuid.NewString()
		}
		ctx := WithRequestID(r.Context(), reqID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StructuredLogger creates a middleware that logs HTTP requests in a
// structured format. It never short-circuits and has no effect on the
// response.
func StructuredLogger(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			reqID, _ := GetRequestID(r.Context())
			requestLogger := logger.With("request_id", reqID)

			defer func() {
				requestLogger.Info("Request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes_written", ww.BytesWritten(),
					"duration_ms", float64(time.Since(start).Nanoseconds())/1e6,
					"remote_addr", r.RemoteAddr,
					"user_agent", r.UserAgent(),
				)
			}()
			next.ServeHTTP(ww, r)
		}
		return http.HandlerFunc(fn)
	}
}

// Recoverer recovers from handler panics, logs them with full detail and
// renders the generic 500 body.
func Recoverer(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					reqID, _ := GetRequestID(r.Context())
					logger.Error("Panic recovered",
						"panic", rvr,
						"request_id", reqID,
					)
					RespondJSON(w, logger, http.StatusInternalServerError, ErrorResponse{
						Status:  "error",
						Message: GenericErrorMessage,
					})
				}
			}()
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// APIKeyAuth guards a route subtree with a static shared-secret header.
// A missing header and a mismatched key produce distinct Unauthorized
// messages; on success the request continues unchanged.
func APIKeyAuth(expectedKey string, logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey := r.Header.Get(APIKeyHeader)
			if apiKey == "" {
				RespondError(w, logger, apperrors.Unauthorized("API key is missing."))
				return
			}
			if apiKey != expectedKey {
				RespondError(w, logger, apperrors.Unauthorized("Invalid API key."))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

package api

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// HeaderAPIKey authenticates requests to protected endpoints.
const HeaderAPIKey = "X-API-Key"

// HeaderRequestID carries the request correlation ID. Incoming values are
// reused so callers can trace a request across systems; otherwise one is
// generated.
const HeaderRequestID = "X-Request-ID"

type contextKey string

const apiKeyContextKey contextKey = "api_key"

// requestID attaches a correlation ID to the request context logger and
// echoes it in the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := r.Context()
		logger := zerolog.Ctx(ctx).With().Str("request_id", id).Logger()
		ctx = logger.WithContext(ctx)

		w.Header().Set(HeaderRequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// accessLog emits one structured line per completed request.
func accessLog(next http.Handler) http.Handler {
	return hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		zerolog.Ctx(r.Context()).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", size).
			Dur("duration", duration).
			Msg("request completed")
	})(next)
}

// recovery turns handler panics into a 500 response instead of tearing down
// the connection, logging the stack for diagnosis.
func recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				zerolog.Ctx(r.Context()).Error().
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Msg("panic in handler")

				writeError(w, r, http.StatusInternalServerError, codeInternalError, "Internal server error.")
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// requireAPIKey rejects requests without a valid X-API-Key header. The
// accepted key is stored in the request context for the rate limiter.
func requireAPIKey(keys map[string]struct{}) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := r.Header.Get(HeaderAPIKey)
			if key == "" {
				writeError(w, r, http.StatusUnauthorized, codeUnauthorized,
					"Missing API key. Provide X-API-Key header.")
				return
			}
			if _, ok := keys[key]; !ok {
				writeError(w, r, http.StatusUnauthorized, codeUnauthorized,
					"Invalid API key.")
				return
			}

			ctx := context.WithValue(r.Context(), apiKeyContextKey, key)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// rateLimit enforces the per-key limiter. It must run after requireAPIKey;
// requests that somehow arrive without a key share one anonymous bucket.
func rateLimit(limiter *Limiter) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(int(math.Ceil(limiter.window.Seconds())))
	message := fmt.Sprintf("Too many requests. Max %d per %s per API key.", limiter.max, limiter.window)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key, _ := r.Context().Value(apiKeyContextKey).(string)

			if !limiter.Allow(key, time.Now()) {
				w.Header().Set("Retry-After", retryAfter)
				writeError(w, r, http.StatusTooManyRequests, codeRateLimited, message)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

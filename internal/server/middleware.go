package server

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Alias1177/econagent/models"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// NewRequestLoggingMiddleware creates middleware that logs HTTP requests.
func NewRequestLoggingMiddleware(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}
			next.ServeHTTP(wrapped, r)

			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", wrapped.statusCode).
				Dur("duration", time.Since(start)).
				Msg("request")
		})
	}
}

// RateLimitMiddleware provides per-client rate limiting keyed by the remote
// host.
type RateLimitMiddleware struct {
	limiters  map[string]*rate.Limiter
	mu        sync.RWMutex
	rateLimit rate.Limit
	burstSize int
}

// NewRateLimitMiddleware creates rate limiting middleware allowing
// ratePerSecond requests per second per client. A non-positive rate
// disables limiting.
func NewRateLimitMiddleware(ratePerSecond int) func(http.Handler) http.Handler {
	rateLimit := rate.Inf
	if ratePerSecond > 0 {
		rateLimit = rate.Every(time.Second / time.Duration(ratePerSecond))
	}

	middleware := &RateLimitMiddleware{
		limiters:  make(map[string]*rate.Limiter),
		rateLimit: rateLimit,
		burstSize: ratePerSecond,
	}
	return middleware.rateLimitHandler
}

func (rl *RateLimitMiddleware) getLimiter(client string) *rate.Limiter {
	rl.mu.RLock()
	limiter, exists := rl.limiters[client]
	rl.mu.RUnlock()
	if exists {
		return limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if limiter, exists := rl.limiters[client]; exists {
		return limiter
	}
	limiter = rate.NewLimiter(rl.rateLimit, rl.burstSize)
	rl.limiters[client] = limiter
	return limiter
}

func (rl *RateLimitMiddleware) rateLimitHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if rl.rateLimit == rate.Inf {
			next.ServeHTTP(w, r)
			return
		}

		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}
		if !rl.getLimiter(client).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(models.ResponseModel{
				Code:        http.StatusTooManyRequests,
				CurrentTime: models.ResponseCurrentTime(),
				Text:        "rate limit exceeded",
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

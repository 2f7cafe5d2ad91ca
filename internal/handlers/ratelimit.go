package handlers

import (
	"fmt"
	"net/http"

	"github.com/assetflow/backend/internal/middleware"
)

// RateLimiter is the minimal interface required to guard mutating endpoints.
type RateLimiter interface {
	Allow(key string) bool
}

// allowRequest consumes a token for the caller in scope, answering 429 when
// none is left.
func allowRequest(limiter RateLimiter, w http.ResponseWriter, r *http.Request, scope string) bool {
	if limiter == nil {
		return true
	}
	if limiter.Allow(rateLimitKey(r, scope)) {
		return true
	}
	w.Header().Set("Retry-After", "60")
	respondError(r.Context(), w, http.StatusTooManyRequests, "too many requests")
	return false
}

func rateLimitKey(r *http.Request, scope string) string {
	ip := middleware.ClientIP(r)
	if scope == "" {
		return ip
	}
	return fmt.Sprintf("%s:%s", scope, ip)
}

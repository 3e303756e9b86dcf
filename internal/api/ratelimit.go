package api

import (
	"fmt"
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

// clientLimiter hands out one token bucket per client IP so a single busy
// caller cannot starve the rest.
type clientLimiter struct {
	mu    sync.Mutex
	perIP map[string]*rate.Limiter

	limit rate.Limit
	burst int
}

func newClientLimiter(perMinute, burst int) *clientLimiter {
	return &clientLimiter{
		perIP: make(map[string]*rate.Limiter),
		limit: rate.Limit(float64(perMinute) / 60.0),
		burst: burst,
	}
}

func (l *clientLimiter) limiter(ip string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.perIP[ip]
	if !ok {
		lim = rate.NewLimiter(l.limit, l.burst)
		l.perIP[ip] = lim
	}
	return lim
}

// rateLimitMiddleware rejects requests over the per-IP budget with 429.
func rateLimitMiddleware(l *clientLimiter, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !l.limiter(ip).Allow() {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprintln(w, `{"error":"rate limit exceeded"}`)
			return
		}

		next.ServeHTTP(w, r)
	})
}

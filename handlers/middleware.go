package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const apiKeyHeader = "X-API-Key"

// RequireAPIKey rejects requests whose X-API-Key header is not one of keys.
func RequireAPIKey(keys []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		if !validKey(r.Header.Get(apiKeyHeader), keys) {
			slog.Warn("rejected request without valid api key", "path", r.URL.Path, "remote", r.RemoteAddr)
			writeError(w, http.StatusUnauthorized, CodeUnauthorized, "Invalid or missing API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func validKey(key string, keys []string) bool {
	if key == "" {
		return false
	}
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(key), []byte(k)) == 1 {
			return true
		}
	}
	return false
}

// idle clients are forgotten after this long
const limiterIdleTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client, identified by API key
// or, without one, by remote address.
type RateLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	perMinute int
	lastSweep time.Time
	now       func() time.Time
}

func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute < 1 {
		perMinute = 1
	}
	return &RateLimiter{
		clients:   map[string]*clientLimiter{},
		perMinute: perMinute,
		now:       time.Now,
	}
}

func (l *RateLimiter) allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastSweep) > limiterIdleTTL {
		for id, c := range l.clients {
			if now.Sub(c.lastSeen) > limiterIdleTTL {
				delete(l.clients, id)
			}
		}
		l.lastSweep = now
	}

	c, ok := l.clients[client]
	if !ok {
		every := rate.Every(time.Minute / time.Duration(l.perMinute))
		c = &clientLimiter{limiter: rate.NewLimiter(every, l.perMinute)}
		l.clients[client] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientID(r)
		if !l.allow(client) {
			slog.Warn("rate limit exceeded", "path", r.URL.Path, "remote", r.RemoteAddr)
			w.Header().Set("Retry-After", strconv.Itoa(int((time.Minute/time.Duration(l.perMinute)).Seconds())+1))
			writeError(w, http.StatusTooManyRequests, CodeRateLimited, "Rate limit exceeded, retry later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientID(r *http.Request) string {
	if key := r.Header.Get(apiKeyHeader); key != "" {
		return "key:" + key
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

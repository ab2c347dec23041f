package ratelimit

import (
	"fmt"
	"hallBooker/internal/http-server/middleware/mwauth"
	"hallBooker/internal/lib/api/response"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"
)

// Visitors idle for longer than this are forgotten.
const visitorTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Limiter keeps one token bucket per caller: the authenticated user when
// the auth middleware ran first, the client IP otherwise.
type Limiter struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     rate.Limit
	burst     int
	lastSweep time.Time
	now       func() time.Time
	log       *slog.Logger
}

func New(log *slog.Logger, perSecond float64, burst int) *Limiter {
	return &Limiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(perSecond),
		burst:    burst,
		now:      time.Now,
		log:      log.With(slog.String("component", "middleware/ratelimit")),
	}
}

func (l *Limiter) getLimiter(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	if now.Sub(l.lastSweep) > visitorTTL {
		for k, v := range l.visitors {
			if now.Sub(v.lastSeen) > visitorTTL {
				delete(l.visitors, k)
			}
		}
		l.lastSweep = now
	}

	v, ok := l.visitors[key]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter
}

func (l *Limiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := visitorKey(r)

		if !l.getLimiter(key).AllowN(l.now(), 1) {
			l.log.Warn("rate limit exceeded", slog.String("visitor", key))
			render.Status(r, http.StatusTooManyRequests)
			render.JSON(w, r, response.Error("too many requests"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func visitorKey(r *http.Request) string {
	if claims, ok := mwauth.ClaimsFromContext(r.Context()); ok {
		return fmt.Sprintf("user:%d", claims.UserID)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	return "ip:" + host
}

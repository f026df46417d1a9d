package middlewares

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter is a token bucket per client IP that blocks a client for
// blockTime once its bucket runs dry. It guards the login form.
type RateLimiter struct {
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	requests  int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
	log       *zap.Logger
}

func NewRateLimiter(burst int, per, blockTime time.Duration, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		requests:  burst,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
		log:       logger,
	}
}

// NewLoginLimiter allows LoginRequestsPerMinute attempts per minute with
// LoginBurst attempts in a row.
func (m *Middlewares) NewLoginLimiter() *RateLimiter {
	perMinute := m.InternalConfig.App.LoginRequestsPerMinute
	if perMinute <= 0 {
		perMinute = 10
	}
	burst := m.InternalConfig.App.LoginBurst
	if burst <= 0 {
		burst = perMinute
	}
	return NewRateLimiter(burst, time.Minute/time.Duration(perMinute), time.Minute, m.Log)
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		if !r.allow(ip) {
			requestID, _ := req.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			r.log.Warn("RateLimiter.Limit client blocked",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRemoteAddrKey, ip),
			)
			utils.Notify(w, constvars.NotifyLevelError, constvars.ErrClientTooManyRequests)
			w.WriteHeader(constvars.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[ip]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, ip)
	}

	limiter, exists := r.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per), r.requests)
		r.limiters[ip] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[ip] = now.Add(r.blockTime)
		return false
	}
	return true
}

package middlewares

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/httprate"
)

// CreateRateLimiter limits every route per client IP.
func (m *Middlewares) CreateRateLimiter() func(next http.Handler) http.Handler {
	window := time.Duration(m.InternalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	if window <= 0 {
		window = time.Second
	}
	return httprate.Limit(
		m.InternalConfig.App.MaxRequests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.Notify(w, constvars.NotifyLevelError, constvars.ErrClientTooManyRequests)
			w.WriteHeader(constvars.StatusTooManyRequests)
		}),
	)
}

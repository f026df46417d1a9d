package middlewares

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Authenticate resolves the session cookie into a live session. Without one
// the browser is sent to the login page and the stale cookie is dropped.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		var sessionToken string
		if cookie, err := r.Cookie(m.InternalConfig.App.SessionCookieName); err == nil {
			sessionToken = cookie.Value
		}

		session, err := m.AuthUsecase.ResolveSession(r.Context(), sessionToken)
		if err != nil {
			if exceptions.IsUnauthorized(err) {
				m.Log.Info("Middlewares.Authenticate no valid session",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
				)
				utils.ClearSessionCookie(w, m.InternalConfig.App.SessionCookieName, m.InternalConfig.App.SessionCookieSecure)
				utils.RedirectToLogin(w, r)
				return
			}
			code, message, _ := utils.LogError(m.Log, err)
			utils.Notify(w, constvars.NotifyLevelError, message)
			w.WriteHeader(code)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the session Authenticate stored for the request.
func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	return session, ok && session != nil
}

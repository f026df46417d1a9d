package middlewares

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/utils"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// ErrorHandler turns a panic in a handler into a 500 with an error
// notification so the page stays usable.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = fmt.Errorf("unknown panic: %v", x)
				}

				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("Middlewares.ErrorHandler recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
					zap.Stack("stack"),
				)

				utils.Notify(w, constvars.NotifyLevelError, constvars.ErrClientSomethingWrongWithApplication)
				w.WriteHeader(constvars.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

package utils

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

// LogError logs err with every location it collected and returns the status
// code and client message it maps to.
func LogError(log *zap.Logger, err error) (int, string, *exceptions.CustomError) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		if customErr.ClientMessage != "" {
			clientMessage = customErr.ClientMessage
		}
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
		return code, clientMessage, customErr
	}

	log.Error(err.Error())
	return code, clientMessage, nil
}

// HXTriggers collects client-side events sent back in the HX-Trigger header.
type HXTriggers map[string]interface{}

func NewHXTriggers() HXTriggers {
	return HXTriggers{}
}

func (t HXTriggers) Notify(level, message string) HXTriggers {
	t[constvars.NotifyEventName] = map[string]string{
		"level":   level,
		"message": message,
	}
	return t
}

func (t HXTriggers) Event(name string) HXTriggers {
	t[name] = true
	return t
}

func (t HXTriggers) Write(w http.ResponseWriter) {
	if len(t) == 0 {
		return
	}
	payload, err := json.Marshal(t)
	if err != nil {
		return
	}
	w.Header().Set(constvars.HeaderHXTrigger, string(payload))
}

// Notify raises a non-blocking notification on the page.
func Notify(w http.ResponseWriter, level, message string) {
	NewHXTriggers().Notify(level, message).Write(w)
}

// RedirectToLogin sends the browser to the logged-out view. Fragment
// requests get HX-Redirect, full page loads a plain redirect.
func RedirectToLogin(w http.ResponseWriter, r *http.Request) {
	if IsHXRequest(r) {
		w.Header().Set(constvars.HeaderHXRedirect, "/login")
		w.WriteHeader(constvars.StatusUnauthorized)
		return
	}
	http.Redirect(w, r, "/login", constvars.StatusSeeOther)
}

// DiscardStale tells the page to keep its current fragment.
func DiscardStale(w http.ResponseWriter) {
	w.Header().Set(constvars.HeaderHXReswap, constvars.HXReswapNone)
	w.WriteHeader(constvars.StatusNoContent)
}

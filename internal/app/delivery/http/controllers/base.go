package controllers

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/views"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// Base carries what every page controller needs to render and to drop a
// session the backend no longer accepts.
type Base struct {
	Log            *zap.Logger
	Views          *views.Renderer
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
}

func NewBase(logger *zap.Logger, renderer *views.Renderer, sessionService contracts.SessionService, internalConfig *config.InternalConfig) *Base {
	return &Base{
		Log:            logger,
		Views:          renderer,
		SessionService: sessionService,
		InternalConfig: internalConfig,
	}
}

// session returns the authenticated session or answers the request with a
// redirect to the login page.
func (b *Base) session(w http.ResponseWriter, r *http.Request) (*models.Session, bool) {
	session, ok := middlewares.SessionFromContext(r.Context())
	if !ok {
		b.Log.Error("Base.session session not found in context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
		)
		utils.RedirectToLogin(w, r)
		return nil, false
	}
	return session, true
}

func (b *Base) page(w http.ResponseWriter, r *http.Request, name string, page *views.Page) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	if err := b.Views.Page(w, name, page); err != nil {
		b.renderFailed(w, err)
	}
}

func (b *Base) fragment(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	if err := b.Views.Fragment(w, name, data); err != nil {
		b.renderFailed(w, err)
	}
}

func (b *Base) renderFailed(w http.ResponseWriter, err error) {
	utils.LogError(b.Log, err)
	utils.Notify(w, constvars.NotifyLevelError, constvars.ErrClientSomethingWrongWithApplication)
	w.WriteHeader(constvars.StatusInternalServerError)
}

// signedOut reports whether err means the backend no longer accepts the
// session's token. When it does, the session is dropped and the browser
// is sent to the login page.
func (b *Base) signedOut(w http.ResponseWriter, r *http.Request, session *models.Session, err error) bool {
	if !exceptions.IsUnauthorized(err) {
		return false
	}
	if session != nil {
		if deleteErr := b.SessionService.DeleteSession(context.WithoutCancel(r.Context()), session.SessionID); deleteErr != nil {
			utils.LogError(b.Log, deleteErr)
		}
	}
	utils.ClearSessionCookie(w, b.InternalConfig.App.SessionCookieName, b.InternalConfig.App.SessionCookieSecure)
	utils.RedirectToLogin(w, r)
	return true
}

// fail answers a fragment request that could not be served with an error
// notification and leaves the page as it is. The backend's own message is
// shown when it rejected the request, fallback otherwise.
func (b *Base) fail(w http.ResponseWriter, r *http.Request, session *models.Session, err error, fallback string) {
	if b.signedOut(w, r, session, err) {
		return
	}
	code, _, _ := utils.LogError(b.Log, err)
	if errors.Is(err, context.DeadlineExceeded) {
		code = constvars.StatusGatewayTimeout
	}
	utils.Notify(w, constvars.NotifyLevelError, exceptions.BackendMessage(err, fallback))
	w.WriteHeader(code)
}

func notifySuccess(w http.ResponseWriter, message string, events ...string) {
	triggers := utils.NewHXTriggers().Notify(constvars.NotifyLevelSuccess, message)
	for _, event := range events {
		triggers.Event(event)
	}
	triggers.Write(w)
}

func notifyError(w http.ResponseWriter, message string) {
	utils.Notify(w, constvars.NotifyLevelError, message)
}

func (b *Base) layout(session *models.Session, title, active string, data interface{}) *views.Page {
	return &views.Page{Title: title, Active: active, Session: session, Data: data}
}

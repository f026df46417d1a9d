package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/views"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

const homePath = "/appointments"

type AuthController struct {
	*Base
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(base *Base, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Base:        base,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	ctrl.page(w, r, "login", ctrl.layout(nil, "Sign in", "", &views.LoginView{}))
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	form := new(requests.LoginForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, nil, err, constvars.ErrClientFailedToLogin)
		return
	}

	result, err := ctrl.AuthUsecase.Login(r.Context(), form)
	if err != nil {
		ctrl.fail(w, r, nil, err, constvars.ErrClientFailedToLogin)
		return
	}
	if !result.Succeeded() {
		ctrl.Log.Info("AuthController.Login rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		view := &views.LoginView{Username: form.Username, Message: result.Message}
		if utils.IsHXRequest(r) {
			ctrl.fragment(w, r, "login_form", view)
			return
		}
		ctrl.page(w, r, "login", ctrl.layout(nil, "Sign in", "", view))
		return
	}

	utils.SetSessionCookie(w, ctrl.InternalConfig.App.SessionCookieName, result.SessionToken,
		ctrl.InternalConfig.App.SessionTTL(), ctrl.InternalConfig.App.SessionCookieSecure)

	ctrl.Log.Info("AuthController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.Session.UserID),
	)
	redirect(w, r, homePath)
}

// Logout drops the session if there is one and always ends on the login
// page.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(ctrl.InternalConfig.App.SessionCookieName); err == nil {
		session, err := ctrl.AuthUsecase.ResolveSession(r.Context(), cookie.Value)
		if err == nil {
			if err := ctrl.AuthUsecase.Logout(r.Context(), session); err != nil {
				utils.LogError(ctrl.Log, err)
			}
		}
	}

	utils.ClearSessionCookie(w, ctrl.InternalConfig.App.SessionCookieName, ctrl.InternalConfig.App.SessionCookieSecure)
	redirect(w, r, "/login")
}

func (ctrl *AuthController) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ctrl.page(w, r, "register", ctrl.layout(nil, "Register", "", &views.RegisterView{Form: &requests.RegisterForm{}}))
}

// Register creates an account and points the user at the login page. The
// passwords are never echoed back into the form.
func (ctrl *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	form := new(requests.RegisterForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, nil, err, constvars.ErrClientFailedToRegister)
		return
	}

	fieldErrors, err := ctrl.AuthUsecase.Register(r.Context(), form)
	form.Password, form.ConfirmPassword = "", ""
	view := &views.RegisterView{Form: form}
	switch {
	case err != nil:
		utils.LogError(ctrl.Log, err)
		view.Message = exceptions.BackendMessage(err, constvars.ErrClientFailedToRegister)
	case len(fieldErrors) > 0:
		view.FieldErrors = fieldErrors
	default:
		view.Registered = true
		view.Message = constvars.RegistrationSuccessMessage
		notifySuccess(w, constvars.RegistrationSuccessMessage)
	}

	if utils.IsHXRequest(r) {
		ctrl.fragment(w, r, "register_form", view)
		return
	}
	ctrl.page(w, r, "register", ctrl.layout(nil, "Register", "", view))
}

func (ctrl *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	profile, err := ctrl.AuthUsecase.Profile(r.Context(), session)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		notifyError(w, exceptions.BackendMessage(err, constvars.ErrClientFailedToLoadProfile))
	}
	ctrl.page(w, r, "profile", ctrl.layout(session, "Profile", "", &views.ProfileView{
		Details:  views.ProfileDetailsView{Profile: profile},
		Form:     views.ProfileFormView{Form: profileForm(profile)},
		Password: views.PasswordFormView{Form: &requests.ChangePasswordForm{}},
	}))
}

// UpdateProfile saves the edit form. On success the details card is swapped
// out of band with the profile as the backend now reports it.
func (ctrl *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	form := new(requests.ProfileForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToUpdateProfile)
		return
	}

	view := views.ProfileFormView{Form: form}
	fieldErrors, err := ctrl.AuthUsecase.UpdateProfile(r.Context(), session, form)
	switch {
	case err != nil:
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		view.Message = exceptions.BackendMessage(err, constvars.ErrClientFailedToUpdateProfile)
		notifyError(w, view.Message)
	case len(fieldErrors) > 0:
		view.FieldErrors = fieldErrors
	default:
		notifySuccess(w, constvars.ProfileUpdatedSuccessMessage, constvars.CloseModalEvent)
		profile, err := ctrl.AuthUsecase.Profile(r.Context(), session)
		if err != nil {
			utils.LogError(ctrl.Log, err)
			ctrl.fragment(w, r, "profile_form", view)
			return
		}
		ctrl.fragment(w, r, "profile_form", views.ProfileFormView{Form: profileForm(profile)})
		ctrl.fragment(w, r, "profile_details", views.ProfileDetailsView{Profile: profile, OOB: true})
		return
	}
	ctrl.fragment(w, r, "profile_form", view)
}

func (ctrl *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	form := new(requests.ChangePasswordForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToChangePassword)
		return
	}

	view := views.PasswordFormView{Form: &requests.ChangePasswordForm{}}
	fieldErrors, err := ctrl.AuthUsecase.ChangePassword(r.Context(), session, form)
	switch {
	case err != nil:
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		view.Message = exceptions.BackendMessage(err, constvars.ErrClientFailedToChangePassword)
		notifyError(w, view.Message)
	case len(fieldErrors) > 0:
		view.FieldErrors = fieldErrors
	default:
		notifySuccess(w, constvars.PasswordChangedSuccessMessage, constvars.CloseModalEvent, constvars.ResetFormEvent)
	}
	ctrl.fragment(w, r, "password_form", view)
}

func profileForm(profile *responses.Profile) *requests.ProfileForm {
	if profile == nil {
		return &requests.ProfileForm{}
	}
	return &requests.ProfileForm{
		Name:  profile.DisplayName(),
		Email: profile.Email,
		Phone: profile.Phone,
	}
}

func redirect(w http.ResponseWriter, r *http.Request, location string) {
	if utils.IsHXRequest(r) {
		w.Header().Set(constvars.HeaderHXRedirect, location)
		w.WriteHeader(constvars.StatusOK)
		return
	}
	http.Redirect(w, r, location, constvars.StatusSeeOther)
}

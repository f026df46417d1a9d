package auth

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

type authUsecase struct {
	AuthBackendClient contracts.AuthBackendClient
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Now               func() time.Time
	Log               *zap.Logger
}

func NewAuthUsecase(
	authBackendClient contracts.AuthBackendClient,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		AuthBackendClient: authBackendClient,
		SessionService:    sessionService,
		InternalConfig:    internalConfig,
		Now:               time.Now,
		Log:               logger,
	}
}

// Login exchanges credentials for a backend access token and opens a portal
// session holding it. Every failure the user can act on comes back as a
// LoginResult message; only portal faults are errors.
func (uc *authUsecase) Login(ctx context.Context, form *requests.LoginForm) (*models.LoginResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	form.Username = strings.TrimSpace(form.Username)
	if err := utils.ValidateStruct(form); err != nil {
		return &models.LoginResult{Message: constvars.ErrClientLoginMissingCredentials}, nil
	}

	token, err := uc.AuthBackendClient.ObtainToken(ctx, form)
	if err != nil {
		uc.Log.Warn("authUsecase.Login backend refused credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &models.LoginResult{Message: loginFailureMessage(err)}, nil
	}

	now := uc.Now()
	session := &models.Session{
		SessionID:   utils.GenerateSessionID(),
		Username:    form.Username,
		DisplayName: form.Username,
		AccessToken: token.Access,
		CreatedAt:   now,
		ExpiresAt:   now.Add(uc.InternalConfig.App.SessionTTL()),
	}

	profile, err := uc.AuthBackendClient.FindProfile(ctx, token.Access)
	if err != nil {
		uc.Log.Warn("authUsecase.Login error fetching profile, continuing without it",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	} else {
		session.UserID = profile.ID
		session.DisplayName = profile.DisplayName()
		session.Role = profile.Role
	}

	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Error("authUsecase.Login error creating session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	sessionToken, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, session.ExpiresAt.Sub(now))
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return &models.LoginResult{Session: session, SessionToken: sessionToken}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	err := uc.SessionService.DeleteSession(ctx, session.SessionID)
	if err != nil {
		uc.Log.Error("authUsecase.Logout error deleting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
		return err
	}
	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return nil
}

func (uc *authUsecase) ResolveSession(ctx context.Context, sessionToken string) (*models.Session, error) {
	if sessionToken == "" {
		return nil, exceptions.ErrTokenMissing(nil)
	}
	sessionID, err := utils.ParseSessionJWT(sessionToken, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}
	return uc.SessionService.GetSession(ctx, sessionID)
}

func (uc *authUsecase) Profile(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	profile, err := uc.AuthBackendClient.FindProfile(ctx, session.AccessToken)
	if err != nil {
		uc.Log.Error("authUsecase.Profile error fetching profile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return profile, nil
}

// Register creates an account at the backend. The user signs in afterwards
// like anyone else.
func (uc *authUsecase) Register(ctx context.Context, form *requests.RegisterForm) (exceptions.FieldErrors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	form.Username = strings.TrimSpace(form.Username)
	form.Email = strings.TrimSpace(form.Email)
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.CollectFieldErrors(err), nil
	}

	err := uc.AuthBackendClient.Register(ctx, form)
	if err != nil {
		uc.Log.Warn("authUsecase.Register backend refused registration",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil, nil
}

func (uc *authUsecase) UpdateProfile(ctx context.Context, session *models.Session, form *requests.ProfileForm) (exceptions.FieldErrors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Phone = strings.TrimSpace(form.Phone)
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.CollectFieldErrors(err), nil
	}

	err := uc.AuthBackendClient.UpdateProfile(ctx, session.AccessToken, form)
	if err != nil {
		uc.Log.Error("authUsecase.UpdateProfile error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session.DisplayName = form.Name
	err = uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		uc.Log.Warn("authUsecase.UpdateProfile error storing session name",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSessionIDKey, session.SessionID),
			zap.Error(err),
		)
	}

	uc.Log.Info("authUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil, nil
}

func (uc *authUsecase) ChangePassword(ctx context.Context, session *models.Session, form *requests.ChangePasswordForm) (exceptions.FieldErrors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.ChangePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.CollectFieldErrors(err), nil
	}

	err := uc.AuthBackendClient.ChangePassword(ctx, session.AccessToken, form)
	if err != nil {
		uc.Log.Error("authUsecase.ChangePassword error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.ChangePassword succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return nil, nil
}

// loginFailureMessage follows the token endpoint's own wording when it gave
// one.
func loginFailureMessage(err error) string {
	if exceptions.IsTransport(err) {
		return constvars.ErrClientLoginUnreachable
	}
	message := exceptions.BackendMessage(err, "")
	if message == "" {
		return constvars.ErrClientFailedToLogin
	}
	return constvars.ErrClientLoginFailedPrefix + message
}

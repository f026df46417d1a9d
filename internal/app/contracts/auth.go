package contracts

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"
)

type AuthUsecase interface {
	Login(ctx context.Context, form *requests.LoginForm) (*models.LoginResult, error)
	Logout(ctx context.Context, session *models.Session) error
	// ResolveSession maps the portal cookie to a live session.
	ResolveSession(ctx context.Context, sessionToken string) (*models.Session, error)
	Profile(ctx context.Context, session *models.Session) (*responses.Profile, error)
	Register(ctx context.Context, form *requests.RegisterForm) (exceptions.FieldErrors, error)
	// UpdateProfile also refreshes the name shown for the session.
	UpdateProfile(ctx context.Context, session *models.Session, form *requests.ProfileForm) (exceptions.FieldErrors, error)
	ChangePassword(ctx context.Context, session *models.Session, form *requests.ChangePasswordForm) (exceptions.FieldErrors, error)
}

type ChatbotUsecase interface {
	Send(ctx context.Context, session *models.Session, message string) string
}

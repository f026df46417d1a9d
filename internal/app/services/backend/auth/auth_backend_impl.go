package auth

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/services/backend"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/normalize"
	"context"
	"errors"

	"github.com/goccy/go-json"
)

var errEmptyAccessToken = errors.New("token response has no access token")

type authBackendClient struct {
	Client     *backend.Client
	Normalizer *normalize.Normalizer
}

func NewAuthBackendClient(client *backend.Client, normalizer *normalize.Normalizer) contracts.AuthBackendClient {
	return &authBackendClient{
		Client:     client,
		Normalizer: normalizer,
	}
}

func (c *authBackendClient) ObtainToken(ctx context.Context, request *requests.LoginForm) (*responses.AuthToken, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:                 constvars.MethodPost,
		Path:                   constvars.EndpointAuthToken,
		Body:                   request,
		Resource:               constvars.ResourceAuth,
		UnauthorizedAsRejected: true,
	})
	if err != nil {
		return nil, err
	}

	token := new(responses.AuthToken)
	err = json.Unmarshal(body, token)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceAuth)
	}
	if token.Access == "" {
		return nil, exceptions.ErrDecodeResponse(errEmptyAccessToken, constvars.ResourceAuth)
	}
	return token, nil
}

func (c *authBackendClient) FindProfile(ctx context.Context, accessToken string) (*responses.Profile, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        constvars.EndpointAuthProfile,
		AccessToken: accessToken,
		Resource:    constvars.ResourceProfile,
	})
	if err != nil {
		return nil, err
	}
	profile, err := c.Normalizer.Profile(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceProfile)
	}
	return &profile, nil
}

func (c *authBackendClient) Register(ctx context.Context, request *requests.RegisterForm) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:                 constvars.MethodPost,
		Path:                   constvars.EndpointAuthRegister,
		Body:                   request,
		Resource:               constvars.ResourceAuth,
		UnauthorizedAsRejected: true,
	})
	return err
}

func (c *authBackendClient) UpdateProfile(ctx context.Context, accessToken string, request *requests.ProfileForm) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPut,
		Path:        constvars.EndpointAuthProfileUpdate,
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourceProfile,
	})
	return err
}

func (c *authBackendClient) ChangePassword(ctx context.Context, accessToken string, request *requests.ChangePasswordForm) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        constvars.EndpointAuthChangePassword,
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourceProfile,
	})
	return err
}

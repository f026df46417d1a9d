package auth

import (
	"careportal-service/internal/app/services/backend"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/normalize"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *authBackendClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := backend.NewClient(server.URL, 2*time.Second, zap.NewNop(), nil)
	return NewAuthBackendClient(client, normalize.NewNormalizer(zap.NewNop(), time.UTC)).(*authBackendClient)
}

func TestRegister(t *testing.T) {
	t.Run("Confirmation Stays In The Portal", func(t *testing.T) {
		client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, constvars.EndpointAuthRegister, r.URL.Path)
			assert.Empty(t, r.Header.Get(constvars.HeaderAuthorization))
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"username":"jroe","email":"jroe@example.com","password":"s3cret"}`, string(body))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"id":5}`))
		})

		err := client.Register(context.Background(), &requests.RegisterForm{
			Username:        "jroe",
			Email:           "jroe@example.com",
			Password:        "s3cret",
			ConfirmPassword: "s3cret",
		})
		require.NoError(t, err)
	})

	t.Run("Field Errors Are Flattened", func(t *testing.T) {
		client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"username":["A user with that username already exists."]}`))
		})

		err := client.Register(context.Background(), &requests.RegisterForm{Username: "jroe"})
		require.Error(t, err)
		assert.Equal(t, "A user with that username already exists.", exceptions.BackendMessage(err, ""))
	})
}

func TestUpdateProfile(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, constvars.EndpointAuthProfileUpdate, r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get(constvars.HeaderAuthorization))
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"name":"Jane Roe","email":"jane@example.com","phone":"555-0101"}`, string(body))
		_, _ = w.Write([]byte(`{}`))
	})

	err := client.UpdateProfile(context.Background(), "tok", &requests.ProfileForm{Name: "Jane Roe", Email: "jane@example.com", Phone: "555-0101"})
	require.NoError(t, err)
}

func TestChangePassword(t *testing.T) {
	t.Run("Sends Current And New Only", func(t *testing.T) {
		client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, constvars.EndpointAuthChangePassword, r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			assert.JSONEq(t, `{"current_password":"old","new_password":"new"}`, string(body))
			_, _ = w.Write([]byte(`{}`))
		})

		err := client.ChangePassword(context.Background(), "tok", &requests.ChangePasswordForm{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new"})
		require.NoError(t, err)
	})

	t.Run("Rejection Carries Message", func(t *testing.T) {
		client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"message":"Current password is incorrect"}`))
		})

		err := client.ChangePassword(context.Background(), "tok", &requests.ChangePasswordForm{CurrentPassword: "bad", NewPassword: "new"})
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
		assert.Equal(t, "Current password is incorrect", exceptions.BackendMessage(err, ""))
	})
}

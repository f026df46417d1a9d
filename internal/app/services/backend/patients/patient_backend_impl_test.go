package patients

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
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) *patientBackendClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := backend.NewClient(server.URL, 2*time.Second, zap.NewNop(), nil)
	return NewPatientBackendClient(client, normalize.NewNormalizer(zap.NewNop(), time.UTC)).(*patientBackendClient)
}

func TestFindAll(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, constvars.EndpointPatients, r.URL.Path)
		assert.Equal(t, "doe", r.URL.Query().Get(constvars.QuerySearch))
		assert.Equal(t, "Bearer tok", r.Header.Get(constvars.HeaderAuthorization))
		_, _ = w.Write([]byte(`[{"id":1,"firstName":"Jane","lastName":"Doe","status":"active"}]`))
	})

	records, err := client.FindAll(context.Background(), "tok", url.Values{constvars.QuerySearch: []string{"doe"}})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Jane Doe", records[0].FullName())
}

func TestFindByID(t *testing.T) {
	t.Run("Escapes Id", func(t *testing.T) {
		client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/patients/p%2F1/", r.URL.EscapedPath())
			_, _ = w.Write([]byte(`{"id":"p/1","first_name":"Jane","address":"1 Main St"}`))
		})

		record, err := client.FindByID(context.Background(), "tok", "p/1")
		require.NoError(t, err)
		assert.Equal(t, "1 Main St", record.Address)
	})

	t.Run("List Body Is Decode Error", func(t *testing.T) {
		client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := client.FindByID(context.Background(), "tok", "p1")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusBadGateway, exceptions.StatusCode(err))
	})
}

func TestCreate(t *testing.T) {
	client := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"firstName":"Jane","lastName":"Doe","dateOfBirth":"1990-04-12","gender":"female","phone":"",
			"email":"","address":"","emergencyContactName":"","emergencyContactPhone":"","status":"active"}`, string(body))
		w.WriteHeader(http.StatusCreated)
	})

	err := client.Create(context.Background(), "tok", &requests.PatientForm{
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-04-12",
		Gender:      constvars.GenderFemale,
		Status:      constvars.PatientStatusActive,
	})
	require.NoError(t, err)
}

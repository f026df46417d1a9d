package patients

import (
	"careportal-service/internal/app/contracts/mocks"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testSession = &models.Session{SessionID: "s1", AccessToken: "tok"}

func newTestUsecase() (*patientUsecase, *mocks.PatientBackendClient, *mocks.ReferenceCache) {
	backendClient := new(mocks.PatientBackendClient)
	referenceCache := new(mocks.ReferenceCache)
	uc := NewPatientUsecase(backendClient, referenceCache, zap.NewNop()).(*patientUsecase)
	return uc, backendClient, referenceCache
}

func validForm() *requests.PatientForm {
	return &requests.PatientForm{
		FirstName:   " Jane ",
		LastName:    "Doe",
		DateOfBirth: "1990-04-12",
		Gender:      "Female",
		Email:       "jane@example.com",
	}
}

func TestBuildPatientQuery(t *testing.T) {
	assert.Empty(t, BuildPatientQuery(requests.PatientFilters{}))
	assert.Empty(t, BuildPatientQuery(requests.PatientFilters{Search: "  ", Status: "all"}))
	assert.Equal(t, url.Values{"search": {"doe"}, "status": {"inactive"}},
		BuildPatientQuery(requests.PatientFilters{Search: " doe ", Status: "Inactive"}))
}

func TestPatientUsecase_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Passes Filters To Backend", func(t *testing.T) {
		uc, backendClient, _ := newTestUsecase()
		records := []responses.PatientRecord{{ID: "p1", FirstName: "Jane"}}
		backendClient.On("FindAll", mock.Anything, "tok", url.Values{"search": {"jane"}}).Return(records, nil).Once()

		got, err := uc.List(ctx, testSession, requests.PatientFilters{Search: "jane"})

		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("Backend Error", func(t *testing.T) {
		uc, backendClient, _ := newTestUsecase()
		backendClient.On("FindAll", mock.Anything, "tok", mock.Anything).Return(nil, errors.New("down"))

		_, err := uc.List(ctx, testSession, requests.PatientFilters{})
		assert.Error(t, err)
	})
}

func TestPatientUsecase_Get(t *testing.T) {
	uc, backendClient, _ := newTestUsecase()
	backendClient.On("FindByID", mock.Anything, "tok", "p1").Return(&responses.PatientRecord{ID: "p1", Address: "1 Main St"}, nil)

	record, err := uc.Get(context.Background(), testSession, "p1")

	require.NoError(t, err)
	assert.Equal(t, "1 Main St", record.Address)
}

func TestPatientUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Form Makes No Call", func(t *testing.T) {
		uc, backendClient, referenceCache := newTestUsecase()

		fieldErrors, err := uc.Create(ctx, testSession, &requests.PatientForm{FirstName: "Jane", DateOfBirth: "12/04/1990", Gender: "unknown", Email: "bad"})

		require.NoError(t, err)
		assert.Equal(t, "Last name is required", fieldErrors["last_name"])
		assert.Equal(t, "Date of birth must be a valid date", fieldErrors["date_of_birth"])
		assert.Equal(t, "Gender must be one of [male, female, other]", fieldErrors["gender"])
		assert.Equal(t, "Email must be a valid email address", fieldErrors["email"])
		assert.Empty(t, backendClient.Calls)
		assert.Empty(t, referenceCache.Calls)
	})

	t.Run("Created As Active And Picker List Dropped", func(t *testing.T) {
		uc, backendClient, referenceCache := newTestUsecase()
		backendClient.On("Create", mock.Anything, "tok", mock.MatchedBy(func(f *requests.PatientForm) bool {
			return f.FirstName == "Jane" && f.Gender == constvars.GenderFemale && f.Status == constvars.PatientStatusActive
		})).Return(nil).Once()
		referenceCache.On("ForgetPatients", mock.Anything).Return(nil).Once()

		fieldErrors, err := uc.Create(ctx, testSession, validForm())

		require.NoError(t, err)
		assert.Empty(t, fieldErrors)
		backendClient.AssertExpectations(t)
		referenceCache.AssertExpectations(t)
	})

	t.Run("Cache Failure Is Not Fatal", func(t *testing.T) {
		uc, backendClient, referenceCache := newTestUsecase()
		backendClient.On("Create", mock.Anything, "tok", mock.Anything).Return(nil)
		referenceCache.On("ForgetPatients", mock.Anything).Return(errors.New("redis down"))

		_, err := uc.Create(ctx, testSession, validForm())
		require.NoError(t, err)
	})

	t.Run("Backend Rejection Keeps Cache", func(t *testing.T) {
		uc, backendClient, referenceCache := newTestUsecase()
		rejection := &exceptions.BackendRejection{StatusCode: 400, Message: "Email already registered"}
		backendClient.On("Create", mock.Anything, "tok", mock.Anything).
			Return(exceptions.ErrBackendRejected(rejection, constvars.ResourcePatients, 400))

		_, err := uc.Create(ctx, testSession, validForm())

		require.Error(t, err)
		assert.Equal(t, "Email already registered", exceptions.BackendMessage(err, ""))
		referenceCache.AssertNotCalled(t, "ForgetPatients", mock.Anything)
	})
}

package laboratory

import (
	"careportal-service/internal/app/contracts/mocks"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testToday = time.Date(2024, 5, 20, 10, 0, 0, 0, time.UTC)

type testEnv struct {
	uc      *laboratoryUsecase
	backend *mocks.LaboratoryBackendClient
	storage *mocks.Storage
	session *models.Session
}

func newTestEnv() *testEnv {
	env := &testEnv{
		backend: new(mocks.LaboratoryBackendClient),
		storage: new(mocks.Storage),
		session: &models.Session{SessionID: "s1", AccessToken: "tok"},
	}
	attachments := AttachmentConfig{BucketName: "portal", MaxSizeMB: 1, URLExpiry: time.Hour}
	env.uc = NewLaboratoryUsecase(env.backend, new(mocks.ReferenceCache), env.storage, attachments, time.UTC, zap.NewNop()).(*laboratoryUsecase)
	env.uc.Now = func() time.Time { return testToday }
	return env
}

func TestBuildLabTestQuery(t *testing.T) {
	assert.Equal(t, url.Values{}, BuildLabTestQuery(requests.LabTestFilters{Status: "all", TestType: " "}))
	assert.Equal(t, url.Values{
		"status":    {"in_progress"},
		"test_type": {"Blood Panel"},
		"search":    {"jane"},
	}, BuildLabTestQuery(requests.LabTestFilters{Status: "IN_PROGRESS", TestType: "Blood Panel", Search: " jane "}))
}

func TestLaboratoryUsecase_List(t *testing.T) {
	env := newTestEnv()
	tests := []responses.LabTest{{ID: "t1", Status: "pending"}}
	env.backend.On("FindAll", mock.Anything, "tok", url.Values{"status": {"pending"}}).Return(tests, nil).Once()

	got, err := env.uc.List(context.Background(), env.session, requests.LabTestFilters{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, tests, got)
}

func TestLaboratoryUsecase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Priority", func(t *testing.T) {
		env := newTestEnv()
		fieldErrors, err := env.uc.Create(ctx, env.session, &requests.LabTestForm{
			PatientID: "p1", DoctorID: "d1", TestType: "CBC", Priority: "whenever",
		})
		require.NoError(t, err)
		assert.Equal(t, exceptions.FieldErrors{"priority": "Priority must be one of [routine, urgent, stat]"}, fieldErrors)
	})

	t.Run("Normalizes Priority", func(t *testing.T) {
		env := newTestEnv()
		env.backend.On("Create", mock.Anything, "tok", mock.MatchedBy(func(form *requests.LabTestForm) bool {
			return form.Priority == "urgent" && form.TestType == "CBC"
		})).Return(nil).Once()

		fieldErrors, err := env.uc.Create(ctx, env.session, &requests.LabTestForm{
			PatientID: "p1", DoctorID: "d1", TestType: " CBC ", Priority: "Urgent",
		})
		require.NoError(t, err)
		assert.Empty(t, fieldErrors)
		env.backend.AssertExpectations(t)
	})
}

func TestLaboratoryUsecase_SubmitResults(t *testing.T) {
	ctx := context.Background()

	t.Run("Completed Defaults Completion Date", func(t *testing.T) {
		env := newTestEnv()
		env.backend.On("SubmitResults", mock.Anything, "tok", "t1", mock.MatchedBy(func(form *requests.LabResultForm) bool {
			return form.CompletionDate == "2024-05-20" && form.AttachmentURL == ""
		})).Return(nil).Once()

		fieldErrors, err := env.uc.SubmitResults(ctx, env.session, "t1", &requests.LabResultForm{Status: "completed", Results: "normal"}, nil)
		require.NoError(t, err)
		assert.Empty(t, fieldErrors)
		env.backend.AssertExpectations(t)
	})

	t.Run("Invalid Completion Date", func(t *testing.T) {
		env := newTestEnv()
		fieldErrors, err := env.uc.SubmitResults(ctx, env.session, "t1", &requests.LabResultForm{Status: "completed", CompletionDate: "20/05/2024"}, nil)
		require.NoError(t, err)
		assert.True(t, fieldErrors.Has("completion_date"))
	})

	t.Run("Attachment Too Large", func(t *testing.T) {
		env := newTestEnv()
		attachment := &models.Attachment{FileName: "scan.pdf", Size: 2 << 20, Content: strings.NewReader("")}

		fieldErrors, err := env.uc.SubmitResults(ctx, env.session, "t1", &requests.LabResultForm{Status: "in_progress"}, attachment)
		require.NoError(t, err)
		assert.Equal(t, "Attachment must be at most 1 MB", fieldErrors["attachment"])
		env.storage.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Attachment Uploaded And Linked", func(t *testing.T) {
		env := newTestEnv()
		content := strings.NewReader("%PDF-1.4")
		attachment := &models.Attachment{FileName: "Scan.PDF", ContentType: "application/pdf", Size: int64(content.Len()), Content: content}

		env.storage.On("UploadFile", mock.Anything, content, int64(8), "application/pdf", "portal", mock.MatchedBy(func(name string) bool {
			return strings.HasPrefix(name, constvars.LabAttachmentObjectPrefix+"/t1/") && strings.HasSuffix(name, ".pdf")
		})).Return("lab-results/t1/scan.pdf", nil).Once()
		env.storage.On("GetObjectUrlWithExpiryTime", mock.Anything, "portal", "lab-results/t1/scan.pdf", time.Hour).
			Return("https://minio.local/portal/lab-results/t1/scan.pdf?sig=1", nil).Once()
		env.backend.On("SubmitResults", mock.Anything, "tok", "t1", mock.MatchedBy(func(form *requests.LabResultForm) bool {
			return form.AttachmentURL == "https://minio.local/portal/lab-results/t1/scan.pdf?sig=1"
		})).Return(nil).Once()

		fieldErrors, err := env.uc.SubmitResults(ctx, env.session, "t1", &requests.LabResultForm{Status: "in_progress"}, attachment)
		require.NoError(t, err)
		assert.Empty(t, fieldErrors)
		env.storage.AssertExpectations(t)
		env.backend.AssertExpectations(t)
	})

	t.Run("Upload Failure Skips Backend", func(t *testing.T) {
		env := newTestEnv()
		attachment := &models.Attachment{FileName: "scan.png", Size: 10, Content: strings.NewReader("0123456789")}
		failure := exceptions.ErrMinioCreateObject(assert.AnError, "portal")
		env.storage.On("UploadFile", mock.Anything, mock.Anything, int64(10), "application/octet-stream", "portal", mock.Anything).
			Return("", failure).Once()

		_, err := env.uc.SubmitResults(ctx, env.session, "t1", &requests.LabResultForm{Status: "pending"}, attachment)
		assert.ErrorIs(t, err, failure)
		env.backend.AssertNotCalled(t, "SubmitResults", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

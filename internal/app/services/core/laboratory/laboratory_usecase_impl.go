package laboratory

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/shared/refcache"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// AttachmentConfig says where result attachments go and how long their
// links stay valid.
type AttachmentConfig struct {
	BucketName string
	MaxSizeMB  int64
	URLExpiry  time.Duration
}

type laboratoryUsecase struct {
	LaboratoryBackendClient contracts.LaboratoryBackendClient
	ReferenceCache          contracts.ReferenceCache
	Storage                 contracts.Storage
	Attachments             AttachmentConfig
	Location                *time.Location
	Now                     func() time.Time
	Log                     *zap.Logger
}

func NewLaboratoryUsecase(
	laboratoryBackendClient contracts.LaboratoryBackendClient,
	referenceCache contracts.ReferenceCache,
	storage contracts.Storage,
	attachments AttachmentConfig,
	location *time.Location,
	logger *zap.Logger,
) contracts.LaboratoryUsecase {
	return &laboratoryUsecase{
		LaboratoryBackendClient: laboratoryBackendClient,
		ReferenceCache:          referenceCache,
		Storage:                 storage,
		Attachments:             attachments,
		Location:                location,
		Now:                     time.Now,
		Log:                     logger,
	}
}

func (uc *laboratoryUsecase) References(ctx context.Context, session *models.Session) (*models.ReferenceLists, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	lists, err := refcache.LoadLists(ctx, uc.ReferenceCache, session.AccessToken, false)
	if err != nil {
		return nil, err
	}
	if lists.Failed {
		uc.Log.Warn("laboratoryUsecase.References reference lists unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}
	return lists, nil
}

func (uc *laboratoryUsecase) List(ctx context.Context, session *models.Session, filters requests.LabTestFilters) ([]responses.LabTest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("laboratoryUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFiltersKey, filters),
	)

	tests, err := uc.LaboratoryBackendClient.FindAll(ctx, session.AccessToken, BuildLabTestQuery(filters))
	if err != nil {
		uc.Log.Error("laboratoryUsecase.List error fetching lab tests",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("laboratoryUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(tests)),
	)
	return tests, nil
}

func (uc *laboratoryUsecase) Create(ctx context.Context, session *models.Session, form *requests.LabTestForm) (exceptions.FieldErrors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("laboratoryUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	form.TestType = strings.TrimSpace(form.TestType)
	form.Priority = strings.ToLower(strings.TrimSpace(form.Priority))
	form.Notes = strings.TrimSpace(form.Notes)
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.CollectFieldErrors(err), nil
	}

	err := uc.LaboratoryBackendClient.Create(ctx, session.AccessToken, form)
	if err != nil {
		uc.Log.Error("laboratoryUsecase.Create error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("laboratoryUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil, nil
}

// SubmitResults records a test's results. A completed test without a
// completion date is dated today. An attachment is stored first and the
// backend only receives its presigned link.
func (uc *laboratoryUsecase) SubmitResults(ctx context.Context, session *models.Session, testID string, form *requests.LabResultForm, attachment *models.Attachment) (exceptions.FieldErrors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("laboratoryUsecase.SubmitResults called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestIDKey, testID),
	)

	form.Status = strings.ToLower(strings.TrimSpace(form.Status))
	form.Results = strings.TrimSpace(form.Results)
	form.TechnicianNotes = strings.TrimSpace(form.TechnicianNotes)
	form.CompletionDate = strings.TrimSpace(form.CompletionDate)
	if form.Status == constvars.LabTestStatusCompleted && form.CompletionDate == "" {
		form.CompletionDate = utils.FormatDate(uc.Now().In(uc.Location))
	}

	fieldErrors := exceptions.FieldErrors{}
	if err := utils.ValidateStruct(form); err != nil {
		fieldErrors = exceptions.CollectFieldErrors(err)
	}
	if attachment != nil && uc.Attachments.MaxSizeMB > 0 && attachment.Size > uc.Attachments.MaxSizeMB<<20 {
		fieldErrors.Add("attachment", fmt.Sprintf(constvars.ErrClientAttachmentTooLarge, uc.Attachments.MaxSizeMB))
	}
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	if attachment != nil {
		attachmentURL, err := uc.storeAttachment(ctx, testID, attachment)
		if err != nil {
			uc.Log.Error("laboratoryUsecase.SubmitResults error storing attachment",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingLabTestIDKey, testID),
				zap.Error(err),
			)
			return nil, err
		}
		form.AttachmentURL = attachmentURL
	}

	err := uc.LaboratoryBackendClient.SubmitResults(ctx, session.AccessToken, testID, form)
	if err != nil {
		uc.Log.Error("laboratoryUsecase.SubmitResults error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingLabTestIDKey, testID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("laboratoryUsecase.SubmitResults succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLabTestIDKey, testID),
	)
	return nil, nil
}

func (uc *laboratoryUsecase) storeAttachment(ctx context.Context, testID string, attachment *models.Attachment) (string, error) {
	objectName := utils.GenerateObjectName(constvars.LabAttachmentObjectPrefix, testID, attachment.FileName)
	contentType := attachment.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	objectName, err := uc.Storage.UploadFile(ctx, attachment.Content, attachment.Size, contentType, uc.Attachments.BucketName, objectName)
	if err != nil {
		return "", err
	}
	return uc.Storage.GetObjectUrlWithExpiryTime(ctx, uc.Attachments.BucketName, objectName, uc.Attachments.URLExpiry)
}

// BuildLabTestQuery drops empty filters and the "all" choice.
func BuildLabTestQuery(filters requests.LabTestFilters) url.Values {
	query := url.Values{}
	set := func(key, value string) {
		value = strings.TrimSpace(value)
		if value != "" && value != constvars.FilterAll {
			query.Set(key, value)
		}
	}
	set(constvars.QueryStatus, strings.ToLower(filters.Status))
	set(constvars.QueryTestType, filters.TestType)
	set(constvars.QuerySearch, filters.Search)
	return query
}

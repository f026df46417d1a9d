package patients

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

type patientUsecase struct {
	PatientBackendClient contracts.PatientBackendClient
	ReferenceCache       contracts.ReferenceCache
	Log                  *zap.Logger
}

func NewPatientUsecase(
	patientBackendClient contracts.PatientBackendClient,
	referenceCache contracts.ReferenceCache,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientBackendClient: patientBackendClient,
		ReferenceCache:       referenceCache,
		Log:                  logger,
	}
}

func (uc *patientUsecase) List(ctx context.Context, session *models.Session, filters requests.PatientFilters) ([]responses.PatientRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFiltersKey, filters),
	)

	records, err := uc.PatientBackendClient.FindAll(ctx, session.AccessToken, BuildPatientQuery(filters))
	if err != nil {
		uc.Log.Error("patientUsecase.List error fetching patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(records)),
	)
	return records, nil
}

func (uc *patientUsecase) Get(ctx context.Context, session *models.Session, patientID string) (*responses.PatientRecord, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	record, err := uc.PatientBackendClient.FindByID(ctx, session.AccessToken, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.Get error fetching patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}
	return record, nil
}

// Create registers an active patient. The cached patient list used by the
// select inputs is dropped so the new patient shows up there right away.
func (uc *patientUsecase) Create(ctx context.Context, session *models.Session, form *requests.PatientForm) (exceptions.FieldErrors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	normalizePatientForm(form)
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.CollectFieldErrors(err), nil
	}
	form.Status = constvars.PatientStatusActive

	err := uc.PatientBackendClient.Create(ctx, session.AccessToken, form)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if err := uc.ReferenceCache.ForgetPatients(ctx); err != nil {
		uc.Log.Warn("patientUsecase.Create error dropping cached patient list",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil, nil
}

func BuildPatientQuery(filters requests.PatientFilters) url.Values {
	query := url.Values{}
	if search := strings.TrimSpace(filters.Search); search != "" {
		query.Set(constvars.QuerySearch, search)
	}
	if status := strings.ToLower(strings.TrimSpace(filters.Status)); status != "" && status != constvars.FilterAll {
		query.Set(constvars.QueryStatus, status)
	}
	return query
}

func normalizePatientForm(form *requests.PatientForm) {
	form.FirstName = strings.TrimSpace(form.FirstName)
	form.LastName = strings.TrimSpace(form.LastName)
	form.DateOfBirth = strings.TrimSpace(form.DateOfBirth)
	form.Gender = strings.ToLower(strings.TrimSpace(form.Gender))
	form.Phone = strings.TrimSpace(form.Phone)
	form.Email = strings.TrimSpace(form.Email)
	form.Address = strings.TrimSpace(form.Address)
	form.EmergencyContactName = strings.TrimSpace(form.EmergencyContactName)
	form.EmergencyContactPhone = strings.TrimSpace(form.EmergencyContactPhone)
}

package prescriptions

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
	"strings"
	"time"

	"go.uber.org/zap"
)

type prescriptionUsecase struct {
	PrescriptionBackendClient contracts.PrescriptionBackendClient
	ReferenceCache            contracts.ReferenceCache
	Location                  *time.Location
	Now                       func() time.Time
	Log                       *zap.Logger
}

func NewPrescriptionUsecase(
	prescriptionBackendClient contracts.PrescriptionBackendClient,
	referenceCache contracts.ReferenceCache,
	location *time.Location,
	logger *zap.Logger,
) contracts.PrescriptionUsecase {
	return &prescriptionUsecase{
		PrescriptionBackendClient: prescriptionBackendClient,
		ReferenceCache:            referenceCache,
		Location:                  location,
		Now:                       time.Now,
		Log:                       logger,
	}
}

func (uc *prescriptionUsecase) References(ctx context.Context, session *models.Session) (*models.ReferenceLists, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	lists, err := refcache.LoadLists(ctx, uc.ReferenceCache, session.AccessToken, true)
	if err != nil {
		return nil, err
	}
	if lists.Failed {
		uc.Log.Warn("prescriptionUsecase.References reference lists unavailable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
	}
	return lists, nil
}

func (uc *prescriptionUsecase) List(ctx context.Context, session *models.Session, filters requests.PrescriptionFilters) ([]responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFiltersKey, filters),
	)

	items, err := uc.PrescriptionBackendClient.FindAll(ctx, session.AccessToken)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.List error fetching prescriptions",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	filtered := FilterPrescriptions(items, filters, uc.Now().In(uc.Location))
	uc.Log.Info("prescriptionUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(filtered)),
	)
	return filtered, nil
}

func (uc *prescriptionUsecase) Detail(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	prescription, err := uc.PrescriptionBackendClient.FindByID(ctx, session.AccessToken, prescriptionID)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.Detail error fetching prescription",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrescriptionIDKey, prescriptionID),
			zap.Error(err),
		)
		return nil, err
	}
	return prescription, nil
}

// Create validates the form before anything is sent. Invalid input comes
// back as per-field messages with a nil error.
func (uc *prescriptionUsecase) Create(ctx context.Context, session *models.Session, form *requests.PrescriptionForm) (exceptions.FieldErrors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("prescriptionUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingMedicationCountKey, len(form.Medications)),
	)

	form.Diagnosis = strings.TrimSpace(form.Diagnosis)
	form.Notes = strings.TrimSpace(form.Notes)
	if err := utils.ValidateStruct(form); err != nil {
		fieldErrors := exceptions.CollectFieldErrors(err)
		uc.Log.Info("prescriptionUsecase.Create invalid form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingFieldKey, fieldErrors.Fields()),
		)
		return fieldErrors, nil
	}

	err := uc.PrescriptionBackendClient.Create(ctx, session.AccessToken, form)
	if err != nil {
		uc.Log.Error("prescriptionUsecase.Create error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("prescriptionUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil, nil
}

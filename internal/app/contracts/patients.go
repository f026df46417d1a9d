package contracts

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"
)

type PatientUsecase interface {
	List(ctx context.Context, session *models.Session, filters requests.PatientFilters) ([]responses.PatientRecord, error)
	Get(ctx context.Context, session *models.Session, patientID string) (*responses.PatientRecord, error)
	Create(ctx context.Context, session *models.Session, form *requests.PatientForm) (exceptions.FieldErrors, error)
}

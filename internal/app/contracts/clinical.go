package contracts

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"
)

type PrescriptionUsecase interface {
	References(ctx context.Context, session *models.Session) (*models.ReferenceLists, error)
	List(ctx context.Context, session *models.Session, filters requests.PrescriptionFilters) ([]responses.Prescription, error)
	Detail(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error)
	Create(ctx context.Context, session *models.Session, form *requests.PrescriptionForm) (exceptions.FieldErrors, error)
}

type LaboratoryUsecase interface {
	References(ctx context.Context, session *models.Session) (*models.ReferenceLists, error)
	List(ctx context.Context, session *models.Session, filters requests.LabTestFilters) ([]responses.LabTest, error)
	Create(ctx context.Context, session *models.Session, form *requests.LabTestForm) (exceptions.FieldErrors, error)
	SubmitResults(ctx context.Context, session *models.Session, testID string, form *requests.LabResultForm, attachment *models.Attachment) (exceptions.FieldErrors, error)
}

type InventoryUsecase interface {
	List(ctx context.Context, session *models.Session, filters requests.InventoryFilters) (*models.InventoryPage, error)
	Transfer(ctx context.Context, session *models.Session, itemID string, form *requests.InventoryTransferForm) (exceptions.FieldErrors, error)
}

type PaymentUsecase interface {
	Page(ctx context.Context, session *models.Session) (*models.PaymentsPage, error)
	Process(ctx context.Context, session *models.Session, paymentID string, form *requests.ProcessPaymentForm) (exceptions.FieldErrors, error)
}

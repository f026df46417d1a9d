package contracts

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"context"
)

type BookingUsecase interface {
	Page(ctx context.Context, session *models.Session) (*models.AppointmentPage, error)
	Form(ctx context.Context, session *models.Session) (*models.AppointmentPage, error)
	QuerySlots(ctx context.Context, session *models.Session, form *requests.SlotQueryForm) (*models.SlotQueryResult, error)
	Submit(ctx context.Context, session *models.Session, form *requests.BookingForm) (*models.BookingOutcome, error)
}

type AppointmentListUsecase interface {
	List(ctx context.Context, session *models.Session, filters requests.AppointmentFilters) (*models.AppointmentListResult, error)
	Refresh(ctx context.Context, session *models.Session) (*models.AppointmentListResult, error)
	Cancel(ctx context.Context, session *models.Session, appointmentID string, confirmed bool) (*models.AppointmentListResult, error)
	CheckIn(ctx context.Context, session *models.Session, appointmentID string) (*models.AppointmentListResult, error)
	Confirm(ctx context.Context, session *models.Session, appointmentID string) (*models.AppointmentListResult, error)
	Complete(ctx context.Context, session *models.Session, appointmentID string) (*models.AppointmentListResult, error)
}

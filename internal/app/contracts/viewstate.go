package contracts

import (
	"careportal-service/internal/app/models"
	"context"
)

// ViewStateStore keeps the per-session state of the appointment page.
// Mutations that read then write must run inside WithLock.
type ViewStateStore interface {
	LoadBooking(ctx context.Context, sessionID string) (models.BookingState, error)
	SaveBooking(ctx context.Context, sessionID string, state models.BookingState) error
	LoadAppointmentList(ctx context.Context, sessionID string) (models.AppointmentListState, error)
	SaveAppointmentList(ctx context.Context, sessionID string, state models.AppointmentListState) error
	WithLock(ctx context.Context, sessionID string, fn func(ctx context.Context) error) error
}

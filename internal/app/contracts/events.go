package contracts

import (
	"careportal-service/internal/pkg/dto/requests"
	"context"
)

type EventPublisher interface {
	PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error
	Close() error
}

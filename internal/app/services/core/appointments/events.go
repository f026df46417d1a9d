package appointments

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// publishEvent hands an appointment event to the reminder pipeline. A failed
// publish is logged and never fails the action that caused it.
func publishEvent(ctx context.Context, publisher contracts.EventPublisher, log *zap.Logger, session *models.Session, event requests.AppointmentEvent, now time.Time) {
	if publisher == nil {
		return
	}
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	event.EventID = uuid.NewString()
	event.ActorID = session.UserID
	event.OccurredAt = now.UTC()

	err := publisher.PublishAppointmentEvent(context.WithoutCancel(ctx), &event)
	if err != nil {
		log.Warn("appointments.publishEvent error publishing appointment event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEventTypeKey, event.EventType),
			zap.String(constvars.LoggingAppointmentIDKey, event.AppointmentID),
			zap.Error(err),
		)
	}
}

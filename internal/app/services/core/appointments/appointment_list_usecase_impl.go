package appointments

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/shared/metrics"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const listView = "appointment_list"

type appointmentListUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	ViewStateStore           contracts.ViewStateStore
	EventPublisher           contracts.EventPublisher
	ViewMetrics              *metrics.ViewMetrics
	Location                 *time.Location
	Now                      func() time.Time
	Log                      *zap.Logger
}

func NewAppointmentListUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	viewStateStore contracts.ViewStateStore,
	eventPublisher contracts.EventPublisher,
	viewMetrics *metrics.ViewMetrics,
	location *time.Location,
	logger *zap.Logger,
) contracts.AppointmentListUsecase {
	return &appointmentListUsecase{
		AppointmentBackendClient: appointmentBackendClient,
		ViewStateStore:           viewStateStore,
		EventPublisher:           eventPublisher,
		ViewMetrics:              viewMetrics,
		Location:                 location,
		Now:                      time.Now,
		Log:                      logger,
	}
}

// List makes filters the active ones and replaces the session's list with a
// fresh fetch. An answer overtaken by a later List is dropped.
func (uc *appointmentListUsecase) List(ctx context.Context, session *models.Session, filters requests.AppointmentFilters) (*models.AppointmentListResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	filters = NormalizeFilters(filters)
	uc.Log.Info("appointmentListUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFiltersKey, filters),
	)

	var (
		seq   uint64
		query url.Values
	)
	err := uc.ViewStateStore.WithLock(ctx, session.SessionID, func(ctx context.Context) error {
		state, err := uc.ViewStateStore.LoadAppointmentList(ctx, session.SessionID)
		if err != nil {
			return err
		}
		state.Filters = filters
		state.Seq++
		seq = state.Seq
		query = BuildFilterQuery(filters, uc.today())
		return uc.ViewStateStore.SaveAppointmentList(ctx, session.SessionID, state)
	})
	if err != nil {
		uc.Log.Error("appointmentListUsecase.List error planning fetch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	appointments, fetchErr := uc.AppointmentBackendClient.FindAll(ctx, session.AccessToken, query)

	result := new(models.AppointmentListResult)
	err = uc.ViewStateStore.WithLock(ctx, session.SessionID, func(ctx context.Context) error {
		state, err := uc.ViewStateStore.LoadAppointmentList(ctx, session.SessionID)
		if err != nil {
			return err
		}
		result.State = state
		if state.Seq != seq {
			result.Stale = true
			return nil
		}
		if fetchErr != nil {
			return nil
		}
		if appointments == nil {
			appointments = []responses.Appointment{}
		}
		state.Appointments = appointments
		result.State = state
		return uc.ViewStateStore.SaveAppointmentList(ctx, session.SessionID, state)
	})
	if err != nil {
		uc.Log.Error("appointmentListUsecase.List error applying fetch",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if result.Stale {
		uc.ViewMetrics.ObserveStale(listView)
		uc.Log.Info("appointmentListUsecase.List discarded stale response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingSequenceKey, seq),
			zap.Uint64(constvars.LoggingCurrentSequenceKey, result.State.Seq),
		)
		return result, nil
	}
	if fetchErr != nil {
		uc.Log.Error("appointmentListUsecase.List error fetching appointments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(fetchErr),
		)
		return nil, fetchErr
	}

	uc.Log.Info("appointmentListUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result.State.Appointments)),
	)
	return result, nil
}

// Refresh fetches the list again with the filters already active.
func (uc *appointmentListUsecase) Refresh(ctx context.Context, session *models.Session) (*models.AppointmentListResult, error) {
	state, err := uc.ViewStateStore.LoadAppointmentList(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	return uc.List(ctx, session, state.Filters)
}

// Cancel asks the backend to cancel only once the user confirmed.
func (uc *appointmentListUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string, confirmed bool) (*models.AppointmentListResult, error) {
	if !confirmed {
		return nil, exceptions.ErrConfirmationRequired(nil)
	}
	request := &requests.CancelAppointment{
		CancellationReason: constvars.CancelledByUser,
		CancelledBy:        session.UserID,
	}
	return uc.act(ctx, session, "Cancel", appointmentID, constvars.EventAppointmentCancelled, func(ctx context.Context) error {
		return uc.AppointmentBackendClient.Cancel(ctx, session.AccessToken, appointmentID, request)
	})
}

func (uc *appointmentListUsecase) CheckIn(ctx context.Context, session *models.Session, appointmentID string) (*models.AppointmentListResult, error) {
	return uc.act(ctx, session, "CheckIn", appointmentID, constvars.EventAppointmentCheckedIn, func(ctx context.Context) error {
		return uc.AppointmentBackendClient.CheckIn(ctx, session.AccessToken, appointmentID)
	})
}

func (uc *appointmentListUsecase) Confirm(ctx context.Context, session *models.Session, appointmentID string) (*models.AppointmentListResult, error) {
	request := &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusConfirmed}
	return uc.act(ctx, session, "Confirm", appointmentID, constvars.EventAppointmentConfirmed, func(ctx context.Context) error {
		return uc.AppointmentBackendClient.UpdateStatus(ctx, session.AccessToken, appointmentID, request)
	})
}

func (uc *appointmentListUsecase) Complete(ctx context.Context, session *models.Session, appointmentID string) (*models.AppointmentListResult, error) {
	return uc.act(ctx, session, "Complete", appointmentID, constvars.EventAppointmentCompleted, func(ctx context.Context) error {
		return uc.AppointmentBackendClient.Complete(ctx, session.AccessToken, appointmentID)
	})
}

// act runs one status action and then re-fetches the list once with the
// active filters. A failed re-fetch is reported in RefreshErr since the
// action itself went through.
func (uc *appointmentListUsecase) act(ctx context.Context, session *models.Session, name, appointmentID, eventType string, call func(ctx context.Context) error) (*models.AppointmentListResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("appointmentListUsecase."+name+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	err := call(ctx)
	if err != nil {
		uc.Log.Error("appointmentListUsecase."+name+" error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, err
	}

	publishEvent(ctx, uc.EventPublisher, uc.Log, session, requests.AppointmentEvent{
		EventType:     eventType,
		AppointmentID: appointmentID,
	}, uc.Now())

	result, err := uc.Refresh(ctx, session)
	if err != nil {
		if exceptions.IsUnauthorized(err) {
			return nil, err
		}
		return &models.AppointmentListResult{RefreshErr: err}, nil
	}

	uc.Log.Info("appointmentListUsecase."+name+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return result, nil
}

func (uc *appointmentListUsecase) today() time.Time {
	return uc.Now().In(uc.Location)
}

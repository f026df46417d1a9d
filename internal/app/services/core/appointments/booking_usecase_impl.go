package appointments

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/shared/metrics"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"time"

	"go.uber.org/zap"
)

const bookingView = "booking"

type bookingUsecase struct {
	AppointmentBackendClient contracts.AppointmentBackendClient
	ReferenceCache           contracts.ReferenceCache
	ViewStateStore           contracts.ViewStateStore
	AppointmentListUsecase   contracts.AppointmentListUsecase
	EventPublisher           contracts.EventPublisher
	ViewMetrics              *metrics.ViewMetrics
	AppointmentType          string
	Location                 *time.Location
	Now                      func() time.Time
	Log                      *zap.Logger
}

func NewBookingUsecase(
	appointmentBackendClient contracts.AppointmentBackendClient,
	referenceCache contracts.ReferenceCache,
	viewStateStore contracts.ViewStateStore,
	appointmentListUsecase contracts.AppointmentListUsecase,
	eventPublisher contracts.EventPublisher,
	viewMetrics *metrics.ViewMetrics,
	appointmentType string,
	location *time.Location,
	logger *zap.Logger,
) contracts.BookingUsecase {
	return &bookingUsecase{
		AppointmentBackendClient: appointmentBackendClient,
		ReferenceCache:           referenceCache,
		ViewStateStore:           viewStateStore,
		AppointmentListUsecase:   appointmentListUsecase,
		EventPublisher:           eventPublisher,
		ViewMetrics:              viewMetrics,
		AppointmentType:          appointmentType,
		Location:                 location,
		Now:                      time.Now,
		Log:                      logger,
	}
}

// Page starts a fresh booking form. The inputs render empty, so the
// surface goes back to idle and any slot answer still in flight is dropped.
func (uc *bookingUsecase) Page(ctx context.Context, session *models.Session) (*models.AppointmentPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Page called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var booking models.BookingState
	err := uc.ViewStateStore.WithLock(ctx, session.SessionID, func(ctx context.Context) error {
		current, err := uc.ViewStateStore.LoadBooking(ctx, session.SessionID)
		if err != nil {
			return err
		}
		booking = ResetBooking(current)
		return uc.ViewStateStore.SaveBooking(ctx, session.SessionID, booking)
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.Page error resetting booking surface",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return uc.page(ctx, session, booking)
}

// Form loads what the booking form needs to re-render with the session's
// current booking state.
func (uc *bookingUsecase) Form(ctx context.Context, session *models.Session) (*models.AppointmentPage, error) {
	booking, err := uc.ViewStateStore.LoadBooking(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}
	return uc.page(ctx, session, booking)
}

func (uc *bookingUsecase) page(ctx context.Context, session *models.Session, booking models.BookingState) (*models.AppointmentPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	list, err := uc.ViewStateStore.LoadAppointmentList(ctx, session.SessionID)
	if err != nil {
		return nil, err
	}

	page := &models.AppointmentPage{
		Booking: booking,
		Filters: list.Filters,
		Today:   utils.FormatDate(uc.today()),
	}

	doctors, err := uc.ReferenceCache.Doctors(ctx, session.AccessToken)
	if err == nil {
		page.Doctors = doctors
		var patients []responses.Patient
		patients, err = uc.ReferenceCache.Patients(ctx, session.AccessToken)
		page.Patients = patients
	}
	if err != nil {
		if exceptions.IsUnauthorized(err) {
			return nil, err
		}
		uc.Log.Error("bookingUsecase.Page error loading reference lists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		page.ReferenceFailed = true
	}
	return page, nil
}

// QuerySlots refreshes the slot selector for the provider and date just
// picked. The backend is called outside the session lock; its answer only
// lands if no newer query was planned meanwhile.
func (uc *bookingUsecase) QuerySlots(ctx context.Context, session *models.Session, form *requests.SlotQueryForm) (*models.SlotQueryResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.QuerySlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, form),
	)

	var (
		planned models.BookingState
		query   *requests.AvailabilityQuery
	)
	err := uc.ViewStateStore.WithLock(ctx, session.SessionID, func(ctx context.Context) error {
		state, err := uc.ViewStateStore.LoadBooking(ctx, session.SessionID)
		if err != nil {
			return err
		}
		planned, query = PlanSlotQuery(state, form.ProviderID, form.ProviderType, form.Date)
		return uc.ViewStateStore.SaveBooking(ctx, session.SessionID, planned)
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.QuerySlots error planning query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if query == nil {
		return &models.SlotQueryResult{Booking: planned}, nil
	}

	slots, fetchErr := uc.AppointmentBackendClient.FindAvailableSlots(ctx, session.AccessToken, query)
	if fetchErr != nil {
		if exceptions.IsUnauthorized(fetchErr) {
			return nil, fetchErr
		}
		uc.Log.Error("bookingUsecase.QuerySlots error fetching slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingSequenceKey, planned.Seq),
			zap.Error(fetchErr),
		)
	}

	result := new(models.SlotQueryResult)
	err = uc.ViewStateStore.WithLock(ctx, session.SessionID, func(ctx context.Context) error {
		current, err := uc.ViewStateStore.LoadBooking(ctx, session.SessionID)
		if err != nil {
			return err
		}
		next, applied := ApplySlotResult(current, planned.Seq, slots, fetchErr)
		result.Booking = next
		if !applied {
			result.Stale = true
			return nil
		}
		return uc.ViewStateStore.SaveBooking(ctx, session.SessionID, next)
	})
	if err != nil {
		uc.Log.Error("bookingUsecase.QuerySlots error applying slots",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	if result.Stale {
		uc.ViewMetrics.ObserveStale(bookingView)
		uc.Log.Info("bookingUsecase.QuerySlots discarded stale response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Uint64(constvars.LoggingSequenceKey, planned.Seq),
			zap.Uint64(constvars.LoggingCurrentSequenceKey, result.Booking.Seq),
		)
		return result, nil
	}

	uc.Log.Info("bookingUsecase.QuerySlots succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSelectorStateKey, string(result.Booking.Selector.State)),
		zap.Int(constvars.LoggingResponseLengthKey, len(slots)),
	)
	return result, nil
}

// Submit books the appointment. Invalid input never reaches the backend. A
// booking resets the surface and re-fetches the list once with the filters
// that were active when the form was submitted.
func (uc *bookingUsecase) Submit(ctx context.Context, session *models.Session, form *requests.BookingForm) (*models.BookingOutcome, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("bookingUsecase.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		state   models.BookingState
		filters requests.AppointmentFilters
		plan    SubmitPlan
	)
	err := uc.ViewStateStore.WithLock(ctx, session.SessionID, func(ctx context.Context) error {
		var err error
		state, err = uc.ViewStateStore.LoadBooking(ctx, session.SessionID)
		if err != nil {
			return err
		}
		list, err := uc.ViewStateStore.LoadAppointmentList(ctx, session.SessionID)
		if err != nil {
			return err
		}
		filters = list.Filters
		plan = PlanSubmit(state, form, uc.today(), uc.AppointmentType)
		selected := SelectSlot(state, form)
		if selected.SelectedSlotID == state.SelectedSlotID {
			return nil
		}
		state = selected
		return uc.ViewStateStore.SaveBooking(ctx, session.SessionID, state)
	})
	if err != nil {
		return nil, err
	}

	if len(plan.FieldErrors) > 0 {
		uc.ViewMetrics.ObserveBooking("invalid")
		uc.Log.Info("bookingUsecase.Submit rejected invalid form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Strings(constvars.LoggingFieldKey, plan.FieldErrors.Fields()),
		)
		return &models.BookingOutcome{FieldErrors: plan.FieldErrors, Booking: state}, nil
	}

	appointment, err := uc.AppointmentBackendClient.Create(ctx, session.AccessToken, plan.Request)
	if err != nil {
		if exceptions.IsUnauthorized(err) {
			return nil, err
		}
		uc.ViewMetrics.ObserveBooking("failed")
		uc.Log.Error("bookingUsecase.Submit error creating appointment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return &models.BookingOutcome{Message: SubmitFailureMessage(err), Booking: state}, nil
	}

	outcome := &models.BookingOutcome{Appointment: appointment}
	err = uc.ViewStateStore.WithLock(ctx, session.SessionID, func(ctx context.Context) error {
		current, err := uc.ViewStateStore.LoadBooking(ctx, session.SessionID)
		if err != nil {
			return err
		}
		outcome.Booking = ResetBooking(current)
		return uc.ViewStateStore.SaveBooking(ctx, session.SessionID, outcome.Booking)
	})
	if err != nil {
		uc.Log.Warn("bookingUsecase.Submit error resetting booking surface",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		outcome.Booking = ResetBooking(state)
	}

	publishEvent(ctx, uc.EventPublisher, uc.Log, session, requests.AppointmentEvent{
		EventType:     constvars.EventAppointmentBooked,
		AppointmentID: appointment.ID,
		PatientID:     plan.Request.PatientID,
		ProviderID:    plan.Request.ProviderID,
		TimeSlotID:    plan.Request.TimeSlot,
	}, uc.Now())

	list, err := uc.AppointmentListUsecase.List(ctx, session, filters)
	if err != nil {
		list = &models.AppointmentListResult{RefreshErr: err}
	}
	outcome.List = list

	uc.ViewMetrics.ObserveBooking("booked")
	uc.Log.Info("bookingUsecase.Submit succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
	)
	return outcome, nil
}

func (uc *bookingUsecase) today() time.Time {
	return uc.Now().In(uc.Location)
}

package appointments

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/contracts/mocks"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/services/shared/locker"
	"careportal-service/internal/app/services/shared/metrics"
	"careportal-service/internal/app/services/shared/redis"
	"careportal-service/internal/app/services/shared/viewstate"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type usecaseEnv struct {
	backend   *mocks.AppointmentBackendClient
	refcache  *mocks.ReferenceCache
	publisher *mocks.EventPublisher
	store     contracts.ViewStateStore
	metrics   *metrics.ViewMetrics
	list      *appointmentListUsecase
	booking   *bookingUsecase
	session   *models.Session
}

func newUsecaseEnv(t *testing.T) *usecaseEnv {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	logger := zap.NewNop()
	repo := redis.NewRedisRepository(client)
	store := viewstate.NewViewStateStore(logger, repo, locker.NewLockService(repo, logger), time.Hour, 5*time.Second)

	env := &usecaseEnv{
		backend:   new(mocks.AppointmentBackendClient),
		refcache:  new(mocks.ReferenceCache),
		publisher: new(mocks.EventPublisher),
		store:     store,
		metrics:   metrics.NewViewMetrics(prometheus.NewRegistry()),
		session:   &models.Session{SessionID: "sess-1", UserID: "u1", AccessToken: "tok"},
	}
	now := func() time.Time { return testToday }

	env.list = NewAppointmentListUsecase(env.backend, store, env.publisher, env.metrics, time.UTC, logger).(*appointmentListUsecase)
	env.list.Now = now
	env.booking = NewBookingUsecase(env.backend, env.refcache, store, env.list, env.publisher, env.metrics, "", time.UTC, logger).(*bookingUsecase)
	env.booking.Now = now
	return env
}

func testAppointments(status string) []responses.Appointment {
	return []responses.Appointment{{ID: "a1", Status: status, PatientName: "Jane Doe", ProviderName: "Dr House"}}
}

func TestBookingUsecase_QuerySlots(t *testing.T) {
	ctx := context.Background()

	t.Run("Populates Selector", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("FindAvailableSlots", mock.Anything, "tok", &requests.AvailabilityQuery{
			ProviderID: "d1", ProviderType: "DOCTOR", StartDate: "2024-05-02", EndDate: "2024-05-02",
		}).Return(testSlots(), nil).Once()

		result, err := env.booking.QuerySlots(ctx, env.session, &requests.SlotQueryForm{ProviderID: "d1", Date: "2024-05-02"})

		require.NoError(t, err)
		assert.False(t, result.Stale)
		assert.Equal(t, models.SelectorPopulated, result.Booking.Selector.State)

		stored, err := env.store.LoadBooking(ctx, env.session.SessionID)
		require.NoError(t, err)
		assert.True(t, stored.Selector.HasOption("s2"))
	})

	t.Run("Missing Date Makes No Call", func(t *testing.T) {
		env := newUsecaseEnv(t)

		result, err := env.booking.QuerySlots(ctx, env.session, &requests.SlotQueryForm{ProviderID: "d1"})

		require.NoError(t, err)
		assert.Equal(t, models.SelectorIdle, result.Booking.Selector.State)
		env.backend.AssertNotCalled(t, "FindAvailableSlots", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Backend Failure Shows Error State", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("FindAvailableSlots", mock.Anything, "tok", mock.Anything).
			Return(nil, exceptions.ErrSendHTTPRequest(errors.New("refused"), constvars.ResourceTimeSlots))

		result, err := env.booking.QuerySlots(ctx, env.session, &requests.SlotQueryForm{ProviderID: "d1", Date: "2024-05-02"})

		require.NoError(t, err)
		assert.Equal(t, models.SelectorError, result.Booking.Selector.State)
	})

	t.Run("Unauthorized Is Returned", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("FindAvailableSlots", mock.Anything, "tok", mock.Anything).
			Return(nil, exceptions.ErrBackendUnauthorized(nil, constvars.ResourceTimeSlots))

		_, err := env.booking.QuerySlots(ctx, env.session, &requests.SlotQueryForm{ProviderID: "d1", Date: "2024-05-02"})

		assert.True(t, exceptions.IsUnauthorized(err))
	})

	t.Run("Answer Overtaken By Newer Query Is Stale", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("FindAvailableSlots", mock.Anything, "tok", mock.Anything).
			Run(func(args mock.Arguments) {
				state, err := env.store.LoadBooking(ctx, env.session.SessionID)
				require.NoError(t, err)
				state, _ = PlanSlotQuery(state, "d2", "", "2024-05-03")
				require.NoError(t, env.store.SaveBooking(ctx, env.session.SessionID, state))
			}).
			Return(testSlots(), nil).Once()

		result, err := env.booking.QuerySlots(ctx, env.session, &requests.SlotQueryForm{ProviderID: "d1", Date: "2024-05-02"})

		require.NoError(t, err)
		assert.True(t, result.Stale)
		assert.Equal(t, "d2", result.Booking.ProviderID)
		assert.Equal(t, models.SelectorLoading, result.Booking.Selector.State)
		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.StaleResponses(bookingView)))
	})
}

func TestBookingUsecase_Submit(t *testing.T) {
	ctx := context.Background()

	prepare := func(t *testing.T, env *usecaseEnv) {
		t.Helper()
		env.backend.On("FindAvailableSlots", mock.Anything, "tok", mock.Anything).Return(testSlots(), nil).Once()
		_, err := env.booking.QuerySlots(ctx, env.session, &requests.SlotQueryForm{ProviderID: "d1", Date: "2024-05-02"})
		require.NoError(t, err)
	}

	t.Run("Invalid Form Makes No Backend Call", func(t *testing.T) {
		env := newUsecaseEnv(t)
		prepare(t, env)
		form := validForm()
		form.TimeSlot = "not-offered"

		outcome, err := env.booking.Submit(ctx, env.session, form)

		require.NoError(t, err)
		assert.False(t, outcome.Booked())
		assert.True(t, outcome.FieldErrors.Has("time_slot"))
		env.backend.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Invalid Form Keeps Offered Slot Selected", func(t *testing.T) {
		env := newUsecaseEnv(t)
		prepare(t, env)
		form := validForm()
		form.Reason = "  "

		outcome, err := env.booking.Submit(ctx, env.session, form)

		require.NoError(t, err)
		assert.True(t, outcome.FieldErrors.Has("reason"))
		assert.False(t, outcome.FieldErrors.Has("time_slot"))
		assert.Equal(t, "s1", outcome.Booking.SelectedSlotID)
		assert.Equal(t, models.SelectorPopulated, outcome.Booking.Selector.State)

		stored, err := env.store.LoadBooking(ctx, env.session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, "s1", stored.SelectedSlotID)
	})

	t.Run("Success Resets And Re-fetches Once With Active Filters", func(t *testing.T) {
		env := newUsecaseEnv(t)
		prepare(t, env)

		filters := requests.AppointmentFilters{DateRange: "today", Status: "scheduled", ProviderID: "all"}
		env.backend.On("FindAll", mock.Anything, "tok", mock.Anything).Return(testAppointments("SCHEDULED"), nil).Once()
		_, err := env.list.List(ctx, env.session, filters)
		require.NoError(t, err)

		env.backend.On("Create", mock.Anything, "tok", mock.MatchedBy(func(r *requests.CreateAppointment) bool {
			return r.TimeSlot == "s1" && r.PatientID == "p1" && r.ProviderType == "DOCTOR"
		})).Return(&responses.Appointment{ID: "a9"}, nil).Once()
		env.backend.On("FindAll", mock.Anything, "tok", url.Values{
			"start_date": {"2024-05-01"}, "end_date": {"2024-05-01"}, "status": {"SCHEDULED"},
		}).Return(testAppointments("SCHEDULED"), nil).Once()
		env.publisher.On("PublishAppointmentEvent", mock.Anything, mock.MatchedBy(func(e *requests.AppointmentEvent) bool {
			return e.EventType == constvars.EventAppointmentBooked && e.AppointmentID == "a9" && e.ActorID == "u1" && e.TimeSlotID == "s1"
		})).Return(nil).Once()

		outcome, err := env.booking.Submit(ctx, env.session, validForm())

		require.NoError(t, err)
		require.True(t, outcome.Booked())
		assert.Equal(t, models.SelectorIdle, outcome.Booking.Selector.State)
		require.NotNil(t, outcome.List)
		assert.NoError(t, outcome.List.RefreshErr)
		assert.Len(t, outcome.List.State.Appointments, 1)
		env.backend.AssertNumberOfCalls(t, "FindAll", 2)
		env.publisher.AssertExpectations(t)

		stored, err := env.store.LoadBooking(ctx, env.session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.SelectorIdle, stored.Selector.State)
		assert.Empty(t, stored.ProviderID)
	})

	t.Run("Rejected Shows Server Message And Keeps Surface", func(t *testing.T) {
		env := newUsecaseEnv(t)
		prepare(t, env)
		rejection := &exceptions.BackendRejection{StatusCode: 400, Message: "This slot is already booked."}
		env.backend.On("Create", mock.Anything, "tok", mock.Anything).
			Return(nil, exceptions.ErrBackendRejected(rejection, constvars.ResourceAppointments, 400)).Once()

		outcome, err := env.booking.Submit(ctx, env.session, validForm())

		require.NoError(t, err)
		assert.False(t, outcome.Booked())
		assert.Equal(t, "This slot is already booked.", outcome.Message)
		assert.Equal(t, models.SelectorPopulated, outcome.Booking.Selector.State)
		env.backend.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
		env.publisher.AssertNotCalled(t, "PublishAppointmentEvent", mock.Anything, mock.Anything)
	})

	t.Run("Transport Failure Uses Generic Message", func(t *testing.T) {
		env := newUsecaseEnv(t)
		prepare(t, env)
		env.backend.On("Create", mock.Anything, "tok", mock.Anything).
			Return(nil, exceptions.ErrSendHTTPRequest(errors.New("timeout"), constvars.ResourceAppointments)).Once()

		outcome, err := env.booking.Submit(ctx, env.session, validForm())

		require.NoError(t, err)
		assert.Equal(t, constvars.ErrClientFailedToScheduleAppointment, outcome.Message)
	})

	t.Run("Publish Failure Does Not Fail Booking", func(t *testing.T) {
		env := newUsecaseEnv(t)
		prepare(t, env)
		env.backend.On("Create", mock.Anything, "tok", mock.Anything).Return(&responses.Appointment{ID: "a9"}, nil).Once()
		env.backend.On("FindAll", mock.Anything, "tok", mock.Anything).Return(nil, errors.New("list down")).Once()
		env.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		outcome, err := env.booking.Submit(ctx, env.session, validForm())

		require.NoError(t, err)
		assert.True(t, outcome.Booked())
		require.NotNil(t, outcome.List)
		assert.Error(t, outcome.List.RefreshErr)
	})
}

func TestBookingUsecase_Page(t *testing.T) {
	ctx := context.Background()

	t.Run("Loads Reference Lists", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.refcache.On("Doctors", mock.Anything, "tok").Return([]responses.Provider{{ID: "d1"}}, nil)
		env.refcache.On("Patients", mock.Anything, "tok").Return([]responses.Patient{{ID: "p1"}}, nil)

		page, err := env.booking.Page(ctx, env.session)

		require.NoError(t, err)
		assert.Len(t, page.Doctors, 1)
		assert.Len(t, page.Patients, 1)
		assert.Equal(t, "2024-05-01", page.Today)
		assert.False(t, page.ReferenceFailed)
		assert.Equal(t, models.SelectorIdle, page.Booking.Selector.State)
	})

	t.Run("Reference Failure Still Renders", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.refcache.On("Doctors", mock.Anything, "tok").Return(nil, errors.New("down"))

		page, err := env.booking.Page(ctx, env.session)

		require.NoError(t, err)
		assert.True(t, page.ReferenceFailed)
	})

	t.Run("Reload Returns Populated Selector To Idle", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.refcache.On("Doctors", mock.Anything, "tok").Return([]responses.Provider{{ID: "d1"}}, nil)
		env.refcache.On("Patients", mock.Anything, "tok").Return([]responses.Patient{{ID: "p1"}}, nil)
		env.backend.On("FindAvailableSlots", mock.Anything, "tok", mock.Anything).Return(testSlots(), nil).Once()
		queried, err := env.booking.QuerySlots(ctx, env.session, &requests.SlotQueryForm{ProviderID: "d1", Date: "2024-05-02"})
		require.NoError(t, err)
		require.Equal(t, models.SelectorPopulated, queried.Booking.Selector.State)

		page, err := env.booking.Page(ctx, env.session)

		require.NoError(t, err)
		assert.Equal(t, models.SelectorIdle, page.Booking.Selector.State)
		assert.Equal(t, constvars.SlotSelectorPromptMessage, page.Booking.Selector.Message)
		assert.Empty(t, page.Booking.Selector.Options)
		assert.Empty(t, page.Booking.ProviderID)
		assert.Empty(t, page.Booking.Date)
		assert.Greater(t, page.Booking.Seq, queried.Booking.Seq)

		stored, err := env.store.LoadBooking(ctx, env.session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.SelectorIdle, stored.Selector.State)
	})

	t.Run("Reload Drops Slot Answer In Flight", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.refcache.On("Doctors", mock.Anything, "tok").Return([]responses.Provider{{ID: "d1"}}, nil)
		env.refcache.On("Patients", mock.Anything, "tok").Return([]responses.Patient{{ID: "p1"}}, nil)
		env.backend.On("FindAvailableSlots", mock.Anything, "tok", mock.Anything).
			Run(func(args mock.Arguments) {
				page, err := env.booking.Page(ctx, env.session)
				require.NoError(t, err)
				assert.Equal(t, models.SelectorIdle, page.Booking.Selector.State)
			}).
			Return(testSlots(), nil).Once()

		result, err := env.booking.QuerySlots(ctx, env.session, &requests.SlotQueryForm{ProviderID: "d1", Date: "2024-05-02"})

		require.NoError(t, err)
		assert.True(t, result.Stale)
		stored, err := env.store.LoadBooking(ctx, env.session.SessionID)
		require.NoError(t, err)
		assert.Equal(t, models.SelectorIdle, stored.Selector.State)
	})
}

func TestBookingUsecase_Form(t *testing.T) {
	ctx := context.Background()
	env := newUsecaseEnv(t)
	env.refcache.On("Doctors", mock.Anything, "tok").Return([]responses.Provider{{ID: "d1"}}, nil)
	env.refcache.On("Patients", mock.Anything, "tok").Return([]responses.Patient{{ID: "p1"}}, nil)
	env.backend.On("FindAvailableSlots", mock.Anything, "tok", mock.Anything).Return(testSlots(), nil).Once()
	_, err := env.booking.QuerySlots(ctx, env.session, &requests.SlotQueryForm{ProviderID: "d1", Date: "2024-05-02"})
	require.NoError(t, err)

	page, err := env.booking.Form(ctx, env.session)

	require.NoError(t, err)
	assert.Equal(t, models.SelectorPopulated, page.Booking.Selector.State)
	assert.Equal(t, "d1", page.Booking.ProviderID)
	assert.Len(t, page.Doctors, 1)
}

func TestAppointmentListUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("List Stores Filters And Replaces List", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("FindAll", mock.Anything, "tok", url.Values{"provider_id": {"d1"}}).Return(testAppointments("CONFIRMED"), nil).Once()

		result, err := env.list.List(ctx, env.session, requests.AppointmentFilters{ProviderID: "d1"})

		require.NoError(t, err)
		assert.False(t, result.Stale)
		assert.Equal(t, "all", result.State.Filters.DateRange)
		assert.Equal(t, "d1", result.State.Filters.ProviderID)
		assert.Len(t, result.State.Appointments, 1)
	})

	t.Run("Overtaken List Is Stale", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("FindAll", mock.Anything, "tok", mock.Anything).
			Run(func(args mock.Arguments) {
				state, err := env.store.LoadAppointmentList(ctx, env.session.SessionID)
				require.NoError(t, err)
				state.Seq++
				require.NoError(t, env.store.SaveAppointmentList(ctx, env.session.SessionID, state))
			}).
			Return(testAppointments("SCHEDULED"), nil).Once()

		result, err := env.list.List(ctx, env.session, requests.DefaultAppointmentFilters())

		require.NoError(t, err)
		assert.True(t, result.Stale)
		assert.Empty(t, result.State.Appointments)
	})

	t.Run("Cancel Without Confirmation Makes No Call", func(t *testing.T) {
		env := newUsecaseEnv(t)

		_, err := env.list.Cancel(ctx, env.session, "a1", false)

		require.Error(t, err)
		assert.Equal(t, constvars.ErrClientConfirmationRequired, exceptions.ClientMessage(err, ""))
		assert.Empty(t, env.backend.Calls)
	})

	t.Run("Cancel Confirmed Sends Reason And Re-fetches", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("Cancel", mock.Anything, "tok", "a1", &requests.CancelAppointment{
			CancellationReason: "Cancelled by user",
			CancelledBy:        "u1",
		}).Return(nil).Once()
		env.backend.On("FindAll", mock.Anything, "tok", mock.Anything).Return(testAppointments("CANCELLED"), nil).Once()
		env.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(nil).Once()

		result, err := env.list.Cancel(ctx, env.session, "a1", true)

		require.NoError(t, err)
		assert.Equal(t, "CANCELLED", result.State.Appointments[0].Status)
		env.backend.AssertExpectations(t)
	})

	t.Run("Confirm Patches Status", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("UpdateStatus", mock.Anything, "tok", "a1", &requests.UpdateAppointmentStatus{Status: "CONFIRMED"}).Return(nil).Once()
		env.backend.On("FindAll", mock.Anything, "tok", mock.Anything).Return(testAppointments("CONFIRMED"), nil).Once()
		env.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(nil).Once()

		_, err := env.list.Confirm(ctx, env.session, "a1")

		require.NoError(t, err)
		env.backend.AssertExpectations(t)
	})

	t.Run("Check In And Complete", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("CheckIn", mock.Anything, "tok", "a1").Return(nil).Once()
		env.backend.On("Complete", mock.Anything, "tok", "a1").Return(nil).Once()
		env.backend.On("FindAll", mock.Anything, "tok", mock.Anything).Return(testAppointments("COMPLETED"), nil).Twice()
		env.publisher.On("PublishAppointmentEvent", mock.Anything, mock.Anything).Return(nil).Twice()

		_, err := env.list.CheckIn(ctx, env.session, "a1")
		require.NoError(t, err)
		_, err = env.list.Complete(ctx, env.session, "a1")
		require.NoError(t, err)

		env.backend.AssertExpectations(t)
	})

	t.Run("Action Failure Skips Re-fetch", func(t *testing.T) {
		env := newUsecaseEnv(t)
		env.backend.On("CheckIn", mock.Anything, "tok", "a1").Return(errors.New("nope")).Once()

		_, err := env.list.CheckIn(ctx, env.session, "a1")

		assert.Error(t, err)
		env.backend.AssertNotCalled(t, "FindAll", mock.Anything, mock.Anything, mock.Anything)
		env.publisher.AssertNotCalled(t, "PublishAppointmentEvent", mock.Anything, mock.Anything)
	})
}

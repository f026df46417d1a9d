package controllers

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/app/views"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var appointmentStatuses = []string{
	constvars.AppointmentStatusScheduled,
	constvars.AppointmentStatusConfirmed,
	constvars.AppointmentStatusCheckedIn,
	constvars.AppointmentStatusInProgress,
	constvars.AppointmentStatusCompleted,
	constvars.AppointmentStatusCancelled,
	constvars.AppointmentStatusNoShow,
}

type AppointmentController struct {
	*Base
	BookingUsecase         contracts.BookingUsecase
	AppointmentListUsecase contracts.AppointmentListUsecase
}

func NewAppointmentController(base *Base, bookingUsecase contracts.BookingUsecase, appointmentListUsecase contracts.AppointmentListUsecase) *AppointmentController {
	return &AppointmentController{
		Base:                   base,
		BookingUsecase:         bookingUsecase,
		AppointmentListUsecase: appointmentListUsecase,
	}
}

func (ctrl *AppointmentController) Page(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	page, err := ctrl.BookingUsecase.Page(r.Context(), session)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		ctrl.page(w, r, "error", ctrl.layout(session, "Appointments", "appointments", constvars.ErrClientFailedToLoadAppointments))
		return
	}
	if page.ReferenceFailed {
		notifyError(w, constvars.ErrClientFailedToLoadReferences)
	}

	list := views.AppointmentListView{}
	result, err := ctrl.AppointmentListUsecase.List(r.Context(), session, page.Filters)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		list.Failed = true
	} else {
		list.Appointments = result.State.Appointments
	}

	ctrl.page(w, r, "appointments", ctrl.layout(session, "Appointments", "appointments", &views.AppointmentsView{
		Page:     page,
		Statuses: appointmentStatuses,
		List:     list,
		Booking:  views.BookingFormView{Page: page, Form: &requests.BookingForm{}},
	}))
}

// List applies the filter bar. A list superseded by a later filter change
// is not swapped in.
func (ctrl *AppointmentController) List(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	filters := requests.DefaultAppointmentFilters()
	if err := utils.DecodeForm(r, &filters); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToLoadAppointments)
		return
	}

	result, err := ctrl.AppointmentListUsecase.List(r.Context(), session, filters)
	if err != nil {
		if ctrl.signedOut(w, r, session, err) {
			return
		}
		utils.LogError(ctrl.Log, err)
		notifyError(w, constvars.ErrClientFailedToLoadAppointments)
		ctrl.fragment(w, r, "appointment_list", views.AppointmentListView{Failed: true})
		return
	}
	ctrl.renderList(w, r, result, false)
}

// Slots refreshes the slot selector after the provider or date changed.
func (ctrl *AppointmentController) Slots(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	form := new(requests.SlotQueryForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToLoadSlots)
		return
	}

	result, err := ctrl.BookingUsecase.QuerySlots(r.Context(), session, form)
	if err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToLoadSlots)
		return
	}
	if result.Stale {
		utils.DiscardStale(w)
		return
	}
	if result.Booking.Selector.State == models.SelectorError {
		notifyError(w, constvars.ErrClientFailedToLoadSlots)
	}
	ctrl.fragment(w, r, "slot_selector", result.Booking)
}

// Book submits the booking form. Invalid input and backend refusals come
// back inside the form; a booking resets the form and swaps in the
// refreshed list.
func (ctrl *AppointmentController) Book(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	form := new(requests.BookingForm)
	if err := utils.DecodeForm(r, form); err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToScheduleAppointment)
		return
	}

	outcome, err := ctrl.BookingUsecase.Submit(r.Context(), session, form)
	if err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToScheduleAppointment)
		return
	}

	page, err := ctrl.BookingUsecase.Form(r.Context(), session)
	if err != nil {
		ctrl.fail(w, r, session, err, constvars.ErrClientFailedToScheduleAppointment)
		return
	}
	page.Booking = outcome.Booking

	if !outcome.Booked() {
		view := views.BookingFormView{Page: page, Form: form, FieldErrors: outcome.FieldErrors, Message: outcome.Message}
		if outcome.Message != "" {
			notifyError(w, outcome.Message)
		}
		ctrl.fragment(w, r, "booking_form", view)
		return
	}

	ctrl.Log.Info("AppointmentController.Book succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, outcome.Appointment.ID),
	)
	notifySuccess(w, constvars.AppointmentScheduledSuccessMessage, constvars.CloseModalEvent, constvars.ResetFormEvent)
	ctrl.fragment(w, r, "booking_form", views.BookingFormView{Page: page, Form: &requests.BookingForm{}})
	if outcome.List != nil {
		ctrl.renderList(w, r, outcome.List, true)
	}
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}
	confirmed := utils.FormValue(r, "confirmed") == "true"
	appointmentID := chi.URLParam(r, "id")

	result, err := ctrl.AppointmentListUsecase.Cancel(r.Context(), session, appointmentID, confirmed)
	ctrl.afterAction(w, r, session, result, err, constvars.AppointmentCancelledSuccessMessage, constvars.ErrClientFailedToCancelAppointment)
}

func (ctrl *AppointmentController) CheckIn(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}
	result, err := ctrl.AppointmentListUsecase.CheckIn(r.Context(), session, chi.URLParam(r, "id"))
	ctrl.afterAction(w, r, session, result, err, constvars.AppointmentCheckedInSuccessMessage, constvars.ErrClientFailedToCheckInAppointment)
}

func (ctrl *AppointmentController) Confirm(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}
	result, err := ctrl.AppointmentListUsecase.Confirm(r.Context(), session, chi.URLParam(r, "id"))
	ctrl.afterAction(w, r, session, result, err, constvars.AppointmentConfirmedSuccessMessage, constvars.ErrClientFailedToConfirmAppointment)
}

func (ctrl *AppointmentController) Complete(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}
	result, err := ctrl.AppointmentListUsecase.Complete(r.Context(), session, chi.URLParam(r, "id"))
	ctrl.afterAction(w, r, session, result, err, constvars.AppointmentCompletedSuccessMessage, constvars.ErrClientFailedToCompleteAppointment)
}

// afterAction reports a status action and swaps in the list fetched after
// it. A failed action leaves the list untouched.
func (ctrl *AppointmentController) afterAction(w http.ResponseWriter, r *http.Request, session *models.Session, result *models.AppointmentListResult, err error, success, fallback string) {
	if err != nil {
		if exceptions.IsConfirmationRequired(err) {
			utils.Notify(w, constvars.NotifyLevelInfo, constvars.ErrClientConfirmationRequired)
			w.WriteHeader(constvars.StatusBadRequest)
			return
		}
		ctrl.fail(w, r, session, err, fallback)
		return
	}

	notifySuccess(w, success)
	if result.RefreshErr != nil {
		utils.LogError(ctrl.Log, result.RefreshErr)
		ctrl.fragment(w, r, "appointment_list", views.AppointmentListView{Failed: true})
		return
	}
	ctrl.renderList(w, r, result, false)
}

func (ctrl *AppointmentController) renderList(w http.ResponseWriter, r *http.Request, result *models.AppointmentListResult, oob bool) {
	if result.Stale {
		if !oob {
			utils.DiscardStale(w)
		}
		return
	}
	view := views.AppointmentListView{Appointments: result.State.Appointments, OOB: oob}
	if result.RefreshErr != nil {
		view = views.AppointmentListView{Failed: true, OOB: oob}
	}
	ctrl.fragment(w, r, "appointment_list", view)
}

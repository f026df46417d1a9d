package appointments

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"strings"
	"time"
)

// SubmitPlan is what a booking submission should do: either show
// FieldErrors or send Request.
type SubmitPlan struct {
	FieldErrors exceptions.FieldErrors
	Request     *requests.CreateAppointment
}

// IdleSelector is the selector shown until both a provider and a date are
// chosen.
func IdleSelector() models.SlotSelector {
	return models.SlotSelector{
		State:    models.SelectorIdle,
		Message:  constvars.SlotSelectorPromptMessage,
		Disabled: true,
	}
}

// PlanSlotQuery records the provider and date just picked and returns the
// availability query to run, or nil when either input is missing. Every
// planned query gets a new sequence number.
func PlanSlotQuery(state models.BookingState, providerID, providerType, date string) (models.BookingState, *requests.AvailabilityQuery) {
	providerID = strings.TrimSpace(providerID)
	date = strings.TrimSpace(date)
	providerType = strings.ToUpper(strings.TrimSpace(providerType))
	if providerType == "" {
		providerType = constvars.ProviderTypeDoctor
	}

	state.ProviderID = providerID
	state.ProviderType = providerType
	state.Date = date
	state.SelectedSlotID = ""

	if providerID == "" || date == "" {
		state.Selector = IdleSelector()
		return state, nil
	}

	state.Seq++
	state.Selector = models.SlotSelector{
		State:    models.SelectorLoading,
		Message:  constvars.SlotSelectorLoadingMessage,
		Disabled: true,
	}
	return state, &requests.AvailabilityQuery{
		ProviderID:   providerID,
		ProviderType: providerType,
		StartDate:    date,
		EndDate:      date,
	}
}

// ApplySlotResult folds the answer to query seq into the selector. An answer
// to anything but the latest query is ignored and applied is false.
func ApplySlotResult(state models.BookingState, seq uint64, slots []responses.TimeSlot, err error) (models.BookingState, bool) {
	if seq != state.Seq || state.Selector.State != models.SelectorLoading {
		return state, false
	}

	switch {
	case err != nil:
		state.Selector = models.SlotSelector{
			State:    models.SelectorError,
			Message:  constvars.SlotSelectorErrorMessage,
			Disabled: true,
		}
	case len(slots) == 0:
		state.Selector = models.SlotSelector{
			State:   models.SelectorEmpty,
			Message: constvars.SlotSelectorEmptyMessage,
			Options: []models.SlotOption{{
				Label:    constvars.SlotSelectorEmptyMessage,
				Disabled: true,
			}},
			Disabled: true,
		}
	default:
		options := make([]models.SlotOption, 0, len(slots))
		for _, slot := range slots {
			options = append(options, models.SlotOption{
				Value: slot.ID,
				Label: slot.Label(),
			})
		}
		state.Selector = models.SlotSelector{
			State:   models.SelectorPopulated,
			Options: options,
		}
	}
	return state, true
}

// ValidateBooking checks every input of the booking form on its own. The
// chosen slot must be one the session was offered for the same provider and
// date.
func ValidateBooking(state models.BookingState, form *requests.BookingForm, today time.Time) exceptions.FieldErrors {
	fieldErrors := exceptions.FieldErrors{}
	if err := utils.ValidateStruct(form); err != nil {
		fieldErrors = exceptions.CollectFieldErrors(err)
	}

	if !fieldErrors.Has("date") {
		date, err := utils.ParseDate(form.Date, today.Location())
		if err == nil && utils.IsPastDate(date, today) {
			fieldErrors.Add("date", fieldMessage("date", "not_past"))
		}
	}

	if !fieldErrors.Has("time_slot") && !slotOffered(state, form) {
		fieldErrors.Add("time_slot", fieldMessage("time_slot", "slot_option"))
	}
	return fieldErrors
}

// SelectSlot records the slot the form carries when the session was offered
// it, so a re-rendered form keeps it selected.
func SelectSlot(state models.BookingState, form *requests.BookingForm) models.BookingState {
	state.SelectedSlotID = ""
	if slotOffered(state, form) {
		state.SelectedSlotID = form.TimeSlot
	}
	return state
}

func slotOffered(state models.BookingState, form *requests.BookingForm) bool {
	return state.ProviderID == form.ProviderID &&
		state.Date == form.Date &&
		state.Selector.HasOption(form.TimeSlot)
}

// PlanSubmit turns a valid form into the create request. Only the slot id
// travels; start and end times never leave the portal.
func PlanSubmit(state models.BookingState, form *requests.BookingForm, today time.Time, appointmentType string) SubmitPlan {
	fieldErrors := ValidateBooking(state, form, today)
	if len(fieldErrors) > 0 {
		return SubmitPlan{FieldErrors: fieldErrors}
	}

	providerType := strings.ToUpper(strings.TrimSpace(form.ProviderType))
	if providerType == "" {
		providerType = state.ProviderType
	}
	if providerType == "" {
		providerType = constvars.ProviderTypeDoctor
	}

	return SubmitPlan{
		Request: &requests.CreateAppointment{
			PatientID:       form.PatientID,
			ProviderID:      form.ProviderID,
			ProviderType:    providerType,
			TimeSlot:        form.TimeSlot,
			Reason:          strings.TrimSpace(form.Reason),
			AppointmentType: appointmentType,
		},
	}
}

// ResetBooking returns the surface to idle after a booking. The sequence
// moves on so a slot answer still in flight is dropped.
func ResetBooking(state models.BookingState) models.BookingState {
	return models.BookingState{
		ProviderType: constvars.ProviderTypeDoctor,
		Seq:          state.Seq + 1,
		Selector:     IdleSelector(),
	}
}

// SubmitFailureMessage is the notification for a booking the backend did not
// accept.
func SubmitFailureMessage(err error) string {
	return exceptions.BackendMessage(err, constvars.ErrClientFailedToScheduleAppointment)
}

func fieldMessage(field, tag string) string {
	return exceptions.FieldLabel(field) + " " + constvars.CustomValidationErrorMessages[tag]
}

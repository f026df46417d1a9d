package models

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
)

// SelectorState is where the slot selector sits in its lifecycle:
// idle -> loading -> populated | empty | error.
type SelectorState string

const (
	SelectorIdle      SelectorState = "idle"
	SelectorLoading   SelectorState = "loading"
	SelectorPopulated SelectorState = "populated"
	SelectorEmpty     SelectorState = "empty"
	SelectorError     SelectorState = "error"
)

type SlotOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled"`
}

type SlotSelector struct {
	State    SelectorState `json:"state"`
	Message  string        `json:"message"`
	Options  []SlotOption  `json:"options"`
	Disabled bool          `json:"disabled"`
}

// HasOption reports whether value is a selectable slot of a populated
// selector.
func (s SlotSelector) HasOption(value string) bool {
	if s.State != SelectorPopulated || value == "" {
		return false
	}
	for _, option := range s.Options {
		if option.Value == value && !option.Disabled {
			return true
		}
	}
	return false
}

// BookingState is the booking surface of one session. Seq is bumped for
// every slot query so a late answer to an older query can be recognized.
type BookingState struct {
	ProviderID     string       `json:"provider_id"`
	ProviderType   string       `json:"provider_type"`
	Date           string       `json:"date"`
	Seq            uint64       `json:"seq"`
	Selector       SlotSelector `json:"selector"`
	SelectedSlotID string       `json:"selected_slot_id"`
}

// SlotQueryResult is the selector to render after a slot query. Stale means
// a newer query superseded this one and the page should keep what it shows.
type SlotQueryResult struct {
	Booking BookingState
	Stale   bool
}

// BookingOutcome is the result of a booking submission. Exactly one of
// FieldErrors, Message or Appointment describes what happened.
type BookingOutcome struct {
	FieldErrors exceptions.FieldErrors
	Message     string
	Appointment *responses.Appointment
	Booking     BookingState
	List        *AppointmentListResult
}

func (o *BookingOutcome) Booked() bool {
	return o.Appointment != nil
}

// AppointmentPage is everything the appointment page needs on first render.
type AppointmentPage struct {
	Booking         BookingState
	Filters         requests.AppointmentFilters
	Doctors         []responses.Provider
	Patients        []responses.Patient
	Today           string
	ReferenceFailed bool
}

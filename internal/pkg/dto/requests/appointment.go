package requests

import (
	"careportal-service/internal/pkg/constvars"
	"net/url"
)

// BookingForm is the booking surface as submitted by the browser.
type BookingForm struct {
	PatientID    string `form:"patient_id" validate:"required"`
	ProviderID   string `form:"provider_id" validate:"required"`
	ProviderType string `form:"provider_type"`
	Date         string `form:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot     string `form:"time_slot" validate:"required"`
	Reason       string `form:"reason" validate:"required,notblank"`
}

// SlotQueryForm carries the inputs that drive the slot selector.
type SlotQueryForm struct {
	ProviderID   string `form:"provider_id"`
	ProviderType string `form:"provider_type"`
	Date         string `form:"date"`
}

type CreateAppointment struct {
	PatientID       string `json:"patient_id"`
	ProviderID      string `json:"provider_id"`
	ProviderType    string `json:"provider_type"`
	TimeSlot        string `json:"time_slot"`
	Reason          string `json:"reason"`
	AppointmentType string `json:"appointment_type,omitempty"`
}

type CancelAppointment struct {
	CancellationReason string `json:"cancellation_reason"`
	CancelledBy        string `json:"cancelled_by"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status"`
}

// AvailabilityQuery scopes the available-slots endpoint to one provider and
// a date range; the booking surface always asks for a single day.
type AvailabilityQuery struct {
	ProviderID   string `json:"provider_id"`
	ProviderType string `json:"provider_type"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

func (q AvailabilityQuery) Values() url.Values {
	values := url.Values{}
	values.Set(constvars.QueryProviderID, q.ProviderID)
	values.Set(constvars.QueryProviderType, q.ProviderType)
	values.Set(constvars.QueryStartDate, q.StartDate)
	values.Set(constvars.QueryEndDate, q.EndDate)
	return values
}

// AppointmentFilters is the filter bar of the appointment list.
type AppointmentFilters struct {
	DateRange  string `json:"date_range" form:"date_range"`
	Status     string `json:"status" form:"status"`
	ProviderID string `json:"provider_id" form:"provider_id"`
}

func DefaultAppointmentFilters() AppointmentFilters {
	return AppointmentFilters{
		DateRange:  constvars.DateRangeAll,
		Status:     constvars.FilterAll,
		ProviderID: constvars.FilterAll,
	}
}

package models

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
)

// AppointmentListState holds the filters currently applied to a session's
// appointment list and the last list fetched with them. The list is always
// replaced wholesale.
type AppointmentListState struct {
	Filters      requests.AppointmentFilters `json:"filters"`
	Appointments []responses.Appointment     `json:"appointments"`
	Seq          uint64                      `json:"seq"`
}

// AppointmentListResult is the list to render after a fetch or an action.
// Stale means a newer list request superseded this one. RefreshErr is set
// when an action succeeded but the list could not be fetched again.
type AppointmentListResult struct {
	State      AppointmentListState
	Stale      bool
	RefreshErr error
}

package requests

import "time"

// AppointmentEvent is published for the reminder pipeline after an
// appointment changes state.
type AppointmentEvent struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	AppointmentID string    `json:"appointment_id"`
	PatientID     string    `json:"patient_id,omitempty"`
	ProviderID    string    `json:"provider_id,omitempty"`
	TimeSlotID    string    `json:"time_slot_id,omitempty"`
	ActorID       string    `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

package responses

import (
	"careportal-service/internal/pkg/constvars"
	"fmt"
	"strings"
	"time"
)

// TimeSlot is a bookable interval for one provider. ID is opaque and is the
// only thing sent back when booking.
type TimeSlot struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"provider_id,omitempty"`
	ProviderType string    `json:"provider_type,omitempty"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

func (s TimeSlot) DurationMinutes() int {
	return int(s.End.Sub(s.Start) / time.Minute)
}

// Label renders the slot as "09:00 (30 min)".
func (s TimeSlot) Label() string {
	return fmt.Sprintf(constvars.SlotDisplayFormat, s.Start.Format(constvars.TimeLayout), s.DurationMinutes())
}

type Appointment struct {
	ID           string   `json:"id"`
	PatientID    string   `json:"patient_id"`
	PatientName  string   `json:"patient_name"`
	ProviderID   string   `json:"provider_id"`
	ProviderName string   `json:"provider_name"`
	ProviderType string   `json:"provider_type"`
	Slot         TimeSlot `json:"time_slot"`
	Reason       string   `json:"reason"`
	Status       string   `json:"status"`
}

func (a Appointment) StatusLabel() string {
	return strings.ReplaceAll(a.Status, "_", " ")
}

type Provider struct {
	ID             string `json:"id"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Specialization string `json:"specialization,omitempty"`
}

func (p Provider) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type Patient struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (p Patient) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

type Medicine struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Strength string `json:"strength,omitempty"`
}

package responses

import (
	"careportal-service/internal/pkg/constvars"
	"strings"
	"time"
)

// PatientRecord is a patient as kept by the registry, richer than the
// Patient used in select inputs.
type PatientRecord struct {
	ID                    string     `json:"id"`
	FirstName             string     `json:"first_name"`
	LastName              string     `json:"last_name"`
	DateOfBirth           *time.Time `json:"date_of_birth,omitempty"`
	Gender                string     `json:"gender"`
	Phone                 string     `json:"phone"`
	Email                 string     `json:"email"`
	Address               string     `json:"address"`
	EmergencyContactName  string     `json:"emergency_contact_name"`
	EmergencyContactPhone string     `json:"emergency_contact_phone"`
	Status                string     `json:"status"`
}

func (p PatientRecord) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

func (p PatientRecord) Active() bool {
	return p.Status == constvars.PatientStatusActive
}

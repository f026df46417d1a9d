package normalize

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"strings"

	"github.com/tidwall/gjson"
)

func (n *Normalizer) PatientRecords(body []byte) ([]responses.PatientRecord, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourcePatients, records, n.PatientRecord), nil
}

// PatientDetail reads a single registry record.
func (n *Normalizer) PatientDetail(body []byte) (responses.PatientRecord, error) {
	record, err := Object(body)
	if err != nil {
		return responses.PatientRecord{}, err
	}
	return n.PatientRecord(record)
}

func (n *Normalizer) PatientRecord(record gjson.Result) (responses.PatientRecord, error) {
	resource := constvars.ResourcePatients
	id, err := requiredString(record, resource, "id", "user_id", "user.id")
	if err != nil {
		return responses.PatientRecord{}, err
	}
	firstName, err := requiredString(record, resource, "first_name", "firstName", "user.first_name", "name")
	if err != nil {
		return responses.PatientRecord{}, err
	}
	return responses.PatientRecord{
		ID:                    id,
		FirstName:             firstName,
		LastName:              optionalString(record, "", "last_name", "lastName", "user.last_name"),
		DateOfBirth:           n.optionalTime(record, "date_of_birth", "dateOfBirth"),
		Gender:                strings.ToLower(optionalString(record, "", "gender")),
		Phone:                 optionalString(record, "", "phone", "phone_number", "phoneNumber"),
		Email:                 optionalString(record, "", "email", "user.email"),
		Address:               optionalString(record, "", "address"),
		EmergencyContactName:  optionalString(record, "", "emergency_contact_name", "emergencyContactName"),
		EmergencyContactPhone: optionalString(record, "", "emergency_contact_phone", "emergencyContactPhone"),
		Status:                strings.ToLower(optionalString(record, constvars.PatientStatusActive, "status")),
	}, nil
}

package normalize

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"strings"

	"github.com/tidwall/gjson"
)

func (n *Normalizer) TimeSlots(body []byte) ([]responses.TimeSlot, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourceTimeSlots, records, n.TimeSlot), nil
}

func (n *Normalizer) TimeSlot(record gjson.Result) (responses.TimeSlot, error) {
	id, err := requiredString(record, constvars.ResourceTimeSlots, "id", "time_slot_id", "slot_id")
	if err != nil {
		return responses.TimeSlot{}, err
	}
	start, err := n.requiredTime(record, constvars.ResourceTimeSlots, "start_time", "start")
	if err != nil {
		return responses.TimeSlot{}, err
	}
	end, err := n.requiredTime(record, constvars.ResourceTimeSlots, "end_time", "end")
	if err != nil {
		return responses.TimeSlot{}, err
	}

	return responses.TimeSlot{
		ID:           id,
		ProviderID:   optionalString(record, "", "provider_id", "provider", "doctor_id"),
		ProviderType: strings.ToUpper(optionalString(record, "", "provider_type")),
		Start:        start,
		End:          end,
	}, nil
}

func (n *Normalizer) Appointments(body []byte) ([]responses.Appointment, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourceAppointments, records, n.Appointment), nil
}

func (n *Normalizer) Appointment(record gjson.Result) (responses.Appointment, error) {
	resource := constvars.ResourceAppointments

	id, err := requiredString(record, resource, "id", "appointment_id")
	if err != nil {
		return responses.Appointment{}, err
	}
	patientID, err := requiredString(record, resource, "patient_id", "patient.id", "patient_details.id", "patient")
	if err != nil {
		return responses.Appointment{}, err
	}
	providerID, err := requiredString(record, resource, "provider_id", "provider.id", "provider_details.id", "provider", "doctor_id")
	if err != nil {
		return responses.Appointment{}, err
	}
	status, err := requiredString(record, resource, "status")
	if err != nil {
		return responses.Appointment{}, err
	}

	// The slot arrives either expanded under time_slot, under
	// time_slot_details next to a bare time_slot id, or flattened onto the
	// appointment itself.
	slotRecord, ok := firstObject(record, "time_slot", "time_slot_details")
	if !ok {
		slotRecord = record
	}
	start, err := n.requiredTime(slotRecord, resource, "start_time", "start")
	if err != nil {
		return responses.Appointment{}, err
	}
	end, err := n.requiredTime(slotRecord, resource, "end_time", "end")
	if err != nil {
		return responses.Appointment{}, err
	}
	slotID := optionalString(slotRecord, "", "id")
	if !ok || slotID == "" {
		slotID = optionalString(record, "", "time_slot", "time_slot_id")
	}

	patientName := optionalString(record, "", "patient_name", "patientName")
	if patientName == "" {
		if patient, found := firstObject(record, "patient", "patient_details"); found {
			patientName = joinName(patient, "")
		}
	}
	if patientName == "" {
		patientName = constvars.UnknownPatientLabel
	}

	providerName := optionalString(record, "", "provider_name", "providerName", "doctor_name")
	if providerName == "" {
		if provider, found := firstObject(record, "provider", "provider_details"); found {
			providerName = joinName(provider, "")
		}
	}
	if providerName == "" {
		providerName = constvars.UnknownProviderLabel
	}

	providerType := strings.ToUpper(optionalString(record, constvars.ProviderTypeDoctor, "provider_type", "providerType"))

	return responses.Appointment{
		ID:           id,
		PatientID:    patientID,
		PatientName:  patientName,
		ProviderID:   providerID,
		ProviderName: providerName,
		ProviderType: providerType,
		Slot: responses.TimeSlot{
			ID:           slotID,
			ProviderID:   providerID,
			ProviderType: providerType,
			Start:        start,
			End:          end,
		},
		Reason: optionalString(record, "", "reason", "reason_for_visit"),
		Status: strings.ToUpper(status),
	}, nil
}

func (n *Normalizer) Doctors(body []byte) ([]responses.Provider, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourceDoctors, records, n.Doctor), nil
}

// Doctor reads a provider record. Doctors are keyed by their user id when the
// backend exposes one, since that is what appointments reference.
func (n *Normalizer) Doctor(record gjson.Result) (responses.Provider, error) {
	resource := constvars.ResourceDoctors
	id, err := requiredString(record, resource, "user_id", "user.id", "id")
	if err != nil {
		return responses.Provider{}, err
	}
	firstName, err := requiredString(record, resource, "first_name", "firstName", "user.first_name", "name")
	if err != nil {
		return responses.Provider{}, err
	}
	return responses.Provider{
		ID:             id,
		FirstName:      firstName,
		LastName:       optionalString(record, "", "last_name", "lastName", "user.last_name"),
		Specialization: optionalString(record, "", "specialization", "specialty"),
	}, nil
}

func (n *Normalizer) Patients(body []byte) ([]responses.Patient, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourcePatients, records, n.Patient), nil
}

func (n *Normalizer) Patient(record gjson.Result) (responses.Patient, error) {
	resource := constvars.ResourcePatients
	id, err := requiredString(record, resource, "user_id", "user.id", "id")
	if err != nil {
		return responses.Patient{}, err
	}
	firstName, err := requiredString(record, resource, "first_name", "firstName", "user.first_name", "name")
	if err != nil {
		return responses.Patient{}, err
	}
	return responses.Patient{
		ID:        id,
		FirstName: firstName,
		LastName:  optionalString(record, "", "last_name", "lastName", "user.last_name"),
	}, nil
}

func (n *Normalizer) Medicines(body []byte) ([]responses.Medicine, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourceMedicines, records, n.Medicine), nil
}

func (n *Normalizer) Medicine(record gjson.Result) (responses.Medicine, error) {
	resource := constvars.ResourceMedicines
	id, err := requiredString(record, resource, "id", "medicine_id")
	if err != nil {
		return responses.Medicine{}, err
	}
	name, err := requiredString(record, resource, "name", "medicine_name")
	if err != nil {
		return responses.Medicine{}, err
	}
	return responses.Medicine{
		ID:       id,
		Name:     name,
		Strength: optionalString(record, "", "strength"),
	}, nil
}

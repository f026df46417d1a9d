package normalize

import (
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"strings"

	"github.com/tidwall/gjson"
)

func (n *Normalizer) Prescriptions(body []byte) ([]responses.Prescription, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourcePrescriptions, records, n.Prescription), nil
}

func (n *Normalizer) Prescription(record gjson.Result) (responses.Prescription, error) {
	resource := constvars.ResourcePrescriptions

	id, err := requiredString(record, resource, "id", "prescription_id")
	if err != nil {
		return responses.Prescription{}, err
	}
	status, err := requiredString(record, resource, "status")
	if err != nil {
		return responses.Prescription{}, err
	}
	prescribedAt, err := n.requiredTime(record, resource, "date_prescribed", "prescribed_at", "prescription_date", "created_at")
	if err != nil {
		return responses.Prescription{}, err
	}

	patientName := optionalString(record, "", "patient_name", "patientName")
	if patientName == "" {
		if patient, ok := firstObject(record, "patient", "patient_details"); ok {
			patientName = joinName(patient, "")
		}
	}
	if patientName == "" {
		patientName = constvars.UnknownPatientLabel
	}
	doctorName := optionalString(record, "", "doctor_name", "doctorName")
	if doctorName == "" {
		if doctor, ok := firstObject(record, "doctor", "doctor_details"); ok {
			doctorName = joinName(doctor, "")
		}
	}
	if doctorName == "" {
		doctorName = constvars.UnknownDoctorLabel
	}

	medications := make([]responses.Medication, 0)
	for _, item := range record.Get("medications").Array() {
		medications = append(medications, medication(item))
	}
	if len(medications) == 0 {
		for _, item := range record.Get("items").Array() {
			medications = append(medications, medication(item))
		}
	}

	return responses.Prescription{
		ID:           id,
		PatientID:    optionalString(record, "", "patient_id", "patient.id", "patient"),
		PatientName:  patientName,
		DoctorID:     optionalString(record, "", "doctor_id", "doctor.id", "doctor"),
		DoctorName:   doctorName,
		Status:       strings.ToLower(status),
		Diagnosis:    optionalString(record, "", "diagnosis"),
		Notes:        optionalString(record, "", "notes", "instructions"),
		PrescribedAt: prescribedAt,
		Medications:  medications,
	}, nil
}

func medication(record gjson.Result) responses.Medication {
	name := optionalString(record, "", "medicine_name", "medicineName", "medicine.name", "name")
	if name == "" {
		name = constvars.UnknownMedicineLabel
	}
	return responses.Medication{
		MedicineID:   optionalString(record, "", "medicine_id", "medicine.id", "medicine"),
		MedicineName: name,
		Quantity:     int(record.Get("quantity").Int()),
		Dosage:       optionalString(record, "", "dosage"),
		Frequency:    optionalString(record, "", "frequency"),
		Duration:     optionalString(record, "", "duration"),
		Instructions: optionalString(record, "", "instructions"),
	}
}

func (n *Normalizer) LabTests(body []byte) ([]responses.LabTest, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourceLabTests, records, n.LabTest), nil
}

func (n *Normalizer) LabTest(record gjson.Result) (responses.LabTest, error) {
	resource := constvars.ResourceLabTests

	id, err := requiredString(record, resource, "id", "test_id")
	if err != nil {
		return responses.LabTest{}, err
	}
	testType, err := requiredString(record, resource, "test_type", "testType")
	if err != nil {
		return responses.LabTest{}, err
	}
	status, err := requiredString(record, resource, "status")
	if err != nil {
		return responses.LabTest{}, err
	}
	requestedAt, err := n.requiredTime(record, resource, "requested_date", "requested_at", "requestedDate", "created_at")
	if err != nil {
		return responses.LabTest{}, err
	}

	return responses.LabTest{
		ID:              id,
		PatientName:     optionalString(record, constvars.UnknownPatientLabel, "patient_name", "patientName"),
		DoctorName:      optionalString(record, constvars.UnknownDoctorLabel, "doctor_name", "doctorName"),
		TestType:        testType,
		Priority:        strings.ToLower(optionalString(record, constvars.LabPriorityRoutine, "priority")),
		Status:          strings.ToLower(status),
		RequestedAt:     requestedAt,
		Results:         optionalString(record, "", "results"),
		TechnicianNotes: optionalString(record, "", "technician_notes", "technicianNotes"),
		CompletedAt:     n.optionalTime(record, "completion_date", "completed_at", "completionDate"),
		AttachmentURL:   optionalString(record, "", "attachment_url", "attachment"),
	}, nil
}

func (n *Normalizer) InventoryItems(body []byte) ([]responses.InventoryItem, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourceInventory, records, n.InventoryItem), nil
}

func (n *Normalizer) InventoryItem(record gjson.Result) (responses.InventoryItem, error) {
	resource := constvars.ResourceInventory

	id, err := requiredString(record, resource, "id", "item_id")
	if err != nil {
		return responses.InventoryItem{}, err
	}
	name, err := requiredString(record, resource, "item_name", "name")
	if err != nil {
		return responses.InventoryItem{}, err
	}
	quantity, ok := first(record, "quantity")
	if !ok {
		return responses.InventoryItem{}, &MissingFieldError{Resource: resource, Field: "quantity"}
	}
	status, err := requiredString(record, resource, "status")
	if err != nil {
		return responses.InventoryItem{}, err
	}

	return responses.InventoryItem{
		ID:           id,
		Name:         name,
		Type:         optionalString(record, "", "item_type", "type"),
		LocationType: optionalString(record, "", "location_type", "location"),
		Quantity:     int(quantity.Int()),
		Unit:         optionalString(record, "", "unit_of_measure", "unit"),
		Status:       status,
		ExpiresOn:    n.optionalTime(record, "expiration_date", "expiry_date"),
	}, nil
}

func (n *Normalizer) Payments(body []byte) ([]responses.Payment, error) {
	records, err := Records(body)
	if err != nil {
		return nil, err
	}
	return collect(n, constvars.ResourcePayments, records, n.Payment), nil
}

func (n *Normalizer) Payment(record gjson.Result) (responses.Payment, error) {
	resource := constvars.ResourcePayments

	id, err := requiredString(record, resource, "id", "payment_id")
	if err != nil {
		return responses.Payment{}, err
	}
	amount, ok := first(record, "amount", "total_amount")
	if !ok {
		return responses.Payment{}, &MissingFieldError{Resource: resource, Field: "amount"}
	}
	status, err := requiredString(record, resource, "status")
	if err != nil {
		return responses.Payment{}, err
	}
	createdAt, err := n.requiredTime(record, resource, "created_at", "date")
	if err != nil {
		return responses.Payment{}, err
	}

	return responses.Payment{
		ID:          id,
		Reference:   optionalString(record, id, "reference_number", "reference"),
		ServiceType: optionalString(record, "", "service_type"),
		Description: optionalString(record, "", "description"),
		Amount:      amount.Float(),
		Status:      strings.ToLower(status),
		CreatedAt:   createdAt,
	}, nil
}

// Profile reads the signed-in user's profile.
func (n *Normalizer) Profile(body []byte) (responses.Profile, error) {
	record, err := Object(body)
	if err != nil {
		return responses.Profile{}, err
	}
	resource := constvars.ResourceProfile
	id, err := requiredString(record, resource, "user_id", "id")
	if err != nil {
		return responses.Profile{}, err
	}
	return responses.Profile{
		ID:        id,
		Username:  optionalString(record, "", "username"),
		Email:     optionalString(record, "", "email"),
		FirstName: optionalString(record, "", "first_name", "firstName"),
		LastName:  optionalString(record, "", "last_name", "lastName"),
		Role:      optionalString(record, "", "role", "user_type"),
		Phone:     optionalString(record, "", "phone", "phone_number"),
	}, nil
}

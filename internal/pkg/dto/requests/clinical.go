package requests

type MedicationForm struct {
	MedicineID   string `form:"medicine_id" json:"medicine_id" validate:"required"`
	Quantity     int    `form:"quantity" json:"quantity" validate:"required,gt=0"`
	Dosage       string `form:"dosage" json:"dosage" validate:"required,notblank"`
	Frequency    string `form:"frequency" json:"frequency" validate:"required,notblank"`
	Duration     string `form:"duration" json:"duration" validate:"required,notblank"`
	Instructions string `form:"instructions" json:"instructions"`
}

type PrescriptionForm struct {
	PatientID   string           `form:"patient_id" json:"patient_id" validate:"required"`
	DoctorID    string           `form:"doctor_id" json:"doctor_id" validate:"required"`
	Diagnosis   string           `form:"diagnosis" json:"diagnosis" validate:"required,notblank"`
	Notes       string           `form:"notes" json:"notes,omitempty"`
	Medications []MedicationForm `form:"medications" json:"medications" validate:"required,min=1,dive"`
}

type PrescriptionFilters struct {
	Status    string `form:"status"`
	DateRange string `form:"date_range"`
	Search    string `form:"search"`
}

type LabTestForm struct {
	PatientID string `form:"patient_id" json:"patient_id" validate:"required"`
	DoctorID  string `form:"doctor_id" json:"doctor_id" validate:"required"`
	TestType  string `form:"test_type" json:"test_type" validate:"required,notblank"`
	Priority  string `form:"priority" json:"priority" validate:"required,oneof=routine urgent stat"`
	Notes     string `form:"notes" json:"notes,omitempty"`
}

type LabResultForm struct {
	Status          string `form:"status" json:"status" validate:"required,oneof=pending in_progress completed cancelled"`
	Results         string `form:"results" json:"results"`
	TechnicianNotes string `form:"technician_notes" json:"technician_notes"`
	CompletionDate  string `form:"completion_date" json:"completion_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	AttachmentURL   string `form:"-" json:"attachment_url,omitempty"`
}

type LabTestFilters struct {
	Status   string `form:"status"`
	TestType string `form:"test_type"`
	Search   string `form:"search"`
}

type InventoryFilters struct {
	ItemType     string `form:"item_type"`
	LocationType string `form:"location_type"`
	Status       string `form:"status"`
	Search       string `form:"search"`
}

type InventoryTransferForm struct {
	LocationType string `form:"location_type" json:"location_type" validate:"required,oneof=pharmacy hospital_ward hospital_storage clinic"`
	Quantity     int    `form:"quantity" json:"quantity" validate:"required,gt=0"`
}

type ProcessPaymentForm struct {
	PaymentMethod string `form:"payment_method" json:"payment_method" validate:"required,oneof=card cash insurance"`
}

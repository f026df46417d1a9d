package responses

import "time"

type Medication struct {
	MedicineID   string `json:"medicine_id"`
	MedicineName string `json:"medicine_name"`
	Quantity     int    `json:"quantity"`
	Dosage       string `json:"dosage"`
	Frequency    string `json:"frequency"`
	Duration     string `json:"duration"`
	Instructions string `json:"instructions"`
}

type Prescription struct {
	ID           string       `json:"id"`
	PatientID    string       `json:"patient_id"`
	PatientName  string       `json:"patient_name"`
	DoctorID     string       `json:"doctor_id"`
	DoctorName   string       `json:"doctor_name"`
	Status       string       `json:"status"`
	Diagnosis    string       `json:"diagnosis"`
	Notes        string       `json:"notes"`
	PrescribedAt time.Time    `json:"prescribed_at"`
	Medications  []Medication `json:"medications"`
}

type LabTest struct {
	ID              string     `json:"id"`
	PatientName     string     `json:"patient_name"`
	DoctorName      string     `json:"doctor_name"`
	TestType        string     `json:"test_type"`
	Priority        string     `json:"priority"`
	Status          string     `json:"status"`
	RequestedAt     time.Time  `json:"requested_at"`
	Results         string     `json:"results,omitempty"`
	TechnicianNotes string     `json:"technician_notes,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	AttachmentURL   string     `json:"attachment_url,omitempty"`
}

type InventoryItem struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	LocationType string     `json:"location_type"`
	Quantity     int        `json:"quantity"`
	Unit         string     `json:"unit"`
	Status       string     `json:"status"`
	ExpiresOn    *time.Time `json:"expires_on,omitempty"`
}

type InventoryStats struct {
	Total        int `json:"total"`
	LowStock     int `json:"low_stock"`
	OutOfStock   int `json:"out_of_stock"`
	ExpiringSoon int `json:"expiring_soon"`
}

type Payment struct {
	ID          string    `json:"id"`
	Reference   string    `json:"reference"`
	ServiceType string    `json:"service_type"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

import (
	"careportal-service/internal/pkg/dto/responses"
	"io"
)

// ReferenceLists are the select inputs of the clinical forms.
type ReferenceLists struct {
	Doctors   []responses.Provider
	Patients  []responses.Patient
	Medicines []responses.Medicine
	Failed    bool
}

type InventoryPage struct {
	Items []responses.InventoryItem
	Stats responses.InventoryStats
}

type PaymentsPage struct {
	Pending []responses.Payment
	History []responses.Payment
}

// Attachment is an uploaded file on its way to object storage.
type Attachment struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.Reader
}

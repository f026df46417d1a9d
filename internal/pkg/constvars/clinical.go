package constvars

const (
	PatientStatusActive   = "active"
	PatientStatusInactive = "inactive"
)

const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

const (
	PrescriptionStatusActive    = "active"
	PrescriptionStatusCompleted = "completed"
	PrescriptionStatusCanceled  = "canceled"
)

const (
	LabTestStatusPending    = "pending"
	LabTestStatusInProgress = "in_progress"
	LabTestStatusCompleted  = "completed"
	LabTestStatusCancelled  = "cancelled"
)

const (
	LabPriorityRoutine = "routine"
	LabPriorityUrgent  = "urgent"
	LabPriorityStat    = "stat"
)

const (
	InventoryStatusAvailable  = "Available"
	InventoryStatusLowStock   = "Low Stock"
	InventoryStatusOutOfStock = "Out of Stock"
	InventoryExpiringDays     = 30
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"

	PaymentMethodCard      = "card"
	PaymentMethodCash      = "cash"
	PaymentMethodInsurance = "insurance"
)

const (
	LabAttachmentObjectPrefix = "lab-results"
)

package constvars

const (
	ResponseUnknown = "unknown"
	ResponseHealthy = "ok"
)

// Slot selector messages
const (
	SlotSelectorPromptMessage  = "Select a provider and date to see available slots"
	SlotSelectorLoadingMessage = "Loading available slots..."
	SlotSelectorEmptyMessage   = "No available slots"
	SlotSelectorErrorMessage   = "Unable to load time slots"
)

// Success messages for clients
const (
	AppointmentScheduledSuccessMessage = "Appointment scheduled successfully"
	AppointmentCancelledSuccessMessage = "Appointment cancelled successfully"
	AppointmentCheckedInSuccessMessage = "Patient checked in successfully"
	AppointmentConfirmedSuccessMessage = "Appointment confirmed successfully"
	AppointmentCompletedSuccessMessage = "Appointment completed successfully"
	PrescriptionCreatedSuccessMessage  = "Prescription created successfully!"
	LabTestCreatedSuccessMessage       = "Test request created successfully!"
	LabResultsSavedSuccessMessage      = "Test results saved successfully!"
	InventoryTransferSuccessMessage    = "Item transferred successfully"
	PaymentProcessedSuccessMessage     = "Payment processed successfully!"
	LoginSuccessMessage                = "Login successful"
	LogoutSuccessMessage               = "You have been logged out"
	RegistrationSuccessMessage         = "Registration successful! Please login."
	ProfileUpdatedSuccessMessage       = "Profile updated successfully!"
	PasswordChangedSuccessMessage      = "Password changed successfully!"
	PatientCreatedSuccessMessage       = "Patient added successfully!"
)

// Notification levels carried in the HX-Trigger header.
const (
	NotifyEventName    = "notify"
	NotifyLevelSuccess = "success"
	NotifyLevelError   = "danger"
	NotifyLevelInfo    = "info"
	CloseModalEvent    = "closeModal"
	ResetFormEvent     = "resetForm"
	ListChangedEvent   = "listChanged"
)

// Display fallbacks for optional name fields.
const (
	UnknownPatientLabel  = "Unknown Patient"
	UnknownProviderLabel = "Unknown Provider"
	UnknownDoctorLabel   = "Unknown Doctor"
	UnknownMedicineLabel = "Unknown Medicine"
)

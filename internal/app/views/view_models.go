package views

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
)

// Page wraps the data of a full page with what the layout needs.
type Page struct {
	Title   string
	Active  string
	Session *models.Session
	Data    interface{}
}

type LoginView struct {
	Username string
	Message  string
}

type BookingFormView struct {
	Page        *models.AppointmentPage
	Form        *requests.BookingForm
	FieldErrors exceptions.FieldErrors
	Message     string
}

type AppointmentListView struct {
	Appointments []responses.Appointment
	Failed       bool
	// OOB swaps the list out of band next to another fragment.
	OOB bool
}

type AppointmentsView struct {
	Page     *models.AppointmentPage
	Statuses []string
	List     AppointmentListView
	Booking  BookingFormView
}

type PrescriptionListView struct {
	Filters       requests.PrescriptionFilters
	Prescriptions []responses.Prescription
	Failed        bool
}

type PrescriptionsView struct {
	List PrescriptionListView
	Form PrescriptionFormView
}

type PrescriptionFormView struct {
	Lists       *models.ReferenceLists
	Form        *requests.PrescriptionForm
	FieldErrors exceptions.FieldErrors
	Message     string
}

type LabListView struct {
	Filters requests.LabTestFilters
	Tests   []responses.LabTest
	Failed  bool
}

type LabView struct {
	List LabListView
	Form LabFormView
}

type LabFormView struct {
	Lists       *models.ReferenceLists
	Form        *requests.LabTestForm
	FieldErrors exceptions.FieldErrors
	Message     string
}

type LabResultFormView struct {
	TestID      string
	Form        *requests.LabResultForm
	FieldErrors exceptions.FieldErrors
	Message     string
}

type InventoryView struct {
	Filters requests.InventoryFilters
	Page    *models.InventoryPage
	Failed  bool
}

type TransferFormView struct {
	ItemID      string
	Form        *requests.InventoryTransferForm
	FieldErrors exceptions.FieldErrors
	Message     string
}

type PaymentsView struct {
	Page   *models.PaymentsPage
	Failed bool
}

type PaymentFormView struct {
	PaymentID   string
	Form        *requests.ProcessPaymentForm
	FieldErrors exceptions.FieldErrors
	Message     string
}

type ChatReplyView struct {
	Message string
	Reply   string
}

type RegisterView struct {
	Form        *requests.RegisterForm
	FieldErrors exceptions.FieldErrors
	Message     string
	Registered  bool
}

type ProfileView struct {
	Details  ProfileDetailsView
	Form     ProfileFormView
	Password PasswordFormView
}

type ProfileDetailsView struct {
	Profile *responses.Profile
	OOB     bool
}

type ProfileFormView struct {
	Form        *requests.ProfileForm
	FieldErrors exceptions.FieldErrors
	Message     string
}

type PasswordFormView struct {
	Form        *requests.ChangePasswordForm
	FieldErrors exceptions.FieldErrors
	Message     string
}

type PatientListView struct {
	Filters  requests.PatientFilters
	Patients []responses.PatientRecord
	Failed   bool
}

type PatientsView struct {
	List PatientListView
	Form PatientFormView
}

type PatientFormView struct {
	Form        *requests.PatientForm
	FieldErrors exceptions.FieldErrors
	Message     string
}

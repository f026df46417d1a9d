package contracts

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"context"
	"net/url"
)

type AppointmentBackendClient interface {
	FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.Appointment, error)
	FindAvailableSlots(ctx context.Context, accessToken string, query *requests.AvailabilityQuery) ([]responses.TimeSlot, error)
	Create(ctx context.Context, accessToken string, request *requests.CreateAppointment) (*responses.Appointment, error)
	Cancel(ctx context.Context, accessToken, appointmentID string, request *requests.CancelAppointment) error
	CheckIn(ctx context.Context, accessToken, appointmentID string) error
	UpdateStatus(ctx context.Context, accessToken, appointmentID string, request *requests.UpdateAppointmentStatus) error
	Complete(ctx context.Context, accessToken, appointmentID string) error
}

type ReferenceBackendClient interface {
	FindDoctors(ctx context.Context, accessToken string) ([]responses.Provider, error)
	FindPatients(ctx context.Context, accessToken string) ([]responses.Patient, error)
	FindMedicines(ctx context.Context, accessToken string) ([]responses.Medicine, error)
}

type PrescriptionBackendClient interface {
	FindAll(ctx context.Context, accessToken string) ([]responses.Prescription, error)
	FindByID(ctx context.Context, accessToken, prescriptionID string) (*responses.Prescription, error)
	Create(ctx context.Context, accessToken string, request *requests.PrescriptionForm) error
}

type LaboratoryBackendClient interface {
	FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.LabTest, error)
	Create(ctx context.Context, accessToken string, request *requests.LabTestForm) error
	SubmitResults(ctx context.Context, accessToken, testID string, request *requests.LabResultForm) error
}

type InventoryBackendClient interface {
	FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.InventoryItem, error)
	Transfer(ctx context.Context, accessToken, itemID string, request *requests.InventoryTransferForm) error
}

type PaymentBackendClient interface {
	FindPending(ctx context.Context, accessToken string) ([]responses.Payment, error)
	FindHistory(ctx context.Context, accessToken string) ([]responses.Payment, error)
	Process(ctx context.Context, accessToken, paymentID string, request *requests.ProcessPaymentForm) error
}

type AuthBackendClient interface {
	ObtainToken(ctx context.Context, request *requests.LoginForm) (*responses.AuthToken, error)
	FindProfile(ctx context.Context, accessToken string) (*responses.Profile, error)
	Register(ctx context.Context, request *requests.RegisterForm) error
	UpdateProfile(ctx context.Context, accessToken string, request *requests.ProfileForm) error
	ChangePassword(ctx context.Context, accessToken string, request *requests.ChangePasswordForm) error
}

type PatientBackendClient interface {
	FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.PatientRecord, error)
	FindByID(ctx context.Context, accessToken, patientID string) (*responses.PatientRecord, error)
	Create(ctx context.Context, accessToken string, request *requests.PatientForm) error
}

type ChatbotBackendClient interface {
	Send(ctx context.Context, accessToken string, request *requests.ChatbotMessage) (*responses.ChatbotReply, error)
}

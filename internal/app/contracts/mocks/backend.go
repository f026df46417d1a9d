// Package mocks holds testify mocks of the contracts interfaces.
package mocks

import (
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"
)

type AppointmentBackendClient struct {
	mock.Mock
}

func (m *AppointmentBackendClient) FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.Appointment, error) {
	args := m.Called(ctx, accessToken, query)
	appointments, _ := args.Get(0).([]responses.Appointment)
	return appointments, args.Error(1)
}

func (m *AppointmentBackendClient) FindAvailableSlots(ctx context.Context, accessToken string, query *requests.AvailabilityQuery) ([]responses.TimeSlot, error) {
	args := m.Called(ctx, accessToken, query)
	slots, _ := args.Get(0).([]responses.TimeSlot)
	return slots, args.Error(1)
}

func (m *AppointmentBackendClient) Create(ctx context.Context, accessToken string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	args := m.Called(ctx, accessToken, request)
	appointment, _ := args.Get(0).(*responses.Appointment)
	return appointment, args.Error(1)
}

func (m *AppointmentBackendClient) Cancel(ctx context.Context, accessToken, appointmentID string, request *requests.CancelAppointment) error {
	return m.Called(ctx, accessToken, appointmentID, request).Error(0)
}

func (m *AppointmentBackendClient) CheckIn(ctx context.Context, accessToken, appointmentID string) error {
	return m.Called(ctx, accessToken, appointmentID).Error(0)
}

func (m *AppointmentBackendClient) UpdateStatus(ctx context.Context, accessToken, appointmentID string, request *requests.UpdateAppointmentStatus) error {
	return m.Called(ctx, accessToken, appointmentID, request).Error(0)
}

func (m *AppointmentBackendClient) Complete(ctx context.Context, accessToken, appointmentID string) error {
	return m.Called(ctx, accessToken, appointmentID).Error(0)
}

type ReferenceBackendClient struct {
	mock.Mock
}

func (m *ReferenceBackendClient) FindDoctors(ctx context.Context, accessToken string) ([]responses.Provider, error) {
	args := m.Called(ctx, accessToken)
	doctors, _ := args.Get(0).([]responses.Provider)
	return doctors, args.Error(1)
}

func (m *ReferenceBackendClient) FindPatients(ctx context.Context, accessToken string) ([]responses.Patient, error) {
	args := m.Called(ctx, accessToken)
	patients, _ := args.Get(0).([]responses.Patient)
	return patients, args.Error(1)
}

func (m *ReferenceBackendClient) FindMedicines(ctx context.Context, accessToken string) ([]responses.Medicine, error) {
	args := m.Called(ctx, accessToken)
	medicines, _ := args.Get(0).([]responses.Medicine)
	return medicines, args.Error(1)
}

type PrescriptionBackendClient struct {
	mock.Mock
}

func (m *PrescriptionBackendClient) FindAll(ctx context.Context, accessToken string) ([]responses.Prescription, error) {
	args := m.Called(ctx, accessToken)
	prescriptions, _ := args.Get(0).([]responses.Prescription)
	return prescriptions, args.Error(1)
}

func (m *PrescriptionBackendClient) FindByID(ctx context.Context, accessToken, prescriptionID string) (*responses.Prescription, error) {
	args := m.Called(ctx, accessToken, prescriptionID)
	prescription, _ := args.Get(0).(*responses.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionBackendClient) Create(ctx context.Context, accessToken string, request *requests.PrescriptionForm) error {
	return m.Called(ctx, accessToken, request).Error(0)
}

type LaboratoryBackendClient struct {
	mock.Mock
}

func (m *LaboratoryBackendClient) FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.LabTest, error) {
	args := m.Called(ctx, accessToken, query)
	tests, _ := args.Get(0).([]responses.LabTest)
	return tests, args.Error(1)
}

func (m *LaboratoryBackendClient) Create(ctx context.Context, accessToken string, request *requests.LabTestForm) error {
	return m.Called(ctx, accessToken, request).Error(0)
}

func (m *LaboratoryBackendClient) SubmitResults(ctx context.Context, accessToken, testID string, request *requests.LabResultForm) error {
	return m.Called(ctx, accessToken, testID, request).Error(0)
}

type InventoryBackendClient struct {
	mock.Mock
}

func (m *InventoryBackendClient) FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.InventoryItem, error) {
	args := m.Called(ctx, accessToken, query)
	items, _ := args.Get(0).([]responses.InventoryItem)
	return items, args.Error(1)
}

func (m *InventoryBackendClient) Transfer(ctx context.Context, accessToken, itemID string, request *requests.InventoryTransferForm) error {
	return m.Called(ctx, accessToken, itemID, request).Error(0)
}

type PaymentBackendClient struct {
	mock.Mock
}

func (m *PaymentBackendClient) FindPending(ctx context.Context, accessToken string) ([]responses.Payment, error) {
	args := m.Called(ctx, accessToken)
	payments, _ := args.Get(0).([]responses.Payment)
	return payments, args.Error(1)
}

func (m *PaymentBackendClient) FindHistory(ctx context.Context, accessToken string) ([]responses.Payment, error) {
	args := m.Called(ctx, accessToken)
	payments, _ := args.Get(0).([]responses.Payment)
	return payments, args.Error(1)
}

func (m *PaymentBackendClient) Process(ctx context.Context, accessToken, paymentID string, request *requests.ProcessPaymentForm) error {
	return m.Called(ctx, accessToken, paymentID, request).Error(0)
}

type AuthBackendClient struct {
	mock.Mock
}

func (m *AuthBackendClient) ObtainToken(ctx context.Context, request *requests.LoginForm) (*responses.AuthToken, error) {
	args := m.Called(ctx, request)
	token, _ := args.Get(0).(*responses.AuthToken)
	return token, args.Error(1)
}

func (m *AuthBackendClient) FindProfile(ctx context.Context, accessToken string) (*responses.Profile, error) {
	args := m.Called(ctx, accessToken)
	profile, _ := args.Get(0).(*responses.Profile)
	return profile, args.Error(1)
}

func (m *AuthBackendClient) Register(ctx context.Context, request *requests.RegisterForm) error {
	return m.Called(ctx, request).Error(0)
}

func (m *AuthBackendClient) UpdateProfile(ctx context.Context, accessToken string, request *requests.ProfileForm) error {
	return m.Called(ctx, accessToken, request).Error(0)
}

func (m *AuthBackendClient) ChangePassword(ctx context.Context, accessToken string, request *requests.ChangePasswordForm) error {
	return m.Called(ctx, accessToken, request).Error(0)
}

type PatientBackendClient struct {
	mock.Mock
}

func (m *PatientBackendClient) FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.PatientRecord, error) {
	args := m.Called(ctx, accessToken, query)
	records, _ := args.Get(0).([]responses.PatientRecord)
	return records, args.Error(1)
}

func (m *PatientBackendClient) FindByID(ctx context.Context, accessToken, patientID string) (*responses.PatientRecord, error) {
	args := m.Called(ctx, accessToken, patientID)
	record, _ := args.Get(0).(*responses.PatientRecord)
	return record, args.Error(1)
}

func (m *PatientBackendClient) Create(ctx context.Context, accessToken string, request *requests.PatientForm) error {
	return m.Called(ctx, accessToken, request).Error(0)
}

type ChatbotBackendClient struct {
	mock.Mock
}

func (m *ChatbotBackendClient) Send(ctx context.Context, accessToken string, request *requests.ChatbotMessage) (*responses.ChatbotReply, error) {
	args := m.Called(ctx, accessToken, request)
	reply, _ := args.Get(0).(*responses.ChatbotReply)
	return reply, args.Error(1)
}

package mocks

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Login(ctx context.Context, form *requests.LoginForm) (*models.LoginResult, error) {
	args := m.Called(ctx, form)
	result, _ := args.Get(0).(*models.LoginResult)
	return result, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *AuthUsecase) ResolveSession(ctx context.Context, sessionToken string) (*models.Session, error) {
	args := m.Called(ctx, sessionToken)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *AuthUsecase) Profile(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	args := m.Called(ctx, session)
	profile, _ := args.Get(0).(*responses.Profile)
	return profile, args.Error(1)
}

func (m *AuthUsecase) fieldErrors(args mock.Arguments) (exceptions.FieldErrors, error) {
	fieldErrors, _ := args.Get(0).(exceptions.FieldErrors)
	return fieldErrors, args.Error(1)
}

func (m *AuthUsecase) Register(ctx context.Context, form *requests.RegisterForm) (exceptions.FieldErrors, error) {
	return m.fieldErrors(m.Called(ctx, form))
}

func (m *AuthUsecase) UpdateProfile(ctx context.Context, session *models.Session, form *requests.ProfileForm) (exceptions.FieldErrors, error) {
	return m.fieldErrors(m.Called(ctx, session, form))
}

func (m *AuthUsecase) ChangePassword(ctx context.Context, session *models.Session, form *requests.ChangePasswordForm) (exceptions.FieldErrors, error) {
	return m.fieldErrors(m.Called(ctx, session, form))
}

type PatientUsecase struct {
	mock.Mock
}

func (m *PatientUsecase) List(ctx context.Context, session *models.Session, filters requests.PatientFilters) ([]responses.PatientRecord, error) {
	args := m.Called(ctx, session, filters)
	records, _ := args.Get(0).([]responses.PatientRecord)
	return records, args.Error(1)
}

func (m *PatientUsecase) Get(ctx context.Context, session *models.Session, patientID string) (*responses.PatientRecord, error) {
	args := m.Called(ctx, session, patientID)
	record, _ := args.Get(0).(*responses.PatientRecord)
	return record, args.Error(1)
}

func (m *PatientUsecase) Create(ctx context.Context, session *models.Session, form *requests.PatientForm) (exceptions.FieldErrors, error) {
	args := m.Called(ctx, session, form)
	fieldErrors, _ := args.Get(0).(exceptions.FieldErrors)
	return fieldErrors, args.Error(1)
}

type BookingUsecase struct {
	mock.Mock
}

func (m *BookingUsecase) Page(ctx context.Context, session *models.Session) (*models.AppointmentPage, error) {
	args := m.Called(ctx, session)
	page, _ := args.Get(0).(*models.AppointmentPage)
	return page, args.Error(1)
}

func (m *BookingUsecase) Form(ctx context.Context, session *models.Session) (*models.AppointmentPage, error) {
	args := m.Called(ctx, session)
	page, _ := args.Get(0).(*models.AppointmentPage)
	return page, args.Error(1)
}

func (m *BookingUsecase) QuerySlots(ctx context.Context, session *models.Session, form *requests.SlotQueryForm) (*models.SlotQueryResult, error) {
	args := m.Called(ctx, session, form)
	result, _ := args.Get(0).(*models.SlotQueryResult)
	return result, args.Error(1)
}

func (m *BookingUsecase) Submit(ctx context.Context, session *models.Session, form *requests.BookingForm) (*models.BookingOutcome, error) {
	args := m.Called(ctx, session, form)
	outcome, _ := args.Get(0).(*models.BookingOutcome)
	return outcome, args.Error(1)
}

type AppointmentListUsecase struct {
	mock.Mock
}

func (m *AppointmentListUsecase) result(args mock.Arguments) (*models.AppointmentListResult, error) {
	result, _ := args.Get(0).(*models.AppointmentListResult)
	return result, args.Error(1)
}

func (m *AppointmentListUsecase) List(ctx context.Context, session *models.Session, filters requests.AppointmentFilters) (*models.AppointmentListResult, error) {
	return m.result(m.Called(ctx, session, filters))
}

func (m *AppointmentListUsecase) Refresh(ctx context.Context, session *models.Session) (*models.AppointmentListResult, error) {
	return m.result(m.Called(ctx, session))
}

func (m *AppointmentListUsecase) Cancel(ctx context.Context, session *models.Session, appointmentID string, confirmed bool) (*models.AppointmentListResult, error) {
	return m.result(m.Called(ctx, session, appointmentID, confirmed))
}

func (m *AppointmentListUsecase) CheckIn(ctx context.Context, session *models.Session, appointmentID string) (*models.AppointmentListResult, error) {
	return m.result(m.Called(ctx, session, appointmentID))
}

func (m *AppointmentListUsecase) Confirm(ctx context.Context, session *models.Session, appointmentID string) (*models.AppointmentListResult, error) {
	return m.result(m.Called(ctx, session, appointmentID))
}

func (m *AppointmentListUsecase) Complete(ctx context.Context, session *models.Session, appointmentID string) (*models.AppointmentListResult, error) {
	return m.result(m.Called(ctx, session, appointmentID))
}

type PrescriptionUsecase struct {
	mock.Mock
}

func (m *PrescriptionUsecase) References(ctx context.Context, session *models.Session) (*models.ReferenceLists, error) {
	args := m.Called(ctx, session)
	lists, _ := args.Get(0).(*models.ReferenceLists)
	return lists, args.Error(1)
}

func (m *PrescriptionUsecase) List(ctx context.Context, session *models.Session, filters requests.PrescriptionFilters) ([]responses.Prescription, error) {
	args := m.Called(ctx, session, filters)
	prescriptions, _ := args.Get(0).([]responses.Prescription)
	return prescriptions, args.Error(1)
}

func (m *PrescriptionUsecase) Detail(ctx context.Context, session *models.Session, prescriptionID string) (*responses.Prescription, error) {
	args := m.Called(ctx, session, prescriptionID)
	prescription, _ := args.Get(0).(*responses.Prescription)
	return prescription, args.Error(1)
}

func (m *PrescriptionUsecase) Create(ctx context.Context, session *models.Session, form *requests.PrescriptionForm) (exceptions.FieldErrors, error) {
	args := m.Called(ctx, session, form)
	fieldErrors, _ := args.Get(0).(exceptions.FieldErrors)
	return fieldErrors, args.Error(1)
}

type LaboratoryUsecase struct {
	mock.Mock
}

func (m *LaboratoryUsecase) References(ctx context.Context, session *models.Session) (*models.ReferenceLists, error) {
	args := m.Called(ctx, session)
	lists, _ := args.Get(0).(*models.ReferenceLists)
	return lists, args.Error(1)
}

func (m *LaboratoryUsecase) List(ctx context.Context, session *models.Session, filters requests.LabTestFilters) ([]responses.LabTest, error) {
	args := m.Called(ctx, session, filters)
	tests, _ := args.Get(0).([]responses.LabTest)
	return tests, args.Error(1)
}

func (m *LaboratoryUsecase) Create(ctx context.Context, session *models.Session, form *requests.LabTestForm) (exceptions.FieldErrors, error) {
	args := m.Called(ctx, session, form)
	fieldErrors, _ := args.Get(0).(exceptions.FieldErrors)
	return fieldErrors, args.Error(1)
}

func (m *LaboratoryUsecase) SubmitResults(ctx context.Context, session *models.Session, testID string, form *requests.LabResultForm, attachment *models.Attachment) (exceptions.FieldErrors, error) {
	args := m.Called(ctx, session, testID, form, attachment)
	fieldErrors, _ := args.Get(0).(exceptions.FieldErrors)
	return fieldErrors, args.Error(1)
}

type InventoryUsecase struct {
	mock.Mock
}

func (m *InventoryUsecase) List(ctx context.Context, session *models.Session, filters requests.InventoryFilters) (*models.InventoryPage, error) {
	args := m.Called(ctx, session, filters)
	page, _ := args.Get(0).(*models.InventoryPage)
	return page, args.Error(1)
}

func (m *InventoryUsecase) Transfer(ctx context.Context, session *models.Session, itemID string, form *requests.InventoryTransferForm) (exceptions.FieldErrors, error) {
	args := m.Called(ctx, session, itemID, form)
	fieldErrors, _ := args.Get(0).(exceptions.FieldErrors)
	return fieldErrors, args.Error(1)
}

type PaymentUsecase struct {
	mock.Mock
}

func (m *PaymentUsecase) Page(ctx context.Context, session *models.Session) (*models.PaymentsPage, error) {
	args := m.Called(ctx, session)
	page, _ := args.Get(0).(*models.PaymentsPage)
	return page, args.Error(1)
}

func (m *PaymentUsecase) Process(ctx context.Context, session *models.Session, paymentID string, form *requests.ProcessPaymentForm) (exceptions.FieldErrors, error) {
	args := m.Called(ctx, session, paymentID, form)
	fieldErrors, _ := args.Get(0).(exceptions.FieldErrors)
	return fieldErrors, args.Error(1)
}

type ChatbotUsecase struct {
	mock.Mock
}

func (m *ChatbotUsecase) Send(ctx context.Context, session *models.Session, message string) string {
	return m.Called(ctx, session, message).String(0)
}

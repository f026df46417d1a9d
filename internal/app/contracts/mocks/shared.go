package mocks

import (
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

type ReferenceCache struct {
	mock.Mock
}

func (m *ReferenceCache) Doctors(ctx context.Context, accessToken string) ([]responses.Provider, error) {
	args := m.Called(ctx, accessToken)
	doctors, _ := args.Get(0).([]responses.Provider)
	return doctors, args.Error(1)
}

func (m *ReferenceCache) Patients(ctx context.Context, accessToken string) ([]responses.Patient, error) {
	args := m.Called(ctx, accessToken)
	patients, _ := args.Get(0).([]responses.Patient)
	return patients, args.Error(1)
}

func (m *ReferenceCache) Medicines(ctx context.Context, accessToken string) ([]responses.Medicine, error) {
	args := m.Called(ctx, accessToken)
	medicines, _ := args.Get(0).([]responses.Medicine)
	return medicines, args.Error(1)
}

func (m *ReferenceCache) Refresh(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *ReferenceCache) ForgetPatients(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) PublishAppointmentEvent(ctx context.Context, event *requests.AppointmentEvent) error {
	return m.Called(ctx, event).Error(0)
}

func (m *EventPublisher) Close() error {
	return m.Called().Error(0)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) UploadFile(ctx context.Context, file io.Reader, size int64, contentType, bucketName, objectName string) (string, error) {
	args := m.Called(ctx, file, size, contentType, bucketName, objectName)
	return args.String(0), args.Error(1)
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type SessionService struct {
	mock.Mock
}

func (m *SessionService) CreateSession(ctx context.Context, session *models.Session) error {
	return m.Called(ctx, session).Error(0)
}

func (m *SessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	return m.Called(ctx, sessionID).Error(0)
}

type LockerService struct {
	mock.Mock
}

func (m *LockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *LockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return m.Called(ctx, key, lockValue).Error(0)
}

func (m *LockerService) Refresh(ctx context.Context, key, lockValue string, expiration time.Duration) error {
	return m.Called(ctx, key, lockValue, expiration).Error(0)
}

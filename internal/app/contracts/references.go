package contracts

import (
	"careportal-service/internal/pkg/dto/responses"
	"context"
)

// ReferenceCache serves the select-input lists shared by every page.
type ReferenceCache interface {
	Doctors(ctx context.Context, accessToken string) ([]responses.Provider, error)
	Patients(ctx context.Context, accessToken string) ([]responses.Patient, error)
	Medicines(ctx context.Context, accessToken string) ([]responses.Medicine, error)
	Refresh(ctx context.Context) error
	// ForgetPatients drops the cached patient list after the registry changed.
	ForgetPatients(ctx context.Context) error
}

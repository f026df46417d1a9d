package references

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/services/backend"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/normalize"
	"context"
)

type referenceBackendClient struct {
	Client     *backend.Client
	Normalizer *normalize.Normalizer
}

func NewReferenceBackendClient(client *backend.Client, normalizer *normalize.Normalizer) contracts.ReferenceBackendClient {
	return &referenceBackendClient{
		Client:     client,
		Normalizer: normalizer,
	}
}

func (c *referenceBackendClient) FindDoctors(ctx context.Context, accessToken string) ([]responses.Provider, error) {
	body, err := c.get(ctx, accessToken, constvars.EndpointDoctors, constvars.ResourceDoctors)
	if err != nil {
		return nil, err
	}
	doctors, err := c.Normalizer.Doctors(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceDoctors)
	}
	return doctors, nil
}

func (c *referenceBackendClient) FindPatients(ctx context.Context, accessToken string) ([]responses.Patient, error) {
	body, err := c.get(ctx, accessToken, constvars.EndpointPatients, constvars.ResourcePatients)
	if err != nil {
		return nil, err
	}
	patients, err := c.Normalizer.Patients(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}
	return patients, nil
}

func (c *referenceBackendClient) FindMedicines(ctx context.Context, accessToken string) ([]responses.Medicine, error) {
	body, err := c.get(ctx, accessToken, constvars.EndpointMedicines, constvars.ResourceMedicines)
	if err != nil {
		return nil, err
	}
	medicines, err := c.Normalizer.Medicines(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceMedicines)
	}
	return medicines, nil
}

func (c *referenceBackendClient) get(ctx context.Context, accessToken, path, resource string) ([]byte, error) {
	return c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        path,
		AccessToken: accessToken,
		Resource:    resource,
	})
}

package patients

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/services/backend"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/normalize"
	"context"
	"fmt"
	"net/url"
)

type patientBackendClient struct {
	Client     *backend.Client
	Normalizer *normalize.Normalizer
}

func NewPatientBackendClient(client *backend.Client, normalizer *normalize.Normalizer) contracts.PatientBackendClient {
	return &patientBackendClient{
		Client:     client,
		Normalizer: normalizer,
	}
}

func (c *patientBackendClient) FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.PatientRecord, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        constvars.EndpointPatients,
		Query:       query,
		AccessToken: accessToken,
		Resource:    constvars.ResourcePatients,
	})
	if err != nil {
		return nil, err
	}
	records, err := c.Normalizer.PatientRecords(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}
	return records, nil
}

func (c *patientBackendClient) FindByID(ctx context.Context, accessToken, patientID string) (*responses.PatientRecord, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        fmt.Sprintf(constvars.EndpointPatientDetailFormat, url.PathEscape(patientID)),
		AccessToken: accessToken,
		Resource:    constvars.ResourcePatients,
	})
	if err != nil {
		return nil, err
	}
	record, err := c.Normalizer.PatientDetail(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePatients)
	}
	return &record, nil
}

func (c *patientBackendClient) Create(ctx context.Context, accessToken string, request *requests.PatientForm) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        constvars.EndpointPatients,
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourcePatients,
	})
	return err
}

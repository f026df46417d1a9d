package prescriptions

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

type prescriptionBackendClient struct {
	Client     *backend.Client
	Normalizer *normalize.Normalizer
}

func NewPrescriptionBackendClient(client *backend.Client, normalizer *normalize.Normalizer) contracts.PrescriptionBackendClient {
	return &prescriptionBackendClient{
		Client:     client,
		Normalizer: normalizer,
	}
}

func (c *prescriptionBackendClient) FindAll(ctx context.Context, accessToken string) ([]responses.Prescription, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        constvars.EndpointPrescriptions,
		AccessToken: accessToken,
		Resource:    constvars.ResourcePrescriptions,
	})
	if err != nil {
		return nil, err
	}
	prescriptions, err := c.Normalizer.Prescriptions(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePrescriptions)
	}
	return prescriptions, nil
}

func (c *prescriptionBackendClient) FindByID(ctx context.Context, accessToken, prescriptionID string) (*responses.Prescription, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        fmt.Sprintf(constvars.EndpointPrescriptionDetailFormat, url.PathEscape(prescriptionID)),
		AccessToken: accessToken,
		Resource:    constvars.ResourcePrescriptions,
	})
	if err != nil {
		return nil, err
	}
	record, err := normalize.Object(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePrescriptions)
	}
	prescription, err := c.Normalizer.Prescription(record)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePrescriptions)
	}
	return &prescription, nil
}

func (c *prescriptionBackendClient) Create(ctx context.Context, accessToken string, request *requests.PrescriptionForm) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        constvars.EndpointPrescriptions,
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourcePrescriptions,
	})
	return err
}

package laboratory

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

type laboratoryBackendClient struct {
	Client     *backend.Client
	Normalizer *normalize.Normalizer
}

func NewLaboratoryBackendClient(client *backend.Client, normalizer *normalize.Normalizer) contracts.LaboratoryBackendClient {
	return &laboratoryBackendClient{
		Client:     client,
		Normalizer: normalizer,
	}
}

func (c *laboratoryBackendClient) FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.LabTest, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        constvars.EndpointLabTests,
		Query:       query,
		AccessToken: accessToken,
		Resource:    constvars.ResourceLabTests,
	})
	if err != nil {
		return nil, err
	}
	tests, err := c.Normalizer.LabTests(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceLabTests)
	}
	return tests, nil
}

func (c *laboratoryBackendClient) Create(ctx context.Context, accessToken string, request *requests.LabTestForm) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        constvars.EndpointLabTests,
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourceLabTests,
	})
	return err
}

func (c *laboratoryBackendClient) SubmitResults(ctx context.Context, accessToken, testID string, request *requests.LabResultForm) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        fmt.Sprintf(constvars.EndpointLabTestResultsFormat, url.PathEscape(testID)),
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourceLabTests,
	})
	return err
}

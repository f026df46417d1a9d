package payments

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

type paymentBackendClient struct {
	Client     *backend.Client
	Normalizer *normalize.Normalizer
}

func NewPaymentBackendClient(client *backend.Client, normalizer *normalize.Normalizer) contracts.PaymentBackendClient {
	return &paymentBackendClient{
		Client:     client,
		Normalizer: normalizer,
	}
}

func (c *paymentBackendClient) FindPending(ctx context.Context, accessToken string) ([]responses.Payment, error) {
	return c.findAll(ctx, accessToken, constvars.EndpointPaymentsPending)
}

func (c *paymentBackendClient) FindHistory(ctx context.Context, accessToken string) ([]responses.Payment, error) {
	return c.findAll(ctx, accessToken, constvars.EndpointPaymentsHistory)
}

func (c *paymentBackendClient) Process(ctx context.Context, accessToken, paymentID string, request *requests.ProcessPaymentForm) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        fmt.Sprintf(constvars.EndpointPaymentProcessFormat, url.PathEscape(paymentID)),
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourcePayments,
	})
	return err
}

func (c *paymentBackendClient) findAll(ctx context.Context, accessToken, path string) ([]responses.Payment, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        path,
		AccessToken: accessToken,
		Resource:    constvars.ResourcePayments,
	})
	if err != nil {
		return nil, err
	}
	payments, err := c.Normalizer.Payments(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourcePayments)
	}
	return payments, nil
}

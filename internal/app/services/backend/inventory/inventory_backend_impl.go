package inventory

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

type inventoryBackendClient struct {
	Client     *backend.Client
	Normalizer *normalize.Normalizer
}

func NewInventoryBackendClient(client *backend.Client, normalizer *normalize.Normalizer) contracts.InventoryBackendClient {
	return &inventoryBackendClient{
		Client:     client,
		Normalizer: normalizer,
	}
}

func (c *inventoryBackendClient) FindAll(ctx context.Context, accessToken string, query url.Values) ([]responses.InventoryItem, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodGet,
		Path:        constvars.EndpointInventoryItems,
		Query:       query,
		AccessToken: accessToken,
		Resource:    constvars.ResourceInventory,
	})
	if err != nil {
		return nil, err
	}
	items, err := c.Normalizer.InventoryItems(body)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceInventory)
	}
	return items, nil
}

func (c *inventoryBackendClient) Transfer(ctx context.Context, accessToken, itemID string, request *requests.InventoryTransferForm) error {
	_, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        fmt.Sprintf(constvars.EndpointInventoryTransferFormat, url.PathEscape(itemID)),
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourceInventory,
	})
	return err
}

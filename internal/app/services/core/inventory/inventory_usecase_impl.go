package inventory

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

type inventoryUsecase struct {
	InventoryBackendClient contracts.InventoryBackendClient
	Location               *time.Location
	Now                    func() time.Time
	Log                    *zap.Logger
}

func NewInventoryUsecase(
	inventoryBackendClient contracts.InventoryBackendClient,
	location *time.Location,
	logger *zap.Logger,
) contracts.InventoryUsecase {
	return &inventoryUsecase{
		InventoryBackendClient: inventoryBackendClient,
		Location:               location,
		Now:                    time.Now,
		Log:                    logger,
	}
}

// List fetches the items matching the backend-side filters. Stats cover
// everything fetched, the stock status filter only narrows the table.
func (uc *inventoryUsecase) List(ctx context.Context, session *models.Session, filters requests.InventoryFilters) (*models.InventoryPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("inventoryUsecase.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingFiltersKey, filters),
	)

	items, err := uc.InventoryBackendClient.FindAll(ctx, session.AccessToken, BuildInventoryQuery(filters))
	if err != nil {
		uc.Log.Error("inventoryUsecase.List error fetching inventory",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	page := &models.InventoryPage{
		Items: FilterByStatus(items, filters.Status),
		Stats: InventoryStats(items, uc.Now().In(uc.Location)),
	}
	uc.Log.Info("inventoryUsecase.List succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(page.Items)),
	)
	return page, nil
}

func (uc *inventoryUsecase) Transfer(ctx context.Context, session *models.Session, itemID string, form *requests.InventoryTransferForm) (exceptions.FieldErrors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("inventoryUsecase.Transfer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInventoryItemIDKey, itemID),
	)

	form.LocationType = strings.ToLower(strings.TrimSpace(form.LocationType))
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.CollectFieldErrors(err), nil
	}

	err := uc.InventoryBackendClient.Transfer(ctx, session.AccessToken, itemID, form)
	if err != nil {
		uc.Log.Error("inventoryUsecase.Transfer error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingInventoryItemIDKey, itemID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("inventoryUsecase.Transfer succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInventoryItemIDKey, itemID),
	)
	return nil, nil
}

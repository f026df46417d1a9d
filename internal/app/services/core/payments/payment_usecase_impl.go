package payments

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"errors"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type paymentUsecase struct {
	PaymentBackendClient contracts.PaymentBackendClient
	Log                  *zap.Logger
}

func NewPaymentUsecase(
	paymentBackendClient contracts.PaymentBackendClient,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	return &paymentUsecase{
		PaymentBackendClient: paymentBackendClient,
		Log:                  logger,
	}
}

// Page loads pending payments and the payment history side by side.
func (uc *paymentUsecase) Page(ctx context.Context, session *models.Session) (*models.PaymentsPage, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.Page called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		wg                     sync.WaitGroup
		pending, history       []responses.Payment
		pendingErr, historyErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		pending, pendingErr = uc.PaymentBackendClient.FindPending(ctx, session.AccessToken)
	}()
	go func() {
		defer wg.Done()
		history, historyErr = uc.PaymentBackendClient.FindHistory(ctx, session.AccessToken)
	}()
	wg.Wait()

	if err := errors.Join(pendingErr, historyErr); err != nil {
		uc.Log.Error("paymentUsecase.Page error fetching payments",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if pendingErr != nil {
			return nil, pendingErr
		}
		return nil, historyErr
	}

	uc.Log.Info("paymentUsecase.Page succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(pending)+len(history)),
	)
	return &models.PaymentsPage{Pending: pending, History: history}, nil
}

func (uc *paymentUsecase) Process(ctx context.Context, session *models.Session, paymentID string, form *requests.ProcessPaymentForm) (exceptions.FieldErrors, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.Process called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
	)

	form.PaymentMethod = strings.ToLower(strings.TrimSpace(form.PaymentMethod))
	if err := utils.ValidateStruct(form); err != nil {
		return exceptions.CollectFieldErrors(err), nil
	}

	err := uc.PaymentBackendClient.Process(ctx, session.AccessToken, paymentID, form)
	if err != nil {
		uc.Log.Error("paymentUsecase.Process error from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPaymentIDKey, paymentID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("paymentUsecase.Process succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPaymentIDKey, paymentID),
	)
	return nil, nil
}

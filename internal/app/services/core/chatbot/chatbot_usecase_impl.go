package chatbot

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/exceptions"
	"careportal-service/internal/pkg/utils"
	"context"
	"strings"

	"go.uber.org/zap"
)

type chatbotUsecase struct {
	ChatbotBackendClient contracts.ChatbotBackendClient
	Log                  *zap.Logger
}

func NewChatbotUsecase(chatbotBackendClient contracts.ChatbotBackendClient, logger *zap.Logger) contracts.ChatbotUsecase {
	return &chatbotUsecase{
		ChatbotBackendClient: chatbotBackendClient,
		Log:                  logger,
	}
}

// Send relays message and returns the text to show as the bot's reply. The
// chat never fails; every problem becomes a reply the user can read.
func (uc *chatbotUsecase) Send(ctx context.Context, session *models.Session, message string) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if session == nil || session.AccessToken == "" {
		return constvars.ErrClientChatbotLoginRequired
	}

	request := &requests.ChatbotMessage{Message: strings.TrimSpace(message)}
	if err := utils.ValidateStruct(request); err != nil {
		return exceptions.FormatAllValidationErrors(err)
	}

	reply, err := uc.ChatbotBackendClient.Send(ctx, session.AccessToken, request)
	switch {
	case err == nil:
		return reply.Response
	case exceptions.IsUnauthorized(err):
		return constvars.ErrClientChatbotLoginRequired
	case exceptions.IsTransport(err):
		uc.Log.Warn("chatbotUsecase.Send backend unreachable",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return constvars.ErrClientChatbotUnreachable
	default:
		uc.Log.Warn("chatbotUsecase.Send backend rejected message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return constvars.ErrClientChatbotNotUnderstood
	}
}

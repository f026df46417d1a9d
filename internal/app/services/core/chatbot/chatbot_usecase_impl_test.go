package chatbot

import (
	"careportal-service/internal/app/contracts/mocks"
	"careportal-service/internal/app/models"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSend(t *testing.T) {
	ctx := context.Background()
	session := &models.Session{SessionID: "s1", AccessToken: "tok"}

	tests := []struct {
		name  string
		reply *responses.ChatbotReply
		err   error
		want  string
	}{
		{"Reply", &responses.ChatbotReply{Response: "Your next appointment is on Monday."}, nil, "Your next appointment is on Monday."},
		{"Unauthorized", nil, exceptions.ErrBackendUnauthorized(nil, constvars.ResourceChatbot), "Please log in to use the chatbot."},
		{"Rejected", nil, exceptions.ErrBackendRejected(&exceptions.BackendRejection{StatusCode: 400}, constvars.ResourceChatbot, 400), "Sorry, I'm having trouble understanding. Please try again."},
		{"Server Error", nil, exceptions.ErrBackendRejected(&exceptions.BackendRejection{StatusCode: 500}, constvars.ResourceChatbot, 502), "Sorry, I'm having trouble understanding. Please try again."},
		{"Transport", nil, exceptions.ErrSendHTTPRequest(errors.New("refused"), constvars.ResourceChatbot), "Sorry, I'm having trouble connecting. Please try again later."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backendClient := new(mocks.ChatbotBackendClient)
			backendClient.On("Send", mock.Anything, "tok", &requests.ChatbotMessage{Message: "when is my appointment?"}).Return(tt.reply, tt.err).Once()
			uc := NewChatbotUsecase(backendClient, zap.NewNop())

			assert.Equal(t, tt.want, uc.Send(ctx, session, "  when is my appointment? "))
			backendClient.AssertExpectations(t)
		})
	}

	t.Run("No Session Makes No Call", func(t *testing.T) {
		backendClient := new(mocks.ChatbotBackendClient)
		uc := NewChatbotUsecase(backendClient, zap.NewNop())

		assert.Equal(t, "Please log in to use the chatbot.", uc.Send(ctx, nil, "hello"))
		assert.Empty(t, backendClient.Calls)
	})

	t.Run("Blank Message Makes No Call", func(t *testing.T) {
		backendClient := new(mocks.ChatbotBackendClient)
		uc := NewChatbotUsecase(backendClient, zap.NewNop())

		assert.Equal(t, "Message is required", uc.Send(ctx, session, "   "))
		assert.Empty(t, backendClient.Calls)
	})
}

package chatbot

import (
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/services/backend"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/dto/requests"
	"careportal-service/internal/pkg/dto/responses"
	"careportal-service/internal/pkg/exceptions"
	"context"

	"github.com/goccy/go-json"
)

type chatbotBackendClient struct {
	Client *backend.Client
}

func NewChatbotBackendClient(client *backend.Client) contracts.ChatbotBackendClient {
	return &chatbotBackendClient{Client: client}
}

func (c *chatbotBackendClient) Send(ctx context.Context, accessToken string, request *requests.ChatbotMessage) (*responses.ChatbotReply, error) {
	body, err := c.Client.Do(ctx, &backend.Request{
		Method:      constvars.MethodPost,
		Path:        constvars.EndpointChatbot,
		Body:        request,
		AccessToken: accessToken,
		Resource:    constvars.ResourceChatbot,
	})
	if err != nil {
		return nil, err
	}

	reply := new(responses.ChatbotReply)
	err = json.Unmarshal(body, reply)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, constvars.ResourceChatbot)
	}
	return reply, nil
}

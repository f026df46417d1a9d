package controllers

import (
	"bytes"
	"careportal-service/internal/app/contracts"
	"careportal-service/internal/app/views"
	"careportal-service/internal/pkg/constvars"
	"careportal-service/internal/pkg/utils"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	chatWriteWait      = 10 * time.Second
	chatMaxMessageSize = 8 << 10
)

type ChatbotController struct {
	*Base
	ChatbotUsecase contracts.ChatbotUsecase
	upgrader       websocket.Upgrader
}

func NewChatbotController(base *Base, chatbotUsecase contracts.ChatbotUsecase) *ChatbotController {
	ctrl := &ChatbotController{
		Base:           base,
		ChatbotUsecase: chatbotUsecase,
	}
	ctrl.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     ctrl.checkOrigin,
	}
	return ctrl
}

// Send answers a chat message posted as a form.
func (ctrl *ChatbotController) Send(w http.ResponseWriter, r *http.Request) {
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	message := utils.FormValue(r, "message")
	reply := ctrl.ChatbotUsecase.Send(r.Context(), session, message)
	ctrl.fragment(w, r, "chat_reply", views.ChatReplyView{Message: message, Reply: reply})
}

// Relay upgrades to a websocket and answers every message the page sends
// with a chat_reply fragment. Messages are handled one at a time.
func (ctrl *ChatbotController) Relay(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	session, ok := ctrl.session(w, r)
	if !ok {
		return
	}

	conn, err := ctrl.upgrader.Upgrade(w, r, nil)
	if err != nil {
		ctrl.Log.Warn("ChatbotController.Relay upgrade failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(chatMaxMessageSize)

	ctrl.Log.Info("ChatbotController.Relay connected",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	for {
		messageType, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				ctrl.Log.Warn("ChatbotController.Relay read failed",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		// htmx sends the form fields as a JSON object.
		message := gjson.GetBytes(payload, "message").String()
		reply := ctrl.ChatbotUsecase.Send(r.Context(), session, message)

		var buf bytes.Buffer
		if err := ctrl.Views.Fragment(&buf, "chat_reply", views.ChatReplyView{Message: message, Reply: reply}); err != nil {
			utils.LogError(ctrl.Log, err)
			return
		}
		conn.SetWriteDeadline(time.Now().Add(chatWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, buf.Bytes()); err != nil {
			ctrl.Log.Warn("ChatbotController.Relay write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return
		}
	}
}

// checkOrigin accepts same-host pages and the configured origins.
func (ctrl *ChatbotController) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if strings.EqualFold(parsed.Host, r.Host) {
		return true
	}
	for _, allowed := range ctrl.InternalConfig.App.Origins() {
		if strings.EqualFold(allowed, origin) {
			return true
		}
	}
	return false
}

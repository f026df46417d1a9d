package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachChatbotRoutes(router chi.Router, chatbotController *controllers.ChatbotController) {
	router.Post("/", chatbotController.Send)
	router.Get("/ws", chatbotController.Relay)
}

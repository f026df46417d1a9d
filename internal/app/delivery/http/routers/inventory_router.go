package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachInventoryRoutes(router chi.Router, inventoryController *controllers.InventoryController) {
	router.Get("/", inventoryController.Page)
	router.Get("/list", inventoryController.List)
	router.Post("/items/{id}/transfer", inventoryController.Transfer)
}

package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, prescriptionController *controllers.PrescriptionController) {
	router.Get("/", prescriptionController.Page)
	router.Post("/", prescriptionController.Create)
	router.Get("/list", prescriptionController.List)
	router.Get("/{id}", prescriptionController.Detail)
}

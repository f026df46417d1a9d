package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachLaboratoryRoutes(router chi.Router, laboratoryController *controllers.LaboratoryController) {
	router.Get("/", laboratoryController.Page)
	router.Get("/list", laboratoryController.List)
	router.Post("/tests", laboratoryController.Create)
	router.Post("/tests/{id}/results", laboratoryController.SubmitResults)
}

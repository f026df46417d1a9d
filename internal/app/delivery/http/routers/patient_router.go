package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, patientController *controllers.PatientController) {
	router.Get("/", patientController.Page)
	router.Post("/", patientController.Create)
	router.Get("/list", patientController.List)
	router.Get("/{id}", patientController.Detail)
}

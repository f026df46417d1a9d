package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.Page)
	router.Get("/list", appointmentController.List)
	router.Get("/booking/slots", appointmentController.Slots)
	router.Post("/booking", appointmentController.Book)
	router.Post("/{id}/cancel", appointmentController.Cancel)
	router.Post("/{id}/check-in", appointmentController.CheckIn)
	router.Post("/{id}/confirm", appointmentController.Confirm)
	router.Post("/{id}/complete", appointmentController.Complete)
}

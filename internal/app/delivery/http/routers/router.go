package routers

import (
	"careportal-service/internal/app/config"
	"careportal-service/internal/app/delivery/http/controllers"
	"careportal-service/internal/app/delivery/http/middlewares"
	"careportal-service/internal/pkg/constvars"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Controllers struct {
	Auth         *controllers.AuthController
	Appointment  *controllers.AppointmentController
	Prescription *controllers.PrescriptionController
	Laboratory   *controllers.LaboratoryController
	Inventory    *controllers.InventoryController
	Patient      *controllers.PatientController
	Payment      *controllers.PaymentController
	Chatbot      *controllers.ChatbotController
	Health       *controllers.HealthController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	gatherer prometheus.Gatherer,
	ctrls *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.App.Origins(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token", "HX-Request", "HX-Current-URL", "HX-Target", "HX-Trigger"},
		ExposedHeaders:   []string{"HX-Trigger", "HX-Redirect", "HX-Reswap"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.CreateRateLimiter())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	router.Get("/healthz", ctrls.Health.Check)
	router.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	attachAuthRoutes(router, middlewares, ctrls.Auth)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, "/appointments", constvars.StatusSeeOther)
		})
		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, ctrls.Appointment)
		})
		r.Route("/prescriptions", func(r chi.Router) {
			attachPrescriptionRoutes(r, ctrls.Prescription)
		})
		r.Route("/laboratory", func(r chi.Router) {
			attachLaboratoryRoutes(r, ctrls.Laboratory)
		})
		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, ctrls.Patient)
		})
		r.Route("/inventory", func(r chi.Router) {
			attachInventoryRoutes(r, ctrls.Inventory)
		})
		r.Route("/payments", func(r chi.Router) {
			attachPaymentRoutes(r, ctrls.Payment)
		})
		r.Route("/chatbot", func(r chi.Router) {
			attachChatbotRoutes(r, ctrls.Chatbot)
		})
	})
}

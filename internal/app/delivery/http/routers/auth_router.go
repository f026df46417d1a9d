package routers

import (
	"careportal-service/internal/app/delivery/http/controllers"
	"careportal-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	loginLimiter := middlewares.NewLoginLimiter()

	router.Get("/login", authController.LoginPage)
	router.With(loginLimiter.Limit).Post("/login", authController.Login)
	router.Post("/logout", authController.Logout)
	router.Get("/register", authController.RegisterPage)
	router.With(loginLimiter.Limit).Post("/register", authController.Register)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Get("/profile", authController.Profile)
		r.Post("/profile", authController.UpdateProfile)
		r.Post("/profile/password", authController.ChangePassword)
	})
}

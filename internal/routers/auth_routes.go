package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/SSRGNG/ssrg-sub002/internal/handlers"
	"github.com/SSRGNG/ssrg-sub002/internal/middleware"
)

// AuthRoutes mounts registration, login and the authenticated profile
// endpoints.
func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler, jwtSecret string) {
	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/register", authHandler.RegisterHandler)
		r.Post("/login", authHandler.LoginHandler)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))
			r.Get("/me", authHandler.MeHandler)
		})
	})
}

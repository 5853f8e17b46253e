package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/SSRGNG/ssrg-sub002/internal/handlers"
	"github.com/SSRGNG/ssrg-sub002/internal/middleware"
)

// PortalRoutes mounts author search and newsletter signup (public) plus the
// authenticated portal mutations.
func PortalRoutes(r *chi.Mux, authorHandler *handlers.AuthorHandler, authHandler *handlers.AuthHandler, jwtSecret string) {
	r.Get("/api/v1/authors/search", authorHandler.SearchAuthorsHandler)
	r.Post("/api/v1/newsletter", authorHandler.SubscribeNewsletterHandler)

	r.Route("/api/v1/portal", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Post("/author", authorHandler.CreateAuthorHandler)
		r.Put("/profile", authHandler.UpdateProfileHandler)
	})
}

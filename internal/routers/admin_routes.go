package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/SSRGNG/ssrg-sub002/internal/handlers"
	"github.com/SSRGNG/ssrg-sub002/internal/middleware"
)

// AdminRoutes mounts the back-office behind authentication plus the admin
// role gate. The create actions re-check the role themselves; the middleware
// keeps non-admins from reaching the read endpoints too.
func AdminRoutes(r *chi.Mux, admin *handlers.AdminHandler, jwtSecret string) {
	r.Route("/api/v1/admin", func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.RequireAdmin)

		r.Get("/stats", admin.GetStatsHandler)

		r.Get("/researchers/table", admin.ResearchersTableHandler)
		r.Get("/publications/table", admin.PublicationsTableHandler)

		r.Post("/research-areas", admin.CreateResearchAreaHandler)
		r.Post("/teams", admin.CreateTeamHandler)
		r.Post("/publications", admin.CreatePublicationHandler)
		r.Post("/videos", admin.CreateVideoHandler)
		r.Post("/events", admin.CreateEventHandler)
		r.Post("/scholarships", admin.CreateScholarshipHandler)

		r.Delete("/publications/{id}", admin.DeletePublicationHandler)
		r.Delete("/videos/{id}", admin.DeleteVideoHandler)
	})
}

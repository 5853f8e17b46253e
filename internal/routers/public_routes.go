package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/SSRGNG/ssrg-sub002/internal/handlers"
)

// PublicRoutes mounts the unauthenticated website surface: publications,
// videos and the content pages.
func PublicRoutes(r *chi.Mux, pubs *handlers.PublicationHandler, videos *handlers.VideoHandler, content *handlers.ContentHandler) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/publications", pubs.ListPublicationsHandler)
		r.Get("/publications/{id}", pubs.GetPublicationHandler)

		r.Get("/videos", videos.ListVideosHandler)

		r.Get("/research-areas", content.ListAreasHandler)
		r.Get("/research-areas/{slug}", content.GetAreaHandler)
		r.Get("/frameworks", content.ListFrameworksHandler)
		r.Get("/methodologies", content.ListMethodologiesHandler)
		r.Get("/events", content.ListEventsHandler)
		r.Get("/partners", content.ListPartnersHandler)
		r.Get("/scholarships", content.ListScholarshipsHandler)
		r.Get("/teams", content.ListTeamsHandler)
	})
}

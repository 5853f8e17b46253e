package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/SSRGNG/ssrg-sub002/internal/repositories"
	"github.com/SSRGNG/ssrg-sub002/internal/utils"
)

// ContentHandler serves the public marketing content: research areas,
// frameworks, methodologies, events, partners, scholarships and teams.
type ContentHandler struct {
	Content      *repositories.ContentRepository
	Scholarships *repositories.ScholarshipRepository
	Teams        *repositories.TeamRepository
	Logger       *zap.Logger
}

func NewContentHandler(content *repositories.ContentRepository, scholarships *repositories.ScholarshipRepository, teams *repositories.TeamRepository, logger *zap.Logger) *ContentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentHandler{Content: content, Scholarships: scholarships, Teams: teams, Logger: logger}
}

func (h *ContentHandler) listError(w http.ResponseWriter, what string, err error) {
	h.Logger.Error("failed to load "+what, zap.Error(err))
	utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch "+what)
}

func (h *ContentHandler) ListAreasHandler(w http.ResponseWriter, r *http.Request) {
	areas, err := h.Content.ListAreas()
	if err != nil {
		h.listError(w, "research areas", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"items": areas})
}

func (h *ContentHandler) GetAreaHandler(w http.ResponseWriter, r *http.Request) {
	area, err := h.Content.GetAreaBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "area_not_found", "Research area not found")
		return
	}
	utils.JSON(w, http.StatusOK, area)
}

func (h *ContentHandler) ListFrameworksHandler(w http.ResponseWriter, r *http.Request) {
	frameworks, err := h.Content.ListFrameworks()
	if err != nil {
		h.listError(w, "frameworks", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"items": frameworks})
}

func (h *ContentHandler) ListMethodologiesHandler(w http.ResponseWriter, r *http.Request) {
	methodologies, err := h.Content.ListMethodologies()
	if err != nil {
		h.listError(w, "methodologies", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"items": methodologies})
}

func (h *ContentHandler) ListEventsHandler(w http.ResponseWriter, r *http.Request) {
	events, err := h.Content.ListUpcomingEvents(time.Now().UTC())
	if err != nil {
		h.listError(w, "events", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"items": events})
}

func (h *ContentHandler) ListPartnersHandler(w http.ResponseWriter, r *http.Request) {
	partners, err := h.Content.ListPartners()
	if err != nil {
		h.listError(w, "partners", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"items": partners})
}

func (h *ContentHandler) ListScholarshipsHandler(w http.ResponseWriter, r *http.Request) {
	scholarships, err := h.Scholarships.List(r.URL.Query().Get("all") == "")
	if err != nil {
		h.listError(w, "scholarships", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"items": scholarships})
}

func (h *ContentHandler) ListTeamsHandler(w http.ResponseWriter, r *http.Request) {
	teams, err := h.Teams.List()
	if err != nil {
		h.listError(w, "teams", err)
		return
	}
	utils.JSON(w, http.StatusOK, map[string]any{"items": teams})
}

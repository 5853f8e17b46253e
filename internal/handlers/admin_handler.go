package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/SSRGNG/ssrg-sub002/internal/actions"
	"github.com/SSRGNG/ssrg-sub002/internal/middleware"
	"github.com/SSRGNG/ssrg-sub002/internal/repositories"
	"github.com/SSRGNG/ssrg-sub002/internal/utils"
	"github.com/SSRGNG/ssrg-sub002/internal/validation"
)

// AdminHandler serves the back-office: the stats dashboard, entity creation
// and the data-table views.
type AdminHandler struct {
	Stats        *repositories.StatsRepository
	Publications *repositories.PublicationRepository
	Videos       *repositories.VideoRepository
	Teams        *repositories.TeamRepository
	Actions      *actions.Actions
	Logger       *zap.Logger
}

func NewAdminHandler(stats *repositories.StatsRepository, pubs *repositories.PublicationRepository, videos *repositories.VideoRepository, teams *repositories.TeamRepository, acts *actions.Actions, logger *zap.Logger) *AdminHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AdminHandler{Stats: stats, Publications: pubs, Videos: videos, Teams: teams, Actions: acts, Logger: logger}
}

func (h *AdminHandler) GetStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Collect()
	if err != nil {
		h.Logger.Error("failed to collect stats", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch stats")
		return
	}
	utils.JSON(w, http.StatusOK, stats)
}

// decode reads a JSON body into dest, writing the 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return false
	}
	return true
}

func (h *AdminHandler) CreateResearchAreaHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.ResearchAreaInput
	if !decode(w, r, &in) {
		return
	}
	WriteActionResult(w, h.Actions.CreateResearchArea(middleware.RoleFromContext(r.Context()), in), http.StatusCreated)
}

func (h *AdminHandler) CreateTeamHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.TeamInput
	if !decode(w, r, &in) {
		return
	}
	WriteActionResult(w, h.Actions.CreateTeam(middleware.RoleFromContext(r.Context()), in), http.StatusCreated)
}

func (h *AdminHandler) CreatePublicationHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.PublicationInput
	if !decode(w, r, &in) {
		return
	}
	WriteActionResult(w, h.Actions.CreatePublication(middleware.RoleFromContext(r.Context()), in), http.StatusCreated)
}

func (h *AdminHandler) CreateVideoHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.VideoInput
	if !decode(w, r, &in) {
		return
	}
	WriteActionResult(w, h.Actions.CreateVideo(middleware.RoleFromContext(r.Context()), in), http.StatusCreated)
}

func (h *AdminHandler) CreateEventHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.EventInput
	if !decode(w, r, &in) {
		return
	}
	WriteActionResult(w, h.Actions.CreateEvent(middleware.RoleFromContext(r.Context()), in), http.StatusCreated)
}

func (h *AdminHandler) CreateScholarshipHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.ScholarshipInput
	if !decode(w, r, &in) {
		return
	}
	WriteActionResult(w, h.Actions.CreateScholarship(middleware.RoleFromContext(r.Context()), in), http.StatusCreated)
}

func (h *AdminHandler) DeletePublicationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_id", "Invalid publication ID")
		return
	}
	if err := h.Publications.Delete(uint(id)); err != nil {
		if err == repositories.ErrPublicationNotFound {
			utils.JSONError(w, http.StatusNotFound, "publication_not_found", "Publication not found")
			return
		}
		h.Logger.Error("failed to delete publication", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AdminHandler) DeleteVideoHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_id", "Invalid video ID")
		return
	}
	if err := h.Videos.Delete(uint(id)); err != nil {
		if err == repositories.ErrVideoNotFound {
			utils.JSONError(w, http.StatusNotFound, "video_not_found", "Video not found")
			return
		}
		h.Logger.Error("failed to delete video", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Something went wrong")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

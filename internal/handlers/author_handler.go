package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"go.uber.org/zap"

	"github.com/SSRGNG/ssrg-sub002/internal/actions"
	"github.com/SSRGNG/ssrg-sub002/internal/repositories"
	"github.com/SSRGNG/ssrg-sub002/internal/utils"
	"github.com/SSRGNG/ssrg-sub002/internal/validation"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

type AuthorSearcher interface {
	Search(query string, limit int) ([]repositories.SearchResult, error)
}

type AuthorHandler struct {
	repo    AuthorSearcher
	actions *actions.Actions
	logger  *zap.Logger
}

func NewAuthorHandler(repo AuthorSearcher, acts *actions.Actions, logger *zap.Logger) *AuthorHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthorHandler{repo: repo, actions: acts, logger: logger}
}

type searchResponse struct {
	Success bool                        `json:"success"`
	Results []repositories.SearchResult `json:"results"`
}

// SearchAuthorsHandler serves GET /authors/search?query=&limit=. The query
// is required; the limit defaults to 10 and is capped at 50.
func (h *AuthorHandler) SearchAuthorsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		utils.JSONError(w, http.StatusBadRequest, "invalid_query", "query is required")
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSearchLimit {
			utils.JSONError(w, http.StatusBadRequest, "invalid_limit", "limit must be an integer between 1 and 50")
			return
		}
		limit = n
	}

	results, err := h.repo.Search(query, limit)
	if err != nil {
		h.logger.Error("author search failed", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Search failed")
		return
	}
	utils.JSON(w, http.StatusOK, searchResponse{Success: true, Results: results})
}

// CreateAuthorHandler serves POST /portal/author: 201 on success, 409 when
// an author with the email already exists.
func (h *AuthorHandler) CreateAuthorHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.AuthorInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	WriteActionResult(w, h.actions.CreateAuthor(in), http.StatusCreated)
}

// SubscribeNewsletterHandler serves POST /newsletter: 201 on success, 409
// when already subscribed, 422 on validation failure.
func (h *AuthorHandler) SubscribeNewsletterHandler(w http.ResponseWriter, r *http.Request) {
	var in validation.NewsletterInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_request", "Invalid request payload")
		return
	}
	WriteActionResult(w, h.actions.SubscribeNewsletter(in), http.StatusCreated)
}

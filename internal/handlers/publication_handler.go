package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/SSRGNG/ssrg-sub002/internal/listquery"
	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/utils"
)

const publicationPageSize = 10

type PublicationRepo interface {
	GetAll() ([]models.Publication, error)
	GetByID(id uint) (*models.Publication, error)
}

// CitationLookup is the best-effort citation enrichment used when a stored
// publication has no count yet.
type CitationLookup interface {
	CitationCount(ctx context.Context, doi string) *int
}

type PublicationHandler struct {
	repo      PublicationRepo
	citations CitationLookup
	logger    *zap.Logger
}

func NewPublicationHandler(repo PublicationRepo, citations CitationLookup, logger *zap.Logger) *PublicationHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PublicationHandler{repo: repo, citations: citations, logger: logger}
}

// publicationsResponse is one rendered listing page with its link state.
type publicationsResponse struct {
	Items       []models.Publication  `json:"items"`
	CurrentPage int                   `json:"current_page"`
	TotalPages  int                   `json:"total_pages"`
	Total       int                   `json:"total"`
	Sort        string                `json:"sort"`
	View        string                `json:"view"`
	Pagination  *listquery.Pagination `json:"pagination"`
}

// ListPublicationsHandler serves GET /publications with the page/sort/view
// query contract. The full set is filtered and ordered in memory, then the
// requested page is sliced out; an out-of-range page yields an empty item
// list, not an error.
func (h *PublicationHandler) ListPublicationsHandler(w http.ResponseWriter, r *http.Request) {
	q := listquery.Resolve(r.URL.Query())
	pubType := models.PublicationType(r.URL.Query().Get("type"))

	pubs, err := h.repo.GetAll()
	if err != nil {
		h.logger.Error("failed to load publications", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch publications")
		return
	}

	sorted := listquery.FilterAndSortPublications(pubs, q.Sort, pubType)
	totalPages, _, _ := models.CalculatePaginationMeta(q.Page, publicationPageSize, len(sorted))

	start := (q.Page - 1) * publicationPageSize
	items := []models.Publication{}
	if start < len(sorted) {
		end := start + publicationPageSize
		if end > len(sorted) {
			end = len(sorted)
		}
		items = sorted[start:end]
	}

	utils.JSON(w, http.StatusOK, publicationsResponse{
		Items:       items,
		CurrentPage: q.Page,
		TotalPages:  totalPages,
		Total:       len(sorted),
		Sort:        q.Sort,
		View:        q.View,
		Pagination:  listquery.NewPagination(q.Page, totalPages, r.URL.Path, r.URL.Query()),
	})
}

// GetPublicationHandler serves one publication, enriching the citation count
// on the fly when it is still unknown. Enrichment failures keep the count
// nil, they never fail the request.
func (h *PublicationHandler) GetPublicationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, "invalid_id", "Invalid publication ID")
		return
	}

	pub, err := h.repo.GetByID(uint(id))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "publication_not_found", "Publication not found")
		return
	}

	if pub.CitationCount == nil && pub.DOI != "" && h.citations != nil {
		pub.CitationCount = h.citations.CitationCount(r.Context(), pub.DOI)
	}

	utils.JSON(w, http.StatusOK, pub)
}

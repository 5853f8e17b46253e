package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/SSRGNG/ssrg-sub002/internal/listquery"
	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/utils"
)

const videoPageSize = 12

type VideoRepo interface {
	ListAfterCursor(cursor string, pageSize int, category models.VideoCategory) (models.CursorResult[models.Video], error)
}

type VideoHandler struct {
	repo   VideoRepo
	logger *zap.Logger
}

func NewVideoHandler(repo VideoRepo, logger *zap.Logger) *VideoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &VideoHandler{repo: repo, logger: logger}
}

type videosResponse struct {
	Items       []models.Video             `json:"items"`
	HasNextPage bool                       `json:"has_next_page"`
	NextCursor  *string                    `json:"next_cursor"`
	Pagination  listquery.CursorPagination `json:"pagination"`
}

// ListVideosHandler serves GET /videos with cursor pagination. Stepping
// backward is not supported beyond returning to the cursor-less first page;
// the pagination links encode that.
func (h *VideoHandler) ListVideosHandler(w http.ResponseWriter, r *http.Request) {
	cursor := r.URL.Query().Get("cursor")
	category := models.VideoCategory(r.URL.Query().Get("category"))
	if category != "" && !category.IsValid() {
		utils.JSONError(w, http.StatusBadRequest, "invalid_category", "Unknown video category")
		return
	}

	page, err := h.repo.ListAfterCursor(cursor, videoPageSize, category)
	if err != nil {
		h.logger.Error("failed to load videos", zap.Error(err))
		utils.JSONError(w, http.StatusInternalServerError, "internal_error", "Failed to fetch videos")
		return
	}

	utils.JSON(w, http.StatusOK, videosResponse{
		Items:       page.Items,
		HasNextPage: page.HasNextPage,
		NextCursor:  page.NextCursor,
		Pagination:  listquery.NewCursorPagination(r.URL.Path, r.URL.Query(), page.NextCursor, page.HasNextPage),
	})
}

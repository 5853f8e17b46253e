package repositories

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var ErrVideoNotFound = errors.New("video not found")

type VideoRepository struct {
	DB *gorm.DB
}

// ListAfterCursor pages the media library newest-first. The cursor is the id
// of the last item of the previous page ("" for the first page). One extra
// row past the page size is fetched; its existence is the hasNextPage signal
// and it is not returned.
func (r *VideoRepository) ListAfterCursor(cursor string, pageSize int, category models.VideoCategory) (models.CursorResult[models.Video], error) {
	res := models.CursorResult[models.Video]{Items: []models.Video{}}

	q := r.DB.Order("id DESC").Limit(pageSize + 1)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if cursor != "" {
		lastID, err := strconv.ParseUint(cursor, 10, 64)
		if err != nil {
			// an unparseable cursor behaves like the first page
			lastID = 0
		}
		if lastID > 0 {
			q = q.Where("id < ?", lastID)
		}
	}

	var videos []models.Video
	if err := q.Find(&videos).Error; err != nil {
		return res, err
	}

	if len(videos) > pageSize {
		res.HasNextPage = true
		videos = videos[:pageSize]
	}
	res.Items = videos
	if res.HasNextPage && len(videos) > 0 {
		next := strconv.FormatUint(uint64(videos[len(videos)-1].ID), 10)
		res.NextCursor = &next
	}
	return res, nil
}

func (r *VideoRepository) GetByYouTubeID(youtubeID string) (*models.Video, error) {
	var video models.Video
	err := r.DB.First(&video, "you_tube_id = ?", youtubeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrVideoNotFound
	}
	return &video, err
}

func (r *VideoRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Video{}, id)
	if result.Error == nil && result.RowsAffected == 0 {
		return ErrVideoNotFound
	}
	return result.Error
}

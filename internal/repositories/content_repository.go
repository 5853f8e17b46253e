package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var ErrAreaNotFound = errors.New("research area not found")

// ContentRepository serves the public marketing pages: research areas,
// frameworks, methodologies, events and partners.
type ContentRepository struct {
	DB *gorm.DB
}

func (r *ContentRepository) ListAreas() ([]models.ResearchArea, error) {
	var areas []models.ResearchArea
	err := r.DB.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Order("title ASC").Find(&areas).Error
	return areas, err
}

func (r *ContentRepository) GetAreaBySlug(slug string) (*models.ResearchArea, error) {
	var area models.ResearchArea
	err := r.DB.Preload("Questions").Preload("Publications").
		First(&area, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAreaNotFound
	}
	return &area, err
}

func (r *ContentRepository) ListFrameworks() ([]models.Framework, error) {
	var frameworks []models.Framework
	err := r.DB.Order("position ASC, title ASC").Find(&frameworks).Error
	return frameworks, err
}

func (r *ContentRepository) ListMethodologies() ([]models.Methodology, error) {
	var methodologies []models.Methodology
	err := r.DB.Order("position ASC, title ASC").Find(&methodologies).Error
	return methodologies, err
}

// ListUpcomingEvents returns events starting at or after now, soonest first.
func (r *ContentRepository) ListUpcomingEvents(now time.Time) ([]models.Event, error) {
	var events []models.Event
	err := r.DB.Where("starts_at >= ?", now).Order("starts_at ASC").Find(&events).Error
	return events, err
}

func (r *ContentRepository) ListPartners() ([]models.Partner, error) {
	var partners []models.Partner
	err := r.DB.Order("name ASC").Find(&partners).Error
	return partners, err
}

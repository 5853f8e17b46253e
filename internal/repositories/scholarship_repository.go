package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var ErrScholarshipNotFound = errors.New("scholarship not found")

type ScholarshipRepository struct {
	DB *gorm.DB
}

// List returns scholarships with their recipients and award media, newest
// recipients first. When activeOnly is set, inactive programs are skipped.
func (r *ScholarshipRepository) List(activeOnly bool) ([]models.Scholarship, error) {
	q := r.DB.Preload("Recipients", func(db *gorm.DB) *gorm.DB {
		return db.Order("year DESC")
	}).Preload("Recipients.Media")
	if activeOnly {
		q = q.Where("active = ?", true)
	}

	var scholarships []models.Scholarship
	err := q.Order("title ASC").Find(&scholarships).Error
	return scholarships, err
}

func (r *ScholarshipRepository) GetByID(id uint) (*models.Scholarship, error) {
	var s models.Scholarship
	err := r.DB.Preload("Recipients.Media").Preload("Recipients").First(&s, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrScholarshipNotFound
	}
	return &s, err
}

package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var ErrTeamNotFound = errors.New("team not found")

type TeamRepository struct {
	DB *gorm.DB
}

func (r *TeamRepository) List() ([]models.Team, error) {
	var teams []models.Team
	err := r.DB.Preload("Members", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC, name ASC")
	}).Order("name ASC").Find(&teams).Error
	return teams, err
}

func (r *TeamRepository) GetByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.DB.Preload("Members").First(&team, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTeamNotFound
	}
	return &team, err
}

// ListResearchers returns every researcher profile with user and lists
// preloaded, for the admin researchers table.
func (r *TeamRepository) ListResearchers() ([]models.Researcher, error) {
	var researchers []models.Researcher
	err := r.DB.Preload("User").Preload("Expertise").Preload("Education").
		Preload("Areas").Find(&researchers).Error
	return researchers, err
}

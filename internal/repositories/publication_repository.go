package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var ErrPublicationNotFound = errors.New("publication not found")

type PublicationRepository struct {
	DB *gorm.DB
}

// GetAll loads every publication with its authors. Public listing pages sort
// and paginate the full set in memory, matching the filter-and-sort contract.
func (r *PublicationRepository) GetAll() ([]models.Publication, error) {
	var pubs []models.Publication
	err := r.DB.Preload("Authors").Find(&pubs).Error
	return pubs, err
}

func (r *PublicationRepository) GetByID(id uint) (*models.Publication, error) {
	var pub models.Publication
	err := r.DB.Preload("Authors").Preload("Areas").First(&pub, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPublicationNotFound
	}
	return &pub, err
}

// WithDOIs returns the publications carrying a DOI, for citation refresh.
func (r *PublicationRepository) WithDOIs() ([]models.Publication, error) {
	var pubs []models.Publication
	err := r.DB.Where("doi <> ''").Find(&pubs).Error
	return pubs, err
}

// UpdateCitationCount stores a freshly fetched count. A nil count is kept as
// NULL rather than zero so "unknown" stays distinguishable.
func (r *PublicationRepository) UpdateCitationCount(id uint, count *int) error {
	return r.DB.Model(&models.Publication{}).Where("id = ?", id).
		Update("citation_count", count).Error
}

func (r *PublicationRepository) Delete(id uint) error {
	result := r.DB.Delete(&models.Publication{}, id)
	if result.Error == nil && result.RowsAffected == 0 {
		return ErrPublicationNotFound
	}
	return result.Error
}

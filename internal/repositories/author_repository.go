package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var ErrAuthorNotFound = errors.New("author not found")

type AuthorRepository struct {
	DB *gorm.DB
}

// SearchResult is one author-search hit: either a full researcher profile or
// a standalone author record.
type SearchResult struct {
	Type string `json:"type"` // "researcher" or "author"
	Data any    `json:"data"`
}

// Search matches researchers and standalone authors by name or email,
// case-insensitive substring, researchers first, capped at limit overall.
func (r *AuthorRepository) Search(query string, limit int) ([]SearchResult, error) {
	pattern := "%" + query + "%"
	results := []SearchResult{}

	var researchers []models.Researcher
	err := r.DB.Preload("User").Preload("Expertise").
		Joins("JOIN users ON users.id = researchers.user_id").
		Where("users.name LIKE ? OR users.email LIKE ?", pattern, pattern).
		Limit(limit).
		Find(&researchers).Error
	if err != nil {
		return nil, err
	}
	for _, res := range researchers {
		results = append(results, SearchResult{Type: "researcher", Data: res})
	}

	remaining := limit - len(results)
	if remaining > 0 {
		var authors []models.Author
		err = r.DB.Where("name LIKE ? OR email LIKE ?", pattern, pattern).
			Limit(remaining).
			Find(&authors).Error
		if err != nil {
			return nil, err
		}
		for _, a := range authors {
			results = append(results, SearchResult{Type: "author", Data: a})
		}
	}
	return results, nil
}

func (r *AuthorRepository) GetByEmail(email string) (*models.Author, error) {
	var author models.Author
	err := r.DB.First(&author, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAuthorNotFound
	}
	return &author, err
}

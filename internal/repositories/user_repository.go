package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrResearcherNotFound = errors.New("researcher not found")
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return &user, err
}

func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.DB.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	return &user, err
}

// SetNewsletter flips the newsletter flag for an existing account.
func (r *UserRepository) SetNewsletter(id uint, subscribed bool) error {
	result := r.DB.Model(&models.User{}).Where("id = ?", id).
		Update("newsletter", subscribed)
	if result.Error == nil && result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return result.Error
}

// GetResearcherByUserID loads the full researcher profile for an account.
func (r *UserRepository) GetResearcherByUserID(userID uint) (*models.Researcher, error) {
	var researcher models.Researcher
	err := r.DB.Preload("Expertise").Preload("Education").Preload("Areas").
		First(&researcher, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResearcherNotFound
	}
	return &researcher, err
}

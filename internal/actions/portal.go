package actions

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/validation"
)

// CreateAuthor adds a standalone author record from the portal. Conflicts on
// email are pre-checked; a constraint violation racing past the check still
// comes back as a generic error rather than a leak of the database message.
func (a *Actions) CreateAuthor(in validation.AuthorInput) Result {
	if fe := in.Validate(); !fe.Empty() {
		return invalid(fe)
	}

	var existing models.Author
	if err := a.DB.First(&existing, "email = ?", in.Email).Error; err == nil {
		return fail(CodeConflict, "An author with this email already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return a.internalError("create_author", err)
	}

	author := models.Author{
		PublicID:    uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Affiliation: in.Affiliation,
		ORCID:       in.ORCID,
	}
	if err := a.DB.Create(&author).Error; err != nil {
		return a.internalError("create_author", err)
	}
	return ok(map[string]any{"id": author.PublicID, "name": author.Name})
}

// SubscribeNewsletter records a subscription. Portal accounts carry the flag
// on their user row; everyone else lands in the standalone subscriber table.
func (a *Actions) SubscribeNewsletter(in validation.NewsletterInput) Result {
	if fe := in.Validate(); !fe.Empty() {
		return invalid(fe)
	}

	var user models.User
	err := a.DB.First(&user, "email = ?", in.Email).Error
	switch {
	case err == nil:
		if user.Newsletter {
			return fail(CodeConflict, "This email is already subscribed")
		}
		if err := a.DB.Model(&user).Update("newsletter", true).Error; err != nil {
			return a.internalError("subscribe_newsletter", err)
		}
		return ok(map[string]any{"email": in.Email})
	case errors.Is(err, gorm.ErrRecordNotFound):
		// fall through to the standalone table
	default:
		return a.internalError("subscribe_newsletter", err)
	}

	var existing models.NewsletterSubscription
	if err := a.DB.First(&existing, "email = ?", in.Email).Error; err == nil {
		return fail(CodeConflict, "This email is already subscribed")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return a.internalError("subscribe_newsletter", err)
	}

	if err := a.DB.Create(&models.NewsletterSubscription{Email: in.Email}).Error; err != nil {
		return a.internalError("subscribe_newsletter", err)
	}
	return ok(map[string]any{"email": in.Email})
}

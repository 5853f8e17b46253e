package actions

import (
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/validation"
)

// RegisterUser creates a portal account. Researcher registrations also write
// the profile, expertise, education and area association rows; the whole
// payload lands in one transaction or not at all.
func (a *Actions) RegisterUser(in validation.RegisterInput) Result {
	if fe := in.Validate(); !fe.Empty() {
		return invalid(fe)
	}

	var existing models.User
	err := a.DB.First(&existing, "email = ?", in.Email).Error
	if err == nil {
		return fail(CodeConflict, "An account with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return a.internalError("register_user", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return a.internalError("register_user", err)
	}

	user := models.User{
		PublicID:     uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
	}

	err = a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if in.Role != models.RoleResearcher {
			return nil
		}

		researcher := models.Researcher{
			UserID: user.ID,
			Title:  in.Title,
			Bio:    in.Bio,
		}
		if err := tx.Create(&researcher).Error; err != nil {
			return err
		}
		for i, e := range in.Expertise {
			row := models.Expertise{ResearcherID: researcher.ID, Expertise: e, Position: i}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for i, e := range in.Education {
			row := models.Education{ResearcherID: researcher.ID, Education: e, Position: i}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		if len(in.AreaIDs) > 0 {
			var areas []models.ResearchArea
			if err := tx.Find(&areas, in.AreaIDs).Error; err != nil {
				return err
			}
			if len(areas) != len(in.AreaIDs) {
				return errors.New("unknown research area id")
			}
			if err := tx.Model(&researcher).Association("Areas").Append(&areas); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return a.internalError("register_user", err)
	}

	return ok(map[string]any{"id": user.PublicID, "email": user.Email, "role": user.Role})
}

// UpdateResearcherProfile replaces the profile fields and the ordered
// expertise/education lists of the caller's own researcher row.
func (a *Actions) UpdateResearcherProfile(userID uint, in validation.RegisterInput) Result {
	fe := validation.FieldErrors{}
	if in.Title == "" {
		fe.Add("title", "is required")
	}
	if len(in.Expertise) == 0 {
		fe.Add("expertise", "at least one expertise is required")
	}
	if !fe.Empty() {
		return invalid(fe)
	}

	var researcher models.Researcher
	if err := a.DB.First(&researcher, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fail(CodeNotFound, "Researcher profile not found")
		}
		return a.internalError("update_profile", err)
	}

	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&researcher).Updates(map[string]any{
			"title": in.Title,
			"bio":   in.Bio,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("researcher_id = ?", researcher.ID).Delete(&models.Expertise{}).Error; err != nil {
			return err
		}
		if err := tx.Where("researcher_id = ?", researcher.ID).Delete(&models.Education{}).Error; err != nil {
			return err
		}
		for i, e := range in.Expertise {
			if err := tx.Create(&models.Expertise{ResearcherID: researcher.ID, Expertise: e, Position: i}).Error; err != nil {
				return err
			}
		}
		for i, e := range in.Education {
			if err := tx.Create(&models.Education{ResearcherID: researcher.ID, Education: e, Position: i}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return a.internalError("update_profile", err)
	}
	return ok(map[string]any{"id": researcher.ID})
}

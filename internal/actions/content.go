package actions

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
	"github.com/SSRGNG/ssrg-sub002/internal/validation"
)

// requireAdmin gates the back-office mutations. The error comes back as a
// result, not a panic, so the UI can render it inline.
func (a *Actions) requireAdmin(role models.Role) *Result {
	if role != models.RoleAdmin {
		r := fail(CodeUnauthorized, "Unauthorized: admin access required")
		return &r
	}
	return nil
}

// CreateResearchArea writes the area, its FAQ entries and its publication
// links in one transaction.
func (a *Actions) CreateResearchArea(role models.Role, in validation.ResearchAreaInput) Result {
	if r := a.requireAdmin(role); r != nil {
		return *r
	}
	if fe := in.Validate(); !fe.Empty() {
		return invalid(fe)
	}

	var existing models.ResearchArea
	if err := a.DB.First(&existing, "slug = ?", in.Slug).Error; err == nil {
		return fail(CodeConflict, "A research area with this slug already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return a.internalError("create_research_area", err)
	}

	area := models.ResearchArea{
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		Icon:        in.Icon,
	}
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&area).Error; err != nil {
			return err
		}
		for i, q := range in.Questions {
			row := models.AreaQuestion{ResearchAreaID: area.ID, Question: q, Position: i}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		if len(in.PublicationIDs) > 0 {
			var pubs []models.Publication
			if err := tx.Find(&pubs, in.PublicationIDs).Error; err != nil {
				return err
			}
			if len(pubs) != len(in.PublicationIDs) {
				return errors.New("unknown publication id")
			}
			if err := tx.Model(&area).Association("Publications").Append(&pubs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return a.internalError("create_research_area", err)
	}
	return ok(map[string]any{"id": area.ID, "slug": area.Slug})
}

// CreateTeam writes the team and its member roster atomically.
func (a *Actions) CreateTeam(role models.Role, in validation.TeamInput) Result {
	if r := a.requireAdmin(role); r != nil {
		return *r
	}
	if fe := in.Validate(); !fe.Empty() {
		return invalid(fe)
	}

	team := models.Team{Name: in.Name, Mission: in.Mission}
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&team).Error; err != nil {
			return err
		}
		for i, m := range in.Members {
			row := models.Member{TeamID: team.ID, Name: m.Name, Title: m.Title, Email: m.Email, Position: i}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return a.internalError("create_team", err)
	}
	return ok(map[string]any{"id": team.ID})
}

// CreatePublication writes the publication and its author/area links.
func (a *Actions) CreatePublication(role models.Role, in validation.PublicationInput) Result {
	if r := a.requireAdmin(role); r != nil {
		return *r
	}
	if fe := in.Validate(); !fe.Empty() {
		return invalid(fe)
	}

	pub := models.Publication{
		Title:           in.Title,
		Abstract:        in.Abstract,
		Type:            in.Type,
		PublicationDate: in.PublicationDate,
		Venue:           in.Venue,
		DOI:             in.DOI,
		Link:            in.Link,
	}
	err := a.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&pub).Error; err != nil {
			return err
		}
		if len(in.AuthorIDs) > 0 {
			var authors []models.Author
			if err := tx.Find(&authors, in.AuthorIDs).Error; err != nil {
				return err
			}
			if len(authors) != len(in.AuthorIDs) {
				return errors.New("unknown author id")
			}
			if err := tx.Model(&pub).Association("Authors").Append(&authors); err != nil {
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
			if err := tx.Model(&pub).Association("Areas").Append(&areas); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return a.internalError("create_publication", err)
	}
	return ok(map[string]any{"id": pub.ID})
}

// CreateVideo adds a media library entry.
func (a *Actions) CreateVideo(role models.Role, in validation.VideoInput) Result {
	if r := a.requireAdmin(role); r != nil {
		return *r
	}
	if fe := in.Validate(); !fe.Empty() {
		return invalid(fe)
	}

	var existing models.Video
	if err := a.DB.First(&existing, "you_tube_id = ?", in.YouTubeID).Error; err == nil {
		return fail(CodeConflict, "This video is already in the library")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return a.internalError("create_video", err)
	}

	video := models.Video{
		Title:       in.Title,
		YouTubeID:   in.YouTubeID,
		Category:    in.Category,
		Description: in.Description,
		PublishedAt: time.Now().UTC(),
	}
	if err := a.DB.Create(&video).Error; err != nil {
		return a.internalError("create_video", err)
	}
	return ok(map[string]any{"id": video.ID})
}

// CreateEvent adds an event.
func (a *Actions) CreateEvent(role models.Role, in validation.EventInput) Result {
	if r := a.requireAdmin(role); r != nil {
		return *r
	}
	if fe := in.Validate(); !fe.Empty() {
		return invalid(fe)
	}

	startsAt, err := time.Parse(time.RFC3339, in.StartsAt)
	if err != nil {
		fe := validation.FieldErrors{}
		fe.Add("starts_at", "must be an RFC 3339 timestamp")
		return invalid(fe)
	}
	event := models.Event{
		Title:    in.Title,
		Type:     in.Type,
		StartsAt: startsAt,
		Location: in.Location,
		Details:  in.Details,
	}
	if in.EndsAt != "" {
		endsAt, err := time.Parse(time.RFC3339, in.EndsAt)
		if err != nil || endsAt.Before(startsAt) {
			fe := validation.FieldErrors{}
			fe.Add("ends_at", "must be an RFC 3339 timestamp after starts_at")
			return invalid(fe)
		}
		event.EndsAt = &endsAt
	}

	if err := a.DB.Create(&event).Error; err != nil {
		return a.internalError("create_event", err)
	}
	return ok(map[string]any{"id": event.ID})
}

// CreateScholarship adds an award program.
func (a *Actions) CreateScholarship(role models.Role, in validation.ScholarshipInput) Result {
	if r := a.requireAdmin(role); r != nil {
		return *r
	}
	if fe := in.Validate(); !fe.Empty() {
		return invalid(fe)
	}

	s := models.Scholarship{
		Title:       in.Title,
		Description: in.Description,
		Amount:      in.Amount,
		Active:      in.Active,
	}
	if in.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", in.Deadline)
		if err != nil {
			fe := validation.FieldErrors{}
			fe.Add("deadline", "must be YYYY-MM-DD")
			return invalid(fe)
		}
		s.Deadline = &deadline
	}

	if err := a.DB.Create(&s).Error; err != nil {
		return a.internalError("create_scholarship", err)
	}
	return ok(map[string]any{"id": s.ID})
}

package validation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	doiPattern  = regexp.MustCompile(`^10\.\d{4,9}/\S+$`)
	datePattern = regexp.MustCompile(`^\d{4}(-\d{2}){0,2}$`)
)

// RegisterInput is the portal account registration payload.
type RegisterInput struct {
	Name            string      `json:"name" validate:"required,min=2,max=120"`
	Email           string      `json:"email" validate:"required,email"`
	Password        string      `json:"password" validate:"required,min=8"`
	ConfirmPassword string      `json:"confirm_password" validate:"required"`
	Role            models.Role `json:"role"`

	// researcher-only profile fields, required when Role is researcher
	Title     string   `json:"title"`
	Bio       string   `json:"bio"`
	Expertise []string `json:"expertise"`
	Education []string `json:"education"`
	AreaIDs   []uint   `json:"area_ids"`
}

func (in RegisterInput) Validate() FieldErrors {
	fe := run(in)
	if in.Password != "" && in.Password != in.ConfirmPassword {
		fe.Add("confirm_password", "must match password")
	}
	if in.Role == "" {
		fe.Add("role", "is required")
	} else if !in.Role.IsValid() {
		fe.Add("role", "is invalid")
	}
	if in.Role == models.RoleResearcher {
		if strings.TrimSpace(in.Title) == "" {
			fe.Add("title", "is required for researchers")
		}
		if len(in.Expertise) == 0 {
			fe.Add("expertise", "at least one expertise is required for researchers")
		}
	}
	return fe
}

// AuthorInput creates a standalone author record from the portal.
type AuthorInput struct {
	Name        string `json:"name" validate:"required,min=2,max=120"`
	Email       string `json:"email" validate:"required,email"`
	Affiliation string `json:"affiliation" validate:"max=200"`
	ORCID       string `json:"orcid"`
}

var orcidPattern = regexp.MustCompile(`^\d{4}-\d{4}-\d{4}-\d{3}[\dX]$`)

func (in AuthorInput) Validate() FieldErrors {
	fe := run(in)
	if in.ORCID != "" && !orcidPattern.MatchString(in.ORCID) {
		fe.Add("orcid", "must look like 0000-0000-0000-0000")
	}
	return fe
}

// NewsletterInput subscribes an email to the newsletter.
type NewsletterInput struct {
	Email string `json:"email" validate:"required,email"`
}

func (in NewsletterInput) Validate() FieldErrors { return run(in) }

// ResearchAreaInput creates or updates a research area with its FAQ entries
// and linked publications.
type ResearchAreaInput struct {
	Title          string   `json:"title" validate:"required,min=3,max=160"`
	Slug           string   `json:"slug" validate:"required"`
	Description    string   `json:"description"`
	Icon           string   `json:"icon"`
	Questions      []string `json:"questions"`
	PublicationIDs []uint   `json:"publication_ids"`
}

func (in ResearchAreaInput) Validate() FieldErrors {
	fe := run(in)
	if in.Slug != "" && !slugPattern.MatchString(in.Slug) {
		fe.Add("slug", "must be lowercase words separated by hyphens")
	}
	for _, q := range in.Questions {
		if strings.TrimSpace(q) == "" {
			fe.Add("questions", "entries must not be blank")
			break
		}
	}
	return fe
}

// PublicationInput creates or updates a publication.
type PublicationInput struct {
	Title           string                 `json:"title" validate:"required,min=3"`
	Abstract        string                 `json:"abstract"`
	Type            models.PublicationType `json:"type"`
	PublicationDate string                 `json:"publication_date"`
	Venue           string                 `json:"venue"`
	DOI             string                 `json:"doi"`
	Link            string                 `json:"link" validate:"omitempty,url"`
	AuthorIDs       []uint                 `json:"author_ids"`
	AreaIDs         []uint                 `json:"area_ids"`
}

func (in PublicationInput) Validate() FieldErrors {
	fe := run(in)
	if !in.Type.IsValid() {
		fe.Add("type", "is invalid")
	}
	if in.PublicationDate != "" && !datePattern.MatchString(in.PublicationDate) {
		fe.Add("publication_date", "must be YYYY, YYYY-MM or YYYY-MM-DD")
	}
	if in.DOI != "" && !doiPattern.MatchString(in.DOI) {
		fe.Add("doi", "must be a DOI like 10.1234/abcd")
	}
	return fe
}

// VideoInput creates or updates a media library entry.
type VideoInput struct {
	Title       string               `json:"title" validate:"required,min=3"`
	YouTubeID   string               `json:"youtube_id" validate:"required,len=11"`
	Category    models.VideoCategory `json:"category"`
	Description string               `json:"description"`
}

func (in VideoInput) Validate() FieldErrors {
	fe := run(in)
	if !in.Category.IsValid() {
		fe.Add("category", "is invalid")
	}
	return fe
}

// EventInput creates or updates an event.
type EventInput struct {
	Title    string           `json:"title" validate:"required,min=3"`
	Type     models.EventType `json:"type"`
	StartsAt string           `json:"starts_at" validate:"required"`
	EndsAt   string           `json:"ends_at"`
	Location string           `json:"location"`
	Details  string           `json:"details"`
}

func (in EventInput) Validate() FieldErrors {
	fe := run(in)
	if !in.Type.IsValid() {
		fe.Add("type", "is invalid")
	}
	return fe
}

// ScholarshipInput creates or updates a scholarship program.
type ScholarshipInput struct {
	Title       string `json:"title" validate:"required,min=3"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Deadline    string `json:"deadline"`
	Active      bool   `json:"active"`
}

func (in ScholarshipInput) Validate() FieldErrors { return run(in) }

// TeamInput creates a team together with its initial member roster.
type TeamInput struct {
	Name    string        `json:"name" validate:"required,min=2"`
	Mission string        `json:"mission"`
	Members []MemberInput `json:"members"`
}

// MemberInput is one roster entry inside a TeamInput.
type MemberInput struct {
	Name  string `json:"name" validate:"required,min=2"`
	Title string `json:"title"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (in TeamInput) Validate() FieldErrors {
	fe := run(in)
	for i, m := range in.Members {
		for field, reasons := range m.Validate() {
			for _, r := range reasons {
				fe.Add(memberField(i, field), r)
			}
		}
	}
	return fe
}

func (in MemberInput) Validate() FieldErrors { return run(in) }

func memberField(i int, field string) string {
	return "members[" + strconv.Itoa(i) + "]." + field
}

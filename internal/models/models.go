package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a portal account (admin, researcher or author).
type User struct {
	gorm.Model
	PublicID     string `gorm:"uniqueIndex;not null" json:"public_id"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"not null;default:author" json:"role"`
	Newsletter   bool   `gorm:"default:false" json:"newsletter"`
}

// Researcher extends a user with an academic profile.
type Researcher struct {
	gorm.Model
	UserID      uint              `gorm:"uniqueIndex;not null" json:"user_id"`
	User        User              `json:"-"`
	Title       string            `json:"title"`
	Bio         string            `json:"bio"`
	ORCID       string            `json:"orcid,omitempty"`
	Featured    bool              `gorm:"default:false" json:"featured"`
	Expertise   []Expertise       `gorm:"constraint:OnDelete:CASCADE" json:"expertise,omitempty"`
	Education   []Education       `gorm:"constraint:OnDelete:CASCADE" json:"education,omitempty"`
	Areas       []ResearchArea    `gorm:"many2many:researcher_areas" json:"areas,omitempty"`
}

// Expertise is one expertise line on a researcher profile, kept ordered.
type Expertise struct {
	gorm.Model
	ResearcherID uint   `gorm:"index;not null" json:"-"`
	Expertise    string `gorm:"not null" json:"expertise"`
	Position     int    `gorm:"not null;default:0" json:"position"`
}

// Education is one education line on a researcher profile, kept ordered.
type Education struct {
	gorm.Model
	ResearcherID uint   `gorm:"index;not null" json:"-"`
	Education    string `gorm:"not null" json:"education"`
	Position     int    `gorm:"not null;default:0" json:"position"`
}

// Author is a standalone publication author without a full researcher profile.
type Author struct {
	gorm.Model
	PublicID    string `gorm:"uniqueIndex;not null" json:"public_id"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Affiliation string `json:"affiliation,omitempty"`
	ORCID       string `json:"orcid,omitempty"`
}

// Publication is a research output listed on the public site.
type Publication struct {
	gorm.Model
	Title           string          `gorm:"not null" json:"title"`
	Abstract        string          `json:"abstract,omitempty"`
	Type            PublicationType `gorm:"index;not null" json:"type"`
	PublicationDate string          `json:"publication_date,omitempty"` // "YYYY", "YYYY-MM" or "YYYY-MM-DD"
	Venue           string          `json:"venue,omitempty"`
	DOI             string          `gorm:"index" json:"doi,omitempty"`
	Link            string          `json:"link,omitempty"`
	CitationCount   *int            `json:"citation_count"` // nil when enrichment has not run or failed
	Authors         []Author        `gorm:"many2many:publication_authors" json:"authors,omitempty"`
	Areas           []ResearchArea  `gorm:"many2many:area_publications" json:"areas,omitempty"`
}

// Video is a media library entry. Pagination over videos is cursor based.
type Video struct {
	gorm.Model
	Title       string        `gorm:"not null" json:"title"`
	YouTubeID   string        `gorm:"uniqueIndex;not null" json:"youtube_id"`
	Category    VideoCategory `gorm:"index;not null" json:"category"`
	Description string        `json:"description,omitempty"`
	PublishedAt time.Time     `gorm:"index" json:"published_at"`
}

// ResearchArea groups publications and projects under one theme.
type ResearchArea struct {
	gorm.Model
	Title        string        `gorm:"uniqueIndex;not null" json:"title"`
	Slug         string        `gorm:"uniqueIndex;not null" json:"slug"`
	Description  string        `json:"description,omitempty"`
	Icon         string        `json:"icon,omitempty"`
	Questions    []AreaQuestion `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Publications []Publication  `gorm:"many2many:area_publications" json:"publications,omitempty"`
}

// AreaQuestion is one FAQ entry shown on a research-area page.
type AreaQuestion struct {
	gorm.Model
	ResearchAreaID uint   `gorm:"index;not null" json:"-"`
	Question       string `gorm:"not null" json:"question"`
	Position       int    `gorm:"not null;default:0" json:"position"`
}

// Framework is a methodological framework the organization publishes.
type Framework struct {
	gorm.Model
	Title       string `gorm:"uniqueIndex;not null" json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Position    int    `gorm:"not null;default:0" json:"position"`
}

// Methodology is a research methodology description.
type Methodology struct {
	gorm.Model
	Title       string `gorm:"uniqueIndex;not null" json:"title"`
	Description string `json:"description,omitempty"`
	Position    int    `gorm:"not null;default:0" json:"position"`
}

// Scholarship is an award program run by the organization.
type Scholarship struct {
	gorm.Model
	Title       string                 `gorm:"not null" json:"title"`
	Description string                 `json:"description,omitempty"`
	Amount      string                 `json:"amount,omitempty"`
	Deadline    *time.Time             `json:"deadline,omitempty"`
	Active      bool                   `gorm:"default:true" json:"active"`
	Recipients  []ScholarshipRecipient `gorm:"constraint:OnDelete:CASCADE" json:"recipients,omitempty"`
}

// ScholarshipRecipient records one past award.
type ScholarshipRecipient struct {
	gorm.Model
	ScholarshipID uint         `gorm:"index;not null" json:"-"`
	Name          string       `gorm:"not null" json:"name"`
	Year          int          `gorm:"index;not null" json:"year"`
	Media         []AwardMedia `gorm:"constraint:OnDelete:CASCADE" json:"media,omitempty"`
}

// AwardMedia is a photo or clip attached to an award recipient.
type AwardMedia struct {
	gorm.Model
	ScholarshipRecipientID uint   `gorm:"index;not null" json:"-"`
	URL                    string `gorm:"not null" json:"url"`
	Caption                string `json:"caption,omitempty"`
}

// Event is a conference, workshop, seminar or webinar.
type Event struct {
	gorm.Model
	Title    string    `gorm:"not null" json:"title"`
	Type     EventType `gorm:"index;not null" json:"type"`
	StartsAt time.Time `gorm:"index" json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at,omitempty"`
	Location string    `json:"location,omitempty"`
	Details  string    `json:"details,omitempty"`
}

// Team is a named working group of members.
type Team struct {
	gorm.Model
	Name    string   `gorm:"uniqueIndex;not null" json:"name"`
	Mission string   `json:"mission,omitempty"`
	Members []Member `gorm:"constraint:OnDelete:CASCADE" json:"members,omitempty"`
}

// Member is one person on a team roster.
type Member struct {
	gorm.Model
	TeamID uint   `gorm:"index;not null" json:"-"`
	Name   string `gorm:"not null" json:"name"`
	Title  string `json:"title,omitempty"`
	Email  string `json:"email,omitempty"`
	Position int   `gorm:"not null;default:0" json:"position"`
}

// Partner is an external partner organization.
type Partner struct {
	gorm.Model
	Name string      `gorm:"uniqueIndex;not null" json:"name"`
	Type PartnerType `gorm:"index;not null" json:"type"`
	Link string      `json:"link,omitempty"`
	Logo string      `json:"logo,omitempty"`
}

// NewsletterSubscription records a subscriber without a portal account.
// Subscribers with accounts are tracked by the Newsletter flag on User.
type NewsletterSubscription struct {
	gorm.Model
	Email string `gorm:"uniqueIndex;not null" json:"email"`
}

// AllModels lists every table for AutoMigrate, leaf tables after their parents.
func AllModels() []any {
	return []any{
		&User{}, &Researcher{}, &Expertise{}, &Education{}, &Author{},
		&ResearchArea{}, &AreaQuestion{}, &Publication{}, &Video{},
		&Framework{}, &Methodology{},
		&Scholarship{}, &ScholarshipRecipient{}, &AwardMedia{},
		&Event{}, &Team{}, &Member{}, &Partner{},
		&NewsletterSubscription{},
	}
}

package models

// Role describes what a portal account is allowed to do.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleResearcher Role = "researcher"
	RoleAuthor     Role = "author"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleResearcher, RoleAuthor:
		return true
	}
	return false
}

func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrator"
	case RoleResearcher:
		return "Researcher"
	case RoleAuthor:
		return "Author"
	}
	return string(r)
}

// PublicationType is the closed set of publication kinds the portal tracks.
type PublicationType string

const (
	PubJournalArticle  PublicationType = "journal_article"
	PubConferencePaper PublicationType = "conference_paper"
	PubBookChapter     PublicationType = "book_chapter"
	PubWorkingPaper    PublicationType = "working_paper"
	PubReport          PublicationType = "report"
)

func (p PublicationType) IsValid() bool {
	switch p {
	case PubJournalArticle, PubConferencePaper, PubBookChapter, PubWorkingPaper, PubReport:
		return true
	}
	return false
}

func (p PublicationType) Label() string {
	switch p {
	case PubJournalArticle:
		return "Journal Article"
	case PubConferencePaper:
		return "Conference Paper"
	case PubBookChapter:
		return "Book Chapter"
	case PubWorkingPaper:
		return "Working Paper"
	case PubReport:
		return "Report"
	}
	return string(p)
}

// VideoCategory classifies media library entries.
type VideoCategory string

const (
	VideoLecture     VideoCategory = "lecture"
	VideoInterview   VideoCategory = "interview"
	VideoPanel       VideoCategory = "panel"
	VideoDocumentary VideoCategory = "documentary"
)

func (v VideoCategory) IsValid() bool {
	switch v {
	case VideoLecture, VideoInterview, VideoPanel, VideoDocumentary:
		return true
	}
	return false
}

func (v VideoCategory) Label() string {
	switch v {
	case VideoLecture:
		return "Lecture"
	case VideoInterview:
		return "Interview"
	case VideoPanel:
		return "Panel Discussion"
	case VideoDocumentary:
		return "Documentary"
	}
	return string(v)
}

// PartnerType classifies partner organizations.
type PartnerType string

const (
	PartnerAcademic   PartnerType = "academic"
	PartnerGovernment PartnerType = "government"
	PartnerNGO        PartnerType = "ngo"
	PartnerPrivate    PartnerType = "private"
)

func (p PartnerType) IsValid() bool {
	switch p {
	case PartnerAcademic, PartnerGovernment, PartnerNGO, PartnerPrivate:
		return true
	}
	return false
}

func (p PartnerType) Label() string {
	switch p {
	case PartnerAcademic:
		return "Academic Institution"
	case PartnerGovernment:
		return "Government Agency"
	case PartnerNGO:
		return "Non-Governmental Organization"
	case PartnerPrivate:
		return "Private Sector"
	}
	return string(p)
}

// EventType classifies organization events.
type EventType string

const (
	EventConference EventType = "conference"
	EventWorkshop   EventType = "workshop"
	EventSeminar    EventType = "seminar"
	EventWebinar    EventType = "webinar"
)

func (e EventType) IsValid() bool {
	switch e {
	case EventConference, EventWorkshop, EventSeminar, EventWebinar:
		return true
	}
	return false
}

func (e EventType) Label() string {
	switch e {
	case EventConference:
		return "Conference"
	case EventWorkshop:
		return "Workshop"
	case EventSeminar:
		return "Seminar"
	case EventWebinar:
		return "Webinar"
	}
	return string(e)
}

// SortOrder is the ordering a public list endpoint accepts via ?sort=.
type SortOrder string

const (
	SortRecent       SortOrder = "recent"
	SortCitations    SortOrder = "citations"
	SortAlphabetical SortOrder = "alphabetical"
)

// ViewMode is the presentation density a list endpoint accepts via ?view=.
type ViewMode string

const (
	ViewDetailed ViewMode = "detailed"
	ViewCompact  ViewMode = "compact"
)

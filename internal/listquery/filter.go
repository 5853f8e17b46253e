package listquery

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/SSRGNG/ssrg-sub002/internal/models"
)

var titleCollator = collate.New(language.English, collate.IgnoreCase)

// FilterAndSortPublications returns a new slice filtered by publication type
// (when non-empty) and ordered by the given sort key. Unknown sort keys fall
// through to "recent". The input slice is never mutated: the filter step
// always produces the copy that gets sorted.
func FilterAndSortPublications(pubs []models.Publication, sortKey string, pubType models.PublicationType) []models.Publication {
	filtered := make([]models.Publication, 0, len(pubs))
	for _, p := range pubs {
		if pubType != "" && p.Type != pubType {
			continue
		}
		filtered = append(filtered, p)
	}

	switch sortKey {
	case string(models.SortAlphabetical):
		sort.SliceStable(filtered, func(i, j int) bool {
			return titleCollator.CompareString(filtered[i].Title, filtered[j].Title) < 0
		})
	case string(models.SortCitations):
		sort.SliceStable(filtered, func(i, j int) bool {
			return citationCount(filtered[i]) > citationCount(filtered[j])
		})
	default: // "recent" and anything unrecognized
		sort.SliceStable(filtered, func(i, j int) bool {
			return normalizeDate(filtered[i].PublicationDate) > normalizeDate(filtered[j].PublicationDate)
		})
	}
	return filtered
}

func citationCount(p models.Publication) int {
	if p.CitationCount == nil {
		return 0
	}
	return *p.CitationCount
}

// normalizeDate parses "YYYY", "YYYY-MM" or "YYYY-MM-DD" into a unix
// timestamp, defaulting missing month/day to 01. Empty or unparseable dates
// normalize to 0 so they sort last in descending order.
func normalizeDate(raw string) int64 {
	if raw == "" {
		return 0
	}
	switch len(raw) {
	case 4:
		raw += "-01-01"
	case 7:
		raw += "-01"
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return 0
	}
	return t.Unix()
}

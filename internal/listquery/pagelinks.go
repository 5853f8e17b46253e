package listquery

import (
	"net/url"
	"strconv"
)

// PageItem is one entry in the rendered page list: a page number, or an
// ellipsis gap marker when Ellipsis is true.
type PageItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// PageItems computes the visible page list with ellipsis gaps: always page 1,
// a window of two pages either side of the current page, and always the last
// page. Returns nil when totalPages <= 1, in which case no pagination is
// rendered at all.
func PageItems(currentPage, totalPages int) []PageItem {
	if totalPages <= 1 {
		return nil
	}

	items := []PageItem{{Page: 1}}

	start := currentPage - 2
	if start < 2 {
		start = 2
	}
	end := currentPage + 2
	if end > totalPages-1 {
		end = totalPages - 1
	}

	if start > 2 {
		items = append(items, PageItem{Ellipsis: true})
	}
	for p := start; p <= end; p++ {
		items = append(items, PageItem{Page: p})
	}
	if end < totalPages-1 {
		items = append(items, PageItem{Ellipsis: true})
	}
	items = append(items, PageItem{Page: totalPages})

	return items
}

// BuildPageURL builds the link for one page, preserving every query parameter
// except page itself. The canonical first-page URL carries no page parameter.
func BuildPageURL(baseURL string, page int, params url.Values) string {
	q := url.Values{}
	for key, vals := range params {
		if key == "page" {
			continue
		}
		for _, v := range vals {
			q.Add(key, v)
		}
	}
	if page > 1 {
		q.Set("page", strconv.Itoa(page))
	}
	if len(q) == 0 {
		return baseURL
	}
	return baseURL + "?" + q.Encode()
}

// PageLink pairs a page item with its URL. Ellipsis entries carry no URL.
type PageLink struct {
	Page     int    `json:"page,omitempty"`
	Ellipsis bool   `json:"ellipsis,omitempty"`
	URL      string `json:"url,omitempty"`
	Current  bool   `json:"current,omitempty"`
}

// NavLink is the Previous/Next control state. A disabled control is rendered
// disabled, never omitted.
type NavLink struct {
	URL      string `json:"url,omitempty"`
	Disabled bool   `json:"disabled"`
}

// Pagination is the complete offset-pagination link state for one page.
type Pagination struct {
	Previous NavLink    `json:"previous"`
	Pages    []PageLink `json:"pages"`
	Next     NavLink    `json:"next"`
}

// NewPagination assembles Previous/Next and the numbered page links for an
// offset-paginated listing. Returns nil when there is only one page.
func NewPagination(currentPage, totalPages int, baseURL string, params url.Values) *Pagination {
	items := PageItems(currentPage, totalPages)
	if items == nil {
		return nil
	}

	p := &Pagination{}
	if currentPage > 1 {
		p.Previous = NavLink{URL: BuildPageURL(baseURL, currentPage-1, params)}
	} else {
		p.Previous = NavLink{Disabled: true}
	}
	if currentPage < totalPages {
		p.Next = NavLink{URL: BuildPageURL(baseURL, currentPage+1, params)}
	} else {
		p.Next = NavLink{Disabled: true}
	}

	for _, item := range items {
		if item.Ellipsis {
			p.Pages = append(p.Pages, PageLink{Ellipsis: true})
			continue
		}
		p.Pages = append(p.Pages, PageLink{
			Page:    item.Page,
			URL:     BuildPageURL(baseURL, item.Page, params),
			Current: item.Page == currentPage,
		})
	}
	return p
}

// Package listquery turns raw URL search parameters into validated list
// parameters and builds the pagination link state shared by every public
// listing endpoint.
package listquery

import (
	"net/url"
	"strconv"
)

// ListQuery is the validated shape of the page/sort/view query parameters.
// It is parsed fresh on every request and never persisted.
type ListQuery struct {
	Page int
	Sort string
	View string
}

const (
	DefaultSort = "recent"
	DefaultView = "detailed"
)

// Resolve parses raw search parameters into a ListQuery. It is total: any
// input yields a usable value. An unparseable or non-positive page clamps to
// 1; sort and view pass through as opaque strings with defaults, validity of
// sort is enforced by the downstream switch.
func Resolve(params url.Values) ListQuery {
	q := ListQuery{Page: 1, Sort: DefaultSort, View: DefaultView}

	if raw := params.Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page >= 1 {
			q.Page = page
		}
	}
	if sort := params.Get("sort"); sort != "" {
		q.Sort = sort
	}
	if view := params.Get("view"); view != "" {
		q.View = view
	}
	return q
}

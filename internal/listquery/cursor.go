package listquery

import "net/url"

// CursorPagination is the link state for a cursor-paginated listing. Cursor
// pagination is not reversible without keeping a cursor stack, so the
// backward control always returns to the cursor-less first page. This is a
// known limitation, not a defect.
type CursorPagination struct {
	FirstPage NavLink `json:"first_page"`
	Next      NavLink `json:"next"`
}

// NewCursorPagination builds the Next / back-to-first controls. Next is
// disabled when the server reported no further page. The cursor parameter is
// replaced wholesale; every other query parameter is preserved.
func NewCursorPagination(baseURL string, params url.Values, nextCursor *string, hasNextPage bool) CursorPagination {
	cp := CursorPagination{}

	first := url.Values{}
	for key, vals := range params {
		if key == "cursor" {
			continue
		}
		for _, v := range vals {
			first.Add(key, v)
		}
	}
	if len(first) == 0 {
		cp.FirstPage = NavLink{URL: baseURL}
	} else {
		cp.FirstPage = NavLink{URL: baseURL + "?" + first.Encode()}
	}

	if !hasNextPage || nextCursor == nil {
		cp.Next = NavLink{Disabled: true}
		return cp
	}

	next := url.Values{}
	for key, vals := range params {
		if key == "cursor" {
			continue
		}
		for _, v := range vals {
			next.Add(key, v)
		}
	}
	next.Set("cursor", *nextCursor)
	cp.Next = NavLink{URL: baseURL + "?" + next.Encode()}
	return cp
}

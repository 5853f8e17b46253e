package models

// uniform error payload
type ErrorResponse struct {
	Code    string                  `json:"code"`
	Message string                  `json:"message"`
	Details []ValidationErrorDetail `json:"details,omitempty"`
}

// a single field error
type ValidationErrorDetail struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// PageResult is the envelope for offset-paginated list endpoints.
type PageResult[T any] struct {
	Items       []T `json:"items"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	Total       int `json:"total"`
}

// CursorResult is the envelope for cursor-paginated list endpoints.
// NextCursor is nil once the last page has been reached.
type CursorResult[T any] struct {
	Items       []T     `json:"items"`
	HasNextPage bool    `json:"has_next_page"`
	NextCursor  *string `json:"next_cursor"`
}

// helper to calculate pagination metadata
func CalculatePaginationMeta(page, limit, total int) (totalPages int, hasNext, hasPrev bool) {
	if limit <= 0 {
		limit = 1 // avoid division by zero
	}
	totalPages = (total + limit - 1) / limit // ceiling division
	hasNext = page < totalPages
	hasPrev = page > 1
	return
}

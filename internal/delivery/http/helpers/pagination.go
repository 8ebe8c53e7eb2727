package helpers

import (
	"net/http"
	"strconv"

	"eventregistration/internal/domain"
)

// DefaultPage is used when the page query parameter is missing or invalid.
const DefaultPage = 1

// ParsePagination reads page and per_page (page_size is accepted as an alias) from
// the request query string and clamps them to valid ranges.
// Invalid or missing values fall back to defaults.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	page := DefaultPage
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 1 {
		page = v
	}
	raw := q.Get("per_page")
	if raw == "" {
		raw = q.Get("page_size")
	}
	pageSize := domain.DefaultPageSize
	if v, err := strconv.Atoi(raw); err == nil && v >= 1 {
		pageSize = v
	}
	return domain.PaginationParams{Page: page, PageSize: pageSize}.Normalize()
}

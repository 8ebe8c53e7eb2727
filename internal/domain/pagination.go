package domain

// Page size bounds for attendee listings.
const (
	DefaultPageSize = 15
	MaxPageSize     = 100
)

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Normalize clamps Page to at least 1 and PageSize to [1, MaxPageSize],
// substituting DefaultPageSize when unset.
func (p PaginationParams) Normalize() PaginationParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize.
func (p PaginationParams) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// PageMeta describes a returned window of a paginated listing.
// From and To are 1-based item indexes; both are 0 when the window is empty.
// swagger:model PageMeta
type PageMeta struct {
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// NewPageMeta builds PageMeta for params over total items, given the number of items returned.
// LastPage is ceiling(total / PageSize) and at least 1.
// The window and the total are read separately, so a registration committed in
// between can leave total short of the rows returned. Total is raised to cover
// the window so that From <= To <= Total always holds.
func NewPageMeta(params PaginationParams, total, returned int) PageMeta {
	if returned > 0 {
		total = max(total, params.Offset()+returned)
	}
	lastPage := 1
	if params.PageSize > 0 && total > 0 {
		lastPage = (total + params.PageSize - 1) / params.PageSize
	}
	meta := PageMeta{
		CurrentPage: params.Page,
		LastPage:    lastPage,
		PerPage:     params.PageSize,
		Total:       total,
	}
	if returned > 0 {
		meta.From = params.Offset() + 1
		meta.To = params.Offset() + returned
	}
	return meta
}

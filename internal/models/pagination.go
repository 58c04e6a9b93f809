package models

const (
	// DefaultPage is used when no page is requested.
	DefaultPage = 1
	// DefaultPageSize is used when no page size is requested.
	DefaultPageSize = 10
	// MaxPageSize caps how many records one page may return.
	MaxPageSize = 100
)

// Pagination describes the window of a paginated response. Total counts every
// matching record, not just the ones in this page.
type Pagination struct {
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Returned int   `json:"returned"`
}

// NewPagination builds the response envelope.
func NewPagination(total int64, page, pageSize, returned int) Pagination {
	return Pagination{
		Total:    total,
		Page:     page,
		PageSize: pageSize,
		Returned: returned,
	}
}

// PaginationQuery carries the requested page window.
type PaginationQuery struct {
	Page     int
	PageSize int
}

// Sanitize clamps the query into the supported window. Idempotent.
func (q PaginationQuery) Sanitize() PaginationQuery {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = 1
	}
	if q.PageSize > MaxPageSize {
		q.PageSize = MaxPageSize
	}
	return q
}

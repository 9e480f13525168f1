package models

// PageRequest carries pagination parameters for list queries.
type PageRequest struct {
	Page int
	Size int
}

const defaultPageSize = 20

// Limit returns the page size, falling back to a sane default.
func (p PageRequest) Limit() int {
	if p.Size <= 0 {
		return defaultPageSize
	}
	return p.Size
}

// Offset returns the row offset for the requested page (zero-based).
func (p PageRequest) Offset() int {
	if p.Page <= 0 {
		return 0
	}
	return p.Page * p.Limit()
}

// Page is one page of results plus the total row count.
type Page[T any] struct {
	Items []T
	Page  int
	Size  int
	Total int64
}

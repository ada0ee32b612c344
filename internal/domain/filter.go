package domain

import "math"

// Default and maximum page sizes for list endpoints.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest carries 1-based page/limit query parameters.
type PageRequest struct {
	Page  int
	Limit int
}

// Normalize clamps page and limit to sane values.
func (p PageRequest) Normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset returns the number of rows to skip. Call on a normalized request.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata returned alongside every list.
type Pagination struct {
	Total       int
	Page        int
	Limit       int
	TotalPages  int
	HasNextPage bool
	HasPrevPage bool
}

// NewPagination computes pagination metadata for total rows.
// totalPages is ceil(total/limit).
func NewPagination(total int, p PageRequest) Pagination {
	p = p.Normalize()
	totalPages := int(math.Ceil(float64(total) / float64(p.Limit)))
	return Pagination{
		Total:       total,
		Page:        p.Page,
		Limit:       p.Limit,
		TotalPages:  totalPages,
		HasNextPage: p.Page < totalPages,
		HasPrevPage: p.Page > 1,
	}
}

// Page is a single page of results.
type Page[T any] struct {
	Items      []T
	Pagination Pagination
}

// NewPage builds a Page, replacing a nil slice with an empty one.
func NewPage[T any](items []T, total int, p PageRequest) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{Items: items, Pagination: NewPagination(total, p)}
}

// SortOrder is ASC or DESC.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ParseSortOrder returns SortAsc only for "asc" (any case); everything else
// falls back to def.
func ParseSortOrder(s string, def SortOrder) SortOrder {
	switch s {
	case "asc", "ASC", "Asc":
		return SortAsc
	case "desc", "DESC", "Desc":
		return SortDesc
	}
	return def
}

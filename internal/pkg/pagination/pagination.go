// Package pagination normalizes page/limit parameters into OFFSET/LIMIT windows.
package pagination

import (
	"math"
	"strconv"
)

const (
	// DefaultPage is used when no page is requested
	DefaultPage = 1
	// DefaultLimit is used when no limit is requested
	DefaultLimit = 10
	// MaxLimit caps the page size
	MaxLimit = 100
	// MaxPage keeps (page-1)*limit within int
	MaxPage = math.MaxInt / MaxLimit
)

// Params is a normalized page request
type Params struct {
	Page  int
	Limit int
}

// New clamps page to 1..MaxPage and limit to 1..MaxLimit, falling back to defaults.
func New(page, limit int) Params {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Params{Page: page, Limit: limit}
}

// Parse builds Params from raw query string values; unparsable values use the defaults.
func Parse(page, limit string) Params {
	p, err := strconv.Atoi(page)
	if err != nil {
		p = DefaultPage
	}
	l, err := strconv.Atoi(limit)
	if err != nil {
		l = DefaultLimit
	}
	return New(p, l)
}

// Offset returns (page-1)*limit
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta describes a returned page
type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// NewMeta computes the page metadata for total matching rows.
func NewMeta(p Params, total int64) Meta {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
	return Meta{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: totalPages}
}

// Page is a slice of results with its metadata
type Page[T any] struct {
	Items []T
	Meta  Meta
}

// All wraps an unpaginated, complete list in a single page.
func All[T any](items []T) Page[T] {
	n := len(items)
	limit := n
	if limit == 0 {
		limit = DefaultLimit
	}
	return Page[T]{Items: items, Meta: NewMeta(Params{Page: 1, Limit: limit}, int64(n))}
}

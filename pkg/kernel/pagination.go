package kernel

import "strconv"

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PaginationOptions carries the requested page window.
type PaginationOptions struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewPaginationOptions parses raw query values, falling back to sane defaults.
func NewPaginationOptions(page, pageSize string) PaginationOptions {
	p, err := strconv.Atoi(page)
	if err != nil || p < 1 {
		p = 1
	}
	size, err := strconv.Atoi(pageSize)
	if err != nil || size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return PaginationOptions{Page: p, PageSize: size}
}

// Offset returns the row offset for the requested page.
func (p PaginationOptions) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Page describes the returned window of a paginated result.
type Page struct {
	Number int `json:"number"`
	Size   int `json:"size"`
	Total  int `json:"total"`
	Pages  int `json:"pages"`
}

// NewPage computes the page descriptor for a total row count.
func NewPage(opts PaginationOptions, total int) Page {
	pages := 0
	if opts.PageSize > 0 {
		pages = (total + opts.PageSize - 1) / opts.PageSize
	}
	return Page{
		Number: opts.Page,
		Size:   opts.PageSize,
		Total:  total,
		Pages:  pages,
	}
}

// Paginated wraps a page of items together with its page descriptor.
type Paginated[T any] struct {
	Items []T  `json:"items"`
	Page  Page `json:"page"`
	Empty bool `json:"empty"`
}

// NewPaginated builds a Paginated result from items and a total count.
func NewPaginated[T any](items []T, opts PaginationOptions, total int) *Paginated[T] {
	return &Paginated[T]{
		Items: items,
		Page:  NewPage(opts, total),
		Empty: len(items) == 0,
	}
}

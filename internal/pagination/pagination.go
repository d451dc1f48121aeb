// Package pagination slices ordered post listings into fixed-size pages.
package pagination

import (
	"strconv"

	"quill/internal/models"
)

// DefaultPageSize is the fallback page size when configuration does not
// provide one.
const DefaultPageSize = 10

// Page is one page of an ordered post listing plus the metadata the
// navigation UI needs.
type Page struct {
	Items       []*models.Post `json:"items"`
	Number      int            `json:"number"`
	PageSize    int            `json:"page_size"`
	TotalItems  int            `json:"total_items"`
	TotalPages  int            `json:"total_pages"`
	HasNext     bool           `json:"has_next"`
	HasPrevious bool           `json:"has_previous"`
}

// ParsePage turns a raw query value into a 1-based page index. Anything
// non-numeric falls back to the first page; range clamping happens in
// Paginate.
func ParsePage(raw string) int {
	if raw == "" {
		return 1
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return n
}

// Paginate returns the requested page of items. The page index is 1-based;
// indexes below 1 clamp to the first page and indexes past the end clamp
// to the last page. An empty listing yields a single empty page. Paginate
// never mutates its input.
func Paginate(items []*models.Post, pageSize, page int) *Page {
	if pageSize < 1 {
		pageSize = 1
	}

	totalItems := len(items)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return &Page{
		Items:       items[start:end],
		Number:      page,
		PageSize:    pageSize,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     page < totalPages,
		HasPrevious: page > 1,
	}
}

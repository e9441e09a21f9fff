// Package pagination computes 1-indexed page windows for collection listings.
// Out-of-range page numbers clamp to the nearest valid page instead of
// erroring, so a stale link to page 99 still renders the last page.
package pagination

import "drug-insights-hub/pkg/response"

// DefaultPageSize is the fixed page size for affiliation-scoped listings.
const DefaultPageSize = 10

// Page is a resolved, in-range pagination window.
type Page struct {
	Number int
	Size   int
}

// Resolve clamps a requested 1-indexed page number against the total row
// count. A total of zero keeps page 1 with an empty window.
func Resolve(requested, size int, total int64) Page {
	if size <= 0 {
		size = DefaultPageSize
	}
	last := int((total + int64(size) - 1) / int64(size))
	if last < 1 {
		last = 1
	}
	if requested < 1 {
		requested = 1
	}
	if requested > last {
		requested = last
	}
	return Page{Number: requested, Size: size}
}

// Offset returns the row offset for the page.
func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

// Meta builds the response paging metadata for the page.
func (p Page) Meta(total int64) *response.Meta {
	totalPages := int((total + int64(p.Size) - 1) / int64(p.Size))
	if totalPages < 1 {
		totalPages = 1
	}
	return &response.Meta{
		Page:       p.Number,
		Limit:      p.Size,
		Total:      total,
		TotalPages: totalPages,
	}
}

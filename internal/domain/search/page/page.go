// Package page slices ranked sequences into fixed-size pages.
package page

// Page is one slice of an ordered sequence plus its navigation metadata.
type Page[T any] struct {
	Items           []T
	Page            int
	Limit           int
	Total           int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// Paginate returns page pageNum (1-based) of items with the given page size.
// Ranges past the end yield an empty, non-nil Items slice. pageNum and limit
// are expected to be validated by the caller; non-positive values are treated as 1.
func Paginate[T any](items []T, pageNum, limit int) Page[T] {
	if pageNum < 1 {
		pageNum = 1
	}
	if limit < 1 {
		limit = 1
	}

	total := len(items)
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	p := Page[T]{
		Items:           []T{},
		Page:            pageNum,
		Limit:           limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     pageNum < totalPages,
		HasPreviousPage: pageNum > 1,
	}

	if pageNum > totalPages {
		return p
	}
	skip := (pageNum - 1) * limit
	end := min(skip+limit, total)
	p.Items = items[skip:end:end]
	return p
}

// Map converts the page items, keeping the metadata.
func Map[T, U any](p Page[T], fn func(T) U) Page[U] {
	out := make([]U, len(p.Items))
	for i, it := range p.Items {
		out[i] = fn(it)
	}
	return Page[U]{
		Items:           out,
		Page:            p.Page,
		Limit:           p.Limit,
		Total:           p.Total,
		TotalPages:      p.TotalPages,
		HasNextPage:     p.HasNextPage,
		HasPreviousPage: p.HasPreviousPage,
	}
}

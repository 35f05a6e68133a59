// Package pagination windows an ordered in-memory list into pages for
// on-screen display. It is independent of where the list came from and is
// only applied after filtering has completed.
package pagination

const DefaultPageSize = 30

// Pager slices an ordered list into 1-based pages.
type Pager[T any] struct {
	items    []T
	page     int
	pageSize int
}

func New[T any](items []T, pageSize int) *Pager[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager[T]{items: items, page: 1, pageSize: pageSize}
}

// SetItems replaces the underlying list and resets to the first page.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	p.page = 1
}

// SetPageSize changes the page size and resets to the first page.
func (p *Pager[T]) SetPageSize(size int) {
	if size <= 0 {
		return
	}
	p.pageSize = size
	p.page = 1
}

// SetPage moves to the given page. Out-of-range pages are clamped into
// [1, TotalPages]; an empty list always stays on page 1.
func (p *Pager[T]) SetPage(page int) {
	total := p.TotalPages()
	if page < 1 {
		page = 1
	}
	if total > 0 && page > total {
		page = total
	}
	p.page = page
}

func (p *Pager[T]) Page() int       { return p.page }
func (p *Pager[T]) PageSize() int   { return p.pageSize }
func (p *Pager[T]) TotalItems() int { return len(p.items) }

// TotalPages is ceil(len(items)/pageSize); an empty list has zero pages.
func (p *Pager[T]) TotalPages() int {
	if len(p.items) == 0 {
		return 0
	}
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

// Items returns the current page's slice. The concatenation of all pages in
// order reconstructs the original list exactly.
func (p *Pager[T]) Items() []T {
	start := (p.page - 1) * p.pageSize
	if start >= len(p.items) {
		return nil
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// Slice is a convenience for handlers that only need one window: it returns
// the 1-based page of items plus the total page count.
func Slice[T any](items []T, page, pageSize int) ([]T, int) {
	p := New(items, pageSize)
	p.SetPage(page)
	return p.Items(), p.TotalPages()
}

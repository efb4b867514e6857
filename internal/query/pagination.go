package query

// Pager derives page navigation from a result total. It is display state,
// not query state: the authoritative offset lives in Filter.Skip, computed
// from the pager via Offset.
type Pager struct {
	Page     int // 1-based
	PageSize int
	Total    int
}

// NewPager returns a pager on page 1 with the given page size.
func NewPager(pageSize int) Pager {
	if pageSize <= 0 {
		pageSize = DefaultLimit
	}
	return Pager{Page: 1, PageSize: pageSize}
}

// TotalPages is ceil(Total / PageSize), never less than 1 — an empty result
// set still has a page 1.
func (p Pager) TotalPages() int {
	if p.PageSize <= 0 {
		return 1
	}
	n := (p.Total + p.PageSize - 1) / p.PageSize
	if n < 1 {
		return 1
	}
	return n
}

// Offset is the skip value for the current page.
func (p Pager) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Reset returns to page 1. Called whenever any filter field or the search
// term changes, so a narrowed query never points past its own last page.
func (p Pager) Reset() Pager {
	p.Page = 1
	return p
}

// Next advances one page, clamped to the last page.
func (p Pager) Next() Pager {
	if p.Page < p.TotalPages() {
		p.Page++
	}
	return p
}

// Prev steps back one page, clamped to page 1.
func (p Pager) Prev() Pager {
	if p.Page > 1 {
		p.Page--
	}
	return p
}

// WithTotal records a fresh result total, clamping the current page into
// the new range.
func (p Pager) WithTotal(total int) Pager {
	if total < 0 {
		total = 0
	}
	p.Total = total
	if p.Page > p.TotalPages() {
		p.Page = p.TotalPages()
	}
	return p
}

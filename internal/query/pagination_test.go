package query

import "testing"

func TestTotalPages(t *testing.T) {
	tests := []struct {
		total, size, want int
	}{
		{0, 50, 1}, // empty still has page 1
		{1, 50, 1},
		{50, 50, 1},
		{51, 50, 2},
		{100, 50, 2},
		{101, 50, 3},
		{7, 3, 3},
	}
	for _, tc := range tests {
		p := Pager{Page: 1, PageSize: tc.size, Total: tc.total}
		if got := p.TotalPages(); got != tc.want {
			t.Errorf("total=%d size=%d: expected %d pages, got %d", tc.total, tc.size, tc.want, got)
		}
	}
}

func TestOffset(t *testing.T) {
	p := NewPager(50)
	if p.Offset() != 0 {
		t.Errorf("page 1 offset: expected 0, got %d", p.Offset())
	}
	p.Page = 3
	if p.Offset() != 100 {
		t.Errorf("page 3 offset: expected 100, got %d", p.Offset())
	}
}

func TestResetOnFilterChange(t *testing.T) {
	p := NewPager(50).WithTotal(500)
	p = p.Next().Next()
	if p.Page != 3 {
		t.Fatalf("expected page 3, got %d", p.Page)
	}

	// Any filter change resets to page 1
	p = p.Reset()
	if p.Page != 1 {
		t.Errorf("expected page 1 after reset, got %d", p.Page)
	}
}

func TestNextPrevClamp(t *testing.T) {
	p := NewPager(50).WithTotal(120) // 3 pages

	p = p.Prev()
	if p.Page != 1 {
		t.Errorf("prev below page 1 should clamp, got %d", p.Page)
	}

	p = p.Next().Next().Next().Next()
	if p.Page != 3 {
		t.Errorf("next past last page should clamp at 3, got %d", p.Page)
	}
}

func TestWithTotalClampsPage(t *testing.T) {
	p := NewPager(50).WithTotal(500)
	p.Page = 10

	// Narrowed result set pulls the page back into range
	p = p.WithTotal(60)
	if p.Page != 2 {
		t.Errorf("expected page clamped to 2, got %d", p.Page)
	}
}

package pagination

import "testing"

func TestValidateClampsParams(t *testing.T) {
	cases := []struct {
		name        string
		page        int
		perPage     int
		wantPage    int
		wantPerPage int
	}{
		{"zero values", 0, 0, 1, 15},
		{"negative page", -3, 20, 1, 20},
		{"over cap", 2, 500, 2, 100},
		{"in range", 3, 25, 3, 25},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := &PaginationParams{Page: tc.page, PerPage: tc.perPage}
			p.Validate()
			if p.Page != tc.wantPage || p.PerPage != tc.wantPerPage {
				t.Fatalf("Validate() = page %d per_page %d, want %d %d",
					p.Page, p.PerPage, tc.wantPage, tc.wantPerPage)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	p := &PaginationParams{Page: 3, PerPage: 15}
	if got := p.Offset(); got != 30 {
		t.Fatalf("Offset() = %d, want 30", got)
	}
}

func TestNewPagination(t *testing.T) {
	pg := NewPagination(2, 10, 35)
	if pg.TotalPages != 4 {
		t.Fatalf("total pages = %d, want 4", pg.TotalPages)
	}
	if !pg.HasNext || !pg.HasPrev {
		t.Fatalf("has_next=%v has_prev=%v, want both true", pg.HasNext, pg.HasPrev)
	}
}

package queryparams

import "testing"

func TestValidateFallsBackToDefaults(t *testing.T) {
	p := ListParams{Page: 0, PerPage: -5, OrderBy: "sideways"}
	p.Validate()

	if p.Page != DefaultPage {
		t.Errorf("Page = %d, beklenen %d", p.Page, DefaultPage)
	}
	if p.PerPage != DefaultPerPage {
		t.Errorf("PerPage = %d, beklenen %d", p.PerPage, DefaultPerPage)
	}
	if p.OrderBy != DefaultOrderBy {
		t.Errorf("OrderBy = %q, beklenen %q", p.OrderBy, DefaultOrderBy)
	}
}

func TestValidateCapsPerPage(t *testing.T) {
	p := ListParams{Page: 2, PerPage: 500, OrderBy: "asc"}
	p.Validate()

	if p.PerPage != MaxPerPage {
		t.Errorf("PerPage = %d, beklenen %d", p.PerPage, MaxPerPage)
	}
	if p.Page != 2 || p.OrderBy != "asc" {
		t.Errorf("geçerli değerler değişmemeli: %+v", p)
	}
}

func TestCalculateOffset(t *testing.T) {
	p := ListParams{Page: 3, PerPage: 10}
	if got := p.CalculateOffset(); got != 20 {
		t.Errorf("CalculateOffset() = %d, beklenen 20", got)
	}
}

func TestCalculateTotalPages(t *testing.T) {
	tests := []struct {
		total   int64
		perPage int
		want    int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{25, 10, 3},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := CalculateTotalPages(tt.total, tt.perPage); got != tt.want {
			t.Errorf("CalculateTotalPages(%d, %d) = %d, beklenen %d", tt.total, tt.perPage, got, tt.want)
		}
	}
}

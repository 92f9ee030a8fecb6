package queryparams

// Liste uçları için ortak sayfalama/sıralama parametreleri.

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
	DefaultOrderBy = "desc"
)

// ListParams query string'den parse edilen liste parametreleridir.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"`
	Name    string `query:"name"`
	Status  string `query:"status"`
}

// DefaultListParams verilen sıralama alanıyla varsayılan parametreleri döndürür.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: DefaultOrderBy,
	}
}

// Validate geçersiz değerleri varsayılanlara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = DefaultOrderBy
	}
}

// CalculateOffset SQL OFFSET değerini hesaplar.
func (p ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages toplam sayfa sayısını hesaplar.
func CalculateTotalPages(totalCount int64, perPage int) int {
	if perPage <= 0 || totalCount <= 0 {
		return 0
	}
	pages := int(totalCount) / perPage
	if int(totalCount)%perPage != 0 {
		pages++
	}
	return pages
}

// PaginationMeta sayfalama üst verisidir.
type PaginationMeta struct {
	CurrentPage int   `json:"currentPage"`
	PerPage     int   `json:"perPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
}

// PaginatedResult sayfalanmış liste cevabıdır.
type PaginatedResult struct {
	Data any            `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

package pagination

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	// MaxPage keeps Offset far below the int range.
	MaxPage = 1_000_000
)

// Params is a normalized 1-based page request.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps page to [1, MaxPage] and pageSize to [1, MaxPageSize],
// using DefaultPageSize when pageSize is not set.
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if page > MaxPage {
		page = MaxPage
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

func (p Params) Limit() int {
	return p.PageSize
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

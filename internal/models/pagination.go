package models

// Pagination is the envelope attached to every collection fetch result
type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// NewPagination builds a pagination envelope with the page count derived
// from the total
func NewPagination(page, perPage, total int) Pagination {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}

	return Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
	}
}

// DefaultPerPage matches the API's default page size
const DefaultPerPage = 20

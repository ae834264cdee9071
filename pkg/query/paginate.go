package query

import "github.com/matst80/slask-orders/pkg/types"

const DefaultPageSize = 10

// Page is one window of the filtered sequence.
type Page struct {
	Items      []types.Order `json:"items"`
	Number     int           `json:"page"`
	TotalPages int           `json:"totalPages"`
}

// Paginate slices the sequence into 1-indexed fixed-size pages. TotalPages
// is never below 1, an empty result still renders as one empty page. A page
// beyond range yields empty items, not an error.
func Paginate(seq []types.Order, pageSize, page int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	totalPages := (len(seq) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	start := (page - 1) * pageSize
	if start >= len(seq) {
		return Page{Items: []types.Order{}, Number: page, TotalPages: totalPages}
	}
	end := min(start+pageSize, len(seq))
	return Page{Items: seq[start:end], Number: page, TotalPages: totalPages}
}

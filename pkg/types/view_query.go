package types

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
)

// Shareable dashboard links encode the view state as URL query values:
// repeated f=<field>:<v1>||<v2> entries plus sort, dir and page.

type viewQuery struct {
	Sort string `schema:"sort"`
	Dir  string `schema:"dir"`
	Page int    `schema:"page"`
}

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

// ViewFromQuery decodes a view state from URL query values. Malformed
// entries are skipped, never fatal.
func ViewFromQuery(query url.Values) ViewState {
	result := DefaultViewState()

	vq := viewQuery{}
	if err := decoder.Decode(&vq, query); err == nil {
		result.SortKey = vq.Sort
		result.SortDirection = SortDirection(vq.Dir)
		result.Page = vq.Page
	}

	for _, v := range query["f"] {
		parts := strings.SplitN(v, ":", 2)
		if len(parts) != 2 {
			continue
		}
		field := FilterField(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])
		if !field.Valid() || value == "" {
			continue
		}
		result.Filters.Set(field, strings.Split(value, "||"))
	}

	result.Sanitize()
	return result
}

// QueryValues encodes the view state as URL query values. Empty selections
// and default sort/page are omitted to keep links short.
func (v ViewState) QueryValues() url.Values {
	query := url.Values{}
	for _, field := range FilterFields {
		sel := v.Filters[field]
		if sel.IsEmpty() {
			continue
		}
		query.Add("f", string(field)+":"+strings.Join(sel, "||"))
	}
	if v.SortKey != "" && v.SortKey != SortKeyOid {
		query.Set("sort", v.SortKey)
	}
	if v.SortDirection == Descending {
		query.Set("dir", string(Descending))
	}
	if v.Page > 1 {
		query.Set("page", strconv.Itoa(v.Page))
	}
	return query
}

package facet

import (
	"slices"

	"github.com/matst80/slask-orders/pkg/types"
)

// UniqueValues collects the distinct non-empty values a field takes across
// the collection, in first-seen order. For status both sides are merged
// into one set. The days field has fixed bucket labels instead.
func UniqueValues(orders []types.Order, field types.FilterField) []string {
	if field == types.FieldDays {
		return slices.Clone(DayBuckets)
	}
	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, o := range orders {
		for _, v := range FieldStrings(o, field) {
			if v == "" {
				continue
			}
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	return values
}

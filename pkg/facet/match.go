package facet

import (
	"github.com/matst80/slask-orders/pkg/types"
)

// Matches reports whether an order passes the whole filter state: every
// field must match (AND across fields), within a field any selected value
// is enough (OR). An empty selection matches everything.
func Matches(o types.Order, fs types.FilterState) bool {
	for _, field := range types.FilterFields {
		sel := fs[field]
		if sel.IsEmpty() {
			continue
		}
		if !matchesField(o, field, sel) {
			return false
		}
	}
	return true
}

func matchesField(o types.Order, field types.FilterField, sel types.Selection) bool {
	acc, ok := accessors[field]
	if !ok {
		return false
	}
	if acc.Number != nil {
		return matchesDays(acc.Number(o), sel)
	}
	for _, value := range acc.Strings(o) {
		// an empty field value never satisfies a non-empty selection
		if value == "" {
			continue
		}
		if sel.Has(value) {
			return true
		}
	}
	return false
}

func matchesDays(days int, sel types.Selection) bool {
	for _, label := range sel {
		threshold, ok := ParseBucket(label)
		if !ok {
			continue
		}
		if days < threshold {
			return true
		}
	}
	return false
}

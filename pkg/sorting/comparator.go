package sorting

import (
	"cmp"

	"github.com/matst80/slask-orders/pkg/types"
)

// Comparator builds a total ordering over orders for the given sort key.
// Numeric fields compare numerically, status compares by priority rank on
// the left status, everything else lexicographically. An unknown key falls
// back to oid. Ties return 0 so a stable sort keeps input order.
func Comparator(sortKey string, direction types.SortDirection) func(a, b types.Order) int {
	base := compareFunc(sortKey)
	if direction == types.Descending {
		return func(a, b types.Order) int { return -base(a, b) }
	}
	return base
}

func compareFunc(sortKey string) func(a, b types.Order) int {
	switch sortKey {
	case types.SortKeyOid:
		return func(a, b types.Order) int { return cmp.Compare(a.Oid, b.Oid) }
	case types.SortKeyDays:
		return func(a, b types.Order) int { return cmp.Compare(a.DaysSinceOrder, b.DaysSinceOrder) }
	case string(types.FieldStatus):
		return func(a, b types.Order) int {
			return cmp.Compare(statusRank(a.StatusLeft), statusRank(b.StatusLeft))
		}
	case string(types.FieldType):
		return func(a, b types.Order) int { return cmp.Compare(a.Type, b.Type) }
	case string(types.FieldLock):
		return func(a, b types.Order) int { return cmp.Compare(a.Lock, b.Lock) }
	case string(types.FieldCustomer):
		return func(a, b types.Order) int { return cmp.Compare(a.Customer, b.Customer) }
	case string(types.FieldModel):
		return func(a, b types.Order) int { return cmp.Compare(a.Model, b.Model) }
	case string(types.FieldDesigner):
		return func(a, b types.Order) int { return cmp.Compare(a.Designer, b.Designer) }
	default:
		return func(a, b types.Order) int { return cmp.Compare(a.Oid, b.Oid) }
	}
}

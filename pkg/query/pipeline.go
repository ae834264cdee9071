package query

import (
	"slices"

	"github.com/matst80/slask-orders/pkg/facet"
	"github.com/matst80/slask-orders/pkg/sorting"
	"github.com/matst80/slask-orders/pkg/types"
)

// Run filters then stably sorts the collection. The input slice is never
// mutated and identical inputs always yield identical output, ties keep
// their input order.
func Run(orders []types.Order, filters types.FilterState, sortKey string, direction types.SortDirection) []types.Order {
	result := make([]types.Order, 0, len(orders))
	for _, o := range orders {
		if facet.Matches(o, filters) {
			result = append(result, o)
		}
	}
	slices.SortStableFunc(result, sorting.Comparator(sortKey, direction))
	queriesTotal.Inc()
	return result
}

package sorting

import "slices"

// StatusPriority ranks status values through the production flow. Sorting
// by status uses the index in this list, not lexicographic order.
var StatusPriority = []string{
	"Open Order",
	"Printing",
	"Drying",
	"QC",
	"Ready for Packaging",
	"Delivered",
}

// statusRank returns the priority index, -1 for a status not in the list.
// Unknown statuses therefore sort before "Open Order" when ascending.
func statusRank(status string) int {
	return slices.Index(StatusPriority, status)
}

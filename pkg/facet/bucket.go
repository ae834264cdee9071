package facet

import (
	"strconv"
	"strings"
)

// DayBuckets are the fixed days-since-order filter options. They are not
// derived from the dataset.
var DayBuckets = []string{"<5", "<15", "<30", "<60"}

// ParseBucket extracts the integer threshold from a bucket label like "<15".
// Malformed labels report false and match nothing.
func ParseBucket(label string) (int, bool) {
	rest, ok := strings.CutPrefix(label, "<")
	if !ok {
		return 0, false
	}
	threshold, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, false
	}
	return threshold, true
}

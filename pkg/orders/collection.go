package orders

import (
	"fmt"
	"io"

	"github.com/matst80/slask-orders/pkg/common/jsoncompat"
	"github.com/matst80/slask-orders/pkg/facet"
	"github.com/matst80/slask-orders/pkg/types"
)

// Collection holds the loaded order sequence for the process lifetime.
// Orders are never mutated after Load.
type Collection struct {
	items []types.Order
}

// Load validates and wraps an already-parsed record sequence. Types are
// trusted, only structurally impossible records are rejected: oid 0,
// negative days, duplicate oid.
func Load(records []types.Order) (*Collection, error) {
	seen := make(map[uint]struct{}, len(records))
	items := make([]types.Order, len(records))
	for i, o := range records {
		if o.Oid == 0 {
			return nil, fmt.Errorf("record %d: oid must be positive", i)
		}
		if o.DaysSinceOrder < 0 {
			return nil, fmt.Errorf("order %d: daysSinceOrder is negative", o.Oid)
		}
		if _, ok := seen[o.Oid]; ok {
			return nil, fmt.Errorf("order %d: duplicate oid", o.Oid)
		}
		seen[o.Oid] = struct{}{}
		items[i] = o
	}
	return &Collection{items: items}, nil
}

// LoadJSON reads a JSON array of orders from a bundled dataset file.
func LoadJSON(r io.Reader) (*Collection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var records []types.Order
	if err := jsoncompat.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding dataset: %w", err)
	}
	return Load(records)
}

func (c *Collection) Len() int {
	return len(c.items)
}

// All returns the loaded sequence. Callers must treat it as read-only.
func (c *Collection) All() []types.Order {
	return c.items
}

// UniqueValues returns the filter options for a field, first-seen order.
func (c *Collection) UniqueValues(field types.FilterField) []string {
	return facet.UniqueValues(c.items, field)
}

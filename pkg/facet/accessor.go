package facet

import (
	"github.com/matst80/slask-orders/pkg/types"
)

// Accessor resolves a filterable field to its values on an order. Strings
// returns every string the field contributes (status contributes both
// sides), Number is set only for numeric fields.
type Accessor struct {
	Strings func(o types.Order) []string
	Number  func(o types.Order) int
}

var accessors = map[types.FilterField]Accessor{
	types.FieldStatus: {
		Strings: func(o types.Order) []string { return []string{o.StatusLeft, o.StatusRight} },
	},
	types.FieldType: {
		Strings: func(o types.Order) []string { return []string{o.Type} },
	},
	types.FieldLock: {
		Strings: func(o types.Order) []string { return []string{o.Lock} },
	},
	types.FieldCustomer: {
		Strings: func(o types.Order) []string { return []string{o.Customer} },
	},
	types.FieldModel: {
		Strings: func(o types.Order) []string { return []string{o.Model} },
	},
	types.FieldDesigner: {
		Strings: func(o types.Order) []string { return []string{o.Designer} },
	},
	types.FieldDays: {
		Number: func(o types.Order) int { return o.DaysSinceOrder },
	},
}

// FieldStrings returns the string values an order contributes for a field,
// nil for numeric-only fields.
func FieldStrings(o types.Order, field types.FilterField) []string {
	acc, ok := accessors[field]
	if !ok || acc.Strings == nil {
		return nil
	}
	return acc.Strings(o)
}

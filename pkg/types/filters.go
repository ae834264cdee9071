package types

import "slices"

type FilterField string

const (
	FieldStatus   FilterField = "status"
	FieldType     FilterField = "type"
	FieldLock     FilterField = "lock"
	FieldCustomer FilterField = "customer"
	FieldModel    FilterField = "model"
	FieldDesigner FilterField = "designer"
	FieldDays     FilterField = "days"
)

// FilterFields lists every filterable field in display order.
var FilterFields = []FilterField{
	FieldStatus,
	FieldType,
	FieldLock,
	FieldCustomer,
	FieldModel,
	FieldDesigner,
	FieldDays,
}

func (f FilterField) Valid() bool {
	return slices.Contains(FilterFields, f)
}

// Selection is an ordered set of selected option values. Empty means
// "no restriction on this field", never "exclude everything".
type Selection []string

func (s Selection) Has(value string) bool {
	return slices.Contains(s, value)
}

func (s Selection) IsEmpty() bool {
	return len(s) == 0
}

func (s Selection) Values() []string {
	return slices.Clone(s)
}

func (s *Selection) Add(value string) {
	if !s.Has(value) {
		*s = append(*s, value)
	}
}

func (s *Selection) Remove(value string) {
	*s = slices.DeleteFunc(*s, func(v string) bool { return v == value })
}

func (s *Selection) Toggle(value string) {
	if s.Has(value) {
		s.Remove(value)
	} else {
		s.Add(value)
	}
}

// FilterState maps every filterable field to its current selection. Use
// NewFilterState or Normalize to guarantee all field keys are present.
type FilterState map[FilterField]Selection

func NewFilterState() FilterState {
	fs := make(FilterState, len(FilterFields))
	for _, f := range FilterFields {
		fs[f] = Selection{}
	}
	return fs
}

// Normalize defaults missing fields to empty selections and drops unknown
// field keys. Deserialized filter states go through here so a preset saved
// against an older shape still loads.
func (fs FilterState) Normalize() FilterState {
	out := NewFilterState()
	if fs == nil {
		return out
	}
	for _, f := range FilterFields {
		if sel, ok := fs[f]; ok && len(sel) > 0 {
			out[f] = slices.Clone(sel)
		}
	}
	return out
}

// Clone deep-copies the state. Saved presets snapshot through here so later
// mutations never reach them.
func (fs FilterState) Clone() FilterState {
	out := make(FilterState, len(fs))
	for f, sel := range fs {
		out[f] = slices.Clone(sel)
	}
	return out
}

func (fs FilterState) IsEmpty() bool {
	for _, sel := range fs {
		if len(sel) > 0 {
			return false
		}
	}
	return true
}

func (fs FilterState) Toggle(field FilterField, value string) {
	sel := fs[field]
	sel.Toggle(value)
	fs[field] = sel
}

func (fs FilterState) Set(field FilterField, values []string) {
	fs[field] = slices.Clone(values)
}

func (fs FilterState) Clear(field FilterField) {
	fs[field] = Selection{}
}

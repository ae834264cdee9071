package types

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

func (d SortDirection) Valid() bool {
	return d == Ascending || d == Descending
}

// Flip returns the opposite direction.
func (d SortDirection) Flip() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

const (
	SortKeyOid  = "oid"
	SortKeyDays = "days"
)

// SortKeys lists every accepted sort key. Unknown keys fall back to oid.
var SortKeys = []string{
	SortKeyOid,
	string(FieldStatus),
	string(FieldType),
	string(FieldLock),
	string(FieldCustomer),
	string(FieldModel),
	string(FieldDesigner),
	SortKeyDays,
}

// ViewState is the whole mutable UI state: filter selections, sort and the
// current page. It round-trips through JSON for session continuity.
type ViewState struct {
	Filters       FilterState   `json:"filters"`
	SortKey       string        `json:"sortKey"`
	SortDirection SortDirection `json:"sortDirection"`
	Page          int           `json:"page"`
}

func DefaultViewState() ViewState {
	return ViewState{
		Filters:       NewFilterState(),
		SortKey:       SortKeyOid,
		SortDirection: Ascending,
		Page:          1,
	}
}

// Sanitize repairs a deserialized view state in place: filter shape,
// direction, sort key and page all fall back to defaults when invalid.
func (v *ViewState) Sanitize() {
	v.Filters = v.Filters.Normalize()
	if !v.SortDirection.Valid() {
		v.SortDirection = Ascending
	}
	if v.SortKey == "" {
		v.SortKey = SortKeyOid
	}
	if v.Page < 1 {
		v.Page = 1
	}
}

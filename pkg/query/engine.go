package query

import (
	"github.com/matst80/slask-orders/pkg/orders"
	"github.com/matst80/slask-orders/pkg/types"
)

// StateSink receives the view state after every mutation, for session
// continuity. A nil sink disables persistence.
type StateSink interface {
	Persist(types.ViewState)
}

// Engine is the UI consumer contract: current filtered+sorted+paginated
// view, filter/sort mutators and option lists. Every filter or sort
// mutation resets pagination to page 1, stale page positions are never kept
// across a filter change.
type Engine struct {
	collection *orders.Collection
	state      types.ViewState
	pageSize   int
	sink       StateSink
}

func NewEngine(collection *orders.Collection, sink StateSink, pageSize int) *Engine {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Engine{
		collection: collection,
		state:      types.DefaultViewState(),
		pageSize:   pageSize,
		sink:       sink,
	}
}

// Restore replaces the whole view state, typically from a saved session.
func (e *Engine) Restore(v types.ViewState) {
	v.Sanitize()
	e.state = v
}

// State returns a snapshot of the current view state.
func (e *Engine) State() types.ViewState {
	snapshot := e.state
	snapshot.Filters = e.state.Filters.Clone()
	return snapshot
}

// View runs the pipeline and windows the result at the current page.
func (e *Engine) View() Page {
	result := Run(e.collection.All(), e.state.Filters, e.state.SortKey, e.state.SortDirection)
	return Paginate(result, e.pageSize, e.state.Page)
}

// Options returns the selectable values for a field's filter list.
func (e *Engine) Options(field types.FilterField) []string {
	return e.collection.UniqueValues(field)
}

func (e *Engine) mutated() {
	e.state.Page = 1
	mutationsTotal.Inc()
	if e.sink != nil {
		e.sink.Persist(e.state)
	}
}

// ToggleFilter flips one value in a field's selection.
func (e *Engine) ToggleFilter(field types.FilterField, value string) {
	if !field.Valid() {
		return
	}
	e.state.Filters.Toggle(field, value)
	e.mutated()
}

// SelectAll selects every known option for a field.
func (e *Engine) SelectAll(field types.FilterField) {
	if !field.Valid() {
		return
	}
	e.state.Filters.Set(field, e.collection.UniqueValues(field))
	e.mutated()
}

// ClearField empties one field's selection.
func (e *Engine) ClearField(field types.FilterField) {
	if !field.Valid() {
		return
	}
	e.state.Filters.Clear(field)
	e.mutated()
}

// ClearAll empties every selection.
func (e *Engine) ClearAll() {
	e.state.Filters = types.NewFilterState()
	e.mutated()
}

// SetSort changes the sort key and direction. An invalid direction falls
// back to ascending.
func (e *Engine) SetSort(sortKey string, direction types.SortDirection) {
	if !direction.Valid() {
		direction = types.Ascending
	}
	e.state.SortKey = sortKey
	e.state.SortDirection = direction
	e.mutated()
}

// Apply overwrites filters and sort wholesale, the preset-load path.
func (e *Engine) Apply(filters types.FilterState, sortKey string, direction types.SortDirection) {
	e.state.Filters = filters.Normalize()
	e.state.SortKey = sortKey
	if !direction.Valid() {
		direction = types.Ascending
	}
	e.state.SortDirection = direction
	e.mutated()
}

// SetPage moves to a page without touching filters. Out-of-range values are
// clamped by Paginate when rendering.
func (e *Engine) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	e.state.Page = page
	if e.sink != nil {
		e.sink.Persist(e.state)
	}
}

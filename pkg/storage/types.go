package storage

import "context"

// KeyValue is the persistent store collaborator: the local-storage analogue.
// Writes are whole-value replacements, there are no partial updates.
type KeyValue interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// Keys used by the engine inside a profile namespace.
const (
	KeyPresets       = "presets"
	KeyActivePreset  = "activePreset"
	KeyFilterState   = "filterState"
	KeySortKey       = "sortKey"
	KeySortDirection = "sortDirection"
	KeyProfileId     = "profileId"
)

package presets

import (
	"context"
	"log"
	"strings"

	"github.com/matst80/slask-orders/pkg/common/jsoncompat"
	"github.com/matst80/slask-orders/pkg/storage"
	"github.com/matst80/slask-orders/pkg/types"
)

// Preset is a named snapshot of filter selections plus sort key/direction.
// Snapshots are independent: mutating the live filter state never changes a
// saved preset.
type Preset struct {
	Name          string              `json:"name"`
	Filters       types.FilterState   `json:"filters"`
	SortKey       string              `json:"sortKey"`
	SortDirection types.SortDirection `json:"sortDirection"`
}

// Store keeps the preset collection and the active-preset pointer in a
// KeyValue store. The whole collection is rewritten on every change.
type Store struct {
	kv storage.KeyValue
}

func NewStore(kv storage.KeyValue) *Store {
	return &Store{kv: kv}
}

// read loads the stored collection. A corrupted or unreadable value is
// treated as "no presets", logged and counted, never an error.
func (s *Store) read(ctx context.Context) []Preset {
	raw, ok, err := s.kv.Get(ctx, storage.KeyPresets)
	if err != nil {
		log.Printf("Error reading presets: %v", err)
		return []Preset{}
	}
	if !ok {
		return []Preset{}
	}
	var list []Preset
	if err := jsoncompat.Unmarshal([]byte(raw), &list); err != nil {
		log.Printf("Corrupted preset collection, starting empty: %v", err)
		corruptionsTotal.Inc()
		return []Preset{}
	}
	if list == nil {
		list = []Preset{}
	}
	return list
}

func (s *Store) write(ctx context.Context, list []Preset) error {
	data, err := jsoncompat.Marshal(list)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, storage.KeyPresets, string(data))
}

// Save upserts a preset by name, replace-by-name semantics. The filter
// state is deep-copied so the snapshot stays independent.
func (s *Store) Save(ctx context.Context, name string, filters types.FilterState, sortKey string, direction types.SortDirection) (Preset, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Preset{}, types.ErrEmptyPresetName
	}
	if !direction.Valid() {
		direction = types.Ascending
	}
	preset := Preset{
		Name:          name,
		Filters:       filters.Normalize(),
		SortKey:       sortKey,
		SortDirection: direction,
	}
	list := s.read(ctx)
	replaced := false
	for i, p := range list {
		if p.Name == name {
			list[i] = preset
			replaced = true
			break
		}
	}
	if !replaced {
		list = append(list, preset)
	}
	if err := s.write(ctx, list); err != nil {
		return Preset{}, err
	}
	savesTotal.Inc()
	return preset, nil
}

// Load returns the stored tuple. Only the filter shape is repaired (missing
// fields default to empty selections); selections themselves come back
// exactly as saved, including values no longer present in the dataset.
func (s *Store) Load(ctx context.Context, name string) (Preset, error) {
	for _, p := range s.read(ctx) {
		if p.Name == name {
			p.Filters = p.Filters.Normalize()
			loadsTotal.Inc()
			return p, nil
		}
	}
	return Preset{}, types.ErrPresetNotFound
}

// Delete removes a preset, a no-op when absent. Deleting the active preset
// clears the active pointer.
func (s *Store) Delete(ctx context.Context, name string) error {
	list := s.read(ctx)
	kept := make([]Preset, 0, len(list))
	removed := false
	for _, p := range list {
		if p.Name == name {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	if !removed {
		return nil
	}
	if err := s.write(ctx, kept); err != nil {
		return err
	}
	if s.activeName(ctx) == name {
		if err := s.kv.Remove(ctx, storage.KeyActivePreset); err != nil {
			log.Printf("Error clearing active preset: %v", err)
		}
	}
	return nil
}

// List returns all presets in storage insertion order.
func (s *Store) List(ctx context.Context) []Preset {
	return s.read(ctx)
}

func (s *Store) activeName(ctx context.Context) string {
	name, ok, err := s.kv.Get(ctx, storage.KeyActivePreset)
	if err != nil || !ok {
		return ""
	}
	return name
}

// Active returns the active preset name. A pointer at a name no longer in
// the collection is cleared and reported as empty.
func (s *Store) Active(ctx context.Context) string {
	name := s.activeName(ctx)
	if name == "" {
		return ""
	}
	for _, p := range s.read(ctx) {
		if p.Name == name {
			return name
		}
	}
	if err := s.kv.Remove(ctx, storage.KeyActivePreset); err != nil {
		log.Printf("Error clearing stale active preset: %v", err)
	}
	return ""
}

// SetActive points the active preset at an existing name.
func (s *Store) SetActive(ctx context.Context, name string) error {
	for _, p := range s.read(ctx) {
		if p.Name == name {
			return s.kv.Set(ctx, storage.KeyActivePreset, name)
		}
	}
	return types.ErrUnknownPreset
}

// ClearActive drops the active preset pointer.
func (s *Store) ClearActive(ctx context.Context) {
	if err := s.kv.Remove(ctx, storage.KeyActivePreset); err != nil {
		log.Printf("Error clearing active preset: %v", err)
	}
}

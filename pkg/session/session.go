package session

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/matst80/slask-orders/pkg/common/jsoncompat"
	"github.com/matst80/slask-orders/pkg/storage"
	"github.com/matst80/slask-orders/pkg/types"
)

// ProfileID returns the stored profile id, generating and persisting one on
// first use. Engine keys are namespaced under it so a shared store can hold
// more than one profile.
func ProfileID(ctx context.Context, kv storage.KeyValue) (string, error) {
	id, ok, err := kv.Get(ctx, storage.KeyProfileId)
	if err != nil {
		return "", err
	}
	if ok && id != "" {
		return id, nil
	}
	id = uuid.New().String()
	if err := kv.Set(ctx, storage.KeyProfileId, id); err != nil {
		return "", err
	}
	return id, nil
}

// Session persists the last-used filter state, sort key and direction under
// their own keys after every mutation, independent of named presets.
type Session struct {
	kv storage.KeyValue
}

func New(kv storage.KeyValue) *Session {
	return &Session{kv: kv}
}

// Persist writes the view state. Failures are logged, the UI never blocks
// on storage.
func (s *Session) Persist(v types.ViewState) {
	ctx := context.Background()
	data, err := jsoncompat.Marshal(v.Filters)
	if err != nil {
		log.Printf("Error encoding filter state: %v", err)
		return
	}
	if err := s.kv.Set(ctx, storage.KeyFilterState, string(data)); err != nil {
		log.Printf("Error saving filter state: %v", err)
	}
	if err := s.kv.Set(ctx, storage.KeySortKey, v.SortKey); err != nil {
		log.Printf("Error saving sort key: %v", err)
	}
	if err := s.kv.Set(ctx, storage.KeySortDirection, string(v.SortDirection)); err != nil {
		log.Printf("Error saving sort direction: %v", err)
	}
}

// Restore rebuilds the last-used view state, falling back to defaults for
// anything absent or corrupted.
func (s *Session) Restore() types.ViewState {
	ctx := context.Background()
	v := types.DefaultViewState()

	if raw, ok, err := s.kv.Get(ctx, storage.KeyFilterState); err == nil && ok {
		var fs types.FilterState
		if err := jsoncompat.Unmarshal([]byte(raw), &fs); err != nil {
			log.Printf("Corrupted filter state, using defaults: %v", err)
		} else {
			v.Filters = fs
		}
	}
	if key, ok, err := s.kv.Get(ctx, storage.KeySortKey); err == nil && ok {
		v.SortKey = key
	}
	if dir, ok, err := s.kv.Get(ctx, storage.KeySortDirection); err == nil && ok {
		v.SortDirection = types.SortDirection(dir)
	}

	v.Sanitize()
	return v
}

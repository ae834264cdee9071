package presets

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matst80/slask-orders/pkg/storage"
	"github.com/matst80/slask-orders/pkg/types"
)

func makeFilters() types.FilterState {
	fs := types.NewFilterState()
	fs.Set(types.FieldStatus, []string{"Printing", "QC"})
	fs.Set(types.FieldDays, []string{"<15"})
	return fs
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	fs := makeFilters()

	if _, err := store.Save(ctx, "X", fs, "oid", types.Ascending); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	p, err := store.Load(ctx, "X")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff(fs, p.Filters); diff != "" {
		t.Errorf("Filters mismatch (-want +got):\n%s", diff)
	}
	if p.SortKey != "oid" || p.SortDirection != types.Ascending {
		t.Errorf("Expected oid/asc but got %s/%s", p.SortKey, p.SortDirection)
	}
}

func TestSave_EmptyNameRejected(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	for _, name := range []string{"", "   ", "\t"} {
		if _, err := store.Save(ctx, name, makeFilters(), "oid", types.Ascending); !errors.Is(err, types.ErrEmptyPresetName) {
			t.Errorf("Expected ErrEmptyPresetName for %q but got %v", name, err)
		}
	}
}

func TestSave_SnapshotIsIndependent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	fs := makeFilters()

	if _, err := store.Save(ctx, "X", fs, "oid", types.Ascending); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	fs.Toggle(types.FieldStatus, "Delivered")

	p, err := store.Load(ctx, "X")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Filters[types.FieldStatus].Has("Delivered") {
		t.Errorf("Expected saved preset to be unaffected by later mutation")
	}
}

func TestSave_OverwritesByName(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())

	store.Save(ctx, "X", makeFilters(), "oid", types.Ascending)
	store.Save(ctx, "Y", makeFilters(), "oid", types.Ascending)
	store.Save(ctx, "X", types.NewFilterState(), "days", types.Descending)

	list := store.List(ctx)
	if len(list) != 2 {
		t.Fatalf("Expected 2 presets but got %d", len(list))
	}
	// overwrite keeps insertion order
	if list[0].Name != "X" || list[1].Name != "Y" {
		t.Errorf("Expected order [X Y] but got [%s %s]", list[0].Name, list[1].Name)
	}
	if list[0].SortKey != "days" {
		t.Errorf("Expected overwrite to replace the tuple but got sort %s", list[0].SortKey)
	}
}

func TestLoad_NotFound(t *testing.T) {
	store := NewStore(storage.NewMemory())
	if _, err := store.Load(context.Background(), "nope"); !errors.Is(err, types.ErrPresetNotFound) {
		t.Errorf("Expected ErrPresetNotFound but got %v", err)
	}
}

func TestLoad_DefaultsMissingFilterFields(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	// a preset written by an older shape with only a status field
	kv.Set(ctx, storage.KeyPresets, `[{"name":"old","filters":{"status":["QC"]},"sortKey":"oid","sortDirection":"asc"}]`)

	p, err := NewStore(kv).Load(ctx, "old")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(p.Filters) != len(types.FilterFields) {
		t.Errorf("Expected full filter shape but got %d fields", len(p.Filters))
	}
	if !p.Filters[types.FieldStatus].Has("QC") {
		t.Errorf("Expected stored selection to survive defaulting")
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	store.Save(ctx, "X", makeFilters(), "oid", types.Ascending)

	if err := store.Delete(ctx, "absent"); err != nil {
		t.Errorf("Expected deleting a missing preset to be a no-op but got %v", err)
	}
	if err := store.Delete(ctx, "X"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(store.List(ctx)) != 0 {
		t.Errorf("Expected empty collection after delete")
	}
}

func TestDelete_ActivePointerCleared(t *testing.T) {
	ctx := context.Background()
	store := NewStore(storage.NewMemory())
	store.Save(ctx, "X", makeFilters(), "oid", types.Ascending)
	store.Save(ctx, "Y", makeFilters(), "oid", types.Ascending)

	if err := store.SetActive(ctx, "X"); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}
	store.Delete(ctx, "Y")
	if got := store.Active(ctx); got != "X" {
		t.Errorf("Expected deleting a non-active preset to keep the pointer but got %q", got)
	}
	store.Delete(ctx, "X")
	if got := store.Active(ctx); got != "" {
		t.Errorf("Expected deleting the active preset to clear the pointer but got %q", got)
	}
}

func TestSetActive_UnknownName(t *testing.T) {
	store := NewStore(storage.NewMemory())
	if err := store.SetActive(context.Background(), "ghost"); !errors.Is(err, types.ErrUnknownPreset) {
		t.Errorf("Expected ErrUnknownPreset but got %v", err)
	}
}

func TestActive_StalePointerCleared(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	kv.Set(ctx, storage.KeyActivePreset, "ghost")

	store := NewStore(kv)
	if got := store.Active(ctx); got != "" {
		t.Errorf("Expected stale pointer to read as empty but got %q", got)
	}
	if _, ok, _ := kv.Get(ctx, storage.KeyActivePreset); ok {
		t.Errorf("Expected stale pointer to be removed from storage")
	}
}

func TestRead_CorruptedCollection(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemory()
	kv.Set(ctx, storage.KeyPresets, "{definitely not json")

	store := NewStore(kv)
	if got := store.List(ctx); len(got) != 0 {
		t.Errorf("Expected corrupted storage to read as empty but got %d presets", len(got))
	}
	// the store must stay usable afterwards
	if _, err := store.Save(ctx, "fresh", makeFilters(), "oid", types.Ascending); err != nil {
		t.Errorf("Expected save after corruption to work but got %v", err)
	}
	if got := store.List(ctx); len(got) != 1 {
		t.Errorf("Expected 1 preset after recovery but got %d", len(got))
	}
}

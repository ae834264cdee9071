package types

import "errors"

var (
	// ErrEmptyPresetName is returned when saving a preset with a blank name.
	ErrEmptyPresetName = errors.New("preset name is empty")
	// ErrPresetNotFound is returned when loading a preset that does not exist.
	ErrPresetNotFound = errors.New("preset not found")
	// ErrUnknownPreset is returned when pointing the active preset at a name
	// that is not in the collection.
	ErrUnknownPreset = errors.New("unknown preset name")
)

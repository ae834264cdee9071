package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/natefinch/atomic"
)

// Disk stores one file per key under a root folder. Writes go through a
// temp file and rename so a crash never leaves a half-written value.
type Disk struct {
	RootFolder string
}

func NewDisk(rootFolder string) (*Disk, error) {
	if err := os.MkdirAll(rootFolder, 0o755); err != nil {
		return nil, fmt.Errorf("creating storage folder: %w", err)
	}
	return &Disk{RootFolder: rootFolder}, nil
}

func (d *Disk) fileName(key string) string {
	// keys may carry a profile prefix like "<uuid>:presets"
	safe := strings.ReplaceAll(key, ":", "_")
	safe = strings.ReplaceAll(safe, string(os.PathSeparator), "_")
	return path.Join(d.RootFolder, safe+".json")
}

func (d *Disk) Get(_ context.Context, key string) (string, bool, error) {
	data, err := os.ReadFile(d.fileName(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, err
	}
	return string(data), true, nil
}

func (d *Disk) Set(_ context.Context, key, value string) error {
	return atomic.WriteFile(d.fileName(key), strings.NewReader(value))
}

func (d *Disk) Remove(_ context.Context, key string) error {
	err := os.Remove(d.fileName(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

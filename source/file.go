package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is a GraphSource reading a snapshot document from disk. Documents
// ending in .yaml or .yml decode as YAML; everything else decodes as JSON.
type File struct {
	path string
}

// NewFile creates a file source for the given path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Load reads and decodes the snapshot document. A missing file is an empty
// graph, not an error; malformed documents fail.
func (f *File) Load(ctx context.Context) (Snapshot, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Snapshot{}, nil
		}
		return Snapshot{}, fmt.Errorf("read snapshot %s: %w", f.path, err)
	}

	var snap Snapshot
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return Snapshot{}, fmt.Errorf("decode yaml snapshot %s: %w", f.path, err)
		}
	default:
		if err := json.Unmarshal(data, &snap); err != nil {
			return Snapshot{}, fmt.Errorf("decode json snapshot %s: %w", f.path, err)
		}
	}
	return snap, nil
}

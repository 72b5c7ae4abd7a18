package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// AppDirName is the directory under the XDG config home holding the settings file.
const AppDirName = "korapay-cli"

// FileBackend stores the record as a JSON object on disk.
type FileBackend struct {
	path string
}

// DefaultPath returns the XDG-compliant settings file path.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppDirName, "settings.json")
}

// NewFileBackend creates a file backend rooted at path, creating the parent
// directory if needed.
func NewFileBackend(path string) (*FileBackend, error) {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, &Error{Op: "create directory", Err: err}
	}

	return &FileBackend{path: path}, nil
}

// Load reads the record from disk.
func (f *FileBackend) Load(ctx context.Context) (Record, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, &Error{Op: "read", Err: err}
	}

	record := make(Record)
	if strings.TrimSpace(string(data)) == "" {
		return record, nil
	}

	if err := json.Unmarshal(data, &record); err != nil {
		return nil, &Error{Op: "read", Err: fmt.Errorf("failed to parse %s: %w", f.path, err)}
	}
	if record == nil {
		record = make(Record)
	}

	return record, nil
}

// Save writes the record with a temp file and rename so a crash never leaves
// a truncated file behind.
func (f *FileBackend) Save(ctx context.Context, record Record) error {
	if record == nil {
		record = make(Record)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return &Error{Op: "write", Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return &Error{Op: "create directory", Err: err}
	}

	tmpPath := f.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return &Error{Op: "write", Err: err}
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		_ = os.Remove(tmpPath)
		return &Error{Op: "write", Err: err}
	}

	return nil
}

// Location returns the settings file path.
func (f *FileBackend) Location() string {
	return f.path
}

// Package settings persists the CLI's named string settings.
//
// The settings record is a flat map of string keys to string values. The
// three API credentials live here, but the record is schema-free: any key can
// be stored. A Service caches the record for the lifetime of one process and
// writes every change through to its Backend immediately.
//
// # Backends
//
//   - file: JSON object at $XDG_CONFIG_HOME/korapay-cli/settings.json
//   - keyring: the whole record as a single secret in the OS keyring
//   - memory: process-local, used in tests
//
// # Example Usage
//
//	backend, _ := settings.NewBackend(settings.BackendFile, "")
//	svc := settings.NewService(backend)
//
//	_ = svc.Set(ctx, settings.PublicKey, "pk_test_...")
//	value, ok, _ := svc.Get(ctx, settings.PublicKey)
//
// Concurrent CLI invocations are not synchronized against each other; the
// last writer wins.
package settings

import (
	"context"
	"errors"
	"fmt"
)

// Well-known setting names.
const (
	PublicKey     = "public_key"
	SecretKey     = "secret_key"
	EncryptionKey = "encryption_key"
)

// Backend kinds accepted by NewBackend.
const (
	BackendFile    = "file"
	BackendKeyring = "keyring"
	BackendMemory  = "memory"
)

// ErrNotFound is returned by a Backend when no record has been persisted yet.
var ErrNotFound = errors.New("settings record not found")

// Record maps setting names to values.
type Record map[string]string

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Backend loads and saves the full settings record.
type Backend interface {
	// Load returns the persisted record, or ErrNotFound if none exists.
	Load(ctx context.Context) (Record, error)
	// Save replaces the persisted record.
	Save(ctx context.Context, record Record) error
	// Location describes where the record lives, for display.
	Location() string
}

// NewBackend creates a backend by kind. path only applies to the file
// backend; an empty path selects the XDG default.
func NewBackend(kind, path string) (Backend, error) {
	switch kind {
	case "", BackendFile:
		return NewFileBackend(path)
	case BackendKeyring:
		return NewKeyringBackend(KeyringService, KeyringUser), nil
	case BackendMemory:
		return NewMemoryBackend(), nil
	default:
		return nil, &Error{Op: "open", Err: fmt.Errorf("unsupported settings backend: %s", kind)}
	}
}

// Error reports a failure to read or write the settings record. It is
// distinct from provider errors: the invocation cannot continue.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("settings %s failed: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// MissingCredentialError reports a required credential that was never set.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s is not configured, run `korapay config credentials` first", e.Name)
}

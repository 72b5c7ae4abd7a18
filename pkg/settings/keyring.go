package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// Default keyring coordinates.
const (
	KeyringService = "korapay-cli"
	KeyringUser    = "settings"
)

// KeyringBackend stores the record as one JSON secret in the OS keyring.
type KeyringBackend struct {
	service string
	user    string
}

// NewKeyringBackend creates a keyring backend.
func NewKeyringBackend(service, user string) *KeyringBackend {
	if service == "" {
		service = KeyringService
	}
	if user == "" {
		user = KeyringUser
	}
	return &KeyringBackend{service: service, user: user}
}

// Load reads the record from the keyring.
func (k *KeyringBackend) Load(ctx context.Context) (Record, error) {
	data, err := keyring.Get(k.service, k.user)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, &Error{Op: "read", Err: fmt.Errorf("keyring: %w", err)}
	}

	record := make(Record)
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, &Error{Op: "read", Err: fmt.Errorf("keyring entry is not a settings record: %w", err)}
	}

	return record, nil
}

// Save replaces the keyring secret.
func (k *KeyringBackend) Save(ctx context.Context, record Record) error {
	if record == nil {
		record = make(Record)
	}

	data, err := json.Marshal(record)
	if err != nil {
		return &Error{Op: "write", Err: err}
	}

	if err := keyring.Set(k.service, k.user, string(data)); err != nil {
		return &Error{Op: "write", Err: fmt.Errorf("keyring: %w", err)}
	}

	return nil
}

// Location returns a description of the keyring entry.
func (k *KeyringBackend) Location() string {
	return fmt.Sprintf("keyring://%s/%s", k.service, k.user)
}

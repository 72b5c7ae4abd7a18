package settings

import (
	"context"
	"errors"
)

// Service caches the settings record for one process and writes changes
// through to its Backend.
type Service struct {
	backend Backend
	cached  Record
}

// NewService creates a settings service over backend.
func NewService(backend Backend) *Service {
	return &Service{backend: backend}
}

// Backend returns the underlying backend.
func (s *Service) Backend() Backend {
	return s.backend
}

// LoadOrInit returns the cached record, loading it on first use. A missing
// record is created empty and persisted. Later calls never re-read the
// backend until Invalidate or ResetAll is called.
func (s *Service) LoadOrInit(ctx context.Context) (Record, error) {
	if s.cached != nil {
		return s.cached.Clone(), nil
	}

	record, err := s.backend.Load(ctx)
	if errors.Is(err, ErrNotFound) {
		record = make(Record)
		if err := s.backend.Save(ctx, record); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	s.cached = record
	return s.cached.Clone(), nil
}

// Get returns the value stored under name and whether it was set.
func (s *Service) Get(ctx context.Context, name string) (string, bool, error) {
	record, err := s.LoadOrInit(ctx)
	if err != nil {
		return "", false, err
	}
	value, ok := record[name]
	return value, ok, nil
}

// Set upserts name and persists the full record immediately.
func (s *Service) Set(ctx context.Context, name, value string) error {
	if _, err := s.LoadOrInit(ctx); err != nil {
		return err
	}

	next := s.cached.Clone()
	next[name] = value
	if err := s.backend.Save(ctx, next); err != nil {
		return err
	}

	s.cached = next
	return nil
}

// SetAll upserts several values with a single write.
func (s *Service) SetAll(ctx context.Context, values Record) error {
	if _, err := s.LoadOrInit(ctx); err != nil {
		return err
	}

	next := s.cached.Clone()
	for k, v := range values {
		next[k] = v
	}
	if err := s.backend.Save(ctx, next); err != nil {
		return err
	}

	s.cached = next
	return nil
}

// ResetAll persists an empty record and drops the cache.
func (s *Service) ResetAll(ctx context.Context) error {
	s.Invalidate()
	return s.backend.Save(ctx, make(Record))
}

// Invalidate drops the cached record so the next read goes to the backend.
func (s *Service) Invalidate() {
	s.cached = nil
}

// Credentials holds the three API keys.
type Credentials struct {
	PublicKey     string
	SecretKey     string
	EncryptionKey string
}

// Credentials returns the stored API keys. Every key must be present and
// non-empty; the first missing one is reported as a MissingCredentialError.
func (s *Service) Credentials(ctx context.Context) (Credentials, error) {
	record, err := s.LoadOrInit(ctx)
	if err != nil {
		return Credentials{}, err
	}

	for _, name := range []string{PublicKey, SecretKey, EncryptionKey} {
		if record[name] == "" {
			return Credentials{}, &MissingCredentialError{Name: name}
		}
	}

	return Credentials{
		PublicKey:     record[PublicKey],
		SecretKey:     record[SecretKey],
		EncryptionKey: record[EncryptionKey],
	}, nil
}

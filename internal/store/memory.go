package store

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryProfileRepo is an in-process ProfileRepo. It backs tests and
// one-shot runs that should not touch the disk.
//
// GetErr and SetErr, when set, are returned by every Get or Set call so
// callers can exercise their failure paths.
type MemoryProfileRepo struct {
	mu     sync.Mutex
	values map[string]json.RawMessage

	GetErr error
	SetErr error

	// Writes records every successful Set key in order.
	Writes []string
}

// NewMemoryProfileRepo creates an empty MemoryProfileRepo.
func NewMemoryProfileRepo() *MemoryProfileRepo {
	return &MemoryProfileRepo{values: make(map[string]json.RawMessage)}
}

func (m *MemoryProfileRepo) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	v, ok := m.values[key]
	if !ok {
		return nil, false, nil
	}
	out := make(json.RawMessage, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryProfileRepo) Set(_ context.Context, key string, value json.RawMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SetErr != nil {
		return m.SetErr
	}
	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	m.values[key] = stored
	m.Writes = append(m.Writes, key)
	return nil
}

func (m *MemoryProfileRepo) Has(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.GetErr != nil {
		return false, m.GetErr
	}
	_, ok := m.values[key]
	return ok, nil
}

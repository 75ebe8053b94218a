package keyval

import (
	"context"
	"sync"
)

type memoryStore struct {
	slots map[string]string
	mutex sync.RWMutex
}

// NewMemory keeps slots in process memory. Used by the test suites and by
// DATA_BACKEND=memory for throwaway runs; contents do not survive a restart.
func NewMemory() Store {
	return &memoryStore{slots: make(map[string]string)}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	value, ok := m.slots[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.slots[key] = value
	return nil
}

package mock

import (
	"errors"
	"sort"
	"sync"
)

// ErrInjected is returned by a Store whose failure switches are set.
var ErrInjected = errors.New("injected storage failure")

// Store is an in-memory repositories.Store for tests.
type Store struct {
	collections map[string][]byte
	mutex       sync.RWMutex

	// FailReads and FailWrites make every Read or Write return ErrInjected.
	FailReads  bool
	FailWrites bool
	// Writes counts successful writes.
	Writes int
}

func NewStore() *Store {
	return &Store{collections: make(map[string][]byte)}
}

func (m *Store) Read(name string) ([]byte, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.FailReads {
		return nil, ErrInjected
	}
	data, exists := m.collections[name]
	if !exists {
		return nil, nil
	}
	return append([]byte(nil), data...), nil
}

func (m *Store) Write(name string, data []byte) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.FailWrites {
		return ErrInjected
	}
	m.collections[name] = append([]byte(nil), data...)
	m.Writes++
	return nil
}

func (m *Store) Collections() ([]string, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *Store) Close() error {
	return nil
}

// Set stores raw data for a collection, bypassing failure switches.
func (m *Store) Set(name string, data []byte) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.collections[name] = append([]byte(nil), data...)
}

// Clear removes every collection.
func (m *Store) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.collections = make(map[string][]byte)
	m.Writes = 0
}

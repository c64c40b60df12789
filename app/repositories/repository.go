package repositories

import (
	"bytes"
	"errors"
	"fmt"
	"sync"
)

// errUnchanged tells collection.update that nothing needs to be written.
var errUnchanged = errors.New("collection unchanged")

// Repository wraps a Store and serializes read-modify-write cycles per
// collection, so concurrent requests in one process never lose updates.
// Reads are not serialized: every backend replaces a collection atomically.
type Repository struct {
	store Store
	mutex sync.Mutex
	locks map[string]*sync.Mutex
}

func NewRepository(store Store) *Repository {
	return &Repository{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// Store returns the underlying store.
func (r *Repository) Store() Store {
	return r.store
}

func (r *Repository) Close() error {
	return r.store.Close()
}

func (r *Repository) lockFor(name string) *sync.Mutex {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	mu, ok := r.locks[name]
	if !ok {
		mu = &sync.Mutex{}
		r.locks[name] = mu
	}
	return mu
}

// collection is a typed view of one named collection.
type collection[T any] struct {
	repo *Repository
	name string
}

func newCollection[T any](repo *Repository, name string) collection[T] {
	return collection[T]{repo: repo, name: name}
}

// load decodes the whole collection. A collection that was never written is
// empty; one that cannot be decoded is an error.
func (c collection[T]) load() ([]T, error) {
	data, err := c.repo.store.Read(c.name)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, c.name, err)
	}

	records := []T{}
	if len(bytes.TrimSpace(data)) == 0 {
		return records, nil
	}
	if err := unmarshalEntity(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, c.name, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

func (c collection[T]) save(records []T) error {
	data, err := marshalEntity(records)
	if err != nil {
		return err
	}
	if err := c.repo.store.Write(c.name, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, c.name, err)
	}
	return nil
}

// update loads the collection, applies fn and writes the result back while
// holding the collection lock. If fn returns an error nothing is written;
// errUnchanged is swallowed and reported as success.
func (c collection[T]) update(fn func(records []T) ([]T, error)) error {
	mu := c.repo.lockFor(c.name)
	mu.Lock()
	defer mu.Unlock()

	records, err := c.load()
	if err != nil {
		return err
	}
	updated, err := fn(records)
	if errors.Is(err, errUnchanged) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.save(updated)
}

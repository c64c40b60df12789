package repositories

import (
	"fmt"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// CollectionKeyPrefix prefixes the badger key of every collection.
const CollectionKeyPrefix = "collection:"

// BadgerStore keeps each collection under a single BadgerDB key.
type BadgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens a badger database at path. An empty path opens an
// in-memory database.
func NewBadgerStore(path string) (*BadgerStore, error) {
	var opts badger.Options
	if path == "" {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}
	opts = opts.
		WithLogger(nil).
		WithNumVersionsToKeep(1)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open badger db: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func collectionKey(name string) []byte {
	return []byte(CollectionKeyPrefix + name)
}

func (s *BadgerStore) Read(name string) ([]byte, error) {
	if err := checkCollectionName(name); err != nil {
		return nil, err
	}

	var data []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(collectionKey(name))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		data, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *BadgerStore) Write(name string, data []byte) error {
	if err := checkCollectionName(name); err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(collectionKey(name), data)
	})
}

func (s *BadgerStore) Collections() ([]string, error) {
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CollectionKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), CollectionKeyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}

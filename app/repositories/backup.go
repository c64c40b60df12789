package repositories

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// Snapshot is the backup format shared by all store backends.
type Snapshot struct {
	CreatedAt   time.Time                  `json:"createdAt"`
	Collections map[string]json.RawMessage `json:"collections"`
}

// Backup writes every collection of store to w and returns how many
// collections were written.
func Backup(store Store, w io.Writer) (int, error) {
	names, err := store.Collections()
	if err != nil {
		return 0, fmt.Errorf("failed to list collections: %w", err)
	}

	snapshot := Snapshot{
		CreatedAt:   now(),
		Collections: make(map[string]json.RawMessage, len(names)),
	}
	for _, name := range names {
		data, err := store.Read(name)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", name, err)
		}
		if len(data) == 0 {
			data = []byte("[]")
		}
		if !json.Valid(data) {
			return 0, fmt.Errorf("%w: %s", ErrCorruptCollection, name)
		}
		snapshot.Collections[name] = data
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snapshot); err != nil {
		return 0, fmt.Errorf("failed to write backup: %w", err)
	}
	return len(names), nil
}

// Restore writes every collection found in the backup read from r into store,
// replacing existing contents, and returns the restored collection names.
func Restore(store Store, r io.Reader) ([]string, error) {
	var snapshot Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode backup: %w", err)
	}

	names := make([]string, 0, len(snapshot.Collections))
	for name := range snapshot.Collections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		data := snapshot.Collections[name]
		var records []json.RawMessage
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruptCollection, name, err)
		}
		if err := store.Write(name, data); err != nil {
			return nil, fmt.Errorf("failed to restore %s: %w", name, err)
		}
	}
	return names, nil
}

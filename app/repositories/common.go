package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID generates record identifiers. Replaced in tests.
var newID = func() string {
	return uuid.NewString()
}

// now returns the creation timestamp for new records. Replaced in tests.
var now = func() time.Time {
	return time.Now().UTC()
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}

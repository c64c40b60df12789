package repositories

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrNotFound = errors.New("record not found")

	// ErrStorageUnavailable wraps failures of the underlying store.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrCorruptCollection is returned when a stored collection cannot be
	// decoded. It is never reported as an empty collection.
	ErrCorruptCollection = errors.New("corrupt collection")
)

// Collection names.
const (
	PostsCollection      = "posts"
	CommentsCollection   = "comments"
	NewsletterCollection = "newsletter"
	ContactCollection    = "contact"
)

// Store persists named collections, each as one JSON-encoded array.
type Store interface {
	// Read returns the encoded collection, or nil if it was never written.
	Read(name string) ([]byte, error)
	// Write replaces the whole collection.
	Write(name string, data []byte) error
	// Collections lists the names of the collections that exist.
	Collections() ([]string, error)
	Close() error
}

var collectionNamePattern = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

func checkCollectionName(name string) error {
	if !collectionNamePattern.MatchString(name) {
		return fmt.Errorf("invalid collection name %q", name)
	}
	return nil
}

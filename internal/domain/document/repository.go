package document

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Load when no document is stored under name.
var ErrNotFound = errors.New("document not found")

// Store persists whole text documents (matches.csv, roster.json,
// awards.json) by name. Implementations do not order concurrent writers;
// callers serialize their own writes.
type Store interface {
	Load(ctx context.Context, name string) ([]byte, error)
	Save(ctx context.Context, name string, data []byte) error
}

// Package store persists named trees for the HTTP service.
//
// Trees are stored as canonical Newick text under a caller-chosen name and
// re-parsed on the way out, so anything retrieved from a store is known to
// be well formed. Backends:
//   - [MemoryStore]: in-process storage for development and tests
//   - [MongoStore]: MongoDB-backed storage for deployments that need
//     trees to survive restarts or be shared across instances
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no tree with the requested name exists.
var ErrNotFound = errors.New("tree not found")

// Tree is one stored tree.
type Tree struct {
	Name      string    `bson:"_id" json:"name"`
	Newick    string    `bson:"newick" json:"newick"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Store is the interface all tree-store backends implement.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a tree by name. Returns ErrNotFound if absent.
	Get(ctx context.Context, name string) (*Tree, error)

	// Put stores a tree, replacing any existing tree with the same name.
	Put(ctx context.Context, t *Tree) error

	// Delete removes a tree. Returns ErrNotFound if absent.
	Delete(ctx context.Context, name string) error

	// List returns all stored trees sorted by name.
	List(ctx context.Context) ([]Tree, error)

	// Close releases any backend resources.
	Close() error
}

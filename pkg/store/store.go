// Package store persists assembled figure documents so the server can
// return them by ID later. Two backends are provided:
//   - memory: in-memory storage for development and testing
//   - mongo: MongoDB-backed storage for production deployments
//
// Records carry the figure document JSON plus enough metadata to list and
// re-render them. IDs are UUIDs assigned on first save.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")
)

// Record is a stored figure document with its source metadata.
type Record struct {
	ID        string    `bson:"_id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Source    string    `bson:"source,omitempty" json:"source,omitempty"`
	Doc       []byte    `bson:"doc" json:"doc"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Store is the interface for figure document storage backends.
type Store interface {
	// Put saves a record, assigning an ID and timestamps on first save.
	Put(ctx context.Context, rec *Record) error

	// Get retrieves a record by ID. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns all records ordered by creation time, newest first.
	// Record bodies are included; callers listing large stores should
	// drop the Doc field before serializing.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}

// prepare assigns the ID and timestamps a record needs before storage.
func prepare(rec *Record) {
	now := time.Now().UTC()
	if rec.ID == "" {
		rec.ID = uuid.NewString()
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
}

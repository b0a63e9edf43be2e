package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-world/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze record persistence.
type MazeRepo interface {
	// Save inserts or updates a maze record.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its ID.
	// Returns an error wrapping ErrMazeNotFound when there is no such record.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// Delete removes a maze record. Deleting a missing record is an error.
	Delete(ctx context.Context, id uuid.UUID) error
}

package i

import (
	"context"

	"github.com/google/uuid"
)

// WorldCache keeps rendered world documents keyed by maze ID.
type WorldCache interface {
	// GetOrBuild returns the cached document, calling build and caching its
	// result on a miss. Concurrent misses for one ID call build once.
	GetOrBuild(ctx context.Context, id uuid.UUID, build func() ([]byte, error)) ([]byte, error)

	// Put stores a document, replacing any previous one.
	Put(ctx context.Context, id uuid.UUID, world []byte) error

	// Invalidate drops a document.
	Invalidate(ctx context.Context, id uuid.UUID) error
}

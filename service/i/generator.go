package i

import (
	"context"

	dmn "github.com/beka-birhanu/maze-world/domain"
	"github.com/beka-birhanu/maze-world/maze"
	"github.com/google/uuid"
)

// GenerateRequest describes the maze to build. Nil pointers take defaults.
type GenerateRequest struct {
	Size     int
	CellSize float64
	Seed     *int64
	Entrance *maze.Opening
	Exit     *maze.Opening
}

// GenerateResult is a freshly generated and stored maze.
type GenerateResult struct {
	Record     *dmn.MazeRecord
	Stats      maze.Stats
	World      []byte
	ASCII      string
	OwnerToken string
}

// MazeGenerator generates, stores and serves mazes.
type MazeGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
	World(ctx context.Context, id uuid.UUID) ([]byte, error)
	ASCII(ctx context.Context, id uuid.UUID) (string, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

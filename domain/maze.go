// Package domain holds the records shared by the service and storage layers.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/maze-world/geometry"
	"github.com/beka-birhanu/maze-world/maze"
	"github.com/google/uuid"
)

var ErrMazeNotFound = errors.New("maze not found")

// MazeRecord is everything needed to rebuild a generated maze bit for bit:
// the carver is deterministic for a given size, seed and pair of openings.
type MazeRecord struct {
	ID        uuid.UUID      `bson:"_id" json:"id"`
	Size      int            `bson:"size" json:"size"`
	Seed      int64          `bson:"seed" json:"seed"`
	Entrance  maze.Opening   `bson:"entrance" json:"entrance"`
	Exit      maze.Opening   `bson:"exit" json:"exit"`
	Style     geometry.Style `bson:"style" json:"style"`
	WallCount int            `bson:"wallCount" json:"wall_count"`
	CreatedAt time.Time      `bson:"createdAt" json:"created_at"`
}

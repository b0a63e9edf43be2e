// Package mazeapi exposes maze generation over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/maze-world/domain"
	"github.com/beka-birhanu/maze-world/maze"
	"github.com/google/uuid"
)

// GenerateRequest represents a request to generate a new maze.
// Openings use the "x,y,edge" form, empty ones take the defaults.
type GenerateRequest struct {
	Size     int     `json:"size" binding:"required,min=1"`
	CellSize float64 `json:"cell_size" binding:"gte=0"`
	Seed     *int64  `json:"seed"`
	Entrance string  `json:"entrance"`
	Exit     string  `json:"exit"`
}

// MazeResponse describes a stored maze.
type MazeResponse struct {
	ID        uuid.UUID `json:"id"`
	Size      int       `json:"size"`
	Seed      int64     `json:"seed"`
	CellSize  float64   `json:"cell_size"`
	Entrance  string    `json:"entrance"`
	Exit      string    `json:"exit"`
	WallCount int       `json:"wall_count"`
	CreatedAt time.Time `json:"created_at"`
}

// GenerateResponse is returned once for a new maze, it carries the token
// needed to delete it.
type GenerateResponse struct {
	MazeResponse
	Stats      maze.Stats `json:"stats"`
	OwnerToken string     `json:"owner_token,omitempty"`
}

func toMazeResponse(r *dmn.MazeRecord) MazeResponse {
	return MazeResponse{
		ID:        r.ID,
		Size:      r.Size,
		Seed:      r.Seed,
		CellSize:  r.Style.CellSize,
		Entrance:  r.Entrance.String(),
		Exit:      r.Exit.String(),
		WallCount: r.WallCount,
		CreatedAt: r.CreatedAt,
	}
}

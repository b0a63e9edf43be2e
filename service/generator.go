package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/maze-world/domain"
	"github.com/beka-birhanu/maze-world/geometry"
	"github.com/beka-birhanu/maze-world/maze"
	"github.com/beka-birhanu/maze-world/service/i"
	"github.com/beka-birhanu/maze-world/world"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	"github.com/google/uuid"
)

const (
	maxMazeSize          = 100
	defaultOwnerTokenTTL = 24 * time.Hour

	// ClaimMazeID is the owner token claim naming the maze it grants access to.
	ClaimMazeID = "mazeID"
)

var (
	ErrSizeTooLarge       = fmt.Errorf("maze size must be at most %d", maxMazeSize)
	ErrInvalidCellSize    = errors.New("cell size must be positive")
	ErrDegenerateMaze     = errors.New("carving removed no walls")
	ErrStorageUnavailable = errors.New("maze storage is not configured")
)

// Generator builds mazes, renders them into world documents and keeps
// enough of each to rebuild it later.
type Generator struct {
	repo      i.MazeRepo
	cache     i.WorldCache
	tokenizer i.Tokenizer
	assembler *world.Assembler
	style     geometry.Style
	tokenTTL  time.Duration
	logger    general_i.Logger
}

// Config holds the Generator's collaborators. Repo, Cache and Tokenizer may
// be nil when only WriteWorld is used.
type Config struct {
	Repo      i.MazeRepo
	Cache     i.WorldCache
	Tokenizer i.Tokenizer
	Assembler *world.Assembler
	Style     geometry.Style // base style, its CellSize is the default cell size
	TokenTTL  time.Duration
	Logger    general_i.Logger
}

// NewGenerator validates the configuration and returns a Generator.
func NewGenerator(c *Config) (*Generator, error) {
	if c.Assembler == nil {
		return nil, errors.New("generator requires a world assembler")
	}
	if c.Logger == nil {
		return nil, errors.New("generator requires a logger")
	}
	if err := c.Style.Validate(); err != nil {
		return nil, err
	}

	ttl := c.TokenTTL
	if ttl <= 0 {
		ttl = defaultOwnerTokenTTL
	}

	return &Generator{
		repo:      c.Repo,
		cache:     c.Cache,
		tokenizer: c.Tokenizer,
		assembler: c.Assembler,
		style:     c.Style,
		tokenTTL:  ttl,
		logger:    c.Logger,
	}, nil
}

// rendered is one built maze and its derived outputs.
type rendered struct {
	grid  *maze.Grid
	stats maze.Stats
	walls []geometry.Wall
	world []byte
}

// resolve fills request defaults and turns it into a record without an ID.
func (g *Generator) resolve(req i.GenerateRequest) (*dmn.MazeRecord, error) {
	if req.Size <= 0 {
		return nil, fmt.Errorf("%w: got %d", maze.ErrInvalidSize, req.Size)
	}
	if req.Size > maxMazeSize {
		return nil, ErrSizeTooLarge
	}

	style := g.style
	if req.CellSize < 0 {
		return nil, ErrInvalidCellSize
	}
	if req.CellSize > 0 {
		style.CellSize = req.CellSize
	}

	record := &dmn.MazeRecord{
		Size:     req.Size,
		Entrance: maze.DefaultEntrance(),
		Exit:     maze.DefaultExit(req.Size),
		Style:    style,
	}
	if req.Seed != nil {
		record.Seed = *req.Seed
	} else {
		record.Seed = maze.RandomSeed()
	}
	if req.Entrance != nil {
		record.Entrance = *req.Entrance
	}
	if req.Exit != nil {
		record.Exit = *req.Exit
	}
	return record, nil
}

// render rebuilds the maze a record describes.
func (g *Generator) render(record *dmn.MazeRecord) (*rendered, error) {
	grid, stats, err := maze.Generate(record.Size,
		maze.WithSeed(record.Seed),
		maze.WithEntrance(record.Entrance),
		maze.WithExit(record.Exit),
	)
	if err != nil {
		return nil, err
	}
	if record.Size > 1 && stats.Removed == 0 {
		return nil, ErrDegenerateMaze
	}

	walls, err := geometry.Emit(grid, record.Style)
	if err != nil {
		return nil, err
	}

	doc, err := g.assembler.Render(walls, geometry.FloorSize(record.Size, record.Style))
	if err != nil {
		return nil, err
	}

	return &rendered{grid: grid, stats: stats, walls: walls, world: doc}, nil
}

// Generate builds a maze, stores its record, caches its world document and
// issues an owner token for it.
func (g *Generator) Generate(ctx context.Context, req i.GenerateRequest) (*i.GenerateResult, error) {
	if g.repo == nil {
		return nil, ErrStorageUnavailable
	}

	record, err := g.resolve(req)
	if err != nil {
		return nil, err
	}

	out, err := g.render(record)
	if err != nil {
		g.logger.Error(fmt.Sprintf("generating %dx%d maze with seed %d: %s", record.Size, record.Size, record.Seed, err))
		return nil, err
	}

	record.ID = uuid.New()
	record.WallCount = len(out.walls)
	record.CreatedAt = time.Now().UTC()
	if err := g.repo.Save(ctx, record); err != nil {
		g.logger.Error(fmt.Sprintf("saving maze %s: %s", record.ID, err))
		return nil, err
	}

	if g.cache != nil {
		if err := g.cache.Put(ctx, record.ID, out.world); err != nil {
			g.logger.Error(fmt.Sprintf("caching world of maze %s: %s", record.ID, err))
		}
	}

	result := &i.GenerateResult{
		Record: record,
		Stats:  out.stats,
		World:  out.world,
		ASCII:  out.grid.String(),
	}

	if g.tokenizer != nil {
		token, err := g.tokenizer.Generate(map[string]interface{}{ClaimMazeID: record.ID.String()}, g.tokenTTL)
		if err != nil {
			g.logger.Error(fmt.Sprintf("issuing owner token for maze %s: %s", record.ID, err))
			return nil, err
		}
		result.OwnerToken = token
	}

	g.logger.Info(fmt.Sprintf("generated maze %s: %dx%d seed %d, %d walls", record.ID, record.Size, record.Size, record.Seed, record.WallCount))
	return result, nil
}

// ByID returns a stored maze record.
func (g *Generator) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	if g.repo == nil {
		return nil, ErrStorageUnavailable
	}
	return g.repo.ByID(ctx, id)
}

// World returns the world document of a stored maze, rebuilding it from its
// record when the cache misses.
func (g *Generator) World(ctx context.Context, id uuid.UUID) ([]byte, error) {
	build := func() ([]byte, error) {
		record, err := g.ByID(ctx, id)
		if err != nil {
			return nil, err
		}
		out, err := g.render(record)
		if err != nil {
			return nil, err
		}
		return out.world, nil
	}

	if g.cache == nil {
		return build()
	}
	return g.cache.GetOrBuild(ctx, id, build)
}

// ASCII draws a stored maze.
func (g *Generator) ASCII(ctx context.Context, id uuid.UUID) (string, error) {
	record, err := g.ByID(ctx, id)
	if err != nil {
		return "", err
	}
	out, err := g.render(record)
	if err != nil {
		return "", err
	}
	return out.grid.String(), nil
}

// Delete removes a stored maze and its cached world.
func (g *Generator) Delete(ctx context.Context, id uuid.UUID) error {
	if g.repo == nil {
		return ErrStorageUnavailable
	}
	if err := g.repo.Delete(ctx, id); err != nil {
		return err
	}

	if g.cache != nil {
		if err := g.cache.Invalidate(ctx, id); err != nil {
			g.logger.Error(fmt.Sprintf("invalidating world of maze %s: %s", id, err))
		}
	}
	g.logger.Info(fmt.Sprintf("deleted maze %s", id))
	return nil
}

// WriteWorld builds a maze and writes its world document to dir/file
// without storing anything. It returns the written path.
func (g *Generator) WriteWorld(req i.GenerateRequest, dir, file string) (string, *i.GenerateResult, error) {
	record, err := g.resolve(req)
	if err != nil {
		return "", nil, err
	}

	out, err := g.render(record)
	if err != nil {
		return "", nil, err
	}

	path, count, err := g.assembler.WriteFile(dir, file, out.walls, geometry.FloorSize(record.Size, record.Style))
	if err != nil {
		return "", nil, err
	}
	record.ID = uuid.New()
	record.WallCount = count
	record.CreatedAt = time.Now().UTC()

	g.logger.Info(fmt.Sprintf("maze generated at: %s (seed %d)", path, record.Seed))
	return path, &i.GenerateResult{
		Record: record,
		Stats:  out.stats,
		World:  out.world,
		ASCII:  out.grid.String(),
	}, nil
}

package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-world/api/auth"
	dmn "github.com/beka-birhanu/maze-world/domain"
	"github.com/beka-birhanu/maze-world/geometry"
	"github.com/beka-birhanu/maze-world/maze"
	"github.com/beka-birhanu/maze-world/service"
	"github.com/beka-birhanu/maze-world/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const worldContentType = "application/octet-stream"

// MazeController serves maze generation and retrieval.
type MazeController struct {
	generator i.MazeGenerator
}

// NewMazeController initializes a MazeController.
func NewMazeController(g i.MazeGenerator) (*MazeController, error) {
	if g == nil {
		return nil, errors.New("maze controller requires a generator")
	}
	return &MazeController{generator: g}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.generate)
		mazes.GET("/:ID", mc.byID)
		mazes.GET("/:ID/world", mc.world)
		mazes.GET("/:ID/ascii", mc.ascii)
	}
}

// RegisterProtected registers routes that need the maze's owner token.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	route.DELETE("/mazes/:ID", mc.delete)
}

// generate handles maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := i.GenerateRequest{
		Size:     request.Size,
		CellSize: request.CellSize,
		Seed:     request.Seed,
	}
	for _, o := range []struct {
		raw string
		dst **maze.Opening
	}{{request.Entrance, &req.Entrance}, {request.Exit, &req.Exit}} {
		if o.raw == "" {
			continue
		}
		opening, err := maze.ParseOpening(o.raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		*o.dst = &opening
	}

	res, err := mc.generator.Generate(ctx, req)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &GenerateResponse{
		MazeResponse: toMazeResponse(res.Record),
		Stats:        res.Stats,
		OwnerToken:   res.OwnerToken,
	})
}

// byID returns a stored maze's description.
func (mc *MazeController) byID(ctx *gin.Context) {
	ID, ok := pathID(ctx)
	if !ok {
		return
	}

	record, err := mc.generator.ByID(ctx, ID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, toMazeResponse(record))
}

// world downloads a stored maze's world file.
func (mc *MazeController) world(ctx *gin.Context) {
	ID, ok := pathID(ctx)
	if !ok {
		return
	}

	doc, err := mc.generator.World(ctx, ID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+ID.String()+`.wbt"`)
	ctx.Data(http.StatusOK, worldContentType, doc)
}

// ascii draws a stored maze as text.
func (mc *MazeController) ascii(ctx *gin.Context) {
	ID, ok := pathID(ctx)
	if !ok {
		return
	}

	drawing, err := mc.generator.ASCII(ctx, ID)
	if err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.String(http.StatusOK, drawing)
}

// delete removes a maze. The owner token must name the same maze.
func (mc *MazeController) delete(ctx *gin.Context) {
	ID, ok := pathID(ctx)
	if !ok {
		return
	}

	claims, ok := auth.Claims(ctx)
	if !ok {
		ctx.Status(http.StatusUnauthorized)
		return
	}
	if owned, _ := claims[service.ClaimMazeID].(string); owned != ID.String() {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "token does not own this maze"})
		return
	}

	if err := mc.generator.Delete(ctx, ID); err != nil {
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

func pathID(ctx *gin.Context) (uuid.UUID, bool) {
	ID, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, false
	}
	return ID, true
}

// statusOf maps service errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, dmn.ErrMazeNotFound):
		return http.StatusNotFound
	case errors.Is(err, maze.ErrInvalidSize),
		errors.Is(err, maze.ErrInvalidOpening),
		errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, service.ErrSizeTooLarge),
		errors.Is(err, service.ErrInvalidCellSize),
		errors.Is(err, geometry.ErrInvalidStyle):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

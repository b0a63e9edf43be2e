package grpc_generator

import (
	"fmt"
	"strconv"

	"github.com/beka-birhanu/maze-world/maze"
	"github.com/beka-birhanu/maze-world/service/i"
	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/structpb"
)

// Request and reply field names. Seeds travel as strings because struct
// numbers are doubles and would lose int64 precision.
const (
	fieldSize       = "size"
	fieldCellSize   = "cellSize"
	fieldSeed       = "seed"
	fieldEntrance   = "entrance"
	fieldExit       = "exit"
	fieldID         = "id"
	fieldWallCount  = "wallCount"
	fieldWorld      = "world"
	fieldOwnerToken = "ownerToken"
)

// Reply is the decoded result of a Generate call.
type Reply struct {
	ID         uuid.UUID
	Seed       int64
	WallCount  int
	World      []byte
	OwnerToken string
}

func encodeRequest(req i.GenerateRequest) (*structpb.Struct, error) {
	fields := map[string]interface{}{
		fieldSize:     req.Size,
		fieldCellSize: req.CellSize,
	}
	if req.Seed != nil {
		fields[fieldSeed] = strconv.FormatInt(*req.Seed, 10)
	}
	if req.Entrance != nil {
		fields[fieldEntrance] = req.Entrance.String()
	}
	if req.Exit != nil {
		fields[fieldExit] = req.Exit.String()
	}
	return structpb.NewStruct(fields)
}

func decodeRequest(in *structpb.Struct) (i.GenerateRequest, error) {
	fields := in.GetFields()
	req := i.GenerateRequest{
		Size:     int(fields[fieldSize].GetNumberValue()),
		CellSize: fields[fieldCellSize].GetNumberValue(),
	}

	if raw := fields[fieldSeed].GetStringValue(); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return req, fmt.Errorf("bad seed %q: %w", raw, err)
		}
		req.Seed = &seed
	}
	if raw := fields[fieldEntrance].GetStringValue(); raw != "" {
		entrance, err := maze.ParseOpening(raw)
		if err != nil {
			return req, err
		}
		req.Entrance = &entrance
	}
	if raw := fields[fieldExit].GetStringValue(); raw != "" {
		exit, err := maze.ParseOpening(raw)
		if err != nil {
			return req, err
		}
		req.Exit = &exit
	}
	return req, nil
}

func encodeReply(res *i.GenerateResult) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]interface{}{
		fieldID:         res.Record.ID.String(),
		fieldSeed:       strconv.FormatInt(res.Record.Seed, 10),
		fieldWallCount:  res.Record.WallCount,
		fieldWorld:      string(res.World),
		fieldOwnerToken: res.OwnerToken,
	})
}

func decodeReply(out *structpb.Struct) (*Reply, error) {
	fields := out.GetFields()

	id, err := uuid.Parse(fields[fieldID].GetStringValue())
	if err != nil {
		return nil, fmt.Errorf("bad maze id in reply: %w", err)
	}
	seed, err := strconv.ParseInt(fields[fieldSeed].GetStringValue(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad seed in reply: %w", err)
	}

	return &Reply{
		ID:         id,
		Seed:       seed,
		WallCount:  int(fields[fieldWallCount].GetNumberValue()),
		World:      []byte(fields[fieldWorld].GetStringValue()),
		OwnerToken: fields[fieldOwnerToken].GetStringValue(),
	}, nil
}

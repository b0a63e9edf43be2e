package grpc_generator

import (
	"context"
	"fmt"
	"time"

	"github.com/beka-birhanu/maze-world/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	grpc "google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client calls a remote maze.Generator service.
type Client struct {
	cc         grpc.ClientConnInterface
	logger     general_i.Logger
	rpcTimeout time.Duration
}

// NewClient wraps a connection to a maze.Generator service.
func NewClient(cc grpc.ClientConnInterface, logger general_i.Logger, rt time.Duration) *Client {
	return &Client{
		cc:         cc,
		logger:     logger,
		rpcTimeout: rt,
	}
}

// Generate asks the remote service for a new maze.
func (c *Client) Generate(ctx context.Context, req i.GenerateRequest) (*Reply, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
	defer cancel()

	in, err := encodeRequest(req)
	if err != nil {
		return nil, err
	}

	c.logger.Info(fmt.Sprintf("sending generate request for a %dx%d maze", req.Size, req.Size))
	out := new(structpb.Struct)
	if err := c.cc.Invoke(timeoutCtx, generateMethod, in, out); err != nil {
		c.logger.Error(fmt.Sprintf("generate request failed: %s", err))
		return nil, err
	}

	reply, err := decodeReply(out)
	if err != nil {
		return nil, err
	}
	c.logger.Info(fmt.Sprintf("generate request success for maze %s", reply.ID))
	return reply, nil
}

package grpc_generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/beka-birhanu/maze-world/geometry"
	"github.com/beka-birhanu/maze-world/maze"
	"github.com/beka-birhanu/maze-world/service"
	"github.com/beka-birhanu/maze-world/service/i"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	serviceName    = "maze.Generator"
	generateMethod = "/maze.Generator/Generate"
)

// GeneratorServer is the server API of the maze.Generator service.
type GeneratorServer interface {
	Generate(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

var generatorServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*GeneratorServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Generate",
			Handler:    generateHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "maze/generator.proto",
}

func generateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(GeneratorServer).Generate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: generateMethod,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(GeneratorServer).Generate(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// Server exposes a maze generator over gRPC.
type Server struct {
	generator i.MazeGenerator
	logger    general_i.Logger
}

// RegisterGeneratorServer registers a Server backed by g on gsr.
func RegisterGeneratorServer(gsr grpc.ServiceRegistrar, g i.MazeGenerator, logger general_i.Logger) error {
	if g == nil {
		return errors.New("generator server requires a maze generator")
	}

	gsr.RegisterService(&generatorServiceDesc, &Server{
		generator: g,
		logger:    logger,
	})
	return nil
}

// Generate implements GeneratorServer.
func (s *Server) Generate(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	req, err := decodeRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	res, err := s.generator.Generate(ctx, req)
	if err != nil {
		s.logger.Error(fmt.Sprintf("generate request failed: %s", err))
		return nil, status.Error(errorCode(err), err.Error())
	}

	s.logger.Info(fmt.Sprintf("generate request success for maze %s", res.Record.ID))
	return encodeReply(res)
}

// errorCode maps generation errors to gRPC status codes.
func errorCode(err error) codes.Code {
	switch {
	case errors.Is(err, maze.ErrInvalidSize),
		errors.Is(err, maze.ErrInvalidOpening),
		errors.Is(err, maze.ErrOutOfBounds),
		errors.Is(err, service.ErrSizeTooLarge),
		errors.Is(err, service.ErrInvalidCellSize),
		errors.Is(err, geometry.ErrInvalidStyle):
		return codes.InvalidArgument
	case errors.Is(err, service.ErrStorageUnavailable):
		return codes.Unavailable
	default:
		return codes.Internal
	}
}

package grpc_generator

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	dmn "github.com/beka-birhanu/maze-world/domain"
	"github.com/beka-birhanu/maze-world/maze"
	"github.com/beka-birhanu/maze-world/service"
	"github.com/beka-birhanu/maze-world/service/i"
	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

type fakeGenerator struct {
	lastReq i.GenerateRequest
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, req i.GenerateRequest) (*i.GenerateResult, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	seed := int64(0)
	if req.Seed != nil {
		seed = *req.Seed
	}
	return &i.GenerateResult{
		Record: &dmn.MazeRecord{
			ID:        uuid.MustParse("6f1c2b9e-8a4d-4b1e-9c3f-2d7a5e8b1c40"),
			Size:      req.Size,
			Seed:      seed,
			WallCount: 142,
		},
		World:      []byte("#VRML_SIM R2025a utf8"),
		OwnerToken: "owner-token",
	}, nil
}

func (f *fakeGenerator) ByID(context.Context, uuid.UUID) (*dmn.MazeRecord, error) {
	return nil, dmn.ErrMazeNotFound
}

func (f *fakeGenerator) World(context.Context, uuid.UUID) ([]byte, error) {
	return nil, dmn.ErrMazeNotFound
}

func (f *fakeGenerator) ASCII(context.Context, uuid.UUID) (string, error) {
	return "", dmn.ErrMazeNotFound
}

func (f *fakeGenerator) Delete(context.Context, uuid.UUID) error {
	return dmn.ErrMazeNotFound
}

func startServer(t *testing.T, g i.MazeGenerator) *Client {
	t.Helper()
	testLogger, err := logger.New("GRPC", "", os.Stdout)
	require.NoError(t, err)

	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	require.NoError(t, RegisterGeneratorServer(server, g, testLogger))
	go func() {
		_ = server.Serve(listener)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewClient(conn, testLogger, time.Second)
}

func TestGenerateRoundTrip(t *testing.T) {
	fake := &fakeGenerator{}
	client := startServer(t, fake)

	seed := int64(1<<62 + 7)
	exit := maze.Opening{Cell: maze.Cell{X: 10, Y: 4}, Edge: maze.East}
	reply, err := client.Generate(context.Background(), i.GenerateRequest{
		Size:     11,
		CellSize: 0.25,
		Seed:     &seed,
		Exit:     &exit,
	})
	require.NoError(t, err)

	assert.Equal(t, 11, fake.lastReq.Size)
	assert.Equal(t, 0.25, fake.lastReq.CellSize)
	require.NotNil(t, fake.lastReq.Seed)
	assert.Equal(t, seed, *fake.lastReq.Seed)
	assert.Nil(t, fake.lastReq.Entrance)
	require.NotNil(t, fake.lastReq.Exit)
	assert.Equal(t, exit, *fake.lastReq.Exit)

	assert.Equal(t, uuid.MustParse("6f1c2b9e-8a4d-4b1e-9c3f-2d7a5e8b1c40"), reply.ID)
	assert.Equal(t, seed, reply.Seed)
	assert.Equal(t, 142, reply.WallCount)
	assert.Equal(t, "#VRML_SIM R2025a utf8", string(reply.World))
	assert.Equal(t, "owner-token", reply.OwnerToken)
}

func TestGenerateErrorCodes(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{err: maze.ErrInvalidSize, code: codes.InvalidArgument},
		{err: service.ErrSizeTooLarge, code: codes.InvalidArgument},
		{err: maze.ErrInvalidOpening, code: codes.InvalidArgument},
		{err: service.ErrStorageUnavailable, code: codes.Unavailable},
		{err: service.ErrDegenerateMaze, code: codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			client := startServer(t, &fakeGenerator{err: tt.err})

			_, err := client.Generate(context.Background(), i.GenerateRequest{Size: 3})
			require.Error(t, err)
			assert.Equal(t, tt.code, status.Code(err))
		})
	}
}

func TestDecodeRequestRejectsBadFields(t *testing.T) {
	in, err := encodeRequest(i.GenerateRequest{Size: 3})
	require.NoError(t, err)

	in.Fields[fieldSeed] = structpb.NewStringValue("not-a-number")
	_, err = decodeRequest(in)
	assert.Error(t, err)

	delete(in.Fields, fieldSeed)
	in.Fields[fieldEntrance] = structpb.NewStringValue("1,1,up")
	_, err = decodeRequest(in)
	assert.ErrorIs(t, err, maze.ErrInvalidOpening)
}

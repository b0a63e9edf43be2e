package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/beka-birhanu/maze-world/api"
	"github.com/beka-birhanu/maze-world/api/auth"
	api_i "github.com/beka-birhanu/maze-world/api/i"
	mazeapi "github.com/beka-birhanu/maze-world/api/maze"
	"github.com/beka-birhanu/maze-world/config"
	"github.com/beka-birhanu/maze-world/geometry"
	"github.com/beka-birhanu/maze-world/infrastruture/cache"
	grpc_generator "github.com/beka-birhanu/maze-world/infrastruture/grpc/generator"
	"github.com/beka-birhanu/maze-world/infrastruture/repo"
	"github.com/beka-birhanu/maze-world/infrastruture/token"
	"github.com/beka-birhanu/maze-world/maze"
	"github.com/beka-birhanu/maze-world/service"
	"github.com/beka-birhanu/maze-world/service/i"
	"github.com/beka-birhanu/maze-world/world"
	general_i "github.com/beka-birhanu/vinom-common/interfaces/general"
	logger "github.com/beka-birhanu/vinom-common/log"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	mazeRepo       i.MazeRepo
	worldCache     i.WorldCache
	jwtTokenizer   i.Tokenizer
	style          geometry.Style
	assembler      *world.Assembler
	generator      *service.Generator
	mazeController api_i.Controller
	router         *api.Router
	grpcServer     *grpc.Server
	appLogger      general_i.Logger
)

func initStyle() {
	var err error
	if config.Envs.StyleFile == "" {
		style = geometry.DefaultStyle(config.Envs.MazeCellSize)
	} else {
		style, err = geometry.LoadStyle(config.Envs.StyleFile, config.Envs.MazeCellSize)
	}
	if err == nil {
		err = style.Validate()
	}
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading wall style: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Wall style initialized")
}

func initAssembler() {
	var opts []world.Option
	if config.Envs.WorldTemplate != "" {
		opts = append(opts, world.WithTemplateFile(config.Envs.WorldTemplate))
	}

	var err error
	assembler, err = world.NewAssembler(opts...)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating world assembler: %v", err))
		os.Exit(1)
	}
	appLogger.Info("World assembler initialized")
}

// mazeRequest builds the generation request described by the environment.
func mazeRequest() i.GenerateRequest {
	req := i.GenerateRequest{Size: config.Envs.MazeSize}

	if config.Envs.MazeSeed != "" {
		seed, err := strconv.ParseInt(config.Envs.MazeSeed, 10, 64)
		if err != nil {
			appLogger.Error(fmt.Sprintf("MAZE_SEED must be an integer: %v", err))
			os.Exit(1)
		}
		req.Seed = &seed
	}

	for _, o := range []struct {
		key, raw string
		dst      **maze.Opening
	}{
		{"MAZE_ENTRANCE", config.Envs.MazeEntrance, &req.Entrance},
		{"MAZE_EXIT", config.Envs.MazeExit, &req.Exit},
	} {
		if o.raw == "" {
			continue
		}
		opening, err := maze.ParseOpening(o.raw)
		if err != nil {
			appLogger.Error(fmt.Sprintf("%s: %v", o.key, err))
			os.Exit(1)
		}
		*o.dst = &opening
	}
	return req
}

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initMazeRepo(client *mongo.Client) {
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Maze repository initialized")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
		DB:       config.Envs.RedisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initWorldCache() {
	cacheLogger, err := logger.New("WORLD-CACHE", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating world cache logger: %v", err))
		os.Exit(1)
	}

	worldCache, err = cache.NewRedisWorldCache(redisClient, config.Envs.WorldCacheTTL, cacheLogger)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating world cache: %v", err))
		os.Exit(1)
	}
	appLogger.Info("World cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.MustGetEnv("JWT_SECRET"), config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initGenerator() {
	generatorLogger, err := logger.New("GENERATOR", config.ColorBlue, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator logger: %v", err))
		os.Exit(1)
	}

	// Repo, Cache and Tokenizer are only set in serve mode.
	cfg := &service.Config{
		Repo:      mazeRepo,
		Cache:     worldCache,
		Tokenizer: jwtTokenizer,
		Assembler: assembler,
		Style:     style,
		Logger:    generatorLogger,
	}

	generator, err = service.NewGenerator(cfg)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Generator initialized")
}

func initMazeController() {
	var err error
	mazeController, err = mazeapi.NewMazeController(generator)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze controller initialized")
}

func initRouter(t i.Tokenizer) {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{mazeController},
		AuthorizationMiddleware: auth.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func initGrpcServer() {
	grpcLogger, err := logger.New("GRPC", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating gRPC logger: %v", err))
		os.Exit(1)
	}

	grpcServer = grpc.NewServer()
	if err := grpc_generator.RegisterGeneratorServer(grpcServer, generator, grpcLogger); err != nil {
		appLogger.Error(fmt.Sprintf("Registering generator gRPC server: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Generator gRPC server initialized")
}

// runGenerate writes one world file and reports its wall count.
func runGenerate() {
	initGenerator()

	path, res, err := generator.WriteWorld(mazeRequest(), config.Envs.OutputDir, config.Envs.OutputFile)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Generating maze: %v", err))
		os.Exit(1)
	}
	fmt.Print(res.ASCII)
	fmt.Printf("Generated %d walls successfully\n", res.Record.WallCount)
	appLogger.Info(fmt.Sprintf("World written to %s", path))
}

// runRemote asks a serving instance for a maze and writes the returned world.
func runRemote() {
	conn, err := grpc.NewClient(config.Envs.GrpcTarget, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating generator gRPC connection: %v", err))
		os.Exit(1)
	}
	defer conn.Close()

	clientLogger, err := logger.New("GRPC-CLIENT", config.ColorPurple, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating gRPC client logger: %v", err))
		os.Exit(1)
	}
	client := grpc_generator.NewClient(conn, clientLogger, time.Duration(config.Envs.GrpcTimeoutSec)*time.Second)

	req := mazeRequest()
	req.CellSize = config.Envs.MazeCellSize
	reply, err := client.Generate(context.Background(), req)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Remote generation: %v", err))
		os.Exit(1)
	}

	if err := os.MkdirAll(config.Envs.OutputDir, 0o755); err != nil {
		appLogger.Error(fmt.Sprintf("Creating output directory: %v", err))
		os.Exit(1)
	}
	path := filepath.Join(config.Envs.OutputDir, config.Envs.OutputFile)
	if err := os.WriteFile(path, reply.World, 0o644); err != nil {
		appLogger.Error(fmt.Sprintf("Writing world file: %v", err))
		os.Exit(1)
	}
	fmt.Printf("Generated %d walls successfully\n", reply.WallCount)
	appLogger.Info(fmt.Sprintf("Maze %s written to %s, owner token: %s", reply.ID, path, reply.OwnerToken))
}

// runServe serves the HTTP and gRPC APIs until one of them fails.
func runServe() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()
	initMazeRepo(mongoClient)

	initRedis(ctx)
	defer redisClient.Close()
	initWorldCache()

	initJWTTokenizer()
	initGenerator()
	initMazeController()
	initRouter(jwtTokenizer)
	initGrpcServer()

	errs := make(chan error, 2)
	go func() {
		addr := fmt.Sprintf("%s:%d", config.Envs.HostIP, config.Envs.GrpcPort)
		listener, err := net.Listen("tcp", addr)
		if err != nil {
			errs <- fmt.Errorf("listening on %s: %w", addr, err)
			return
		}
		appLogger.Info(fmt.Sprintf("gRPC server listening on %s", addr))
		errs <- grpcServer.Serve(listener)
	}()
	go func() {
		errs <- router.Run()
	}()

	err := <-errs
	grpcServer.GracefulStop()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}

func main() {
	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stdout)

	initStyle()
	initAssembler()

	switch config.Envs.Mode {
	case config.ModeGenerate:
		runGenerate()
	case config.ModeServe:
		runServe()
	case config.ModeRemote:
		runRemote()
	default:
		appLogger.Error(fmt.Sprintf("Unknown APP_MODE %q", config.Envs.Mode))
		os.Exit(1)
	}
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Application modes.
const (
	ModeGenerate = "generate" // write one world file and exit
	ModeServe    = "serve"    // serve HTTP and gRPC generation APIs
	ModeRemote   = "remote"   // ask a serving instance over gRPC and write its world
)

// Config holds the application's configuration values.
type Config struct {
	Mode string // One of ModeGenerate, ModeServe or ModeRemote

	HostIP   string // Host IP for the servers
	RESTPort int    // Port for the REST API
	GrpcPort int    // Port for the gRPC generator service
	GinMode  string // Mode for the Gin framework (e.g., release, debug, test)

	GrpcTarget     string // Address of the generator service used in remote mode
	GrpcTimeoutSec int    // Timeout of one remote generate call

	JWTSecret string // Secret key for signing maze owner tokens
	JWTIssuer string // Issuer claim for owner tokens

	DBHost     string // Hostname or IP address for the database
	DBPort     int    // Port number for the database
	DBUser     string // Username for the database
	DBPassword string // Password for the database
	DBName     string // Name of the database

	RedisAddr     string // host:port of the redis world cache
	RedisPassword string // Password for redis, empty when unauthenticated
	RedisDB       int    // Redis logical database
	WorldCacheTTL int    // Seconds a rendered world stays cached

	MazeSize      int     // Cells along one side of the maze
	MazeCellSize  float64 // Side of one cell in world units
	MazeSeed      string  // Fixed seed, empty for a random one
	MazeEntrance  string  // Entrance as "x,y,edge"
	MazeExit      string  // Exit as "x,y,edge", empty for the opposite corner
	StyleFile     string  // Optional YAML wall style
	WorldTemplate string  // Optional world template replacing the embedded one
	OutputDir     string  // Directory the generated world is written to
	OutputFile    string  // File name of the generated world
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		Mode: getEnvWithDefault("APP_MODE", ModeGenerate),

		HostIP:   getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort: getEnvAsIntWithDefault("REST_PORT", 8080),
		GrpcPort: getEnvAsIntWithDefault("GRPC_PORT", 9090),
		GinMode:  getEnvWithDefault("GIN_MODE", "release"),

		GrpcTarget:     getEnvWithDefault("GRPC_TARGET", "localhost:9090"),
		GrpcTimeoutSec: getEnvAsIntWithDefault("GRPC_TIMEOUT", 10),

		JWTSecret: getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer: getEnvWithDefault("JWT_ISSUER", "maze-world"),

		DBHost:     getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:     getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:     getEnvWithDefault("DB_USER", ""),
		DBPassword: getEnvWithDefault("DB_PASS", ""),
		DBName:     getEnvWithDefault("DB_NAME", "maze_world"),

		RedisAddr:     getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvWithDefault("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsIntWithDefault("REDIS_DB", 0),
		WorldCacheTTL: getEnvAsIntWithDefault("WORLD_CACHE_TTL", 3600),

		MazeSize:      getEnvAsIntWithDefault("MAZE_SIZE", 11),
		MazeCellSize:  getEnvAsFloatWithDefault("MAZE_CELL_SIZE", 3.0/11),
		MazeSeed:      getEnvWithDefault("MAZE_SEED", ""),
		MazeEntrance:  getEnvWithDefault("MAZE_ENTRANCE", "0,0,south"),
		MazeExit:      getEnvWithDefault("MAZE_EXIT", ""),
		StyleFile:     getEnvWithDefault("STYLE_FILE", ""),
		WorldTemplate: getEnvWithDefault("WORLD_TEMPLATE", ""),
		OutputDir:     getEnvWithDefault("OUTPUT_DIR", "worlds"),
		OutputFile:    getEnvWithDefault("OUTPUT_FILE", "random_maze.wbt"),
	}
}

// MustGetEnv retrieves the value of an environment variable or logs a fatal error if not set.
func MustGetEnv(key string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		log.Fatalf("%s[APP]%s %s[FATAL]%s Environment variable %s is not set", ColorGreen, ColorReset, ColorRed, ColorReset, key)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, logging a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves a float environment variable, logging a fatal error if it cannot be parsed.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}

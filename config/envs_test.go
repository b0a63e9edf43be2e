package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvWithDefault(t *testing.T) {
	t.Setenv("MAZE_TEST_STRING", "custom")
	assert.Equal(t, "custom", getEnvWithDefault("MAZE_TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnvWithDefault("MAZE_TEST_UNSET", "fallback"))

	t.Setenv("MAZE_TEST_EMPTY", "")
	assert.Equal(t, "", getEnvWithDefault("MAZE_TEST_EMPTY", "fallback"))
}

func TestGetEnvAsNumbers(t *testing.T) {
	t.Setenv("MAZE_TEST_INT", "21")
	t.Setenv("MAZE_TEST_FLOAT", "0.25")
	t.Setenv("MAZE_TEST_BLANK", "")

	assert.Equal(t, 21, getEnvAsIntWithDefault("MAZE_TEST_INT", 11))
	assert.Equal(t, 11, getEnvAsIntWithDefault("MAZE_TEST_BLANK", 11))
	assert.Equal(t, 0.25, getEnvAsFloatWithDefault("MAZE_TEST_FLOAT", 1))
	assert.Equal(t, 1.0, getEnvAsFloatWithDefault("MAZE_TEST_BLANK", 1))
}

func TestInitConfig(t *testing.T) {
	t.Setenv("APP_MODE", ModeServe)
	t.Setenv("MAZE_SIZE", "")
	t.Setenv("MAZE_CELL_SIZE", "")
	t.Setenv("MAZE_EXIT", "10,10,east")
	t.Setenv("OUTPUT_DIR", "out")

	c := initConfig()
	assert.Equal(t, ModeServe, c.Mode)
	assert.Equal(t, 11, c.MazeSize)
	assert.InDelta(t, 3.0/11, c.MazeCellSize, 1e-12)
	assert.Equal(t, "10,10,east", c.MazeExit)
	assert.Equal(t, "out", c.OutputDir)
}

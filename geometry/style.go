package geometry

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultWallThickness = 0.01
	defaultWallHeight    = 0.1
)

var ErrInvalidStyle = errors.New("invalid wall style")

// Style holds the physical dimensions and colour of every wall solid.
//
// Style files are YAML, for example:
//
//	cellSize: 0.2727
//	wallThickness: 0.01
//	wallHeight: 0.1
//	color: [0.2, 0.5, 0.4]
type Style struct {
	CellSize      float64    `yaml:"cellSize" json:"cell_size"`
	WallThickness float64    `yaml:"wallThickness" json:"wall_thickness"`
	WallHeight    float64    `yaml:"wallHeight" json:"wall_height"`
	Color         [3]float64 `yaml:"color" json:"color"`
}

// DefaultStyle returns thin, low, green walls for the given cell size.
func DefaultStyle(cellSize float64) Style {
	return Style{
		CellSize:      cellSize,
		WallThickness: defaultWallThickness,
		WallHeight:    defaultWallHeight,
		Color:         [3]float64{0.2, 0.5, 0.4},
	}
}

// Validate checks every dimension is positive and colour channels lie in [0, 1].
func (s Style) Validate() error {
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %v", ErrInvalidStyle, s.CellSize)
	}
	if s.WallThickness <= 0 {
		return fmt.Errorf("%w: wall thickness %v", ErrInvalidStyle, s.WallThickness)
	}
	if s.WallHeight <= 0 {
		return fmt.Errorf("%w: wall height %v", ErrInvalidStyle, s.WallHeight)
	}
	for _, c := range s.Color {
		if c < 0 || c > 1 {
			return fmt.Errorf("%w: colour channel %v", ErrInvalidStyle, c)
		}
	}
	return nil
}

// LoadStyle reads a YAML style file. Fields missing from the file keep the
// values of DefaultStyle(cellSize).
func LoadStyle(path string, cellSize float64) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("failed to read style file: %w", err)
	}

	style := DefaultStyle(cellSize)
	if err := yaml.Unmarshal(data, &style); err != nil {
		return Style{}, fmt.Errorf("failed to parse style file: %w", err)
	}

	if err := style.Validate(); err != nil {
		return Style{}, err
	}
	return style, nil
}

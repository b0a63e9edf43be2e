// Package world splices emitted wall solids into a Webots world document.
package world

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"text/template"

	"github.com/beka-birhanu/maze-world/geometry"
)

const defaultWorldTemplate = "random_maze.wbt.tmpl"

var (
	ErrNoWalls = errors.New("no walls were generated")

	//go:embed templates/*.tmpl
	templateFS embed.FS
)

// document is what world templates are executed with.
type document struct {
	FloorSize float64
	Walls     []geometry.Wall
}

// Option configures an Assembler.
type Option func(*Assembler)

// Assembler renders world documents from a template. Templates see
// .FloorSize and .Walls and may call {{template "wall" .}} for each wall.
type Assembler struct {
	templatePath string
	tmpl         *template.Template
}

// WithTemplateFile replaces the embedded world template with a file on disk.
func WithTemplateFile(path string) Option {
	return func(a *Assembler) {
		a.templatePath = path
	}
}

// NewAssembler parses the wall template and the world template.
func NewAssembler(options ...Option) (*Assembler, error) {
	a := &Assembler{}
	for _, opt := range options {
		opt(a)
	}

	tmpl, err := template.New("world").
		Funcs(template.FuncMap{"num": formatNumber}).
		ParseFS(templateFS, "templates/wall.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing wall template: %w", err)
	}

	var body []byte
	if a.templatePath == "" {
		body, err = templateFS.ReadFile("templates/" + defaultWorldTemplate)
	} else {
		body, err = os.ReadFile(a.templatePath)
	}
	if err != nil {
		return nil, fmt.Errorf("reading world template: %w", err)
	}

	if a.tmpl, err = tmpl.Parse(string(body)); err != nil {
		return nil, fmt.Errorf("parsing world template: %w", err)
	}
	return a, nil
}

// Render returns the world document holding walls.
func (a *Assembler) Render(walls []geometry.Wall, floorSize float64) ([]byte, error) {
	if len(walls) == 0 {
		return nil, ErrNoWalls
	}

	var buf bytes.Buffer
	if err := a.tmpl.Execute(&buf, document{FloorSize: floorSize, Walls: walls}); err != nil {
		return nil, fmt.Errorf("rendering world: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the document into dir/name, creating dir when needed.
// It returns the written path and the number of walls it holds.
func (a *Assembler) WriteFile(dir, name string, walls []geometry.Wall, floorSize float64) (string, int, error) {
	data, err := a.Render(walls, floorSize)
	if err != nil {
		return "", 0, err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", 0, fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", 0, fmt.Errorf("writing world file: %w", err)
	}
	return path, len(walls), nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

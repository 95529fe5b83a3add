package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is the cause of every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultCellSize is the pixel size of one cell when dimensions are derived from an area
const DefaultCellSize = 20

// Point is a grid coordinate
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Config holds the configuration for the game
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Used only when Width and Height are zero
	AreaWidth  int `json:"area_width"`
	AreaHeight int `json:"area_height"`
	CellSize   int `json:"cell_size"`

	FrameRate        time.Duration `json:"frame_rate"`
	MaxGenerations   int           `json:"max_generations"`
	StopOnExtinction bool          `json:"stop_on_extinction"`
	StopOnStagnation bool          `json:"stop_on_stagnation"`
	HistorySize      int           `json:"history_size"`
	RandomDensity    float64       `json:"random_density"`
	Seed             int64         `json:"seed"`
	Alive            []Point       `json:"alive"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:            60,
		Height:           30,
		CellSize:         DefaultCellSize,
		FrameRate:        50 * time.Millisecond,
		MaxGenerations:   1000,
		StopOnExtinction: true,
		StopOnStagnation: false,
		HistorySize:      5,
		RandomDensity:    0.15,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// GridSizeForArea returns how many cells of cellSize pixels fit in the area
func GridSizeForArea(areaWidth, areaHeight, cellSize int) (width, height int) {
	if cellSize <= 0 {
		return 0, 0
	}
	return areaWidth / cellSize, areaHeight / cellSize
}

// Dimensions returns the grid size, derived from the pixel area when
// Width and Height are both unset
func (c Config) Dimensions() (width, height int) {
	if c.Width == 0 && c.Height == 0 && (c.AreaWidth > 0 || c.AreaHeight > 0) {
		return GridSizeForArea(c.AreaWidth, c.AreaHeight, c.CellSize)
	}
	return c.Width, c.Height
}

// Validate checks the configuration before a grid is built from it
func (c Config) Validate() error {
	width, height := c.Dimensions()
	switch {
	case width <= 0 || height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid size %dx%d", width, height)
	case c.FrameRate < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative frame rate %v", c.FrameRate)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations %d", c.MaxGenerations)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density %v outside [0, 1]", c.RandomDensity)
	}
	for _, p := range c.Alive {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] alive cell (%d, %d) outside %dx%d grid", p.X, p.Y, width, height)
		}
	}
	return nil
}

// ParsePoint parses an "x,y" coordinate
func ParsePoint(s string) (Point, error) {
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return Point{}, errors.Errorf("[ParsePoint] expected x,y, got %q", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, errors.Wrapf(err, "[ParsePoint] bad x in %q", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, errors.Wrapf(err, "[ParsePoint] bad y in %q", s)
	}
	return Point{X: x, Y: y}, nil
}

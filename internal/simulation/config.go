package simulation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/arena/internal/core/systems/physics"
)

// Config describes an arena, its walls, its initial population and how it is stepped.
type Config struct {
	Width           int          `json:"width" yaml:"width"`
	Height          int          `json:"height" yaml:"height"`
	FPS             int          `json:"fps" yaml:"fps"`
	Drag            float32      `json:"drag" yaml:"drag"`
	Substeps        int          `json:"substeps" yaml:"substeps"`
	Strategy        string       `json:"strategy" yaml:"strategy"`
	WallRestitution float32      `json:"wall_restitution" yaml:"wall_restitution"`
	Walls           []WallConfig `json:"walls,omitempty" yaml:"walls,omitempty"`
	Spawn           SpawnConfig  `json:"spawn" yaml:"spawn"`
	LogLevel        string       `json:"log_level,omitempty" yaml:"log_level,omitempty"`
}

// Point is a 2D coordinate in config files.
type Point struct {
	X float32 `json:"x" yaml:"x"`
	Y float32 `json:"y" yaml:"y"`
}

func (p Point) Vec() physics.Vec2 { return physics.V(p.X, p.Y) }

// WallConfig is one extra wall besides the arena frame.
type WallConfig struct {
	Start Point `json:"start" yaml:"start"`
	End   Point `json:"end" yaml:"end"`
}

// SpawnConfig describes the initial random population.
type SpawnConfig struct {
	Count       int     `json:"count" yaml:"count"`
	Radius      float32 `json:"radius" yaml:"radius"`
	Velocity    Point   `json:"velocity" yaml:"velocity"`
	Seed        uint64  `json:"seed" yaml:"seed"`
	MaxAttempts int     `json:"max_attempts" yaml:"max_attempts"`
}

// DefaultConfig returns a 1200x800 arena at 60 FPS with ten particles.
func DefaultConfig() Config {
	return Config{
		Width:           1200,
		Height:          800,
		FPS:             60,
		Drag:            0.999,
		Substeps:        4,
		Strategy:        physics.SweepAndPrune.String(),
		WallRestitution: physics.DefaultWallRestitution,
		Spawn: SpawnConfig{
			Count:       10,
			Radius:      15,
			Velocity:    Point{X: 350, Y: 350},
			Seed:        1,
			MaxAttempts: 1000,
		},
		LogLevel: "info",
	}
}

// FrameDt is the duration of one frame in seconds.
func (c Config) FrameDt() float64 {
	return 1 / float64(c.FPS)
}

// StepConfig converts the config into kernel stepping parameters.
func (c Config) StepConfig() (physics.StepConfig, error) {
	strategy, err := physics.ParseStrategy(c.Strategy)
	if err != nil {
		return physics.StepConfig{}, err
	}
	return physics.StepConfig{Drag: c.Drag, Steps: c.Substeps, Strategy: strategy}, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: arena must be positive, got %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	case c.Substeps <= 0:
		return fmt.Errorf("%w: substeps must be positive, got %d", ErrInvalidConfig, c.Substeps)
	case c.Drag <= 0 || c.Drag > 1:
		return fmt.Errorf("%w: drag must be in (0, 1], got %g", ErrInvalidConfig, c.Drag)
	case c.WallRestitution < 0:
		return fmt.Errorf("%w: wall restitution must not be negative, got %g", ErrInvalidConfig, c.WallRestitution)
	case c.Spawn.Count < 0:
		return fmt.Errorf("%w: spawn count must not be negative, got %d", ErrInvalidConfig, c.Spawn.Count)
	case c.Spawn.Count > 0 && c.Spawn.Radius <= 0:
		return fmt.Errorf("%w: spawn radius must be positive, got %g", ErrInvalidConfig, c.Spawn.Radius)
	}

	if _, err := physics.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	for i, wall := range c.Walls {
		if wall.Start == wall.End {
			return fmt.Errorf("%w: wall %d: %w", ErrInvalidConfig, i, physics.ErrDegenerateSegment)
		}
	}
	return nil
}

// LoadJSON decodes a config from JSON, starting from the defaults.
func LoadJSON(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode json config: %w", err)
	}
	return c, c.Validate()
}

// LoadYAML decodes a config from YAML, starting from the defaults.
func LoadYAML(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml config: %w", err)
	}
	return c, c.Validate()
}

// LoadFile picks the decoder from the file extension.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

package simulation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/arena/internal/core/systems/physics"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())

	step, err := c.StepConfig()
	require.NoError(t, err)
	assert.Equal(t, physics.SweepAndPrune, step.Strategy)
	assert.InDelta(t, 1.0/60, c.FrameDt(), 1e-12)
}

func TestLoadYAML(t *testing.T) {
	doc := `
width: 400
height: 300
strategy: all-pairs
substeps: 8
walls:
  - start: {x: 0, y: 200}
    end: {x: 200, y: 300}
spawn:
  count: 5
  radius: 10
`
	c, err := LoadYAML(strings.NewReader(doc))
	require.NoError(t, err)

	assert.Equal(t, 400, c.Width)
	assert.Equal(t, 300, c.Height)
	assert.Equal(t, "all-pairs", c.Strategy)
	assert.Equal(t, 8, c.Substeps)
	require.Len(t, c.Walls, 1)
	assert.Equal(t, Point{X: 200, Y: 300}, c.Walls[0].End)
	assert.Equal(t, 5, c.Spawn.Count)
	assert.Equal(t, float32(10), c.Spawn.Radius)

	assert.Equal(t, 60, c.FPS, "unset fields keep their defaults")
	assert.Equal(t, Point{X: 350, Y: 350}, c.Spawn.Velocity)
}

func TestLoadYAML_Empty(t *testing.T) {
	c, err := LoadYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)
}

func TestLoadJSON(t *testing.T) {
	c, err := LoadJSON(strings.NewReader(`{"width": 640, "height": 480, "drag": 0.99, "spawn": {"count": 3, "seed": 42}}`))
	require.NoError(t, err)
	assert.Equal(t, 640, c.Width)
	assert.Equal(t, float32(0.99), c.Drag)
	assert.Equal(t, uint64(42), c.Spawn.Seed)
	assert.Equal(t, float32(15), c.Spawn.Radius)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"zero width":       func(c *Config) { c.Width = 0 },
		"zero fps":         func(c *Config) { c.FPS = 0 },
		"zero substeps":    func(c *Config) { c.Substeps = 0 },
		"drag above one":   func(c *Config) { c.Drag = 1.5 },
		"zero drag":        func(c *Config) { c.Drag = 0 },
		"negative bounce":  func(c *Config) { c.WallRestitution = -1 },
		"unknown strategy": func(c *Config) { c.Strategy = "quadtree" },
		"no radius":        func(c *Config) { c.Spawn.Radius = 0 },
		"negative count":   func(c *Config) { c.Spawn.Count = -1 },
		"degenerate wall":  func(c *Config) { c.Walls = []WallConfig{{Start: Point{1, 1}, End: Point{1, 1}}} },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := DefaultConfig()
			mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "arena.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("width: 321\n"), 0o600))
	c, err := LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 321, c.Width)

	jsonPath := filepath.Join(dir, "arena.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"height": 123}`), 0o600))
	c, err = LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 123, c.Height)

	tomlPath := filepath.Join(dir, "arena.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte(""), 0o600))
	_, err = LoadFile(tomlPath)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

package spawn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeusync/arena/internal/core/systems/physics"
)

func testConfig() Config {
	return Config{Width: 1200, Height: 800, Radius: 15, Velocity: physics.V(350, 350), Seed: 7}
}

func TestSpawner_RandomFitsArena(t *testing.T) {
	s := New(testConfig())
	for range 1000 {
		p := s.Random()
		assert.GreaterOrEqual(t, p.Pos.X, float32(15))
		assert.LessOrEqual(t, p.Pos.X, float32(1185))
		assert.GreaterOrEqual(t, p.Pos.Y, float32(15))
		assert.LessOrEqual(t, p.Pos.Y, float32(785))
		assert.Equal(t, physics.V(350, 350), p.Vel)
		assert.Equal(t, float32(15), p.Radius)
	}
}

func TestSpawner_Deterministic(t *testing.T) {
	a, b := New(testConfig()), New(testConfig())
	for range 50 {
		assert.Equal(t, a.Random(), b.Random())
	}

	other := testConfig()
	other.Seed = 8
	assert.NotEqual(t, New(testConfig()).Random(), New(other).Random())
}

func TestSpawner_Populate(t *testing.T) {
	w := physics.NewWorld(1200, 800)
	n := New(testConfig()).Populate(w, 10, 1000)

	assert.Equal(t, 10, n)
	assert.Equal(t, 10, w.NumParticles())
}

func TestSpawner_PopulateRespectsAttemptBudget(t *testing.T) {
	cfg := testConfig()
	cfg.Width, cfg.Height = 40, 40
	w := physics.NewWorld(40, 40)

	n := New(cfg).Populate(w, 10, 25)
	assert.Equal(t, w.NumParticles(), n)
	assert.Less(t, n, 10, "a 40x40 arena fits at most one radius-15 particle")
}

func TestGesture(t *testing.T) {
	g := Gesture{Press: physics.V(100, 100), Release: physics.V(80, 130)}

	p := g.Particle(15)
	assert.Equal(t, physics.V(100, 100), p.Pos)
	assert.Equal(t, physics.V(40, -60), p.Vel)

	ph := g.Phantom(15)
	require.Equal(t, physics.Vec2{}, ph.Vel)
	assert.Equal(t, g.Press, ph.Pos)
}

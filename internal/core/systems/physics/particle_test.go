package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-4

func TestParticle_Step(t *testing.T) {
	p := NewParticle(V(0, 0), V(10, 0), 1)
	p.Step(0.1, 0.5)

	assert.InDelta(t, 1, p.Pos.X, tolerance)
	assert.InDelta(t, 0, p.Pos.Y, tolerance)
	assert.InDelta(t, 5, p.Vel.X, tolerance)
	assert.InDelta(t, 50, p.Vel.Y, tolerance)
}

func TestParticle_RestSnap(t *testing.T) {
	slow := NewParticle(V(1, 1), V(0.05, 0.05), 1)
	slow.Step(0, 1)
	assert.Equal(t, Vec2{}, slow.Vel, "squared speed 0.005 snaps to rest")

	moving := NewParticle(V(1, 1), V(0.1, 0.1), 1)
	moving.Step(0, 1)
	assert.Equal(t, V(0.1, 0.1), moving.Vel, "squared speed 0.02 keeps moving")
}

func TestParticle_Collision(t *testing.T) {
	a := NewParticle(V(0, 0), Vec2{}, 1)

	assert.True(t, a.Collision(NewParticle(V(1.5, 0), Vec2{}, 1)))
	assert.False(t, a.Collision(NewParticle(V(2, 0), Vec2{}, 1)), "tangent circles do not collide")
	assert.False(t, a.Collision(NewParticle(V(5, 5), Vec2{}, 1)))
}

func TestParticle_HeadOnSwap(t *testing.T) {
	a := NewParticle(V(0, 0), V(10, 0), 1)
	b := NewParticle(V(1.5, 0), V(-10, 0), 1)

	c, ok := a.Collide(b)
	require.True(t, ok)

	assert.InDelta(t, -10, c.Vel1.X, tolerance)
	assert.InDelta(t, 10, c.Vel2.X, tolerance)
	assert.InDelta(t, 0, c.Vel1.Y, tolerance)
	assert.InDelta(t, 0, c.Vel2.Y, tolerance)

	assert.InDelta(t, -0.25, c.Pos1.X, tolerance)
	assert.InDelta(t, 1.75, c.Pos2.X, tolerance)
	assert.InDelta(t, 2, c.Pos1.Dist(c.Pos2), tolerance, "resolved circles are tangent")

	assert.Equal(t, V(10, 0), a.Vel, "Collide must not mutate its receiver")
	assert.Equal(t, V(1.5, 0), b.Pos, "Collide must not mutate its argument")
}

func TestParticle_UnequalMassConservesMomentumAndEnergy(t *testing.T) {
	heavy := NewParticle(V(0, 0), V(3, 0), 2)
	light := NewParticle(V(2.5, 0), Vec2{}, 1)

	c, ok := heavy.Collide(light)
	require.True(t, ok)

	assert.InDelta(t, 1.8, c.Vel1.X, tolerance)
	assert.InDelta(t, 4.8, c.Vel2.X, tolerance)

	before := heavy.Mass()*heavy.Vel.X + light.Mass()*light.Vel.X
	after := heavy.Mass()*c.Vel1.X + light.Mass()*c.Vel2.X
	assert.InDelta(t, before, after, tolerance)

	energy := func(m float32, v Vec2) float32 { return 0.5 * m * v.Dot(v) }
	assert.InDelta(t,
		energy(heavy.Mass(), heavy.Vel)+energy(light.Mass(), light.Vel),
		energy(heavy.Mass(), c.Vel1)+energy(light.Mass(), c.Vel2),
		1e-3,
	)
}

func TestParticle_NoCollisionNoContact(t *testing.T) {
	_, ok := NewParticle(V(0, 0), Vec2{}, 1).Collide(NewParticle(V(3, 0), Vec2{}, 1))
	assert.False(t, ok)
}

func TestParticle_Contains(t *testing.T) {
	p := NewParticle(V(10, 10), Vec2{}, 2)
	assert.True(t, p.Contains(V(11, 10)))
	assert.False(t, p.Contains(V(12, 10)))
	assert.Equal(t, float32(4), p.Mass())
	assert.Equal(t, float32(8), p.LeftBound())
	assert.Equal(t, float32(12), p.RightBound())
}

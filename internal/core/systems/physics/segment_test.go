package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_ClosestPoint(t *testing.T) {
	s := NewSegment(V(0, 0), V(10, 0))

	p, ok := s.ClosestPoint(V(5, 3))
	require.True(t, ok)
	assert.Equal(t, V(5, 0), p)

	p, ok = s.ClosestPoint(V(0, 5))
	require.True(t, ok, "projection onto an endpoint is inside the segment")
	assert.Equal(t, V(0, 0), p)

	_, ok = s.ClosestPoint(V(-1, 3))
	assert.False(t, ok)
	_, ok = s.ClosestPoint(V(11, 0))
	assert.False(t, ok)
}

func TestSegment_Collide(t *testing.T) {
	s := NewSegment(V(0, 0), V(10, 0))

	vel, pos, ok := s.Collide(NewParticle(V(5, 0.5), V(1, -2), 1))
	require.True(t, ok)
	assert.Equal(t, V(1, 2), vel)
	assert.Equal(t, V(5, 1), pos)
}

func TestSegment_NoCollision(t *testing.T) {
	s := NewSegment(V(0, 0), V(10, 0))

	_, _, ok := s.Collide(NewParticle(V(5, 2), V(0, -1), 1))
	assert.False(t, ok, "particle clear of the wall")

	_, _, ok = s.Collide(NewParticle(V(5, 1), V(0, -1), 1))
	assert.False(t, ok, "touching at exactly one radius is not a hit")

	_, _, ok = s.Collide(NewParticle(V(-0.5, 0.5), V(0, -1), 1))
	assert.False(t, ok, "corner contacts beyond an endpoint are not detected")
}

func TestSegment_Degenerate(t *testing.T) {
	assert.True(t, NewSegment(V(3, 3), V(3, 3)).Degenerate())
	assert.False(t, NewSegment(V(3, 3), V(3, 4)).Degenerate())
	assert.Equal(t, V(3, 4), NewSegment(V(3, 3), V(3, 4)).End())
}

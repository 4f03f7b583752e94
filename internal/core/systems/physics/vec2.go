package physics

import (
	"fmt"
	"math"
)

// Vec2 is a 2D point or vector. Values are immutable; every operation returns a new Vec2.
type Vec2 struct {
	X, Y float32
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float32) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) Add(o Vec2) Vec2      { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2      { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Div divides both components by s. The caller guarantees s != 0.
func (v Vec2) Div(s float32) Vec2 { return Vec2{X: v.X / s, Y: v.Y / s} }

func (v Vec2) Dot(o Vec2) float32  { return v.X*o.X + v.Y*o.Y }
func (v Vec2) Mag() float32        { return float32(math.Sqrt(float64(v.Dot(v)))) }
func (v Vec2) Dist(o Vec2) float32 { return v.Sub(o).Mag() }
func (v Vec2) IsZero() bool        { return v.X == 0 && v.Y == 0 }

func (v Vec2) String() string { return fmt.Sprintf("(%g, %g)", v.X, v.Y) }

// Reflect mirrors v about the unit normal n: v - 2(v·n)n.
func (v Vec2) Reflect(n Vec2) Vec2 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// DistSquared returns the squared distance between a and b. The absolute value
// guards against tiny negative results from floating point error.
func DistSquared(a, b Vec2) float32 {
	d := a.Sub(b)
	return float32(math.Abs(float64(d.Dot(d))))
}

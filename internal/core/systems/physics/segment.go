package physics

// Segment is a static, infinitely rigid wall from Start to Start+Dir.
type Segment struct {
	Start Vec2
	Dir   Vec2
}

// NewSegment builds the wall running from start to end.
func NewSegment(start, end Vec2) Segment {
	return Segment{Start: start, Dir: end.Sub(start)}
}

// End returns the far endpoint of the wall.
func (s Segment) End() Vec2 { return s.Start.Add(s.Dir) }

// Degenerate reports whether the wall has zero length.
func (s Segment) Degenerate() bool { return s.Dir.IsZero() }

// ClosestPoint projects p onto the wall. Points whose projection falls beyond
// either endpoint have no closest point: endpoints are never clamped, so corner
// contacts are not detected here.
func (s Segment) ClosestPoint(p Vec2) (Vec2, bool) {
	t := p.Sub(s.Start).Dot(s.Dir) / s.Dir.Dot(s.Dir)
	if t < 0 || t > 1 {
		return Vec2{}, false
	}
	return s.Start.Add(s.Dir.Scale(t)), true
}

// Collide tests p against the wall. On contact it returns the velocity
// reflected about the contact normal and the position pushed out to exactly
// one radius from the wall.
func (s Segment) Collide(p Particle) (vel, pos Vec2, ok bool) {
	closest, ok := s.ClosestPoint(p.Pos)
	if !ok {
		return Vec2{}, Vec2{}, false
	}

	dist := closest.Dist(p.Pos)
	if dist >= p.Radius {
		return Vec2{}, Vec2{}, false
	}

	normal := p.Pos.Sub(closest).Div(dist)
	return p.Vel.Reflect(normal), closest.Add(normal.Scale(p.Radius)), true
}

// frame returns the four walls of an axis-aligned box: top, left, bottom, right.
func frame(topLeft, bottomRight Vec2) []Segment {
	width := bottomRight.X - topLeft.X
	height := bottomRight.Y - topLeft.Y
	return []Segment{
		NewSegment(topLeft, topLeft.Add(V(width, 0))),
		NewSegment(topLeft, topLeft.Add(V(0, height))),
		NewSegment(bottomRight, bottomRight.Sub(V(width, 0))),
		NewSegment(bottomRight, bottomRight.Sub(V(0, height))),
	}
}

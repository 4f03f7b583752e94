package physics

import "math"

const (
	// Gravity is the constant downward acceleration applied every substep.
	Gravity float32 = 500
	// RestThreshold is the squared speed under which a particle is brought to rest.
	RestThreshold float32 = 1e-2
)

// Particle is a rigid circle. Its mass is derived from the radius.
type Particle struct {
	Pos    Vec2
	Vel    Vec2
	Radius float32
}

// NewParticle creates a particle at pos moving with vel.
func NewParticle(pos, vel Vec2, radius float32) Particle {
	return Particle{Pos: pos, Vel: vel, Radius: radius}
}

// Mass is the area proxy radius².
func (p Particle) Mass() float32 { return p.Radius * p.Radius }

// Contains reports whether point lies strictly inside the circle.
func (p Particle) Contains(point Vec2) bool {
	return p.Pos.Dist(point) < p.Radius
}

// LeftBound is the smallest x the circle covers.
func (p Particle) LeftBound() float32 { return p.Pos.X - p.Radius }

// RightBound is the largest x the circle covers.
func (p Particle) RightBound() float32 { return p.Pos.X + p.Radius }

// Step advances the particle by dt with semi-implicit Euler: move, damp,
// accelerate, then snap near-zero velocities to rest.
func (p *Particle) Step(dt, drag float32) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Vel = p.Vel.Scale(drag)
	p.Vel = p.Vel.Add(V(0, Gravity).Scale(dt))
	if math.Abs(float64(p.Vel.Dot(p.Vel))) < float64(RestThreshold) {
		p.Vel = Vec2{}
	}
}

// Collision reports whether the two circles overlap.
func (p Particle) Collision(o Particle) bool {
	sum := p.Radius + o.Radius
	return DistSquared(p.Pos, o.Pos) < sum*sum
}

// Contact is the resolved outcome of a particle-particle collision.
type Contact struct {
	Vel1, Vel2 Vec2
	Pos1, Pos2 Vec2
}

// Collide resolves a collision between p and o without mutating either.
// Coincident centers are not guarded and yield NaN components.
func (p Particle) Collide(o Particle) (Contact, bool) {
	if !p.Collision(o) {
		return Contact{}, false
	}
	v1, v2 := elasticVelocities(p, o)
	x1, x2 := separate(p, o)
	return Contact{Vel1: v1, Vel2: v2, Pos1: x1, Pos2: x2}, true
}

// elasticVelocities exchanges momentum along the line of centers.
func elasticVelocities(p1, p2 Particle) (Vec2, Vec2) {
	dpos := p1.Pos.Sub(p2.Pos)
	coeff := p1.Vel.Sub(p2.Vel).Dot(dpos) / dpos.Dot(dpos)

	m1, m2 := p1.Mass(), p2.Mass()
	k1 := 2 * m2 / (m1 + m2)
	k2 := 2 * m1 / (m1 + m2)

	dvel := dpos.Scale(coeff)
	return p1.Vel.Sub(dvel.Scale(k1)), p2.Vel.Add(dvel.Scale(k2))
}

// separate moves both circles apart by half the overlap so they end tangent.
func separate(p1, p2 Particle) (Vec2, Vec2) {
	axis := p2.Pos.Sub(p1.Pos)
	dist := axis.Mag()
	halfOverlap := 0.5 * (p1.Radius + p2.Radius - dist)
	displacement := axis.Div(dist).Scale(halfOverlap)
	return p1.Pos.Sub(displacement), p2.Pos.Add(displacement)
}

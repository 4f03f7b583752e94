package physics

import (
	"fmt"

	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/pkg/sequence"
)

const (
	// ContactDamping scales both velocities after a particle-particle hit.
	ContactDamping float32 = 0.99
	// DefaultWallRestitution scales the reflected velocity after a wall hit.
	DefaultWallRestitution float32 = 0.95
)

// ContactListener is told about every particle-particle hit. Indices refer to
// the particle store at the moment of the hit, with i < j.
type ContactListener func(i, j int)

// World owns the particle store and the static walls.
// particles and colors form one entity table: they always have the same
// length and index i names the same entity in both.
type World struct {
	particles []Particle
	colors    []Color
	segments  []Segment

	wallRestitution float32
	onContact       ContactListener
	logger          log.Log
}

// Option configures a World.
type Option func(*World)

// WithWallRestitution overrides the factor applied to velocities reflected off walls.
func WithWallRestitution(f float32) Option {
	return func(w *World) { w.wallRestitution = f }
}

// WithContactListener registers a callback fired for every particle-particle hit.
func WithContactListener(fn ContactListener) Option {
	return func(w *World) { w.onContact = fn }
}

// WithLogger sets the logger used for admission and geometry diagnostics.
func WithLogger(logger log.Log) Option {
	return func(w *World) { w.logger = logger }
}

// NewWorld creates a width x height arena framed by four walls.
func NewWorld(width, height int, opts ...Option) *World {
	w := &World{
		segments:        frame(Vec2{}, V(float32(width), float32(height))),
		wallRestitution: DefaultWallRestitution,
		logger:          log.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// PushSegment adds a wall from start to end. Zero-length walls are refused.
func (w *World) PushSegment(start, end Vec2) error {
	s := NewSegment(start, end)
	if s.Degenerate() {
		w.logger.Debug("segment refused",
			log.String("start", start.String()),
			log.Error(ErrDegenerateSegment),
		)
		return ErrDegenerateSegment
	}
	w.segments = append(w.segments, s)
	return nil
}

// TryPush admits p if it overlaps no existing particle. It reports whether p was added.
func (w *World) TryPush(p Particle) bool {
	for i := range w.particles {
		if w.particles[i].Collision(p) {
			w.logger.Debug("particle rejected",
				log.String("pos", p.Pos.String()),
				log.Int("overlaps", i),
			)
			return false
		}
	}
	w.particles = append(w.particles, p)
	w.colors = append(w.colors, Red)
	return true
}

// StepFrame advances the world by dt split into steps equal substeps and
// returns the number of pair checks performed. It panics on a strategy that
// is neither AllPairs nor SweepAndPrune.
func (w *World) StepFrame(dt, drag float32, steps int, strategy Strategy) uint32 {
	if steps <= 0 {
		return 0
	}
	subDt := dt / float32(steps)

	var checks uint32
	for range steps {
		checks += w.stepDt(subDt, drag, strategy)
	}
	return checks
}

func (w *World) stepDt(dt, drag float32, strategy Strategy) uint32 {
	for i := range w.particles {
		w.particles[i].Step(dt, drag)
	}

	var checks uint32
	switch strategy {
	case AllPairs:
		checks = w.collideAllPairs()
	case SweepAndPrune:
		checks = w.collideSweepAndPrune()
	default:
		panic(fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy))
	}

	w.collideWalls()
	return checks
}

// collideWalls tests each particle against every wall in insertion order.
// Each correction lands before the next wall is tested so a particle wedged
// in a corner is pushed out of both walls in one substep.
func (w *World) collideWalls() {
	for i := range w.particles {
		p := &w.particles[i]
		for _, s := range w.segments {
			if vel, pos, ok := s.Collide(*p); ok {
				p.Vel = vel.Scale(w.wallRestitution)
				p.Pos = pos
			}
		}
	}
}

// Momentum is the sum of |vel|·mass over all particles.
func (w *World) Momentum() float32 {
	return sequence.Fold(sequence.From(w.particles), 0, func(total float32, p Particle) float32 {
		return total + p.Vel.Mag()*p.Mass()
	})
}

func (w *World) NumParticles() int { return len(w.particles) }
func (w *World) NumSegments() int  { return len(w.segments) }

// Particles returns the live particle column. It must be treated as read-only
// and is only valid until the next mutating call.
func (w *World) Particles() []Particle { return w.particles }

// Colors returns the live color column, index-aligned with Particles.
func (w *World) Colors() []Color { return w.colors }

// Segments returns the live wall list.
func (w *World) Segments() []Segment { return w.segments }

// Snapshot is a detached copy of the world's visible state.
type Snapshot struct {
	Particles []Particle
	Colors    []Color
	Segments  []Segment
}

// Snapshot copies the current state so it can outlive further steps.
func (w *World) Snapshot() Snapshot {
	return Snapshot{
		Particles: append([]Particle(nil), w.particles...),
		Colors:    append([]Color(nil), w.colors...),
		Segments:  append([]Segment(nil), w.segments...),
	}
}

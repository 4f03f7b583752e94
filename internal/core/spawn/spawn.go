package spawn

import (
	"math/rand/v2"

	"github.com/zeusync/arena/internal/core/systems/physics"
)

// GestureGain scales the drag vector of a gesture into a launch velocity.
const GestureGain float32 = 2

// Pusher accepts spawn requests. *physics.World satisfies it.
type Pusher interface {
	TryPush(p physics.Particle) bool
}

// Config describes how random particles are generated.
type Config struct {
	Width    int
	Height   int
	Radius   float32
	Velocity physics.Vec2
	Seed     uint64
}

// Spawner produces particle spawn requests from a seeded source, so two
// spawners built from the same Config produce the same particles.
type Spawner struct {
	config Config
	rng    *rand.Rand
}

func New(config Config) *Spawner {
	return &Spawner{
		config: config,
		rng:    rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15)),
	}
}

// Random returns a particle placed uniformly so that it fits inside the arena.
func (s *Spawner) Random() physics.Particle {
	r := s.config.Radius
	return physics.NewParticle(
		physics.V(s.uniform(r, float32(s.config.Width)-r), s.uniform(r, float32(s.config.Height)-r)),
		s.config.Velocity,
		r,
	)
}

func (s *Spawner) uniform(lo, hi float32) float32 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float32()*(hi-lo)
}

// Populate offers random particles to w until n are admitted or maxAttempts
// offers have been made. It returns the number admitted.
func (s *Spawner) Populate(w Pusher, n, maxAttempts int) int {
	admitted := 0
	for attempt := 0; admitted < n && attempt < maxAttempts; attempt++ {
		if w.TryPush(s.Random()) {
			admitted++
		}
	}
	return admitted
}

// Gesture is a press-drag-release pointer interaction.
type Gesture struct {
	Press   physics.Vec2
	Release physics.Vec2
}

// Particle launches a particle from the press point, away from the release point.
func (g Gesture) Particle(radius float32) physics.Particle {
	return physics.NewParticle(g.Press, g.Press.Sub(g.Release).Scale(GestureGain), radius)
}

// Phantom is the pending particle shown while the pointer is still held.
func (g Gesture) Phantom(radius float32) physics.Particle {
	return physics.NewParticle(g.Press, physics.Vec2{}, radius)
}

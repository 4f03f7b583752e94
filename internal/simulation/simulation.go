package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/arena/internal/core/events/bus"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/core/render"
	"github.com/zeusync/arena/internal/core/spawn"
	"github.com/zeusync/arena/internal/core/systems"
	"github.com/zeusync/arena/internal/core/systems/physics"
)

// Event types published on the bus
const (
	EventParticleAdmitted = "particle.admitted"
	EventParticleRejected = "particle.rejected"
	EventFrameStepped     = "frame.stepped"
)

// FrameStats is the payload of EventFrameStepped.
type FrameStats struct {
	Frame    uint64
	Checks   uint32
	Contacts uint32
	Momentum float32
}

// Summary describes a finished run.
type Summary struct {
	RunID     string
	Strategy  physics.Strategy
	Frames    uint64
	Checks    uint64
	Contacts  uint64
	Particles int
	Momentum  float32
	Checksum  uint64
	Elapsed   time.Duration
}

// Simulation owns one world and drives it frame by frame. All access to the
// world goes through the simulation's mutex; readers only ever see whole frames.
type Simulation struct {
	id     string
	config Config

	world   *physics.World
	system  *physics.System
	manager *systems.Manager
	spawner *spawn.Spawner

	bus    bus.EventBus
	logger log.Log

	mu            sync.Mutex
	started       bool
	populated     bool
	frame         uint64
	frameContacts uint32
	totalContacts uint64
	elapsed       time.Duration
}

// New validates config and builds the world, its walls and the physics system.
func New(config Config, eventBus bus.EventBus, logger log.Log) (*Simulation, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	stepConfig, err := config.StepConfig()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.Nop()
	}

	id := uuid.NewString()
	s := &Simulation{
		id:     id,
		config: config,
		bus:    eventBus,
		logger: logger.With(log.String("run_id", id), log.String("strategy", stepConfig.Strategy.String())),
	}

	s.world = physics.NewWorld(config.Width, config.Height,
		physics.WithWallRestitution(config.WallRestitution),
		physics.WithContactListener(s.onContact),
		physics.WithLogger(s.logger),
	)
	for _, wall := range config.Walls {
		if err = s.world.PushSegment(wall.Start.Vec(), wall.End.Vec()); err != nil {
			return nil, err
		}
	}

	s.system = physics.NewSystem(s.world, stepConfig)
	s.manager = systems.NewManager()
	if err = s.manager.RegisterSystem(s.system); err != nil {
		return nil, err
	}
	s.manager.OnSystemError(func(name string, err error) {
		s.logger.Error("system failed", log.String("system", name), log.Error(err))
	})
	s.spawner = spawn.New(spawn.Config{
		Width:    config.Width,
		Height:   config.Height,
		Radius:   config.Spawn.Radius,
		Velocity: config.Spawn.Velocity.Vec(),
		Seed:     config.Spawn.Seed,
	})
	return s, nil
}

func (s *Simulation) ID() string         { return s.id }
func (s *Simulation) Config() Config     { return s.config }
func (s *Simulation) onContact(_, _ int) { s.frameContacts++ }

// Start initializes the physics system. The configured population is spawned
// on the first start only; a start after Stop resumes the existing world.
func (s *Simulation) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	if err := s.manager.InitializeAll(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	s.started = true
	resumed := s.populated
	s.populated = true
	s.mu.Unlock()

	if resumed {
		s.logger.Info("simulation resumed", log.Uint64("frame", s.Summary().Frames))
		return nil
	}

	admitted := s.spawner.Populate(pusherFunc(s.Spawn), s.config.Spawn.Count, s.config.Spawn.MaxAttempts)
	if admitted < s.config.Spawn.Count {
		s.logger.Warn("arena too crowded for requested population",
			log.Int("requested", s.config.Spawn.Count),
			log.Int("admitted", admitted),
		)
	}
	s.logger.Info("simulation started",
		log.Int("width", s.config.Width),
		log.Int("height", s.config.Height),
		log.Int("particles", admitted),
		log.Int("walls", s.world.NumSegments()),
	)
	return nil
}

// Stop shuts the physics system down. Further steps fail until the next Start.
func (s *Simulation) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return ErrNotStarted
	}
	s.started = false
	return s.manager.ShutdownAll(ctx)
}

// Spawn offers p to the world and reports whether it was admitted.
func (s *Simulation) Spawn(p physics.Particle) bool {
	s.mu.Lock()
	ok := s.world.TryPush(p)
	s.mu.Unlock()

	eventType := EventParticleRejected
	if ok {
		eventType = EventParticleAdmitted
	}
	s.publish(eventType, p)
	return ok
}

// Launch spawns the particle described by a pointer gesture.
func (s *Simulation) Launch(g spawn.Gesture) bool {
	return s.Spawn(g.Particle(s.config.Spawn.Radius))
}

// Step advances the world by one frame.
func (s *Simulation) Step() (FrameStats, error) {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return FrameStats{}, ErrNotStarted
	}

	started := time.Now()
	s.frameContacts = 0
	if err := s.manager.Update(s.config.FrameDt()); err != nil {
		s.mu.Unlock()
		return FrameStats{}, err
	}
	s.elapsed += time.Since(started)
	s.frame++
	s.totalContacts += uint64(s.frameContacts)

	stats := FrameStats{
		Frame:    s.frame,
		Checks:   s.system.LastChecks(),
		Contacts: s.frameContacts,
		Momentum: s.world.Momentum(),
	}
	s.mu.Unlock()

	s.logger.Debug("frame stepped",
		log.Uint64("frame", stats.Frame),
		log.Uint32("checks", stats.Checks),
		log.Uint32("contacts", stats.Contacts),
		log.Float32("momentum", stats.Momentum),
	)
	s.publish(EventFrameStepped, stats)
	return stats, nil
}

// Run steps frames until frames have elapsed or ctx is done.
func (s *Simulation) Run(ctx context.Context, frames int) (Summary, error) {
	for range frames {
		if err := ctx.Err(); err != nil {
			return s.Summary(), err
		}
		if _, err := s.Step(); err != nil {
			return s.Summary(), err
		}
	}

	summary := s.Summary()
	s.logger.Info("simulation finished",
		log.Uint64("frames", summary.Frames),
		log.Uint64("checks", summary.Checks),
		log.Uint64("contacts", summary.Contacts),
		log.Int("particles", summary.Particles),
		log.Float32("momentum", summary.Momentum),
		log.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}

// Summary reports totals for the frames stepped so far.
func (s *Simulation) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Summary{
		RunID:     s.id,
		Strategy:  s.system.Config().Strategy,
		Frames:    s.frame,
		Checks:    s.system.TotalChecks(),
		Contacts:  s.totalContacts,
		Particles: s.world.NumParticles(),
		Momentum:  s.world.Momentum(),
		Checksum:  s.world.Checksum(),
		Elapsed:   s.elapsed,
	}
}

// Snapshot returns a copy of the current frame.
func (s *Simulation) Snapshot() physics.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Snapshot()
}

// Render splats the current frame into a new framebuffer.
func (s *Simulation) Render(phantom *physics.Particle) *render.Framebuffer {
	fb := render.NewFramebuffer(s.config.Width, s.config.Height)
	fb.Splat(s.Snapshot(), phantom)
	return fb
}

func (s *Simulation) publish(eventType string, data any) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(bus.NewEvent(eventType, s.id, data)); err != nil {
		s.logger.Warn("event handler failed", log.String("event", eventType), log.Error(err))
	}
}

type pusherFunc func(physics.Particle) bool

func (f pusherFunc) TryPush(p physics.Particle) bool { return f(p) }

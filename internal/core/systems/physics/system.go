package physics

import (
	"context"
	"time"

	"github.com/zeusync/arena/internal/core/systems"
)

var _ systems.System = (*System)(nil)

// StepConfig holds the per-frame stepping parameters.
type StepConfig struct {
	Drag     float32
	Steps    int
	Strategy Strategy
}

// System drives a World once per frame.
type System struct {
	world  *World
	config StepConfig

	enabled bool
	state   systems.StateIdentity

	metrics     systems.Metrics
	lastChecks  uint32
	totalChecks uint64
}

func NewSystem(world *World, config StepConfig) *System {
	return &System{
		world:   world,
		config:  config,
		enabled: true,
	}
}

func (s *System) Name() string                    { return "physics" }
func (s *System) Priority() systems.Priority      { return systems.PriorityHighest }
func (s *System) IsEnabled() bool                 { return s.enabled }
func (s *System) SetEnabled(enabled bool)         { s.enabled = enabled }
func (s *System) GetState() systems.StateIdentity { return s.state }
func (s *System) GetMetrics() systems.Metrics     { return s.metrics }
func (s *System) World() *World                   { return s.world }
func (s *System) Config() StepConfig              { return s.config }

// SetStrategy switches the detection strategy for subsequent frames.
func (s *System) SetStrategy(strategy Strategy) { s.config.Strategy = strategy }

// LastChecks is the pair check count of the most recent frame.
func (s *System) LastChecks() uint32 { return s.lastChecks }

// TotalChecks is the pair check count accumulated over every frame.
func (s *System) TotalChecks() uint64 { return s.totalChecks }

func (s *System) Initialize(_ context.Context) error {
	if s.state == systems.StateRunning {
		return ErrSystemRunning
	}
	s.state = systems.StateRunning
	return nil
}

func (s *System) Shutdown(_ context.Context) error {
	s.state = systems.StateShutdown
	return nil
}

// Update steps the world by deltaTime seconds. Disabled systems do nothing.
func (s *System) Update(deltaTime float64) error {
	if !s.enabled {
		return nil
	}
	if s.state != systems.StateRunning {
		return ErrSystemNotRunning
	}

	started := time.Now()
	s.lastChecks = s.world.StepFrame(float32(deltaTime), s.config.Drag, s.config.Steps, s.config.Strategy)
	s.totalChecks += uint64(s.lastChecks)
	s.metrics.Record(started, time.Since(started), s.world.NumParticles(), nil)
	return nil
}

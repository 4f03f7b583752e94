//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/arena/internal/core/events/bus"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/simulation"
)

func InitializeLogger(level log.Level) *log.Logger {
	wire.Build(log.New)
	return nil
}

func InitializeSimulation(config simulation.Config, logger log.Log) (*simulation.Simulation, error) {
	wire.Build(bus.New, simulation.New)
	return nil, nil
}

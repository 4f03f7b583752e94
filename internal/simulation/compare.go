package simulation

import (
	"context"
	"errors"

	"github.com/zeusync/arena/internal/core/events/bus"
	"github.com/zeusync/arena/internal/core/observability/log"
	"github.com/zeusync/arena/internal/core/systems/physics"
	"github.com/zeusync/arena/pkg/concurrent"
	"github.com/zeusync/arena/pkg/sequence"
)

// Compare runs one independent simulation per strategy from the same config
// and seed, concurrently, and returns their summaries in Strategies() order.
func Compare(ctx context.Context, config Config, frames int, logger log.Log) ([]Summary, error) {
	strategies := physics.Strategies()
	summaries := make([]Summary, len(strategies))

	err := concurrent.Concurrent(ctx, sequence.From(strategies), func(ctx context.Context, strategy physics.Strategy) error {
		cfg := config
		cfg.Strategy = strategy.String()

		summary, err := runOnce(ctx, cfg, frames, logger)
		if err != nil {
			return err
		}
		summaries[strategy] = summary
		return nil
	})
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func runOnce(ctx context.Context, config Config, frames int, logger log.Log) (summary Summary, err error) {
	sim, err := New(config, bus.New(), logger)
	if err != nil {
		return Summary{}, err
	}
	if err = sim.Start(ctx); err != nil {
		return Summary{}, err
	}
	defer stopInto(context.WithoutCancel(ctx), sim, &err)

	return sim.Run(ctx, frames)
}

// stopInto stops sim and joins any shutdown failure into *err.
func stopInto(ctx context.Context, sim *Simulation, err *error) {
	if stopErr := sim.Stop(ctx); stopErr != nil {
		*err = errors.Join(*err, stopErr)
	}
}

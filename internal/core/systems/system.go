package systems

import (
	"context"
	"time"
)

// System represents a simulation processor driven once per frame
type System interface {
	// Identity

	Name() string

	// Lifecycle

	Initialize(ctx context.Context) error
	Shutdown(ctx context.Context) error

	// Execution

	Update(deltaTime float64) error

	// Configuration

	Priority() Priority

	// State management

	IsEnabled() bool
	SetEnabled(bool)
	GetState() StateIdentity

	// Performance monitoring

	GetMetrics() Metrics
}

// Priority defines execution order priority; higher runs first
type Priority uint16

// System priorities
const (
	PriorityLowest  Priority = 200
	PriorityLow     Priority = 500
	PriorityNormal  Priority = 600
	PriorityHigh    Priority = 1000
	PriorityHighest Priority = 1300
)

// StateIdentity represents the current state of a system
type StateIdentity uint8

const (
	StateUninitialized StateIdentity = iota
	StateRunning
	StateShutdown
)

func (s StateIdentity) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateShutdown:
		return "shutdown"
	default:
		return "unknown"
	}
}

// Metrics provides runtime metrics for a system
type Metrics struct {
	ExecutionCount       uint64
	TotalExecutionTime   time.Duration
	AverageExecutionTime time.Duration
	MaxExecutionTime     time.Duration
	MinExecutionTime     time.Duration
	ErrorCount           uint64
	LastError            error
	LastExecutionTime    time.Time
	EntitiesProcessed    uint64
}

// Record folds one execution into the metrics.
func (m *Metrics) Record(started time.Time, elapsed time.Duration, entities int, err error) {
	m.ExecutionCount++
	m.TotalExecutionTime += elapsed
	m.AverageExecutionTime = m.TotalExecutionTime / time.Duration(m.ExecutionCount)
	if elapsed > m.MaxExecutionTime {
		m.MaxExecutionTime = elapsed
	}
	if m.ExecutionCount == 1 || elapsed < m.MinExecutionTime {
		m.MinExecutionTime = elapsed
	}
	m.LastExecutionTime = started
	m.EntitiesProcessed += uint64(entities)
	if err != nil {
		m.ErrorCount++
		m.LastError = err
	}
}

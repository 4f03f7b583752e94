package systems

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"
)

var (
	ErrSystemExists   = errors.New("system already registered")
	ErrSystemNotFound = errors.New("system not found")
)

// ManagerMetrics provides system manager statistics
type ManagerMetrics struct {
	RegisteredSystems uint32
	EnabledSystems    uint32
	TotalUpdateTime   time.Duration
	AverageUpdateTime time.Duration
	Updates           uint64
	SystemErrorCount  map[string]uint32
	LastUpdateTime    time.Time
}

// Manager orchestrates registered systems.
// Systems run in descending priority; ties keep registration order.
type Manager struct {
	mu      sync.RWMutex
	systems []System
	onError []func(string, error)

	updates    uint64
	updateTime time.Duration
	lastUpdate time.Time
	errors     map[string]uint32
}

func NewManager() *Manager {
	return &Manager{errors: make(map[string]uint32)}
}

// RegisterSystem adds s to the execution order.
func (m *Manager) RegisterSystem(s System) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.indexOf(s.Name()) >= 0 {
		return fmt.Errorf("%w: %s", ErrSystemExists, s.Name())
	}
	m.systems = append(m.systems, s)
	slices.SortStableFunc(m.systems, func(a, b System) int {
		return int(b.Priority()) - int(a.Priority())
	})
	return nil
}

func (m *Manager) UnregisterSystem(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(name)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrSystemNotFound, name)
	}
	m.systems = slices.Delete(m.systems, idx, idx+1)
	return nil
}

func (m *Manager) GetSystem(name string) (System, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if idx := m.indexOf(name); idx >= 0 {
		return m.systems[idx], true
	}
	return nil, false
}

// ListSystems returns the systems in execution order.
func (m *Manager) ListSystems() []System {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.systems)
}

func (m *Manager) GetExecutionOrder() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, len(m.systems))
	for i, s := range m.systems {
		names[i] = s.Name()
	}
	return names
}

// OnSystemError registers a callback invoked whenever a system fails.
func (m *Manager) OnSystemError(fn func(string, error)) {
	m.mu.Lock()
	m.onError = append(m.onError, fn)
	m.mu.Unlock()
}

// InitializeAll initializes systems in execution order and stops at the first failure.
func (m *Manager) InitializeAll(ctx context.Context) error {
	for _, s := range m.ListSystems() {
		if err := s.Initialize(ctx); err != nil {
			m.fail(s.Name(), err)
			return fmt.Errorf("initialize %s: %w", s.Name(), err)
		}
	}
	return nil
}

// ShutdownAll shuts systems down in reverse execution order.
func (m *Manager) ShutdownAll(ctx context.Context) error {
	var all error
	list := m.ListSystems()
	for _, s := range slices.Backward(list) {
		if err := s.Shutdown(ctx); err != nil {
			m.fail(s.Name(), err)
			all = errors.Join(all, fmt.Errorf("shutdown %s: %w", s.Name(), err))
		}
	}
	return all
}

// Update runs every enabled system once. A failing system aborts the pass.
func (m *Manager) Update(deltaTime float64) error {
	started := time.Now()
	defer func() {
		elapsed := time.Since(started)
		m.mu.Lock()
		m.updates++
		m.updateTime += elapsed
		m.lastUpdate = started
		m.mu.Unlock()
	}()

	for _, s := range m.ListSystems() {
		if !s.IsEnabled() {
			continue
		}
		if err := s.Update(deltaTime); err != nil {
			m.fail(s.Name(), err)
			return fmt.Errorf("update %s: %w", s.Name(), err)
		}
	}
	return nil
}

func (m *Manager) GetMetrics() ManagerMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	metrics := ManagerMetrics{
		RegisteredSystems: uint32(len(m.systems)),
		TotalUpdateTime:   m.updateTime,
		Updates:           m.updates,
		SystemErrorCount:  make(map[string]uint32, len(m.errors)),
		LastUpdateTime:    m.lastUpdate,
	}
	for _, s := range m.systems {
		if s.IsEnabled() {
			metrics.EnabledSystems++
		}
	}
	if m.updates > 0 {
		metrics.AverageUpdateTime = m.updateTime / time.Duration(m.updates)
	}
	for name, n := range m.errors {
		metrics.SystemErrorCount[name] = n
	}
	return metrics
}

func (m *Manager) GetSystemMetrics(name string) (Metrics, bool) {
	s, ok := m.GetSystem(name)
	if !ok {
		return Metrics{}, false
	}
	return s.GetMetrics(), true
}

func (m *Manager) fail(name string, err error) {
	m.mu.Lock()
	m.errors[name]++
	callbacks := slices.Clone(m.onError)
	m.mu.Unlock()

	for _, fn := range callbacks {
		fn(name, err)
	}
}

func (m *Manager) indexOf(name string) int {
	return slices.IndexFunc(m.systems, func(s System) bool { return s.Name() == name })
}

package stagefit

import "sync"

var (
	instanceMu sync.Mutex
	instance   *Delegate
)

// Initialize creates the process-wide delegate over the given collaborators,
// replacing any previous one, and returns it.
func Initialize(surface Surface, container Container, viewport Viewport, opts ...Option) *Delegate {
	d := New(surface, container, viewport, opts...)
	instanceMu.Lock()
	instance = d
	instanceMu.Unlock()
	return d
}

// Default returns the process-wide delegate. If Initialize has not been
// called it creates a headless one over an empty MemorySurface with a zero
// viewport; such a delegate cannot resolve a layout until the host supplies
// real collaborators through Initialize.
func Default() *Delegate {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	if instance == nil {
		m := NewMemorySurface(Size{})
		instance = New(m, m.Container(), FixedViewport{})
	}
	return instance
}

// Shutdown discards the process-wide delegate and the shared strategy
// registry.
func Shutdown() {
	instanceMu.Lock()
	instance = nil
	instanceMu.Unlock()
	ShutdownStrategies()
}

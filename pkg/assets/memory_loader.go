package assets

import (
	"sync"

	"github.com/decker502/horde-survivors/pkg/types"
)

// MemoryLoader is a Loader whose states are set by hand. Headless runs use it to skip
// model decoding, and tests use it to script loading sequences.
type MemoryLoader struct {
	mu        sync.Mutex
	states    map[types.Handle]LoadState
	requested []types.Handle
}

// NewMemoryLoader creates a loader with every handle NotLoaded.
func NewMemoryLoader() *MemoryLoader {
	return &MemoryLoader{states: make(map[types.Handle]LoadState)}
}

// Load implements Loader.
func (m *MemoryLoader) Load(h types.Handle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requested = append(m.requested, h)
}

// LoadState implements Loader.
func (m *MemoryLoader) LoadState(h types.Handle) LoadState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.states[h]
}

// Set forces the state of h.
func (m *MemoryLoader) Set(h types.Handle, s LoadState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.states[h] = s
}

// SetAll marks every requested handle with s.
func (m *MemoryLoader) SetAll(s LoadState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, h := range m.requested {
		m.states[h] = s
	}
}

// Requested returns the handles passed to Load, in order.
func (m *MemoryLoader) Requested() []types.Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]types.Handle(nil), m.requested...)
}

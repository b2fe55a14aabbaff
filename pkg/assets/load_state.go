package assets

import (
	"fmt"

	"github.com/decker502/horde-survivors/pkg/types"
)

// LoadState is the loading status of one asset handle.
type LoadState int

const (
	NotLoaded LoadState = iota
	Loaded
	Failed
)

func (s LoadState) String() string {
	switch s {
	case NotLoaded:
		return "NotLoaded"
	case Loaded:
		return "Loaded"
	case Failed:
		return "Failed"
	default:
		return fmt.Sprintf("LoadState(%d)", int(s))
	}
}

// Loader is the asset collaborator: it loads in the background and is polled, never awaited.
type Loader interface {
	// Load requests a handle. Repeated requests are harmless.
	Load(h types.Handle)
	// LoadState reports the current status of a handle; unknown handles are NotLoaded.
	LoadState(h types.Handle) LoadState
}

// Manifest is the tracker's shadow copy of the loader's per-handle state.
// Its size is fixed at registration; each handle moves NotLoaded -> Loaded or
// NotLoaded -> Failed at most once and never back.
type Manifest struct {
	states map[types.Handle]LoadState
	order  []types.Handle
}

// NewManifest creates an empty manifest.
func NewManifest() *Manifest {
	return &Manifest{states: make(map[types.Handle]LoadState)}
}

// Register adds a handle as NotLoaded. Registering twice keeps the first entry.
func (m *Manifest) Register(h types.Handle) {
	if _, ok := m.states[h]; ok {
		return
	}
	m.states[h] = NotLoaded
	m.order = append(m.order, h)
}

// Update records an observed state and reports whether the cached state changed.
// Only NotLoaded entries move; Loaded and Failed are terminal, and observing
// NotLoaded never reverts anything.
func (m *Manifest) Update(h types.Handle, observed LoadState) bool {
	current, ok := m.states[h]
	if !ok || current != NotLoaded || observed == NotLoaded {
		return false
	}
	m.states[h] = observed
	return true
}

// State returns the cached state of h.
func (m *Manifest) State(h types.Handle) (LoadState, bool) {
	s, ok := m.states[h]
	return s, ok
}

// Handles returns the registered handles in registration order.
func (m *Manifest) Handles() []types.Handle {
	return m.order
}

// Total returns the number of registered handles.
func (m *Manifest) Total() int {
	return len(m.order)
}

// NumLoaded counts Loaded handles.
func (m *Manifest) NumLoaded() int {
	return m.count(Loaded)
}

// NumFailed counts Failed handles.
func (m *Manifest) NumFailed() int {
	return m.count(Failed)
}

func (m *Manifest) count(state LoadState) int {
	n := 0
	for _, s := range m.states {
		if s == state {
			n++
		}
	}
	return n
}

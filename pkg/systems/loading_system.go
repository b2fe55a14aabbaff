package systems

import (
	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/decker502/horde-survivors/pkg/game"
)

// LoadingSystem drives the asset tracker while the game is Loading: it forwards
// progress to the UI and requests Initialize when the gate opens.
type LoadingSystem struct {
	tracker *assets.Tracker
	updates *events.Queue[assets.LoadingUpdate]
	states  *game.StateMachine
}

// NewLoadingSystem creates the loading system around tracker.
func NewLoadingSystem(tracker *assets.Tracker, updates *events.Queue[assets.LoadingUpdate], states *game.StateMachine) *LoadingSystem {
	return &LoadingSystem{
		tracker: tracker,
		updates: updates,
		states:  states,
	}
}

// Update ticks the tracker.
func (s *LoadingSystem) Update(deltaTime float64) {
	if s.tracker == nil {
		return
	}
	update, ready := s.tracker.Tick(deltaTime)
	if update != nil {
		s.updates.Send(*update)
	}
	if ready {
		s.states.SetNext(game.StateInitialize)
	}
}

// Teardown drops the tracker; the manifest and timer only live while loading.
func (s *LoadingSystem) Teardown() {
	s.tracker = nil
}

// Active reports whether the tracker is still held.
func (s *LoadingSystem) Active() bool {
	return s.tracker != nil
}

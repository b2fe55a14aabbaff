package systems

import (
	"github.com/decker502/horde-survivors/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// PauseSystem toggles between Playing and PauseMenu on Escape.
type PauseSystem struct {
	input  InputSource
	states *game.StateMachine
}

// NewPauseSystem creates the pause system.
func NewPauseSystem(input InputSource, states *game.StateMachine) *PauseSystem {
	return &PauseSystem{input: input, states: states}
}

// Update requests the state change; it takes effect at the start of the next tick.
func (s *PauseSystem) Update(deltaTime float64) {
	if !s.input.JustPressed(ebiten.KeyEscape) {
		return
	}
	switch s.states.Current() {
	case game.StatePlaying:
		s.states.SetNext(game.StatePauseMenu)
	case game.StatePauseMenu:
		s.states.SetNext(game.StatePlaying)
	}
}

package game

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// GameState is the top-level state of the game.
type GameState int

const (
	// StateLoading waits for every asset in the manifest to finish loading.
	StateLoading GameState = iota
	// StateInitialize spawns the player and the initial world, then hands over to Playing.
	StateInitialize
	StatePlaying
	StatePauseMenu
)

func (s GameState) String() string {
	switch s {
	case StateLoading:
		return "Loading"
	case StateInitialize:
		return "Initialize"
	case StatePlaying:
		return "Playing"
	case StatePauseMenu:
		return "PauseMenu"
	default:
		return fmt.Sprintf("GameState(%d)", int(s))
	}
}

// StateMachine holds the single authoritative GameState plus a "requested next" slot.
// Requests are applied only by ApplyTransition, which the frame loop calls at the start of
// every tick; OnExit hooks of the old state run before OnEnter hooks of the new one.
type StateMachine struct {
	current GameState
	next    *GameState

	onEnter map[GameState][]func()
	onExit  map[GameState][]func()
}

// NewStateMachine creates a machine in StateLoading.
func NewStateMachine() *StateMachine {
	return &StateMachine{
		current: StateLoading,
		onEnter: make(map[GameState][]func()),
		onExit:  make(map[GameState][]func()),
	}
}

// Current returns the active state.
func (m *StateMachine) Current() GameState {
	return m.current
}

// Is reports whether s is the active state.
func (m *StateMachine) Is(s GameState) bool {
	return m.current == s
}

// SetNext requests a transition. A later request in the same tick replaces an earlier one.
func (m *StateMachine) SetNext(s GameState) {
	m.next = &s
}

// Pending returns the requested next state, if any.
func (m *StateMachine) Pending() (GameState, bool) {
	if m.next == nil {
		return 0, false
	}
	return *m.next, true
}

// OnEnter registers fn to run every time the machine enters s.
func (m *StateMachine) OnEnter(s GameState, fn func()) {
	m.onEnter[s] = append(m.onEnter[s], fn)
}

// OnExit registers fn to run every time the machine leaves s.
func (m *StateMachine) OnExit(s GameState, fn func()) {
	m.onExit[s] = append(m.onExit[s], fn)
}

// ApplyTransition applies the pending request, if any, and reports whether the state changed.
// Hooks may request a further transition; it is applied on the next call, not recursively.
func (m *StateMachine) ApplyTransition() bool {
	if m.next == nil {
		return false
	}
	target := *m.next
	m.next = nil
	if target == m.current {
		return false
	}

	previous := m.current
	for _, fn := range m.onExit[previous] {
		fn()
	}
	m.current = target
	log.Info().Str("from", previous.String()).Str("to", target.String()).Msg("game state changed")
	for _, fn := range m.onEnter[target] {
		fn()
	}
	return true
}

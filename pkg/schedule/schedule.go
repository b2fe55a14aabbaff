// Package schedule runs the per-frame system pipeline.
//
// A tick applies any pending game-state transition, then runs the phases in a fixed order:
//
//	ProcessInput -> Spawn -> [spawn barrier] -> PostSpawn -> EntityUpdates -> CollisionDetection -> Despawn
//
// The spawn barrier flushes every deferred structural change queued during Spawn (scene
// instantiation in particular) so that PostSpawn observers see the complete hierarchies.
// After Despawn the entities marked for destruction are removed, and the one-shot
// "just added" component records are cleared.
package schedule

import (
	"fmt"

	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/game"
	"github.com/rs/zerolog/log"
)

// Phase is a named step of the frame.
type Phase int

const (
	ProcessInput Phase = iota
	Spawn
	PostSpawn
	EntityUpdates
	CollisionDetection
	Despawn

	phaseCount
)

// Phases lists every phase in execution order.
var Phases = []Phase{ProcessInput, Spawn, PostSpawn, EntityUpdates, CollisionDetection, Despawn}

func (p Phase) String() string {
	switch p {
	case ProcessInput:
		return "ProcessInput"
	case Spawn:
		return "Spawn"
	case PostSpawn:
		return "PostSpawn"
	case EntityUpdates:
		return "EntityUpdates"
	case CollisionDetection:
		return "CollisionDetection"
	case Despawn:
		return "Despawn"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// System is one unit of per-frame logic. dt is the frame time in seconds.
type System func(dt float64)

// Condition gates a system; the system runs only when every condition returns true.
type Condition func() bool

// InState returns a Condition that holds while the machine is in s.
func InState(m *game.StateMachine, s game.GameState) Condition {
	return func() bool { return m.Is(s) }
}

type entry struct {
	name       string
	system     System
	conditions []Condition
}

func (e entry) enabled() bool {
	for _, cond := range e.conditions {
		if !cond() {
			return false
		}
	}
	return true
}

type barrier struct {
	name  string
	flush func()
}

// Schedule is the ordered pipeline of systems. Systems in a phase run in registration order.
type Schedule struct {
	entityManager *ecs.EntityManager
	states        *game.StateMachine

	phases   [phaseCount][]entry
	barriers []barrier
	frame    uint64
}

// New creates an empty schedule bound to the world and the state machine.
func New(em *ecs.EntityManager, states *game.StateMachine) *Schedule {
	return &Schedule{
		entityManager: em,
		states:        states,
	}
}

// Add registers a system in a phase.
func (s *Schedule) Add(phase Phase, name string, system System, conditions ...Condition) {
	if phase < 0 || phase >= phaseCount {
		panic(fmt.Sprintf("schedule: unknown phase %d for system %q", int(phase), name))
	}
	s.phases[phase] = append(s.phases[phase], entry{name: name, system: system, conditions: conditions})
	log.Debug().Str("phase", phase.String()).Str("system", name).Msg("system registered")
}

// AddBarrier registers a flush that runs between Spawn and PostSpawn, in registration order.
func (s *Schedule) AddBarrier(name string, flush func()) {
	s.barriers = append(s.barriers, barrier{name: name, flush: flush})
}

// Systems returns the registered system names of a phase, in execution order.
func (s *Schedule) Systems(phase Phase) []string {
	names := make([]string, 0, len(s.phases[phase]))
	for _, e := range s.phases[phase] {
		names = append(names, e.name)
	}
	return names
}

// Frame returns the number of completed ticks.
func (s *Schedule) Frame() uint64 {
	return s.frame
}

// Tick runs one frame.
func (s *Schedule) Tick(dt float64) {
	s.states.ApplyTransition()

	for _, phase := range Phases {
		for _, e := range s.phases[phase] {
			if e.enabled() {
				e.system(dt)
			}
		}

		switch phase {
		case Spawn:
			for _, b := range s.barriers {
				b.flush()
			}
		case Despawn:
			s.entityManager.RemoveMarkedEntities()
		}
	}

	s.entityManager.ClearAdded()
	s.frame++
}

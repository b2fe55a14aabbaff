package systems

import (
	"github.com/decker502/horde-survivors/pkg/animation"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerControlSystem turns WASD into player velocity and animation requests.
type PlayerControlSystem struct {
	entityManager *ecs.EntityManager
	input         InputSource
	triggers      *events.Queue[animation.TriggerAnimation]
}

// NewPlayerControlSystem creates the player control system.
func NewPlayerControlSystem(em *ecs.EntityManager, input InputSource, triggers *events.Queue[animation.TriggerAnimation]) *PlayerControlSystem {
	return &PlayerControlSystem{
		entityManager: em,
		input:         input,
		triggers:      triggers,
	}
}

// Update reads the keyboard and updates every player.
// A Walk or Idle request is sent every tick, so a request dropped before the player's
// animation player is mapped is repeated on the next tick.
func (s *PlayerControlSystem) Update(deltaTime float64) {
	dir := s.direction()

	for _, id := range ecs.GetEntitiesWith3[*components.PlayerComponent, *components.PlayerModifiersComponent, *components.VelocityComponent](s.entityManager) {
		mods, _ := ecs.GetComponent[*components.PlayerModifiersComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		vel.Value = dir.Mul(mods.MoveSpeed * mods.MoveSpeedMod)

		anim := types.AnimationIdle
		if dir != (mgl32.Vec3{}) {
			anim = types.AnimationWalk
		}
		mods.LastAnimation = anim
		s.triggers.Send(animation.TriggerAnimation{Root: id, Type: anim})
	}
}

// direction is not normalized, so diagonal movement is faster.
func (s *PlayerControlSystem) direction() mgl32.Vec3 {
	var dir mgl32.Vec3
	if s.input.Pressed(ebiten.KeyA) {
		dir = dir.Sub(mgl32.Vec3{1, 0, 0})
	}
	if s.input.Pressed(ebiten.KeyD) {
		dir = dir.Add(mgl32.Vec3{1, 0, 0})
	}
	if s.input.Pressed(ebiten.KeyW) {
		dir = dir.Add(mgl32.Vec3{0, 1, 0})
	}
	if s.input.Pressed(ebiten.KeyS) {
		dir = dir.Sub(mgl32.Vec3{0, 1, 0})
	}
	return dir
}

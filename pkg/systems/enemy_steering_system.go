package systems

import (
	"github.com/decker502/horde-survivors/pkg/animation"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/go-gl/mathgl/mgl32"
)

// EnemySteeringSystem moves every enemy straight at the player until it is within
// stopping distance. It requests Walk or Idle every tick; repeating a request is harmless.
type EnemySteeringSystem struct {
	entityManager  *ecs.EntityManager
	triggers       *events.Queue[animation.TriggerAnimation]
	speed          float32
	stopDistanceSq float32
}

// NewEnemySteeringSystem creates the steering system.
func NewEnemySteeringSystem(em *ecs.EntityManager, cfg config.EnemyConfig, triggers *events.Queue[animation.TriggerAnimation]) *EnemySteeringSystem {
	return &EnemySteeringSystem{
		entityManager:  em,
		triggers:       triggers,
		speed:          cfg.MoveSpeed,
		stopDistanceSq: cfg.StopDistanceSq,
	}
}

// Update steers every enemy.
func (s *EnemySteeringSystem) Update(deltaTime float64) {
	target, ok := playerPosition(s.entityManager)
	if !ok {
		return
	}

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyComponent, *components.TransformComponent, *components.VelocityComponent](s.entityManager) {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		toPlayer := target.Sub(tr.Translation)
		if toPlayer.LenSqr() > s.stopDistanceSq {
			vel.Value = toPlayer.Normalize().Mul(s.speed)
			s.triggers.Send(animation.TriggerAnimation{Root: id, Type: types.AnimationWalk})
		} else {
			vel.Value = mgl32.Vec3{}
			s.triggers.Send(animation.TriggerAnimation{Root: id, Type: types.AnimationIdle})
		}
	}
}

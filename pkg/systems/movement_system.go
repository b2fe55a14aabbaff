package systems

import (
	"math"

	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// MovementSystem integrates acceleration and velocity, and turns moving entities
// toward their direction of travel.
type MovementSystem struct {
	entityManager *ecs.EntityManager
	rotationSpeed float32
	facingEpsilon float32
}

// NewMovementSystem creates the movement system.
func NewMovementSystem(em *ecs.EntityManager, cfg config.MovementConfig) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
		rotationSpeed: cfg.RotationSpeed,
		facingEpsilon: cfg.FacingEpsilon,
	}
}

// Update advances every movable entity by deltaTime seconds.
func (s *MovementSystem) Update(deltaTime float64) {
	dt := float32(deltaTime)

	for _, id := range ecs.GetEntitiesWith2[*components.AccelerationComponent, *components.VelocityComponent](s.entityManager) {
		acc, _ := ecs.GetComponent[*components.AccelerationComponent](s.entityManager, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		vel.Value = vel.Value.Add(acc.Value.Mul(dt))
	}

	for _, id := range ecs.GetEntitiesWith2[*components.VelocityComponent, *components.TransformComponent](s.entityManager) {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		tr.Translation = tr.Translation.Add(vel.Value.Mul(dt))

		// standing still (or nearly): keep the current facing
		if vel.Value.LenSqr() < s.facingEpsilon {
			continue
		}
		target := FacingRotation(vel.Value)
		amount := dt * s.rotationSpeed
		if amount > 1 {
			amount = 1
		}
		tr.Rotation = mgl32.QuatLerp(tr.Rotation, target, amount).Normalize()
	}
}

// FacingRotation is the rotation around Z that points the +Y forward axis of a
// character along v.
func FacingRotation(v mgl32.Vec3) mgl32.Quat {
	angle := -math.Atan2(float64(v.X()), float64(v.Y()))
	return mgl32.QuatRotate(float32(angle), mgl32.Vec3{0, 0, 1})
}

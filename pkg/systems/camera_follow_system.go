package systems

import (
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraFollowSystem drags the camera rig toward the player in the XY plane. Inside the
// dead zone the rig stays put; outside it moves proportionally to the distance.
type CameraFollowSystem struct {
	entityManager *ecs.EntityManager
}

// NewCameraFollowSystem creates the camera follow system.
func NewCameraFollowSystem(em *ecs.EntityManager) *CameraFollowSystem {
	return &CameraFollowSystem{entityManager: em}
}

// Update moves the camera rig.
func (s *CameraFollowSystem) Update(deltaTime float64) {
	target, ok := playerPosition(s.entityManager)
	if !ok {
		return
	}
	rigs := ecs.GetEntitiesWith2[*components.MainCameraComponent, *components.TransformComponent](s.entityManager)
	if len(rigs) == 0 {
		return
	}
	cam, _ := ecs.GetComponent[*components.MainCameraComponent](s.entityManager, rigs[0])
	tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, rigs[0])

	delta := mgl32.Vec3{target.X() - tr.Translation.X(), target.Y() - tr.Translation.Y(), 0}
	if delta.Len() <= cam.DeadZone {
		return
	}
	tr.Translation = tr.Translation.Add(delta.Mul(cam.FollowSpeed * float32(deltaTime)))
}

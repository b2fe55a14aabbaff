package entities

import (
	"math"

	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/go-gl/mathgl/mgl32"
)

// CharacterMeshTransform is the local transform of a character mesh under its root.
// The models are authored Y-up and the world is Z-up.
func CharacterMeshTransform() components.TransformComponent {
	t := components.IdentityTransform()
	t.Rotation = mgl32.QuatRotate(math.Pi/2, mgl32.Vec3{1, 0, 0})
	return t
}

// newMovableEntity creates a root entity with transform, velocity and acceleration.
func newMovableEntity(em *ecs.EntityManager, position mgl32.Vec3) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.TransformComponent{
		Translation: position,
		Rotation:    mgl32.QuatIdent(),
		Scale:       mgl32.Vec3{1, 1, 1},
	})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.AccelerationComponent{})
	return id
}

// NewPlayerEntity creates the player root entity and requests its mesh.
//
// Parameters:
//   - em: entity manager
//   - cfg: player movement tuning
//   - spawns: mesh spawn request queue
//
// Returns:
//   - ecs.EntityID: the player root entity
func NewPlayerEntity(em *ecs.EntityManager, cfg config.PlayerConfig, spawns *events.Queue[assets.SpawnMesh]) ecs.EntityID {
	id := newMovableEntity(em, mgl32.Vec3{})
	ecs.AddComponent(em, id, &components.PlayerComponent{})
	ecs.AddComponent(em, id, &components.PlayerModifiersComponent{
		MoveSpeed:    cfg.MoveSpeed,
		MoveSpeedMod: cfg.MoveSpeedMod,
	})
	ecs.AddComponent(em, id, &components.AssetKeyComponent{Key: types.AssetKeyPlayer})
	ecs.AddComponent(em, id, &components.NameComponent{Name: "player"})

	spawns.Send(assets.SpawnMesh{Root: id, Key: types.AssetKeyPlayer, Transform: CharacterMeshTransform()})
	return id
}

// NewEnemyEntity creates an enemy root at position and requests its mesh.
func NewEnemyEntity(em *ecs.EntityManager, position mgl32.Vec3, wave int, order uint64, spawns *events.Queue[assets.SpawnMesh]) ecs.EntityID {
	id := newMovableEntity(em, position)
	ecs.AddComponent(em, id, &components.EnemyComponent{Wave: wave, SpawnOrder: order})
	ecs.AddComponent(em, id, &components.AssetKeyComponent{Key: types.AssetKeyEnemy})

	spawns.Send(assets.SpawnMesh{Root: id, Key: types.AssetKeyEnemy, Transform: CharacterMeshTransform()})
	return id
}

// NewCameraEntity creates the camera rig: a root that follows the player, and the
// camera itself as a child placed cfg.Distance away looking back at the rig origin.
func NewCameraEntity(em *ecs.EntityManager, cfg config.CameraConfig) ecs.EntityID {
	rig := em.CreateEntity()
	ecs.AddComponent(em, rig, &components.TransformComponent{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	})
	ecs.AddComponent(em, rig, &components.MainCameraComponent{
		FollowSpeed: cfg.FollowSpeed,
		DeadZone:    cfg.DeadZone,
	})
	ecs.AddComponent(em, rig, &components.NameComponent{Name: "camera rig"})

	eye := mgl32.Vec3{1, -1, 4}.Normalize().Mul(cfg.Distance)
	lens := em.CreateEntity()
	em.SetParent(lens, rig)
	ecs.AddComponent(em, lens, &components.TransformComponent{
		Translation: eye,
		Rotation:    mgl32.QuatLookAtV(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}),
		Scale:       mgl32.Vec3{1, 1, 1},
	})
	ecs.AddComponent(em, lens, &components.NameComponent{Name: "camera"})
	return rig
}

// NewLoadingBarEntity creates the loading progress bar, empty.
func NewLoadingBarEntity(em *ecs.EntityManager, total int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.LoadingBarComponent{Total: total})
	return id
}

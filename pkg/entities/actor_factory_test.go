package entities

import (
	"testing"

	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	spawns := events.NewQueue[assets.SpawnMesh]()
	cfg := config.DefaultGameConfig()

	id := NewPlayerEntity(em, cfg.Player, spawns)

	assert.True(t, ecs.HasComponent[*components.PlayerComponent](em, id))
	assert.True(t, ecs.HasComponent[*components.VelocityComponent](em, id))
	mods, ok := ecs.GetComponent[*components.PlayerModifiersComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, float32(5.0), mods.MoveSpeed)
	assert.Equal(t, float32(1.0), mods.MoveSpeedMod)

	requests := spawns.Drain()
	require.Len(t, requests, 1)
	assert.Equal(t, id, requests[0].Root)
	assert.Equal(t, types.AssetKeyPlayer, requests[0].Key)
}

func TestNewEnemyEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	spawns := events.NewQueue[assets.SpawnMesh]()

	id := NewEnemyEntity(em, mgl32.Vec3{3, 4, 0}, 2, 17, spawns)

	tr, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{3, 4, 0}, tr.Translation)
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	require.True(t, ok)
	assert.Equal(t, 2, enemy.Wave)
	assert.Equal(t, uint64(17), enemy.SpawnOrder)

	requests := spawns.Drain()
	require.Len(t, requests, 1)
	assert.Equal(t, types.AssetKeyEnemy, requests[0].Key)
}

func TestNewCameraEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameConfig()

	rig := NewCameraEntity(em, cfg.Camera)
	cam, ok := ecs.GetComponent[*components.MainCameraComponent](em, rig)
	require.True(t, ok)
	assert.Equal(t, float32(2.0), cam.DeadZone)

	children := em.ChildrenOf(rig)
	require.Len(t, children, 1)
	lens, ok := ecs.GetComponent[*components.TransformComponent](em, children[0])
	require.True(t, ok)
	assert.InDelta(t, 20.0, float64(lens.Translation.Len()), 1e-4)
}

package app

import (
	"testing"

	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/game"
	"github.com/decker502/horde-survivors/pkg/schedule"
	"github.com/decker502/horde-survivors/pkg/systems"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keys map[ebiten.Key]bool

func (k keys) Pressed(key ebiten.Key) bool     { return k[key] }
func (k keys) JustPressed(key ebiten.Key) bool { return false }

func testRegistry(t *testing.T) *assets.Registry {
	t.Helper()
	m, err := config.ParseAssetManifest([]byte(`
assets:
  player:
    file: models/Anne.glb
    animations: {idle: 3, walk: 11, run: 9, take_hit: 2, die: 0}
  enemy:
    file: models/Skeleton.glb
    animations: {idle: 3, walk: 12, run: 10, take_hit: 2, die: 0}
  projectile:
    file: models/Dagger.glb
  destructible:
    file: models/Torch.glb
`))
	require.NoError(t, err)
	r, err := assets.NewRegistryFromManifest(m)
	require.NoError(t, err)
	return r
}

func newTestApp(t *testing.T, loader assets.Loader, input keys) *App {
	t.Helper()
	registry := testRegistry(t)
	if loader == nil {
		loader = StubLoader(registry)
	}
	a, err := New(Config{
		Game:      config.DefaultGameConfig(),
		Registry:  registry,
		Loader:    loader,
		Templates: StubTemplates(registry),
		Input:     input,
	})
	require.NoError(t, err)
	return a
}

// runUntil ticks until cond holds, failing after max ticks.
func runUntil(t *testing.T, a *App, max int, cond func() bool) {
	t.Helper()
	for i := 0; i < max; i++ {
		if cond() {
			return
		}
		require.NoError(t, a.Update())
	}
	require.True(t, cond(), "condition not reached after %d ticks", max)
}

func animationPlayer(t *testing.T, a *App, root ecs.EntityID) *components.AnimationPlayerComponent {
	t.Helper()
	player, ok := a.Mappings().Player(root)
	require.True(t, ok, "root %d has no animation player", root)
	p, ok := ecs.GetComponent[*components.AnimationPlayerComponent](a.EntityManager(), player)
	require.True(t, ok)
	return p
}

func TestNewRequiresCollaborators(t *testing.T) {
	_, err := New(Config{Game: config.DefaultGameConfig()})
	assert.Error(t, err)
}

func TestScheduleLayout(t *testing.T) {
	a := newTestApp(t, nil, keys{})
	assert.Equal(t, []string{"pause", "loading_tracker", "player_control"}, a.Schedule().Systems(schedule.ProcessInput))
	assert.Equal(t, []string{"enemy_waves", "mesh_spawner"}, a.Schedule().Systems(schedule.Spawn))
	assert.Equal(t, []string{"animation_discovery"}, a.Schedule().Systems(schedule.PostSpawn))
}

func TestGameStartsAfterLoading(t *testing.T) {
	a := newTestApp(t, nil, keys{})
	assert.Equal(t, game.StateLoading, a.States().Current())

	runUntil(t, a, 120, func() bool { return a.States().Is(game.StatePlaying) })

	// debounce is 0.5s at 60 TPS
	assert.GreaterOrEqual(t, a.Schedule().Frame(), uint64(30))
	require.NotZero(t, a.Player())

	key, ok := a.AssetMapping().Get(a.Player())
	require.True(t, ok)
	assert.Equal(t, types.AssetKeyPlayer, key)

	p := animationPlayer(t, a, a.Player())
	assert.Equal(t, types.Handle("models/Anne.glb#Animation3"), p.Clip, "player starts idle")

	enemies := ecs.GetEntitiesWith1[*components.EnemyComponent](a.EntityManager())
	assert.Len(t, enemies, 8, "the first wave spawns when initialization ends")
}

func TestGameStallsWhileAssetsMissing(t *testing.T) {
	registry := testRegistry(t)
	loader := assets.NewMemoryLoader()
	handles := registry.Handles()
	for _, h := range handles[1:] {
		loader.Set(h, assets.Loaded)
	}
	loader.Set(handles[0], assets.Failed)

	a := newTestApp(t, loader, keys{})
	for i := 0; i < 300; i++ {
		require.NoError(t, a.Update())
	}
	assert.Equal(t, game.StateLoading, a.States().Current())
	assert.Zero(t, a.Player())
}

func TestEnemiesWalkTowardPlayer(t *testing.T) {
	a := newTestApp(t, nil, keys{})
	runUntil(t, a, 120, func() bool { return a.States().Is(game.StatePlaying) })

	// a few ticks for the enemy scenes to be discovered and steered
	for i := 0; i < 3; i++ {
		require.NoError(t, a.Update())
	}

	for _, enemy := range ecs.GetEntitiesWith1[*components.EnemyComponent](a.EntityManager()) {
		p := animationPlayer(t, a, enemy)
		assert.Equal(t, types.Handle("models/Skeleton.glb#Animation12"), p.Clip)

		vel, _ := ecs.GetComponent[*components.VelocityComponent](a.EntityManager(), enemy)
		assert.InDelta(t, 2.0, float64(vel.Value.Len()), 1e-4)
	}
}

func TestPlayerMovesWithInput(t *testing.T) {
	input := keys{}
	a := newTestApp(t, nil, input)
	runUntil(t, a, 120, func() bool { return a.States().Is(game.StatePlaying) })

	input[ebiten.KeyW] = true
	for i := 0; i < 60; i++ {
		require.NoError(t, a.Update())
	}

	tr, _ := ecs.GetComponent[*components.TransformComponent](a.EntityManager(), a.Player())
	assert.InDelta(t, 5.0, float64(tr.Translation.Y()), 0.1)

	p := animationPlayer(t, a, a.Player())
	assert.Equal(t, types.Handle("models/Anne.glb#Animation11"), p.Clip)
}

func TestDespawnedEnemyLeavesNoMappings(t *testing.T) {
	a := newTestApp(t, nil, keys{})
	runUntil(t, a, 120, func() bool { return a.States().Is(game.StatePlaying) })
	require.NoError(t, a.Update())

	enemy := ecs.GetEntitiesWith1[*components.EnemyComponent](a.EntityManager())[0]
	_, ok := a.Mappings().Player(enemy)
	require.True(t, ok)

	a.despawns.Send(systems.DespawnRequest{Root: enemy})
	require.NoError(t, a.Update())

	assert.False(t, a.EntityManager().IsAlive(enemy))
	_, ok = a.Mappings().Player(enemy)
	assert.False(t, ok)
	_, ok = a.AssetMapping().Get(enemy)
	assert.False(t, ok)
}

func TestLayout(t *testing.T) {
	a := newTestApp(t, nil, keys{})
	w, h := a.Layout(100, 100)
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
}

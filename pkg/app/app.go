// Package app wires every system into the game and implements ebiten.Game.
//
// main builds the collaborators (configuration, asset registry, model loader,
// scene templates) and hands them to New; headless runs drive the same App
// through RunHeadless without opening a window.
package app

import (
	"fmt"
	"image/color"

	"github.com/decker502/horde-survivors/pkg/animation"
	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/entities"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/decker502/horde-survivors/pkg/game"
	"github.com/decker502/horde-survivors/pkg/scene"
	"github.com/decker502/horde-survivors/pkg/schedule"
	"github.com/decker502/horde-survivors/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog/log"
)

var backgroundColor = color.RGBA{R: 24, G: 28, B: 36, A: 255}

// Config holds the collaborators of the App.
type Config struct {
	Game      *config.GameConfig
	Registry  *assets.Registry
	Loader    assets.Loader
	Templates scene.TemplateSource
	// Input defaults to the ebiten keyboard.
	Input systems.InputSource
}

// App is the game: one ECS world driven by the frame schedule.
type App struct {
	cfg *config.GameConfig
	dt  float64

	entityManager *ecs.EntityManager
	states        *game.StateMachine
	schedule      *schedule.Schedule

	spawns   *events.Queue[assets.SpawnMesh]
	triggers *events.Queue[animation.TriggerAnimation]
	despawns *events.Queue[systems.DespawnRequest]
	updates  *events.Queue[assets.LoadingUpdate]

	registry     *assets.Registry
	assetMapping *assets.EntityAssetMapping
	mappings     *animation.Mappings
	instantiator *scene.Instantiator

	input     systems.InputSource
	loading   *systems.LoadingSystem
	loadingUI *systems.LoadingUISystem
	waves     *systems.EnemyWaveSystem

	player ecs.EntityID
}

// New builds the world and its schedule. The game starts in Loading.
func New(cfg Config) (*App, error) {
	if cfg.Game == nil || cfg.Registry == nil || cfg.Loader == nil || cfg.Templates == nil {
		return nil, fmt.Errorf("app: game config, registry, loader and templates are required")
	}
	if cfg.Input == nil {
		cfg.Input = systems.KeyboardInput{}
	}

	em := ecs.NewEntityManager()
	states := game.NewStateMachine()

	a := &App{
		cfg:           cfg.Game,
		dt:            1.0 / float64(cfg.Game.Window.TPS),
		entityManager: em,
		states:        states,
		schedule:      schedule.New(em, states),
		spawns:        events.NewQueue[assets.SpawnMesh](),
		triggers:      events.NewQueue[animation.TriggerAnimation](),
		despawns:      events.NewQueue[systems.DespawnRequest](),
		updates:       events.NewQueue[assets.LoadingUpdate](),
		registry:      cfg.Registry,
		assetMapping:  assets.NewEntityAssetMapping(),
		mappings:      animation.NewMappings(),
		instantiator:  scene.NewInstantiator(em, cfg.Templates),
		input:         cfg.Input,
	}

	handles := cfg.Registry.Handles()
	tracker := assets.NewTracker(cfg.Loader, handles, cfg.Game.Loading.Debounce.Seconds())
	a.loading = systems.NewLoadingSystem(tracker, a.updates, states)
	a.loadingUI = systems.NewLoadingUISystem(em, a.updates, len(handles))
	a.waves = systems.NewEnemyWaveSystem(em, cfg.Game.Enemy, a.spawns, a.despawns)

	entities.NewCameraEntity(em, cfg.Game.Camera)
	systems.RegisterMappingCleanup(em, a.assetMapping, a.mappings)

	a.registerStateHooks()
	a.registerSystems()
	return a, nil
}

func (a *App) registerStateHooks() {
	a.states.OnExit(game.StateLoading, func() {
		a.loading.Teardown()
		a.loadingUI.Hide()
	})
	a.states.OnEnter(game.StateInitialize, func() {
		a.player = entities.NewPlayerEntity(a.entityManager, a.cfg.Player, a.spawns)
		log.Info().Uint64("entity", uint64(a.player)).Msg("player spawned")
		a.states.SetNext(game.StatePlaying)
	})
	a.states.OnExit(game.StateInitialize, func() {
		a.waves.SpawnWave()
	})
}

func (a *App) registerSystems() {
	s := a.schedule
	input := a.input
	em := a.entityManager
	loading := schedule.InState(a.states, game.StateLoading)
	playing := schedule.InState(a.states, game.StatePlaying)
	notPaused := func() bool { return !a.states.Is(game.StatePauseMenu) }

	s.Add(schedule.ProcessInput, "pause", systems.NewPauseSystem(input, a.states).Update)
	s.Add(schedule.ProcessInput, "loading_tracker", a.loading.Update, loading)
	s.Add(schedule.ProcessInput, "player_control",
		systems.NewPlayerControlSystem(em, input, a.triggers).Update, playing)

	s.Add(schedule.Spawn, "enemy_waves", a.waves.Update, playing)
	s.Add(schedule.Spawn, "mesh_spawner",
		assets.NewMeshSpawner(a.registry, a.assetMapping, a.instantiator, a.spawns).Update)
	s.AddBarrier("scene_instantiation", a.instantiator.Flush)

	s.Add(schedule.PostSpawn, "animation_discovery",
		animation.NewDiscovery(em, a.mappings, a.cfg.Scene.MaxDepth).Update)

	dispatcher := animation.NewDispatcher(em, a.registry, a.assetMapping, a.mappings, a.triggers,
		a.cfg.Animation.CrossFade.Seconds())
	s.Add(schedule.EntityUpdates, "enemy_steering",
		systems.NewEnemySteeringSystem(em, a.cfg.Enemy, a.triggers).Update, playing)
	s.Add(schedule.EntityUpdates, "movement", systems.NewMovementSystem(em, a.cfg.Movement).Update, playing)
	s.Add(schedule.EntityUpdates, "start_idle", dispatcher.StartIdle)
	s.Add(schedule.EntityUpdates, "animation_triggers", dispatcher.Update)
	s.Add(schedule.EntityUpdates, "animation_playback", animation.NewPlayback(em).Update, notPaused)
	s.Add(schedule.EntityUpdates, "camera_follow", systems.NewCameraFollowSystem(em).Update, playing)
	s.Add(schedule.EntityUpdates, "loading_ui", a.loadingUI.Update, loading)

	s.Add(schedule.Despawn, "despawn", systems.NewDespawnSystem(em, a.despawns).Update)
}

// Update runs one tick. F11 toggles fullscreen.
func (a *App) Update() error {
	if a.input.JustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	a.schedule.Tick(a.dt)
	return nil
}

// RunHeadless runs n ticks without a window.
func (a *App) RunHeadless(n int) {
	for i := 0; i < n; i++ {
		a.schedule.Tick(a.dt)
	}
	log.Info().
		Int("ticks", n).
		Str("state", a.states.Current().String()).
		Int("entities", a.entityManager.EntityCount()).
		Int("enemies", len(ecs.GetEntitiesWith1[*components.EnemyComponent](a.entityManager))).
		Int("animated", a.mappings.Len()).
		Msg("headless run finished")
}

// Draw shows the loading screen, then a debug overlay of the world.
func (a *App) Draw(screen *ebiten.Image) {
	if a.states.Is(game.StateLoading) {
		a.loadingUI.Draw(screen)
		return
	}

	screen.Fill(backgroundColor)
	enemies := len(ecs.GetEntitiesWith1[*components.EnemyComponent](a.entityManager))
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"state: %s\nwave: %d\nenemies: %d\nentities: %d\nanimated: %d\nTPS: %0.1f",
		a.states.Current(), a.waves.Wave(), enemies, a.entityManager.EntityCount(), a.mappings.Len(), ebiten.ActualTPS(),
	))
	if a.states.Is(game.StatePauseMenu) {
		ebitenutil.DebugPrintAt(screen, "PAUSED (Esc to resume)", a.cfg.Window.Width/2-66, a.cfg.Window.Height/2)
	}
}

// DrawFinalScreen scales the offscreen with linear filtering and black letterboxing.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout returns the configured logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Window.Width, a.cfg.Window.Height
}

// EntityManager exposes the world (tests, tools).
func (a *App) EntityManager() *ecs.EntityManager {
	return a.entityManager
}

// States exposes the game state machine.
func (a *App) States() *game.StateMachine {
	return a.states
}

// Player returns the player root entity, 0 before Initialize.
func (a *App) Player() ecs.EntityID {
	return a.player
}

// Mappings exposes the root <-> animation player mappings.
func (a *App) Mappings() *animation.Mappings {
	return a.mappings
}

// AssetMapping exposes the entity -> asset key table.
func (a *App) AssetMapping() *assets.EntityAssetMapping {
	return a.assetMapping
}

// Schedule exposes the frame schedule.
func (a *App) Schedule() *schedule.Schedule {
	return a.schedule
}

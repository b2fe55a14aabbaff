package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/decker502/horde-survivors/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// GameConfig is the tuning of the game, loaded from data/game.yaml.
// Fields missing from the file keep the values of DefaultGameConfig.
type GameConfig struct {
	Window    WindowConfig    `yaml:"window"`
	Loading   LoadingConfig   `yaml:"loading"`
	Animation AnimationConfig `yaml:"animation"`
	Player    PlayerConfig    `yaml:"player"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Movement  MovementConfig  `yaml:"movement"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // logic ticks per second
}

type LoadingConfig struct {
	// Debounce is the one-shot delay before the loading gate may open.
	Debounce Duration `yaml:"debounce"`
	// Workers bounds concurrent model file decoding.
	Workers int `yaml:"workers"`
}

type AnimationConfig struct {
	CrossFade Duration `yaml:"crossfade"`
}

type PlayerConfig struct {
	MoveSpeed    float32 `yaml:"move_speed"`
	MoveSpeedMod float32 `yaml:"move_speed_mod"`
}

type EnemyConfig struct {
	WaveInterval   Duration `yaml:"wave_interval"`
	WaveSize       int      `yaml:"wave_size"`
	SpawnRadius    float32  `yaml:"spawn_radius"`
	MoveSpeed      float32  `yaml:"move_speed"`
	StopDistanceSq float32  `yaml:"stop_distance_sq"`
	// MaxAlive caps live enemies; 0 means unlimited. When a wave would exceed the cap the
	// oldest enemies are despawned to make room.
	MaxAlive int `yaml:"max_alive"`
}

type MovementConfig struct {
	RotationSpeed float32 `yaml:"rotation_speed"`
	FacingEpsilon float32 `yaml:"facing_epsilon"`
}

type CameraConfig struct {
	Distance    float32 `yaml:"distance"`
	FollowSpeed float32 `yaml:"follow_speed"`
	DeadZone    float32 `yaml:"dead_zone"`
}

type SceneConfig struct {
	// MaxDepth bounds template node nesting below a scene root. Parent-chain walks allow
	// the extra scene-root link; deeper (or cyclic) chains are rejected.
	MaxDepth int `yaml:"max_depth"`
}

// DefaultGameConfig returns the built-in tuning.
func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "Horde Survivors", TPS: 60},
		Loading: LoadingConfig{
			Debounce: Duration(500 * time.Millisecond),
			Workers:  4,
		},
		Animation: AnimationConfig{CrossFade: Duration(250 * time.Millisecond)},
		Player:    PlayerConfig{MoveSpeed: 5.0, MoveSpeedMod: 1.0},
		Enemy: EnemyConfig{
			WaveInterval:   Duration(5 * time.Second),
			WaveSize:       8,
			SpawnRadius:    15,
			MoveSpeed:      2.0,
			StopDistanceSq: 2.25,
		},
		Movement: MovementConfig{RotationSpeed: 5.0, FacingEpsilon: 0.05},
		Camera:   CameraConfig{Distance: 20, FollowSpeed: 1.5, DeadZone: 2.0},
		Scene:    SceneConfig{MaxDepth: 64},
	}
}

// LoadGameConfig reads an embedded YAML file (e.g. "data/game.yaml") on top of the defaults.
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config %s: %w", path, err)
	}
	cfg, err := ParseGameConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameConfig decodes YAML on top of the defaults and validates the result.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := DefaultGameConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game config YAML: %w", err)
	}
	if err := validateGameConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateGameConfig(cfg *GameConfig) error {
	switch {
	case cfg.Window.Width <= 0 || cfg.Window.Height <= 0:
		return fmt.Errorf("%w: window size must be positive, got %dx%d", ErrInvalidConfig, cfg.Window.Width, cfg.Window.Height)
	case cfg.Window.TPS <= 0:
		return fmt.Errorf("%w: window.tps must be positive, got %d", ErrInvalidConfig, cfg.Window.TPS)
	case cfg.Loading.Debounce < 0:
		return fmt.Errorf("%w: loading.debounce cannot be negative", ErrInvalidConfig)
	case cfg.Loading.Workers < 1:
		return fmt.Errorf("%w: loading.workers must be at least 1, got %d", ErrInvalidConfig, cfg.Loading.Workers)
	case cfg.Animation.CrossFade < 0:
		return fmt.Errorf("%w: animation.crossfade cannot be negative", ErrInvalidConfig)
	case cfg.Enemy.WaveInterval <= 0:
		return fmt.Errorf("%w: enemy.wave_interval must be positive", ErrInvalidConfig)
	case cfg.Enemy.WaveSize < 0:
		return fmt.Errorf("%w: enemy.wave_size cannot be negative, got %d", ErrInvalidConfig, cfg.Enemy.WaveSize)
	case cfg.Enemy.SpawnRadius <= 0:
		return fmt.Errorf("%w: enemy.spawn_radius must be positive", ErrInvalidConfig)
	case cfg.Enemy.MaxAlive < 0:
		return fmt.Errorf("%w: enemy.max_alive cannot be negative", ErrInvalidConfig)
	case cfg.Scene.MaxDepth < 1:
		return fmt.Errorf("%w: scene.max_depth must be at least 1, got %d", ErrInvalidConfig, cfg.Scene.MaxDepth)
	}
	return nil
}

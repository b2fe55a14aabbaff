package components

import "github.com/decker502/horde-survivors/pkg/types"

// PlayerComponent marks the player's root entity.
type PlayerComponent struct{}

// PlayerModifiersComponent holds the tunable movement numbers of the player.
type PlayerModifiersComponent struct {
	MoveSpeed    float32 // base speed, world units per second
	MoveSpeedMod float32 // multiplier applied on top of MoveSpeed (buffs/debuffs)

	// LastAnimation is the animation requested by input handling on the latest tick.
	LastAnimation types.AnimationType
}

// EnemyComponent marks an enemy root entity.
type EnemyComponent struct {
	Wave       int    // index of the wave that spawned it
	SpawnOrder uint64 // monotonically increasing across waves; lower is older
}

// AssetKeyComponent tags a root entity with the asset bundle it renders with.
// Set once when the spawn request is issued.
type AssetKeyComponent struct {
	Key types.AssetKey
}

// MainCameraComponent marks the camera rig root. The real camera is a child of it so that
// follow logic works on a plain translation.
type MainCameraComponent struct {
	FollowSpeed float32
	DeadZone    float32
}

// NameComponent is a human-readable label (scene nodes keep their glTF node name here).
type NameComponent struct {
	Name string
}

package animation

import (
	"fmt"

	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/rs/zerolog/log"
)

// TriggerAnimation asks the animation player of Root to switch to Type.
type TriggerAnimation struct {
	Root ecs.EntityID
	Type types.AnimationType
}

// Dispatcher routes animation requests to animation players.
//
// A request for a root whose player or asset key is not known yet is dropped: that is
// the normal state for a few frames after spawning, and the owner re-sends. A clip
// missing from an animated bundle is a content bug and panics with assets.ErrMissingAnimation.
type Dispatcher struct {
	entityManager *ecs.EntityManager
	registry      *assets.Registry
	assetMapping  *assets.EntityAssetMapping
	mappings      *Mappings
	triggers      *events.Queue[TriggerAnimation]
	crossFade     float64 // seconds
}

// NewDispatcher creates the dispatcher. crossFade is the blend duration in seconds.
func NewDispatcher(
	em *ecs.EntityManager,
	registry *assets.Registry,
	assetMapping *assets.EntityAssetMapping,
	mappings *Mappings,
	triggers *events.Queue[TriggerAnimation],
	crossFade float64,
) *Dispatcher {
	return &Dispatcher{
		entityManager: em,
		registry:      registry,
		assetMapping:  assetMapping,
		mappings:      mappings,
		triggers:      triggers,
		crossFade:     crossFade,
	}
}

// StartIdle starts the Idle clip, without blending, on every animation player that
// appeared this tick and whose root already has an asset key.
func (d *Dispatcher) StartIdle(deltaTime float64) {
	for _, player := range ecs.JustAdded[*components.AnimationPlayerComponent](d.entityManager) {
		root, ok := d.mappings.Root(player)
		if !ok {
			continue
		}
		clip, ok := d.resolve(root, types.AnimationIdle)
		if !ok {
			continue
		}
		p, ok := ecs.GetComponent[*components.AnimationPlayerComponent](d.entityManager, player)
		if !ok {
			continue
		}
		Play(p, clip, true)
		log.Info().Uint64("entity", uint64(root)).Str("clip", clip.String()).Msg("starting idle animation")
	}
}

// Update applies every queued trigger in arrival order; a later trigger for the same
// root overrides an earlier one.
func (d *Dispatcher) Update(deltaTime float64) {
	for _, trigger := range d.triggers.Drain() {
		d.apply(trigger)
	}
}

func (d *Dispatcher) apply(trigger TriggerAnimation) {
	player, ok := d.mappings.Player(trigger.Root)
	if !ok {
		return
	}
	clip, ok := d.resolve(trigger.Root, trigger.Type)
	if !ok {
		return
	}
	p, ok := ecs.GetComponent[*components.AnimationPlayerComponent](d.entityManager, player)
	if !ok {
		log.Warn().Uint64("entity", uint64(trigger.Root)).Uint64("player", uint64(player)).
			Msg("mapped animation player has no player component")
		return
	}
	PlayWithTransition(p, clip, d.crossFade, true)
}

// resolve returns the clip of at for root. ok is false for the benign cases (no asset key
// yet, bundle without animations); a missing clip of an animated bundle panics.
func (d *Dispatcher) resolve(root ecs.EntityID, at types.AnimationType) (types.Handle, bool) {
	key, ok := d.assetMapping.Get(root)
	if !ok {
		return "", false
	}
	bundle, ok := d.registry.Get(key)
	if !ok || !bundle.Animated() {
		return "", false
	}
	clip, err := d.registry.Clip(key, at)
	if err != nil {
		panic(fmt.Errorf("animation %s for entity %d: %w", at, root, err))
	}
	return clip, true
}

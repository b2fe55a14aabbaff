package animation

import (
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/rs/zerolog/log"
)

// Discovery maps animation players that appeared since the previous tick to their root entity.
// It runs after the spawn barrier so freshly instantiated scenes are complete.
type Discovery struct {
	entityManager *ecs.EntityManager
	mappings      *Mappings
	maxDepth      int
}

// NewDiscovery creates the discovery pass. maxDepth bounds the walk up the hierarchy.
func NewDiscovery(em *ecs.EntityManager, mappings *Mappings, maxDepth int) *Discovery {
	return &Discovery{
		entityManager: em,
		mappings:      mappings,
		maxDepth:      maxDepth,
	}
}

// Update records every newly added animation player.
func (d *Discovery) Update(deltaTime float64) {
	for _, player := range ecs.JustAdded[*components.AnimationPlayerComponent](d.entityManager) {
		root, ok := d.rootOf(player)
		if !ok {
			log.Error().Uint64("entity", uint64(player)).Int("max_depth", d.maxDepth).
				Msg("animation player nested too deep, hierarchy may be cyclic")
			continue
		}
		d.mappings.Insert(root, player)
		log.Info().Uint64("entity", uint64(root)).Uint64("player", uint64(player)).
			Msg("animation player mapped to root entity")
	}
}

// rootOf walks up from id to the first entity without a parent.
//
// Template nodes sit up to maxDepth levels below their scene root, and the scene root is a
// child of the actor root, so a valid player is at most maxDepth+1 steps from its root.
func (d *Discovery) rootOf(id ecs.EntityID) (ecs.EntityID, bool) {
	current := id
	for steps := 0; steps <= d.maxDepth+1; steps++ {
		parent, ok := d.entityManager.ParentOf(current)
		if !ok {
			return current, true
		}
		current = parent
	}
	return 0, false
}

package systems

import (
	"github.com/decker502/horde-survivors/pkg/animation"
	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/rs/zerolog/log"
)

// DespawnRequest asks for a root entity and its whole subtree to be removed.
type DespawnRequest struct {
	Root ecs.EntityID
}

// DespawnSystem marks requested subtrees for destruction. The schedule removes them
// right after the Despawn phase.
type DespawnSystem struct {
	entityManager *ecs.EntityManager
	requests      *events.Queue[DespawnRequest]
}

// NewDespawnSystem creates the despawn system.
func NewDespawnSystem(em *ecs.EntityManager, requests *events.Queue[DespawnRequest]) *DespawnSystem {
	return &DespawnSystem{
		entityManager: em,
		requests:      requests,
	}
}

// Update handles every pending request.
func (s *DespawnSystem) Update(deltaTime float64) {
	for _, req := range s.requests.Drain() {
		if !s.entityManager.IsAlive(req.Root) {
			continue
		}
		s.entityManager.DestroyRecursive(req.Root)
		log.Debug().Uint64("entity", uint64(req.Root)).Msg("entity despawned")
	}
}

// RegisterMappingCleanup purges the entity-asset table and the animation mappings
// whenever an entity is destroyed, so a reused id never resolves to stale entries.
func RegisterMappingCleanup(em *ecs.EntityManager, assetMapping *assets.EntityAssetMapping, mappings *animation.Mappings) {
	em.OnDestroy(func(id ecs.EntityID) {
		assetMapping.Remove(id)
		mappings.RemoveEntity(id)
	})
}

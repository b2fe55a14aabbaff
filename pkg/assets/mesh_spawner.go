package assets

import (
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/rs/zerolog/log"
)

// SpawnMesh asks for the mesh of Key to be instantiated under the existing entity Root.
type SpawnMesh struct {
	Root      ecs.EntityID
	Key       types.AssetKey
	Transform components.TransformComponent // local to Root
}

// Instantiator is the scene collaborator. Instantiate only queues the directive: the
// subtree (and any animation player inside it) appears at the next flush.
type Instantiator interface {
	Instantiate(mesh types.Handle, parent ecs.EntityID, local components.TransformComponent)
}

// MeshSpawner turns SpawnMesh requests into scene instantiations and records the
// root -> asset key association. It never touches animation.
type MeshSpawner struct {
	registry     *Registry
	mapping      *EntityAssetMapping
	instantiator Instantiator
	requests     *events.Queue[SpawnMesh]
}

// NewMeshSpawner creates the spawner consuming requests.
func NewMeshSpawner(registry *Registry, mapping *EntityAssetMapping, instantiator Instantiator, requests *events.Queue[SpawnMesh]) *MeshSpawner {
	return &MeshSpawner{
		registry:     registry,
		mapping:      mapping,
		instantiator: instantiator,
		requests:     requests,
	}
}

// Update handles every pending request in arrival order.
func (s *MeshSpawner) Update(deltaTime float64) {
	for _, req := range s.requests.Drain() {
		s.spawn(req)
	}
}

func (s *MeshSpawner) spawn(req SpawnMesh) {
	bundle, ok := s.registry.Get(req.Key)
	if !ok {
		log.Warn().
			Uint64("entity", uint64(req.Root)).
			Str("asset_key", string(req.Key)).
			Msg("spawn request for unregistered asset key dropped")
		return
	}

	s.mapping.Set(req.Root, req.Key)
	s.instantiator.Instantiate(bundle.Mesh, req.Root, req.Transform)

	log.Debug().
		Uint64("entity", uint64(req.Root)).
		Str("asset_key", string(req.Key)).
		Str("handle", bundle.Mesh.String()).
		Msg("mesh instantiation queued")
}

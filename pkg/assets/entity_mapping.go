package assets

import (
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/types"
)

// EntityAssetMapping records which asset key each root entity renders with.
// MeshSpawner is its only writer; animation dispatch reads it.
type EntityAssetMapping struct {
	keys map[ecs.EntityID]types.AssetKey
}

// NewEntityAssetMapping creates an empty table.
func NewEntityAssetMapping() *EntityAssetMapping {
	return &EntityAssetMapping{keys: make(map[ecs.EntityID]types.AssetKey)}
}

// Set associates root with key, overwriting any previous association.
func (m *EntityAssetMapping) Set(root ecs.EntityID, key types.AssetKey) {
	m.keys[root] = key
}

// Get returns the asset key of root.
func (m *EntityAssetMapping) Get(root ecs.EntityID) (types.AssetKey, bool) {
	key, ok := m.keys[root]
	return key, ok
}

// Remove forgets root. Called when the entity is destroyed.
func (m *EntityAssetMapping) Remove(root ecs.EntityID) {
	delete(m.keys, root)
}

// Len returns the number of associations.
func (m *EntityAssetMapping) Len() int {
	return len(m.keys)
}

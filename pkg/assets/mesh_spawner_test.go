package assets

import (
	"bytes"
	"strings"
	"testing"

	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/events"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type instantiation struct {
	mesh   types.Handle
	parent ecs.EntityID
	local  components.TransformComponent
}

type recordingInstantiator struct {
	calls []instantiation
}

func (r *recordingInstantiator) Instantiate(mesh types.Handle, parent ecs.EntityID, local components.TransformComponent) {
	r.calls = append(r.calls, instantiation{mesh: mesh, parent: parent, local: local})
}

// captureLogs redirects the global logger into a buffer for the duration of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := log.Logger
	log.Logger = zerolog.New(&buf).Level(zerolog.WarnLevel)
	t.Cleanup(func() { log.Logger = previous })
	return &buf
}

func newTestSpawner(t *testing.T) (*MeshSpawner, *EntityAssetMapping, *recordingInstantiator, *events.Queue[SpawnMesh]) {
	mapping := NewEntityAssetMapping()
	inst := &recordingInstantiator{}
	queue := events.NewQueue[SpawnMesh]()
	return NewMeshSpawner(testRegistry(t), mapping, inst, queue), mapping, inst, queue
}

func TestMeshSpawnerKnownKey(t *testing.T) {
	spawner, mapping, inst, queue := newTestSpawner(t)

	local := components.TransformFromTranslation(mgl32.Vec3{0, 0, 1})
	queue.Send(SpawnMesh{Root: 7, Key: types.AssetKeyEnemy, Transform: local})
	spawner.Update(0.016)

	key, ok := mapping.Get(7)
	require.True(t, ok)
	assert.Equal(t, types.AssetKeyEnemy, key)

	require.Len(t, inst.calls, 1)
	assert.Equal(t, instantiation{mesh: "models/Skeleton.glb#Scene0", parent: 7, local: local}, inst.calls[0])
	assert.Equal(t, 0, queue.Len())
}

func TestMeshSpawnerOverwritesAssociation(t *testing.T) {
	spawner, mapping, inst, queue := newTestSpawner(t)

	queue.Send(SpawnMesh{Root: 3, Key: types.AssetKeyEnemy, Transform: components.IdentityTransform()})
	queue.Send(SpawnMesh{Root: 3, Key: types.AssetKeyProjectile, Transform: components.IdentityTransform()})
	spawner.Update(0.016)

	key, _ := mapping.Get(3)
	assert.Equal(t, types.AssetKeyProjectile, key)
	assert.Len(t, inst.calls, 2)
	assert.Equal(t, 1, mapping.Len())
}

func TestMeshSpawnerUnregisteredKey(t *testing.T) {
	logs := captureLogs(t)
	spawner, mapping, inst, queue := newTestSpawner(t)

	queue.Send(SpawnMesh{Root: 1, Key: "ghost", Transform: components.IdentityTransform()})
	spawner.Update(0.016)

	_, ok := mapping.Get(1)
	assert.False(t, ok)
	assert.Empty(t, inst.calls)
	assert.Equal(t, 1, strings.Count(logs.String(), `"level":"warn"`))

	// later ticks keep working
	queue.Send(SpawnMesh{Root: 2, Key: types.AssetKeyPlayer, Transform: components.IdentityTransform()})
	spawner.Update(0.016)
	spawner.Update(0.016)

	_, ok = mapping.Get(2)
	assert.True(t, ok)
	assert.Len(t, inst.calls, 1)
	assert.Equal(t, 1, strings.Count(logs.String(), `"level":"warn"`))
}

func TestEntityAssetMappingRemove(t *testing.T) {
	m := NewEntityAssetMapping()
	m.Set(1, types.AssetKeyPlayer)
	m.Set(2, types.AssetKeyEnemy)
	m.Remove(1)
	m.Remove(99)

	_, ok := m.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

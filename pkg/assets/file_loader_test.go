package assets

import (
	"bytes"
	"context"
	"testing"
	"testing/fstest"

	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeGLB(t *testing.T, doc *gltf.Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, gltf.NewEncoder(&buf).Encode(doc))
	return buf.Bytes()
}

func testModelFS(t *testing.T) fstest.MapFS {
	doc := &gltf.Document{
		Asset:      gltf.Asset{Version: "2.0"},
		Scenes:     []*gltf.Scene{{Name: "Scene", Nodes: []uint32{0}}},
		Nodes:      []*gltf.Node{{Name: "Root"}},
		Animations: []*gltf.Animation{{Name: "Idle"}, {Name: "Walk"}},
	}
	return fstest.MapFS{
		"models/Anne.glb":   &fstest.MapFile{Data: encodeGLB(t, doc)},
		"models/broken.glb": &fstest.MapFile{Data: []byte("not a model")},
	}
}

func TestFileLoader(t *testing.T) {
	captureLogs(t)
	loader := NewFileLoader(testModelFS(t), 2)

	handles := map[types.Handle]LoadState{
		"models/Anne.glb#Scene0":     Loaded,
		"models/Anne.glb#Animation1": Loaded,
		"models/Anne.glb#Animation2": Failed,
		"models/Anne.glb#Scene1":     Failed,
		"models/Anne.glb#Skin0":      Failed,
		"models/Anne.glb":            Loaded,
		"models/broken.glb#Scene0":   Failed,
		"models/missing.glb#Scene0":  Failed,
	}
	for h := range handles {
		loader.Load(h)
		assert.Equal(t, NotLoaded, loader.LoadState(h))
	}

	loader.Start(context.Background())
	loader.Wait()

	for h, want := range handles {
		assert.Equal(t, want, loader.LoadState(h), h.String())
	}

	doc, ok := loader.Document("models/Anne.glb")
	require.True(t, ok)
	assert.Len(t, doc.Animations, 2)

	_, ok = loader.Document("models/broken.glb")
	assert.False(t, ok)
}

func TestFileLoaderLateRequestResolvesImmediately(t *testing.T) {
	loader := NewFileLoader(testModelFS(t), 1)
	loader.Load("models/Anne.glb#Scene0")
	loader.Start(context.Background())
	loader.Wait()

	loader.Load("models/Anne.glb#Animation0")
	assert.Equal(t, Loaded, loader.LoadState("models/Anne.glb#Animation0"))
}

func TestFileLoaderCancelled(t *testing.T) {
	captureLogs(t)
	loader := NewFileLoader(testModelFS(t), 1)
	loader.Load("models/Anne.glb#Scene0")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	loader.Start(ctx)
	loader.Wait()

	assert.Equal(t, Failed, loader.LoadState("models/Anne.glb#Scene0"))
}

package assets

import (
	"fmt"
	"testing"

	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHandles(n int) []types.Handle {
	handles := make([]types.Handle, n)
	for i := range handles {
		handles[i] = types.NewHandle("models/test.glb", fmt.Sprintf("Animation%d", i))
	}
	return handles
}

func TestManifestMonotonic(t *testing.T) {
	m := NewManifest()
	h := types.Handle("a.glb#Scene0")
	m.Register(h)
	m.Register(h)
	assert.Equal(t, 1, m.Total())

	assert.False(t, m.Update(h, NotLoaded))
	assert.True(t, m.Update(h, Loaded))

	// terminal: neither Failed nor NotLoaded moves it again
	assert.False(t, m.Update(h, Failed))
	assert.False(t, m.Update(h, NotLoaded))
	state, ok := m.State(h)
	require.True(t, ok)
	assert.Equal(t, Loaded, state)

	f := types.Handle("a.glb#Scene1")
	m.Register(f)
	assert.True(t, m.Update(f, Failed))
	assert.False(t, m.Update(f, Loaded))
	assert.Equal(t, 1, m.NumLoaded())
	assert.Equal(t, 1, m.NumFailed())

	assert.False(t, m.Update("unregistered", Loaded))
}

func TestTrackerRequestsEveryHandle(t *testing.T) {
	loader := NewMemoryLoader()
	handles := testHandles(3)
	NewTracker(loader, handles, 0.5)
	assert.Equal(t, handles, loader.Requested())
}

func TestTrackerIgnoresLoaderRegression(t *testing.T) {
	loader := NewMemoryLoader()
	handles := testHandles(2)
	tracker := NewTracker(loader, handles, 0)

	loader.Set(handles[0], Loaded)
	update, _ := tracker.Tick(0.1)
	require.NotNil(t, update)
	assert.Equal(t, 1, update.Loaded)

	loader.Set(handles[0], NotLoaded)
	update, _ = tracker.Tick(0.1)
	assert.Nil(t, update)
	assert.Equal(t, 1, tracker.Manifest().NumLoaded())
}

func TestTrackerProgressIsEdgeTriggered(t *testing.T) {
	loader := NewMemoryLoader()
	handles := testHandles(4)
	tracker := NewTracker(loader, handles, 10)

	update, _ := tracker.Tick(0.016)
	assert.Nil(t, update, "nothing loaded yet")

	loader.Set(handles[0], Loaded)
	loader.Set(handles[1], Loaded)
	update, _ = tracker.Tick(0.016)
	require.NotNil(t, update)
	assert.Equal(t, LoadingUpdate{Loaded: 2, Total: 4}, *update)
	assert.InDelta(t, 50.0, update.Percent(), 1e-9)

	for i := 0; i < 5; i++ {
		update, _ = tracker.Tick(0.016)
		assert.Nil(t, update, "unchanged count must not report")
	}

	loader.Set(handles[2], Failed)
	update, _ = tracker.Tick(0.016)
	assert.Nil(t, update, "a failure does not change the loaded count")
}

func TestTrackerGateEndToEnd(t *testing.T) {
	loader := NewMemoryLoader()
	handles := testHandles(7)
	tracker := NewTracker(loader, handles, 0.5)

	for _, h := range handles[:5] {
		loader.Set(h, Loaded)
	}

	var last *LoadingUpdate
	transitions := 0
	tick := func() {
		update, ready := tracker.Tick(0.1)
		if update != nil {
			last = update
		}
		if ready {
			transitions++
			require.NotNil(t, last)
			assert.Equal(t, 7, last.Loaded, "the full count is reported before the gate opens")
		}
	}

	// 1s with two handles still pending: well past the debounce, no transition
	for i := 0; i < 10; i++ {
		tick()
	}
	assert.Equal(t, 0, transitions)
	assert.Equal(t, 5, last.Loaded)

	loader.Set(handles[5], Loaded)
	loader.Set(handles[6], Loaded)
	for i := 0; i < 20; i++ {
		tick()
	}
	assert.Equal(t, 1, transitions)
	assert.True(t, tracker.Done())
}

func TestTrackerWaitsForDebounce(t *testing.T) {
	loader := NewMemoryLoader()
	handles := testHandles(2)
	tracker := NewTracker(loader, handles, 0.5)
	loader.SetAll(Loaded)

	for i := 0; i < 4; i++ {
		_, ready := tracker.Tick(0.1)
		assert.False(t, ready, "tick %d is inside the debounce window", i)
	}
	_, ready := tracker.Tick(0.2)
	assert.True(t, ready)
}

func TestTrackerStallsOnFailure(t *testing.T) {
	loader := NewMemoryLoader()
	handles := testHandles(3)
	tracker := NewTracker(loader, handles, 0.5)

	loader.Set(handles[0], Loaded)
	loader.Set(handles[1], Loaded)
	loader.Set(handles[2], Failed)

	for i := 0; i < 100; i++ {
		_, ready := tracker.Tick(0.1)
		require.False(t, ready)
	}
	assert.Equal(t, 1, tracker.Manifest().NumFailed())
}

func TestLoadingUpdatePercentEmpty(t *testing.T) {
	assert.Equal(t, 0.0, LoadingUpdate{}.Percent())
}

package assets

import (
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/rs/zerolog/log"
)

// LoadingUpdate reports loading progress to the UI.
type LoadingUpdate struct {
	Loaded int
	Total  int
}

// Percent returns Loaded/Total as 0..100 (0 for an empty manifest).
func (u LoadingUpdate) Percent() float64 {
	if u.Total == 0 {
		return 0
	}
	return float64(u.Loaded) / float64(u.Total) * 100
}

// Tracker watches a fixed set of handles until all of them are Loaded.
//
// Each Tick polls the loader into the manifest, reports progress only when the loaded
// count changed, and opens the gate once the one-shot debounce timer has elapsed and
// every handle is Loaded. The gate opens at most once.
//
// A Failed handle is logged but never counted as loaded, so a permanently failed asset
// keeps the gate shut; the game stalls on the loading screen rather than starting with a
// missing model.
type Tracker struct {
	loader   Loader
	manifest *Manifest

	debounce float64 // seconds
	elapsed  float64

	lastLoaded int
	done       bool
}

// NewTracker registers handles as NotLoaded and requests each of them from loader.
func NewTracker(loader Loader, handles []types.Handle, debounceSeconds float64) *Tracker {
	t := &Tracker{
		loader:   loader,
		manifest: NewManifest(),
		debounce: debounceSeconds,
	}
	for _, h := range handles {
		t.manifest.Register(h)
		loader.Load(h)
	}
	log.Info().Int("total", t.manifest.Total()).Msg("tracking asset loading")
	return t
}

// Manifest exposes the shadow cache (read-only use).
func (t *Tracker) Manifest() *Manifest {
	return t.manifest
}

// Done reports whether the gate has opened.
func (t *Tracker) Done() bool {
	return t.done
}

// Tick advances the tracker by dt seconds. update is non-nil when the loaded count
// changed since the previous report; ready is true exactly once, on the tick the gate opens.
func (t *Tracker) Tick(dt float64) (update *LoadingUpdate, ready bool) {
	for _, h := range t.manifest.Handles() {
		observed := t.loader.LoadState(h)
		if !t.manifest.Update(h, observed) {
			continue
		}
		if observed == Failed {
			log.Warn().Str("handle", h.String()).Msg("asset failed to load")
		}
	}

	loaded := t.manifest.NumLoaded()
	total := t.manifest.Total()
	if loaded != t.lastLoaded {
		t.lastLoaded = loaded
		update = &LoadingUpdate{Loaded: loaded, Total: total}
	}

	t.elapsed += dt
	if t.elapsed < t.debounce || t.done {
		return update, false
	}

	if loaded == total {
		t.done = true
		log.Info().Int("total", total).Msg("assets loaded")
		return update, true
	}
	return update, false
}

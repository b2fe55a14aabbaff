// Package assets tracks the game's mesh and animation assets: which bundles exist
// (Registry), whether they finished loading (Tracker), and which root entity renders
// with which bundle (EntityAssetMapping, filled by MeshSpawner).
package assets

import (
	"fmt"
	"sort"

	"github.com/decker502/horde-survivors/pkg/config"
	"github.com/decker502/horde-survivors/pkg/types"
)

// CharacterAssets is the bundle registered under one asset key.
// Animations is nil for static props (projectile, destructible).
type CharacterAssets struct {
	Mesh       types.Handle
	Animations map[types.AnimationType]types.Handle
}

// Animated reports whether the bundle carries an animation set.
func (c CharacterAssets) Animated() bool {
	return c.Animations != nil
}

// Registry maps asset keys to bundles. It is filled once at startup and read-only afterwards.
type Registry struct {
	assets map[types.AssetKey]CharacterAssets
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{assets: make(map[types.AssetKey]CharacterAssets)}
}

// NewRegistryFromManifest builds the registry described by data/assets.yaml.
// Meshes become "<file>#Scene<n>" handles and clips "<file>#Animation<n>".
func NewRegistryFromManifest(m *config.AssetManifest) (*Registry, error) {
	r := NewRegistry()
	for key, entry := range m.Assets {
		bundle := CharacterAssets{
			Mesh: types.NewHandle(entry.File, fmt.Sprintf("Scene%d", entry.Scene)),
		}
		if len(entry.Animations) > 0 {
			bundle.Animations = make(map[types.AnimationType]types.Handle, len(entry.Animations))
			for name, index := range entry.Animations {
				at, err := types.ParseAnimationType(name)
				if err != nil {
					return nil, fmt.Errorf("asset %s: %w", key, err)
				}
				bundle.Animations[at] = types.NewHandle(entry.File, fmt.Sprintf("Animation%d", index))
			}
		}
		r.Register(types.AssetKey(key), bundle)
	}
	return r, nil
}

// Register adds or replaces the bundle of key.
func (r *Registry) Register(key types.AssetKey, bundle CharacterAssets) {
	r.assets[key] = bundle
}

// Get returns the bundle of key.
func (r *Registry) Get(key types.AssetKey) (CharacterAssets, bool) {
	bundle, ok := r.assets[key]
	return bundle, ok
}

// Keys returns every registered key, sorted.
func (r *Registry) Keys() []types.AssetKey {
	keys := make([]types.AssetKey, 0, len(r.assets))
	for key := range r.assets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Handles returns every distinct mesh and clip handle, in key order with the mesh first.
func (r *Registry) Handles() []types.Handle {
	seen := make(map[types.Handle]struct{})
	var handles []types.Handle
	add := func(h types.Handle) {
		if _, dup := seen[h]; dup {
			return
		}
		seen[h] = struct{}{}
		handles = append(handles, h)
	}

	for _, key := range r.Keys() {
		bundle := r.assets[key]
		add(bundle.Mesh)
		for _, at := range types.AllAnimationTypes {
			if clip, ok := bundle.Animations[at]; ok {
				add(clip)
			}
		}
	}
	return handles
}

// Clip resolves the clip of an animation type for key.
func (r *Registry) Clip(key types.AssetKey, at types.AnimationType) (types.Handle, error) {
	bundle, ok := r.assets[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAssetKey, key)
	}
	if !bundle.Animated() {
		return "", fmt.Errorf("%w: %q", ErrNotAnimated, key)
	}
	clip, ok := bundle.Animations[at]
	if !ok {
		return "", fmt.Errorf("%w: %q has no %s clip", ErrMissingAnimation, key, at)
	}
	return clip, nil
}

// Validate checks that every animated bundle has a clip for each required type.
// Run at startup so content bugs surface before the first frame.
func (r *Registry) Validate(required []types.AnimationType) error {
	for _, key := range r.Keys() {
		if !r.assets[key].Animated() {
			continue
		}
		for _, at := range required {
			if _, err := r.Clip(key, at); err != nil {
				return err
			}
		}
	}
	return nil
}

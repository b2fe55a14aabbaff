package assets

import "errors"

var (
	// ErrUnknownAssetKey means no bundle is registered under the key.
	ErrUnknownAssetKey = errors.New("unknown asset key")
	// ErrNotAnimated means the bundle has no animation set (static props).
	ErrNotAnimated = errors.New("asset has no animations")
	// ErrMissingAnimation means an animated bundle lacks a clip for a requested animation type.
	// This is a content bug, never a runtime race.
	ErrMissingAnimation = errors.New("animation clip not registered")
)

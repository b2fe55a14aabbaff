package components

import "github.com/decker502/horde-survivors/pkg/types"

// SceneRootComponent marks the top entity of an instantiated mesh subtree.
type SceneRootComponent struct {
	Source types.Handle
}

// LoadingBarComponent is the progress bar shown while assets load.
type LoadingBarComponent struct {
	WidthPercent float64 // 0..100
	Loaded       int
	Total        int
}

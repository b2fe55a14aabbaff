package app

import (
	"github.com/decker502/horde-survivors/pkg/assets"
	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/scene"
)

// StubTemplates returns a placeholder template for every mesh of the registry, for runs
// without model files. Animated bundles get an armature with the animation player one
// level down, the way exported character rigs are nested.
func StubTemplates(registry *assets.Registry) scene.StaticTemplates {
	templates := make(scene.StaticTemplates)
	for _, key := range registry.Keys() {
		bundle, _ := registry.Get(key)
		root := scene.Node{Name: string(key), Local: components.IdentityTransform()}
		if bundle.Animated() {
			root.Children = []scene.Node{{
				Name:            "Armature",
				Local:           components.IdentityTransform(),
				AnimationPlayer: true,
			}}
		}
		templates[bundle.Mesh] = &scene.Template{Name: string(key), Nodes: []scene.Node{root}}
	}
	return templates
}

// StubLoader returns a loader reporting every handle of the registry as Loaded.
func StubLoader(registry *assets.Registry) *assets.MemoryLoader {
	loader := assets.NewMemoryLoader()
	for _, h := range registry.Handles() {
		loader.Set(h, assets.Loaded)
	}
	return loader
}

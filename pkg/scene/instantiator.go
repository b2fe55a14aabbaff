package scene

import (
	"errors"

	"github.com/decker502/horde-survivors/pkg/components"
	"github.com/decker502/horde-survivors/pkg/ecs"
	"github.com/decker502/horde-survivors/pkg/types"
	"github.com/rs/zerolog/log"
)

type directive struct {
	mesh   types.Handle
	parent ecs.EntityID
	local  components.TransformComponent
}

// Instantiator creates entity subtrees from templates.
type Instantiator struct {
	entityManager *ecs.EntityManager
	templates     TemplateSource
	pending       []directive
}

// NewInstantiator creates an instantiator spawning into em.
func NewInstantiator(em *ecs.EntityManager, templates TemplateSource) *Instantiator {
	return &Instantiator{
		entityManager: em,
		templates:     templates,
	}
}

// Instantiate queues mesh to be instantiated under parent with the given local transform.
func (i *Instantiator) Instantiate(mesh types.Handle, parent ecs.EntityID, local components.TransformComponent) {
	i.pending = append(i.pending, directive{mesh: mesh, parent: parent, local: local})
}

// Pending returns the number of directives not materialized yet.
func (i *Instantiator) Pending() int {
	return len(i.pending)
}

// Flush materializes every directive whose template is available. Directives whose
// template is not ready stay queued for the next flush. Directives whose parent has been
// removed, or whose template cannot be built, are dropped.
func (i *Instantiator) Flush() {
	if len(i.pending) == 0 {
		return
	}

	waiting := i.pending[:0:0]
	for _, d := range i.pending {
		if !i.entityManager.IsAlive(d.parent) {
			log.Debug().Uint64("entity", uint64(d.parent)).Str("handle", d.mesh.String()).
				Msg("parent gone before instantiation, directive dropped")
			continue
		}
		t, err := i.templates.Template(d.mesh)
		if errors.Is(err, ErrTemplateNotReady) {
			waiting = append(waiting, d)
			continue
		}
		if err != nil {
			log.Debug().Err(err).Uint64("entity", uint64(d.parent)).Str("handle", d.mesh.String()).
				Msg("template unavailable, directive dropped")
			continue
		}
		root := i.spawn(t, d)
		log.Debug().Uint64("entity", uint64(d.parent)).Uint64("scene", uint64(root)).Str("handle", d.mesh.String()).
			Msg("scene instantiated")
	}
	i.pending = waiting
}

func (i *Instantiator) spawn(t *Template, d directive) ecs.EntityID {
	em := i.entityManager

	root := em.CreateEntity()
	em.SetParent(root, d.parent)
	local := d.local
	ecs.AddComponent(em, root, &local)
	ecs.AddComponent(em, root, &components.SceneRootComponent{Source: d.mesh})
	if t.Name != "" {
		ecs.AddComponent(em, root, &components.NameComponent{Name: t.Name})
	}

	for _, n := range t.Nodes {
		i.spawnNode(n, root)
	}
	return root
}

func (i *Instantiator) spawnNode(n Node, parent ecs.EntityID) {
	em := i.entityManager

	id := em.CreateEntity()
	em.SetParent(id, parent)
	local := n.Local
	ecs.AddComponent(em, id, &local)
	if n.Name != "" {
		ecs.AddComponent(em, id, &components.NameComponent{Name: n.Name})
	}
	if n.AnimationPlayer {
		ecs.AddComponent(em, id, &components.AnimationPlayerComponent{})
	}

	for _, c := range n.Children {
		i.spawnNode(c, id)
	}
}

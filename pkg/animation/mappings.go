// Package animation links root entities to the animation players that scene
// instantiation creates somewhere below them, and routes animation requests to those players.
package animation

import "github.com/decker502/horde-survivors/pkg/ecs"

// Mappings holds both directions of the root <-> animation player association.
// Discovery is the only writer; destroy cleanup removes entries.
type Mappings struct {
	players map[ecs.EntityID]ecs.EntityID // root -> player
	roots   map[ecs.EntityID]ecs.EntityID // player -> root
}

// NewMappings creates empty mappings.
func NewMappings() *Mappings {
	return &Mappings{
		players: make(map[ecs.EntityID]ecs.EntityID),
		roots:   make(map[ecs.EntityID]ecs.EntityID),
	}
}

// Insert maps root to player, replacing whatever player root had before.
func (m *Mappings) Insert(root, player ecs.EntityID) {
	if old, ok := m.players[root]; ok && old != player {
		delete(m.roots, old)
	}
	if oldRoot, ok := m.roots[player]; ok && oldRoot != root {
		delete(m.players, oldRoot)
	}
	m.players[root] = player
	m.roots[player] = root
}

// Player returns the animation player of root.
func (m *Mappings) Player(root ecs.EntityID) (ecs.EntityID, bool) {
	player, ok := m.players[root]
	return player, ok
}

// Root returns the root entity owning player.
func (m *Mappings) Root(player ecs.EntityID) (ecs.EntityID, bool) {
	root, ok := m.roots[player]
	return root, ok
}

// RemoveEntity drops every entry keyed by or pointing at id.
func (m *Mappings) RemoveEntity(id ecs.EntityID) {
	if player, ok := m.players[id]; ok {
		delete(m.roots, player)
		delete(m.players, id)
	}
	if root, ok := m.roots[id]; ok {
		delete(m.players, root)
		delete(m.roots, id)
	}
}

// Len returns the number of mapped roots.
func (m *Mappings) Len() int {
	return len(m.players)
}

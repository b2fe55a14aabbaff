package ecs

// SetParent makes child a child of parent, moving it away from any previous parent.
// Both entities must be alive. Cycles are not checked here; walkers bound their depth.
func (em *EntityManager) SetParent(child, parent EntityID) {
	if !em.IsAlive(child) || !em.IsAlive(parent) || child == parent {
		return
	}
	if old, ok := em.parents[child]; ok {
		if old == parent {
			return
		}
		em.detach(old, child)
	}
	em.parents[child] = parent
	em.children[parent] = append(em.children[parent], child)
}

// ParentOf returns the parent of id, if it has one.
func (em *EntityManager) ParentOf(id EntityID) (EntityID, bool) {
	parent, ok := em.parents[id]
	return parent, ok
}

// ChildrenOf returns a copy of the direct children of id.
func (em *EntityManager) ChildrenOf(id EntityID) []EntityID {
	children := em.children[id]
	result := make([]EntityID, len(children))
	copy(result, children)
	return result
}

// Descendants returns every entity below id, depth first.
func (em *EntityManager) Descendants(id EntityID) []EntityID {
	var result []EntityID
	for _, child := range em.children[id] {
		result = append(result, child)
		result = append(result, em.Descendants(child)...)
	}
	return result
}

func (em *EntityManager) detach(parent, child EntityID) {
	siblings := em.children[parent]
	for i, c := range siblings {
		if c == child {
			em.children[parent] = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	if len(em.children[parent]) == 0 {
		delete(em.children, parent)
	}
	delete(em.parents, child)
}

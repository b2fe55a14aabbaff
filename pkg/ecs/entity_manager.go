package ecs

import (
	"reflect"
	"sort"
)

// EntityID is the unique identifier of an entity. 0 is never handed out.
type EntityID uint64

// EntityManager owns all entities, their components and the parent/child hierarchy.
//
// Structural changes that other systems may still be observing are deferred:
// DestroyEntity only marks an entity, RemoveMarkedEntities performs the removal
// and notifies OnDestroy listeners.
//
// Not safe for concurrent use; it belongs to the frame loop.
type EntityManager struct {
	nextID uint64
	// EntityID -> component type -> component instance
	components map[EntityID]map[reflect.Type]interface{}
	// entities marked for removal at the next RemoveMarkedEntities
	entitiesToDestroy []EntityID

	parents  map[EntityID]EntityID
	children map[EntityID][]EntityID

	// component type -> entities that received it since the last ClearAdded
	added map[reflect.Type][]EntityID

	destroyListeners []func(EntityID)
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1,
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
		parents:           make(map[EntityID]EntityID),
		children:          make(map[EntityID][]EntityID),
		added:             make(map[reflect.Type][]EntityID),
	}
}

// CreateEntity creates a new entity and returns its ID.
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// IsAlive reports whether id exists and has not been removed yet.
// Entities marked for destruction are still alive until RemoveMarkedEntities.
func (em *EntityManager) IsAlive(id EntityID) bool {
	_, ok := em.components[id]
	return ok
}

// EntityCount returns the number of live entities.
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// DestroyEntity marks an entity for removal (not removed immediately).
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// DestroyRecursive marks an entity and all of its descendants for removal.
func (em *EntityManager) DestroyRecursive(id EntityID) {
	em.DestroyEntity(id)
	for _, child := range em.children[id] {
		em.DestroyRecursive(child)
	}
}

// OnDestroy registers fn to be called once for every entity removed by RemoveMarkedEntities.
func (em *EntityManager) OnDestroy(fn func(EntityID)) {
	em.destroyListeners = append(em.destroyListeners, fn)
}

// AddComponent attaches a component to an entity, replacing any component of the same type.
// The entity is recorded in the "just added" set for that type.
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
		em.added[componentType] = append(em.added[componentType], id)
	}
}

// RemoveComponent removes the component of the given type from an entity.
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent returns the component of the given type for an entity.
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	if compMap, exists := em.components[id]; exists {
		if comp, found := compMap[componentType]; found {
			return comp, true
		}
	}
	return nil, false
}

// HasComponent reports whether an entity has a component of the given type.
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	if compMap, exists := em.components[id]; exists {
		_, found := compMap[componentType]
		return found
	}
	return false
}

// RemoveMarkedEntities removes every entity marked by DestroyEntity, detaches it from the
// hierarchy and notifies OnDestroy listeners. Children of a removed entity that were not
// themselves marked become parentless.
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}

	marked := em.entitiesToDestroy
	em.entitiesToDestroy = make([]EntityID, 0)

	for _, id := range marked {
		if !em.IsAlive(id) {
			// marked twice
			continue
		}

		if parent, ok := em.parents[id]; ok {
			em.detach(parent, id)
		}
		for _, child := range em.children[id] {
			delete(em.parents, child)
		}
		delete(em.children, id)
		delete(em.components, id)

		for _, fn := range em.destroyListeners {
			fn(id)
		}
	}
}

// GetEntitiesWith returns every entity that has all of the given component types, in ID order.
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for id, compMap := range em.components {
		hasAll := true
		for _, ct := range componentTypes {
			if _, found := compMap[ct]; !found {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// JustAdded returns the live entities that received a component of the given type since the
// last ClearAdded, in insertion order and without duplicates.
func (em *EntityManager) JustAdded(componentType reflect.Type) []EntityID {
	ids := em.added[componentType]
	result := make([]EntityID, 0, len(ids))
	seen := make(map[EntityID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if em.HasComponent(id, componentType) {
			result = append(result, id)
		}
	}
	return result
}

// ClearAdded forgets every "just added" record. The frame loop calls it once per tick.
func (em *EntityManager) ClearAdded() {
	for ct := range em.added {
		delete(em.added, ct)
	}
}

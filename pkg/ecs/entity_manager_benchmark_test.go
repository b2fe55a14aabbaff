package ecs

import (
	"reflect"
	"testing"
)

type benchmarkComp1 struct {
	Value1 int
	Value2 float64
}

type benchmarkComp2 struct {
	Name string
}

type benchmarkComp3 struct {
	X, Y, Z float32
}

// setupBenchmarkEntities creates count entities carrying the first compsPerEntity benchmark components.
func setupBenchmarkEntities(count int, compsPerEntity int) *EntityManager {
	em := NewEntityManager()

	for i := 0; i < count; i++ {
		entity := em.CreateEntity()
		if compsPerEntity >= 1 {
			em.AddComponent(entity, &benchmarkComp1{Value1: i, Value2: float64(i) * 1.5})
		}
		if compsPerEntity >= 2 {
			em.AddComponent(entity, &benchmarkComp2{Name: "Entity"})
		}
		if compsPerEntity >= 3 {
			em.AddComponent(entity, &benchmarkComp3{X: float32(i)})
		}
	}

	return em
}

func BenchmarkGetEntitiesWith_Reflection(b *testing.B) {
	em := setupBenchmarkEntities(1000, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = em.GetEntitiesWith(
			reflect.TypeOf(&benchmarkComp1{}),
			reflect.TypeOf(&benchmarkComp2{}),
			reflect.TypeOf(&benchmarkComp3{}),
		)
	}
}

func BenchmarkGetEntitiesWith_Generic(b *testing.B) {
	em := setupBenchmarkEntities(1000, 3)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = GetEntitiesWith3[*benchmarkComp1, *benchmarkComp2, *benchmarkComp3](em)
	}
}

func BenchmarkGetComponent_Generic(b *testing.B) {
	em := setupBenchmarkEntities(1, 3)
	entity := EntityID(1)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := GetComponent[*benchmarkComp1](em, entity); !ok {
			b.Fatal("component not found")
		}
	}
}

// BenchmarkParentWalk measures a root lookup through a deep hierarchy.
func BenchmarkParentWalk(b *testing.B) {
	em := NewEntityManager()
	current := em.CreateEntity()
	for i := 0; i < 32; i++ {
		child := em.CreateEntity()
		em.SetParent(child, current)
		current = child
	}
	leaf := current

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		id := leaf
		for {
			parent, ok := em.ParentOf(id)
			if !ok {
				break
			}
			id = parent
		}
	}
}

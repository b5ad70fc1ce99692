package ecs

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type posComp struct {
	X, Y float64
}

type tagComp struct {
	Name string
}

func TestCreateEntityAssignsUniqueIDs(t *testing.T) {
	em := NewEntityManager()

	a := em.CreateEntity()
	b := em.CreateEntity()

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, EntityID(0), a, "ID 0 is reserved as invalid")
	assert.True(t, em.Exists(a))
	assert.True(t, em.Exists(b))
	assert.Equal(t, 2, em.EntityCount())
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &posComp{X: 3, Y: 4})

	pos, ok := GetComponent[*posComp](em, id)
	require.True(t, ok)
	assert.Equal(t, 3.0, pos.X)
	assert.Equal(t, 4.0, pos.Y)

	// Components are stored by pointer: mutations are visible on re-read.
	pos.X = 7
	again, ok := GetComponent[*posComp](em, id)
	require.True(t, ok)
	assert.Equal(t, 7.0, again.X)
}

func TestGetComponentMissing(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	_, ok := GetComponent[*posComp](em, id)
	assert.False(t, ok)

	_, ok = GetComponent[*posComp](em, EntityID(999))
	assert.False(t, ok, "unknown entity must not report components")
}

func TestAddComponentToDeadEntityIsIgnored(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	em.AddComponent(id, &posComp{X: 1})

	_, ok := GetComponent[*posComp](em, id)
	assert.False(t, ok)
}

func TestRemoveComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &tagComp{Name: "a"})

	em.RemoveComponent(id, reflect.TypeOf(&tagComp{}))

	assert.False(t, em.HasComponent(id, reflect.TypeOf(&tagComp{})))
	assert.True(t, em.Exists(id), "removing a component must not kill the entity")
}

func TestDeferredDestroy(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &posComp{})

	em.DestroyEntity(id)

	// Destruction is deferred: the entity stays queryable until cleanup.
	assert.True(t, em.Exists(id))
	_, ok := GetComponent[*posComp](em, id)
	assert.True(t, ok)

	em.RemoveMarkedEntities()

	assert.False(t, em.Exists(id))
	_, ok = GetComponent[*posComp](em, id)
	assert.False(t, ok)
	assert.Equal(t, 0, em.EntityCount())
}

func TestDoubleDestroyIsSafe(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()
	em.DestroyEntity(id) // already gone

	assert.False(t, em.Exists(id))
	em.RemoveMarkedEntities()
	assert.Equal(t, 0, em.EntityCount())
}

func TestGetEntitiesWithPreservesCreationOrder(t *testing.T) {
	em := NewEntityManager()

	var want []EntityID
	for i := 0; i < 5; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &posComp{X: float64(i)})
		want = append(want, id)
	}
	// One entity without posComp must not show up.
	other := em.CreateEntity()
	em.AddComponent(other, &tagComp{})

	got := GetEntitiesWith1[*posComp](em)
	require.Equal(t, want, got)

	// Destroying the middle entity keeps the remaining order stable.
	em.DestroyEntity(want[2])
	em.RemoveMarkedEntities()

	got = GetEntitiesWith1[*posComp](em)
	assert.Equal(t, []EntityID{want[0], want[1], want[3], want[4]}, got)
}

func TestGetEntitiesWith2RequiresBothComponents(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &posComp{})
	em.AddComponent(both, &tagComp{})

	onlyPos := em.CreateEntity()
	em.AddComponent(onlyPos, &posComp{})

	got := GetEntitiesWith2[*posComp, *tagComp](em)
	assert.Equal(t, []EntityID{both}, got)
}

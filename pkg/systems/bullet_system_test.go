package systems

import (
	"testing"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/entities"
	"github.com/gonewx/towerd/pkg/geom"
)

func TestBulletFliesTowardImpactPoint(t *testing.T) {
	em := ecs.NewEntityManager()
	bs := NewBulletSystem(em)

	id, err := entities.NewBulletEntity(em, 1, geom.Vec2{}, geom.Vec2{X: 100}, 100)
	if err != nil {
		t.Fatalf("NewBulletEntity failed: %v", err)
	}

	bs.Update(0.1) // 10 units of travel

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if transform.Pos.X < 9.9 || transform.Pos.X > 10.1 {
		t.Errorf("expected bullet near x=10, got %v", transform.Pos.X)
	}
	if !em.Exists(id) {
		t.Error("bullet disappeared mid-flight")
	}
}

func TestBulletDespawnsOnArrival(t *testing.T) {
	em := ecs.NewEntityManager()
	bs := NewBulletSystem(em)

	id, _ := entities.NewBulletEntity(em, 1, geom.Vec2{}, geom.Vec2{X: 50}, 100)

	// One big step overshoots the remaining distance: the bullet lands and dies.
	bs.Update(1.0)
	em.RemoveMarkedEntities()

	if em.Exists(id) {
		t.Error("bullet must despawn after reaching the impact point")
	}
}

func TestBulletLifetimeSafetyNet(t *testing.T) {
	em := ecs.NewEntityManager()
	ls := NewLifetimeSystem(em)

	id, _ := entities.NewBulletEntity(em, 1, geom.Vec2{}, geom.Vec2{X: 1e9}, 1)

	// The bullet will never arrive; the lifetime system reaps it anyway.
	for i := 0; i < 60*4; i++ { // 4 simulated seconds > BulletMaxLifetime
		ls.Update(1.0 / 60.0)
		em.RemoveMarkedEntities()
	}

	if em.Exists(id) {
		t.Error("expired bullet must be cleaned up by the lifetime system")
	}
}

func TestMovementSystemIntegratesVelocity(t *testing.T) {
	em := ecs.NewEntityManager()
	ms := NewMovementSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{Pos: geom.Vec2{X: 100, Y: 50}})
	em.AddComponent(id, &components.VelocityComponent{VX: -30, VY: 10})

	ms.Update(0.5)

	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
	if transform.Pos.X != 85 || transform.Pos.Y != 55 {
		t.Errorf("expected (85, 55), got (%v, %v)", transform.Pos.X, transform.Pos.Y)
	}
}

func TestLifetimeSystemIgnoresYoungEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	ls := NewLifetimeSystem(em)

	id := em.CreateEntity()
	em.AddComponent(id, &components.LifetimeComponent{MaxLifetime: 10})

	ls.Update(1)
	em.RemoveMarkedEntities()

	if !em.Exists(id) {
		t.Error("entity died before its lifetime elapsed")
	}

	lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
	if lifetime.CurrentLifetime != 1 {
		t.Errorf("expected accumulated lifetime 1, got %v", lifetime.CurrentLifetime)
	}
}

package entities

import (
	"testing"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/geom"
)

func testTowerStats() config.TowerStats {
	return config.TowerStats{
		Range:  150,
		Damage: 40,
		Price:  100,
		Speed:  220,
	}
}

func TestNewTowerEntityCopiesConfig(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := testTowerStats()

	id, err := NewTowerEntity(em, "cannon", stats, "player1")
	if err != nil {
		t.Fatalf("NewTowerEntity failed: %v", err)
	}

	tower, ok := ecs.GetComponent[*components.TowerComponent](em, id)
	if !ok {
		t.Fatal("tower entity has no TowerComponent")
	}

	if tower.Type != "cannon" {
		t.Errorf("Type: expected cannon, got %s", tower.Type)
	}
	if tower.Range != 150 || tower.Damage != 40 || tower.Price != 100 || tower.Speed != 220 {
		t.Errorf("config not copied: %+v", tower)
	}
	if tower.Owner != "player1" {
		t.Errorf("Owner: expected player1, got %s", tower.Owner)
	}

	// Mutating the caller's stats afterwards must not affect the tower.
	stats.Damage = 9999
	if tower.Damage != 40 {
		t.Error("tower shares state with caller config")
	}
}

func TestNewTowerEntityStartsInactive(t *testing.T) {
	em := ecs.NewEntityManager()

	id, err := NewTowerEntity(em, "cannon", testTowerStats(), "")
	if err != nil {
		t.Fatalf("NewTowerEntity failed: %v", err)
	}

	tower, _ := ecs.GetComponent[*components.TowerComponent](em, id)
	if tower.IsActive {
		t.Error("freshly built tower must be inactive until spawned")
	}
	if tower.Cooldown != 0 {
		t.Errorf("initial cooldown must be 0, got %v", tower.Cooldown)
	}
	if tower.Target != 0 {
		t.Errorf("initial target must be 0, got %d", tower.Target)
	}
}

func TestNewTowerEntityDefaultSpeed(t *testing.T) {
	em := ecs.NewEntityManager()
	stats := testTowerStats()
	stats.Speed = 0 // unset in config

	id, err := NewTowerEntity(em, "cannon", stats, "")
	if err != nil {
		t.Fatalf("NewTowerEntity failed: %v", err)
	}

	tower, _ := ecs.GetComponent[*components.TowerComponent](em, id)
	if tower.Speed != config.DefaultBulletSpeed {
		t.Errorf("expected default speed %v, got %v", float64(config.DefaultBulletSpeed), tower.Speed)
	}
}

func TestNewTowerEntityRejectsBadInput(t *testing.T) {
	if _, err := NewTowerEntity(nil, "cannon", testTowerStats(), ""); err == nil {
		t.Error("expected error for nil entity manager")
	}

	em := ecs.NewEntityManager()
	bad := testTowerStats()
	bad.Range = 0
	if _, err := NewTowerEntity(em, "cannon", bad, ""); err == nil {
		t.Error("expected error for non-positive range")
	}
}

func TestSpawnTowerPlacesAndActivates(t *testing.T) {
	em := ecs.NewEntityManager()
	id, _ := NewTowerEntity(em, "cannon", testTowerStats(), "")

	if err := SpawnTower(em, id, geom.Vec2{X: 100, Y: 200}, 1.5); err != nil {
		t.Fatalf("SpawnTower failed: %v", err)
	}

	tower, _ := ecs.GetComponent[*components.TowerComponent](em, id)
	transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)

	if !tower.IsActive {
		t.Error("spawned tower must be active")
	}
	if transform.Pos != (geom.Vec2{X: 100, Y: 200}) {
		t.Errorf("position not applied: %+v", transform.Pos)
	}
	if transform.Heading != 1.5 {
		t.Errorf("heading not applied: %v", transform.Heading)
	}
}

func TestSpawnTowerOnNonTower(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()

	if err := SpawnTower(em, id, geom.Vec2{}, 0); err == nil {
		t.Error("expected error when spawning a non-tower entity")
	}
}

func TestActivateDisableToggle(t *testing.T) {
	em := ecs.NewEntityManager()
	id, _ := NewTowerEntity(em, "cannon", testTowerStats(), "")
	_ = SpawnTower(em, id, geom.Vec2{}, 0)

	DisableTower(em, id)
	tower, _ := ecs.GetComponent[*components.TowerComponent](em, id)
	if tower.IsActive {
		t.Error("DisableTower did not clear IsActive")
	}

	ActivateTower(em, id)
	if !tower.IsActive {
		t.Error("ActivateTower did not set IsActive")
	}

	// Silent no-op on non-tower entities.
	other := em.CreateEntity()
	ActivateTower(em, other)
	DisableTower(em, other)
}

func TestCleanUpTowerRemovesTowerAndItsBullets(t *testing.T) {
	em := ecs.NewEntityManager()
	towerA, _ := NewTowerEntity(em, "cannon", testTowerStats(), "")
	towerB, _ := NewTowerEntity(em, "cannon", testTowerStats(), "")

	bulletA, _ := NewBulletEntity(em, towerA, geom.Vec2{}, geom.Vec2{X: 10}, 100)
	bulletB, _ := NewBulletEntity(em, towerB, geom.Vec2{}, geom.Vec2{X: 10}, 100)

	CleanUpTower(em, towerA)
	em.RemoveMarkedEntities()

	if em.Exists(towerA) {
		t.Error("tower A should be gone")
	}
	if em.Exists(bulletA) {
		t.Error("tower A's in-flight bullet should be gone")
	}
	if !em.Exists(towerB) || !em.Exists(bulletB) {
		t.Error("tower B and its bullet must survive")
	}
}

package entities

import (
	"fmt"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/geom"
)

// NewTowerEntity 创建炮塔实体
//
// 属性从 stats 拷贝到组件中，创建后修改配置不影响已建炮塔。
// 新建的炮塔处于未激活状态且没有位置，需调用 SpawnTower 放入世界。
//
// 参数:
//   - em: 实体管理器
//   - towerType: 炮塔类型ID（对应配置文件中的键）
//   - stats: 炮塔属性配置
//   - owner: 归属玩家标识
//
// 返回:
//   - ecs.EntityID: 创建的炮塔实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewTowerEntity(em *ecs.EntityManager, towerType string, stats config.TowerStats, owner string) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if stats.Range <= 0 {
		return 0, fmt.Errorf("tower %s: range must be positive, got %v", towerType, stats.Range)
	}

	// 配置未指定子弹速度时使用默认值
	speed := stats.Speed
	if speed == 0 {
		speed = config.DefaultBulletSpeed
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{})

	em.AddComponent(entityID, &components.TowerComponent{
		Type:     towerType,
		Range:    stats.Range,
		Damage:   stats.Damage,
		Price:    stats.Price,
		Owner:    owner,
		Speed:    speed,
		Cooldown: 0, // 创建即可立刻开火
		Target:   0,
		// 预充索敌计时：放置后第一个待机帧即允许索敌，
		// 之后才受 0.2 秒节流约束
		SearchTimer: config.TargetSearchInterval,
		IsActive:    false,
	})

	return entityID, nil
}

// SpawnTower 将炮塔放置到世界中的指定位置并激活
//
// 参数:
//   - em: 实体管理器
//   - id: 炮塔实体ID
//   - pos: 放置位置（世界坐标）
//   - heading: 初始朝向角（弧度）
//
// 返回:
//   - error: 如果实体不是有效炮塔返回错误信息
func SpawnTower(em *ecs.EntityManager, id ecs.EntityID, pos geom.Vec2, heading float64) error {
	tower, ok := ecs.GetComponent[*components.TowerComponent](em, id)
	if !ok {
		return fmt.Errorf("entity %d is not a tower", id)
	}
	transform, ok := ecs.GetComponent[*components.TransformComponent](em, id)
	if !ok {
		return fmt.Errorf("tower %d has no transform", id)
	}

	transform.Pos = pos
	transform.Heading = geom.NormalizeAngle(heading)
	tower.IsActive = true
	return nil
}

// ActivateTower 恢复炮塔的每帧行为
// 实体不是炮塔时静默忽略
func ActivateTower(em *ecs.EntityManager, id ecs.EntityID) {
	if tower, ok := ecs.GetComponent[*components.TowerComponent](em, id); ok {
		tower.IsActive = true
	}
}

// DisableTower 暂停炮塔的每帧行为（不销毁，可再次激活）
// 实体不是炮塔时静默忽略
func DisableTower(em *ecs.EntityManager, id ecs.EntityID) {
	if tower, ok := ecs.GetComponent[*components.TowerComponent](em, id); ok {
		tower.IsActive = false
	}
}

// CleanUpTower 彻底拆除炮塔
// 连带清理该炮塔发射的所有在途子弹，避免子弹残留引用已销毁的炮塔。
// 实际删除发生在本帧末尾的 RemoveMarkedEntities
func CleanUpTower(em *ecs.EntityManager, id ecs.EntityID) {
	if _, ok := ecs.GetComponent[*components.TowerComponent](em, id); !ok {
		return
	}

	for _, bulletID := range ecs.GetEntitiesWith1[*components.BulletComponent](em) {
		bullet, ok := ecs.GetComponent[*components.BulletComponent](em, bulletID)
		if ok && bullet.OwnerTower == id {
			em.DestroyEntity(bulletID)
		}
	}

	em.DestroyEntity(id)
}

package entities

import (
	"fmt"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/geom"
)

// NewBulletEntity 创建子弹视觉实体
//
// 子弹从 from 飞向开火瞬间记录的 targetPos，伤害已在开火时结算。
// 附带 LifetimeComponent 作为兜底清理：即使因浮点误差或目标点
// 异常导致永远"到不了"，超时后也会被 LifetimeSystem 删除
//
// 参数:
//   - em: 实体管理器
//   - owner: 发射子弹的炮塔实体ID
//   - from: 发射位置（世界坐标）
//   - targetPos: 命中点（世界坐标）
//   - speed: 飞行速度（世界单位/秒）
//
// 返回:
//   - ecs.EntityID: 创建的子弹实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewBulletEntity(em *ecs.EntityManager, owner ecs.EntityID, from, targetPos geom.Vec2, speed float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if speed <= 0 {
		return 0, fmt.Errorf("bullet speed must be positive, got %v", speed)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Pos:     from,
		Heading: geom.AngleTo(from, targetPos),
	})

	em.AddComponent(entityID, &components.BulletComponent{
		OwnerTower: owner,
		TargetPos:  targetPos,
		Speed:      speed,
	})

	em.AddComponent(entityID, &components.LifetimeComponent{
		MaxLifetime: config.BulletMaxLifetime,
	})

	return entityID, nil
}

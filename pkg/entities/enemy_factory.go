package entities

import (
	"fmt"
	"math"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/geom"
)

// NewEnemyEntity 创建敌人实体
// 敌人在给定位置刷出，沿 -X 方向匀速行进
//
// 参数:
//   - em: 实体管理器
//   - enemyType: 敌人类型ID（对应关卡配置中的键）
//   - stats: 敌人属性配置
//   - pos: 刷出位置（世界坐标）
//
// 返回:
//   - ecs.EntityID: 创建的敌人实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewEnemyEntity(em *ecs.EntityManager, enemyType string, stats config.EnemyStats, pos geom.Vec2) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if stats.Health <= 0 {
		return 0, fmt.Errorf("enemy %s: health must be positive, got %d", enemyType, stats.Health)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{
		Pos:     pos,
		Heading: math.Pi, // 面向 -X 行进方向
	})

	em.AddComponent(entityID, &components.EnemyComponent{
		Type:   enemyType,
		Radius: stats.Radius,
		Reward: stats.Reward,
	})

	em.AddComponent(entityID, &components.HealthComponent{
		CurrentHealth: stats.Health,
		MaxHealth:     stats.Health,
	})

	em.AddComponent(entityID, &components.VelocityComponent{
		VX: -stats.Speed,
		VY: 0,
	})

	return entityID, nil
}

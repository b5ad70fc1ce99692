package entities

import (
	"fmt"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/geom"
)

// NewObstacleEntity 创建静态障碍物实体
// 障碍物阻挡炮塔视线，以圆形包围体近似
//
// 参数:
//   - em: 实体管理器
//   - pos: 障碍物中心位置（世界坐标）
//   - radius: 包围圆半径
//
// 返回:
//   - ecs.EntityID: 创建的障碍物实体ID，如果失败返回 0
//   - error: 如果创建失败返回错误信息
func NewObstacleEntity(em *ecs.EntityManager, pos geom.Vec2, radius float64) (ecs.EntityID, error) {
	if em == nil {
		return 0, fmt.Errorf("entity manager cannot be nil")
	}
	if radius <= 0 {
		return 0, fmt.Errorf("obstacle radius must be positive, got %v", radius)
	}

	entityID := em.CreateEntity()

	em.AddComponent(entityID, &components.TransformComponent{Pos: pos})
	em.AddComponent(entityID, &components.ObstacleComponent{Radius: radius})

	return entityID, nil
}

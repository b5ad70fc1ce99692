package systems

import (
	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/ecs"
)

// MovementSystem 按速度积分更新实体位置
// 作用于所有拥有 TransformComponent 和 VelocityComponent 的实体（敌人）
type MovementSystem struct {
	entityManager *ecs.EntityManager
}

// NewMovementSystem 创建一个新的移动系统
func NewMovementSystem(em *ecs.EntityManager) *MovementSystem {
	return &MovementSystem{
		entityManager: em,
	}
}

// Update 更新所有可移动实体的位置
func (s *MovementSystem) Update(deltaTime float64) {
	entityList := ecs.GetEntitiesWith2[*components.TransformComponent, *components.VelocityComponent](s.entityManager)

	for _, id := range entityList {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		velocity, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)

		transform.Pos.X += velocity.VX * deltaTime
		transform.Pos.Y += velocity.VY * deltaTime
	}
}

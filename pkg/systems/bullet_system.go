package systems

import (
	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/geom"
)

// BulletSystem 推进子弹视觉实体
//
// 子弹沿直线飞向开火时记录的命中点，到达后自毁。
// 单帧位移超过剩余距离时直接落点，避免高速子弹越过命中点来回抖动。
// 超时兜底由 LifetimeSystem 负责，本系统只处理正常到达
type BulletSystem struct {
	entityManager *ecs.EntityManager
}

// NewBulletSystem 创建一个新的子弹系统
func NewBulletSystem(em *ecs.EntityManager) *BulletSystem {
	return &BulletSystem{
		entityManager: em,
	}
}

// Update 更新所有子弹实体
func (s *BulletSystem) Update(deltaTime float64) {
	bulletList := ecs.GetEntitiesWith2[*components.BulletComponent, *components.TransformComponent](s.entityManager)

	for _, id := range bulletList {
		bullet, _ := ecs.GetComponent[*components.BulletComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		remaining := geom.Dist(transform.Pos, bullet.TargetPos)
		step := bullet.Speed * deltaTime

		if step >= remaining || remaining <= config.BulletArrivalThreshold {
			// 到达命中点
			transform.Pos = bullet.TargetPos
			s.entityManager.DestroyEntity(id)
			continue
		}

		dir := bullet.TargetPos.Sub(transform.Pos).Normalize()
		transform.Pos = transform.Pos.Add(dir.Scale(step))
		transform.Heading = geom.AngleTo(transform.Pos, bullet.TargetPos)
	}
}

package components

import (
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/geom"
)

// BulletComponent 标识炮塔发射的子弹视觉实体
//
// 子弹是纯视觉效果：伤害在开火瞬间已经结算，子弹只负责飞向
// 开火时记录的命中点，到达后自毁。炮塔被清理时会连带清理
// 其所有在途子弹（通过 OwnerTower 关联）。
type BulletComponent struct {
	OwnerTower ecs.EntityID // 发射该子弹的炮塔
	TargetPos  geom.Vec2    // 开火时记录的命中点（不追踪目标后续移动）
	Speed      float64      // 飞行速度（世界单位/秒）
}

package systems

import (
	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/geom"
)

// LineOfSightClear 判断从 from 到 to 的视线是否通畅
//
// 射线从 from 指向 to，最大长度限制为 maxRange；目标在射程外视为不可见。
// 射线只与障碍物实体（ObstacleComponent）求交：炮塔自身不参与遮挡，
// 目标本体也永远不会挡住指向自己的视线
func LineOfSightClear(em *ecs.EntityManager, from, to geom.Vec2, maxRange float64) bool {
	dist := geom.Dist(from, to)
	if dist > maxRange {
		return false
	}

	// 射线终点截断到射程内（dist <= maxRange 时即为 to 本身）
	end := to
	if dist > 0 {
		dir := to.Sub(from).Normalize()
		end = from.Add(dir.Scale(dist))
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ObstacleComponent, *components.TransformComponent](em) {
		obstacle, ok1 := ecs.GetComponent[*components.ObstacleComponent](em, id)
		transform, ok2 := ecs.GetComponent[*components.TransformComponent](em, id)
		if !ok1 || !ok2 {
			continue
		}
		if geom.SegmentIntersectsCircle(from, end, transform.Pos, obstacle.Radius) {
			return false
		}
	}

	return true
}

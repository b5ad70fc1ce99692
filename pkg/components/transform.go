package components

import "github.com/gonewx/towerd/pkg/geom"

// TransformComponent 存储实体的世界坐标位置与朝向
// 位置即实体的"锚点"：距离、方向、朝向计算均以此为基准
type TransformComponent struct {
	Pos     geom.Vec2 // 世界坐标位置
	Heading float64   // 朝向角（弧度，0 = +X 方向，归一化到 [-π, π]）
}

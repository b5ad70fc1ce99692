package components

// ObstacleComponent 标识阻挡视线的静态障碍物
// 障碍物以圆形包围体近似，供视线检测的射线查询使用
type ObstacleComponent struct {
	Radius float64 // 包围圆半径
}

package components

// VelocityComponent 存储实体的移动速度（世界单位/秒）
type VelocityComponent struct {
	VX float64 // X方向速度
	VY float64 // Y方向速度
}

package components

// HealthComponent 存储实体的生命值信息
// 生命值降到 0 及以下的实体由攻击方负责移除
type HealthComponent struct {
	CurrentHealth int // 当前生命值
	MaxHealth     int // 最大生命值
}

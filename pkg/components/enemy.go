package components

// EnemyComponent 标识实体为敌方单位（炮塔索敌的扫描对象）
type EnemyComponent struct {
	Type   string  // 敌人类型ID（对应关卡配置中的键）
	Radius float64 // 包围圆半径（渲染与到达判定用）
	Reward int     // 击杀奖励金币
}

package components

import "github.com/gonewx/towerd/pkg/ecs"

// TowerComponent 存储炮塔的全部战斗状态
//
// 配置字段（Range/Damage/Price/Owner/Speed）在工厂创建时从配置拷贝，
// 之后不再读取配置；运行时字段由 TowerSystem 每帧驱动。
//
// Target 是指向敌人实体的弱引用句柄：炮塔不拥有敌人的生命周期，
// 每次使用前都必须重新校验（validate-on-read），而不是信任其存活。
type TowerComponent struct {
	Type   string  // 炮塔类型ID（对应配置文件中的键）
	Range  float64 // 索敌/攻击半径
	Damage float64 // 基础单发伤害（实际伤害按距离衰减后取整）
	Price  int     // 建造价格
	Owner  string  // 归属玩家标识
	Speed  float64 // 子弹视觉飞行速度（配置缺省时为 100）

	Cooldown    float64      // 距下次开火的剩余秒数，开火后重置；帧内可短暂为负
	Target      ecs.EntityID // 当前目标句柄，0 表示无目标
	SearchTimer float64      // 距上次索敌以来累计的时间（索敌节流用）
	IsActive    bool         // 总开关：为 false 时整个状态机停摆
}

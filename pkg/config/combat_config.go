package config

// 战斗调参常量
// 本文件集中定义炮塔战斗行为的各项数值

// Tower Combat (炮塔战斗配置)
const (
	// TowerFireInterval 炮塔开火间隔（秒）
	// 开火后冷却计时重置为此值，冷却归零（或为负）后才能再次开火
	TowerFireInterval = 0.5

	// TargetSearchInterval 索敌节流间隔（秒）
	// 无目标时每隔此时长才扫描一次敌人集合，而不是每帧扫描。
	// 这是响应速度与扫描开销之间的刻意取舍
	TargetSearchInterval = 0.2

	// DamageFalloffFactor 距离伤害衰减系数
	// 实际伤害 = round(基础伤害 * (1 - 系数 * clamp(距离/射程, 0, 1)))
	// 零距离满伤害，射程边缘为 70% 伤害
	DamageFalloffFactor = 0.3

	// AimSmoothingFactor 瞄准平滑系数
	// 每帧朝向按 clamp(dt * 系数, 0, 1) 向目标方向插值，
	// 形成帧率无关的指数趋近式转向
	AimSmoothingFactor = 8.0

	// DefaultBulletSpeed 子弹默认飞行速度（世界单位/秒）
	// 炮塔配置未指定 speed 时使用
	DefaultBulletSpeed = 100.0
)

// Bullet Visual (子弹视觉配置)
const (
	// BulletArrivalThreshold 子弹到达判定距离（世界单位）
	// 子弹与命中点距离小于此值时视为到达并自毁
	BulletArrivalThreshold = 4.0

	// BulletMaxLifetime 子弹最大存在时间（秒）
	// 兜底清理：无论是否到达命中点，超时即删除
	BulletMaxLifetime = 3.0
)

// Screen Layout (画面布局配置)
const (
	// ScreenWidth 逻辑画面宽度（像素）
	ScreenWidth = 800

	// ScreenHeight 逻辑画面高度（像素）
	ScreenHeight = 600
)

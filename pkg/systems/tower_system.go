package systems

import (
	"log"
	"math"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/entities"
	"github.com/gonewx/towerd/pkg/geom"
)

// TowerSystem 驱动所有炮塔的每帧行为状态机
//
// 状态机只有两个状态：
//   - 待机（无目标）：按节流间隔索敌，索敌命中即进入交战
//   - 交战（有有效目标）：冷却计时、冷却归零开火、每帧向目标平滑转向
//
// 目标校验采用 validate-on-read：每帧使用目标前重新校验其存活与射程，
// 失效立即清除并回到待机，下一帧自行恢复，不依赖任何失效回调
type TowerSystem struct {
	entityManager *ecs.EntityManager

	// 击杀统计（由外层读取，用于金币结算与进度保存）
	Kills      int // 累计击杀数
	GoldEarned int // 累计击杀奖励金币
}

// NewTowerSystem 创建一个新的炮塔系统
func NewTowerSystem(em *ecs.EntityManager) *TowerSystem {
	return &TowerSystem{
		entityManager: em,
	}
}

// Update 更新所有炮塔实体
func (s *TowerSystem) Update(deltaTime float64) {
	towerList := ecs.GetEntitiesWith2[*components.TowerComponent, *components.TransformComponent](s.entityManager)

	for _, towerID := range towerList {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, towerID)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, towerID)

		// 总开关：未激活的炮塔完全静止（不计冷却、不索敌、不转向）
		if !tower.IsActive {
			continue
		}

		if s.validateTarget(tower, transform) {
			// 交战：冷却计时与开火
			tower.Cooldown -= deltaTime
			if tower.Cooldown <= 0 {
				s.attack(towerID, tower, transform)
				tower.Cooldown = config.TowerFireInterval
			}
			// 无论是否开火，每帧都向目标平滑转向
			s.aimAt(tower, transform, deltaTime)
		} else {
			// 待机：节流索敌
			tower.SearchTimer += deltaTime
			if tower.SearchTimer >= config.TargetSearchInterval {
				tower.SearchTimer = 0
				s.searchForTarget(towerID, tower, transform)
			}
		}
	}
}

// validateTarget 校验当前目标是否仍然合法
// 目标必须存活、拥有锚点（TransformComponent）与生命值、且在射程内；
// 任一条件不满足即清除目标并返回 false
func (s *TowerSystem) validateTarget(tower *components.TowerComponent, transform *components.TransformComponent) bool {
	if tower.Target == 0 {
		return false
	}

	if !s.entityManager.Exists(tower.Target) {
		tower.Target = 0
		return false
	}

	targetTransform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, tower.Target)
	if !ok {
		// 目标失去锚点，无法定位
		tower.Target = 0
		return false
	}

	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, tower.Target)
	if !ok || health.CurrentHealth <= 0 {
		// 目标已死亡（可能被其他炮塔在本帧击杀，删除是延迟执行的）
		tower.Target = 0
		return false
	}

	if geom.Dist(transform.Pos, targetTransform.Pos) > tower.Range {
		tower.Target = 0
		return false
	}

	return true
}

// searchForTarget 扫描敌人集合并选取最近的合法目标
//
// 合法目标 = 在射程内且视线通畅的存活敌人。
// 敌人按创建顺序枚举，距离相同时保留先创建者，保证选择结果确定。
// 命中时设置 Target 并返回 true（下一帧进入交战状态）
func (s *TowerSystem) searchForTarget(towerID ecs.EntityID, tower *components.TowerComponent, transform *components.TransformComponent) bool {
	enemyList := s.entityManager.GetEntitiesWith(
		typeOfEnemy, typeOfTransform, typeOfHealth,
	)

	var best ecs.EntityID
	bestDist := math.MaxFloat64

	for _, enemyID := range enemyList {
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, enemyID)
		if health.CurrentHealth <= 0 {
			continue
		}

		enemyTransform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, enemyID)
		dist := geom.Dist(transform.Pos, enemyTransform.Pos)
		if dist > tower.Range {
			continue
		}

		if !LineOfSightClear(s.entityManager, transform.Pos, enemyTransform.Pos, tower.Range) {
			continue
		}

		if dist < bestDist {
			bestDist = dist
			best = enemyID
		}
	}

	if best == 0 {
		return false
	}

	tower.Target = best
	log.Printf("[TowerSystem] 炮塔 %d 锁定目标 %d（距离 %.1f）", towerID, best, bestDist)
	return true
}

// attack 对当前目标结算一次攻击
// 伤害按距离衰减后作用于目标生命值，同时发射子弹视觉；
// 目标生命值归零时移除目标实体并清除锁定
func (s *TowerSystem) attack(towerID ecs.EntityID, tower *components.TowerComponent, transform *components.TransformComponent) {
	targetTransform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, tower.Target)
	if !ok {
		return
	}
	health, ok := ecs.GetComponent[*components.HealthComponent](s.entityManager, tower.Target)
	if !ok {
		return
	}

	dist := geom.Dist(transform.Pos, targetTransform.Pos)
	damage := CalculateDamage(tower.Damage, dist, tower.Range)
	health.CurrentHealth -= damage

	// 子弹是纯视觉：伤害此刻已经结算完毕
	if _, err := entities.NewBulletEntity(s.entityManager, towerID, transform.Pos, targetTransform.Pos, tower.Speed); err != nil {
		log.Printf("[TowerSystem] 子弹创建失败: %v", err)
	}

	if health.CurrentHealth <= 0 {
		s.Kills++
		if enemy, ok := ecs.GetComponent[*components.EnemyComponent](s.entityManager, tower.Target); ok {
			s.GoldEarned += enemy.Reward
		}
		log.Printf("[TowerSystem] 炮塔 %d 击杀目标 %d", towerID, tower.Target)
		s.entityManager.DestroyEntity(tower.Target)
		tower.Target = 0
	}
}

// aimAt 将炮塔朝向向目标方向平滑插值
// 插值系数为 clamp(dt * AimSmoothingFactor, 0, 1)，形成帧率无关的指数趋近
func (s *TowerSystem) aimAt(tower *components.TowerComponent, transform *components.TransformComponent, deltaTime float64) {
	targetTransform, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, tower.Target)
	if !ok {
		return
	}

	desired := geom.AngleTo(transform.Pos, targetTransform.Pos)
	transform.Heading = geom.LerpAngle(transform.Heading, desired, deltaTime*config.AimSmoothingFactor)
}

// CalculateDamage 计算距离衰减后的实际伤害
// 伤害倍率 = 1 - DamageFalloffFactor * clamp(distance/range, 0, 1)，
// 结果四舍五入取整：零距离满伤害，射程边缘为 70% 伤害
func CalculateDamage(baseDamage, distance, attackRange float64) int {
	falloff := 1 - config.DamageFalloffFactor*geom.Clamp(distance/attackRange, 0, 1)
	return int(math.Round(baseDamage * falloff))
}

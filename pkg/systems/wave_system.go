package systems

import (
	"log"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/entities"
	"github.com/gonewx/towerd/pkg/geom"
)

// WaveSystem 按关卡配置分波刷出敌人，并处理敌人突破防线
//
// 每波从上一波刷完后计 Delay 秒开始，按 Interval 间隔逐个刷出；
// 敌人依次循环分配到各车道。越过 goalX 的敌人被移除并计入 Breaches
type WaveSystem struct {
	entityManager *ecs.EntityManager
	level         *config.LevelConfig

	currentWave   int     // 当前波次下标，== len(Waves) 表示全部刷完
	waveStarted   bool    // 当前波是否已开始刷出
	waveTimer     float64 // 波前延迟计时
	spawnTimer    float64 // 波内刷出间隔计时
	spawnedInWave int     // 当前波已刷出数量
	laneIndex     int     // 车道循环分配游标

	// Breaches 突破防线的敌人总数（由外层读取，用于胜负判定）
	Breaches int
}

// NewWaveSystem 创建一个新的波次系统
// level 必须是已通过校验的关卡配置
func NewWaveSystem(em *ecs.EntityManager, level *config.LevelConfig) *WaveSystem {
	return &WaveSystem{
		entityManager: em,
		level:         level,
	}
}

// Update 推进波次刷出并检查防线
func (s *WaveSystem) Update(deltaTime float64) {
	s.checkGoalLine()
	s.advanceSpawning(deltaTime)
}

// checkGoalLine 移除越过防线的敌人并计数
func (s *WaveSystem) checkGoalLine() {
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.TransformComponent](s.entityManager) {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		if transform.Pos.X <= s.level.GoalX {
			s.Breaches++
			log.Printf("[WaveSystem] 敌人 %d 突破防线（累计 %d）", id, s.Breaches)
			s.entityManager.DestroyEntity(id)
		}
	}
}

// advanceSpawning 推进当前波次的刷出进度
func (s *WaveSystem) advanceSpawning(deltaTime float64) {
	if s.currentWave >= len(s.level.Waves) {
		return
	}
	wave := s.level.Waves[s.currentWave]

	if !s.waveStarted {
		s.waveTimer += deltaTime
		if s.waveTimer < wave.Delay {
			return
		}
		s.waveStarted = true
		// 波开始时立即刷出第一个敌人
		s.spawnTimer = wave.Interval
		log.Printf("[WaveSystem] 第 %d 波开始：%s x%d", s.currentWave+1, wave.Enemy, wave.Count)
	}

	s.spawnTimer += deltaTime
	for s.spawnTimer >= wave.Interval && s.spawnedInWave < wave.Count {
		s.spawnTimer -= wave.Interval
		s.spawnEnemy(wave.Enemy)
		s.spawnedInWave++
	}

	if s.spawnedInWave >= wave.Count {
		// 本波刷完，下一波的 Delay 从此刻起算
		s.currentWave++
		s.waveStarted = false
		s.waveTimer = 0
		s.spawnedInWave = 0
	}
}

// spawnEnemy 在下一条车道刷出一个敌人
func (s *WaveSystem) spawnEnemy(enemyType string) {
	stats, ok := s.level.GetEnemyStats(enemyType)
	if !ok {
		// 配置校验保证不会发生，防御性跳过
		log.Printf("[WaveSystem] 未知敌人类型 %q，跳过", enemyType)
		return
	}

	lane := s.level.Lanes[s.laneIndex%len(s.level.Lanes)]
	s.laneIndex++

	pos := geom.Vec2{X: s.level.SpawnX, Y: lane}
	if _, err := entities.NewEnemyEntity(s.entityManager, enemyType, stats, pos); err != nil {
		log.Printf("[WaveSystem] 敌人创建失败: %v", err)
	}
}

// AllWavesSpawned 返回是否所有波次均已刷完
func (s *WaveSystem) AllWavesSpawned() bool {
	return s.currentWave >= len(s.level.Waves)
}

// CurrentWave 返回当前波次序号（从1开始；全部刷完后为总波数）
func (s *WaveSystem) CurrentWave() int {
	if s.AllWavesSpawned() {
		return len(s.level.Waves)
	}
	return s.currentWave + 1
}

// ActiveEnemies 返回场上存活敌人数量
func (s *WaveSystem) ActiveEnemies() int {
	return len(ecs.GetEntitiesWith1[*components.EnemyComponent](s.entityManager))
}

// Finished 返回关卡敌人是否已全部处理完（刷完且场上无存活敌人）
func (s *WaveSystem) Finished() bool {
	return s.AllWavesSpawned() && s.ActiveEnemies() == 0
}

// Package app 提供游戏应用的核心包装器
//
// 该包将对战初始化逻辑从 main 包提取出来，实现 ebiten.Game 接口。
// 桌面端通过 main.go 调用 NewApp()，无头模拟通过 cmd/simulate 直接驱动系统。
package app

import (
	"fmt"
	"io"
	"log"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/entities"
	"github.com/gonewx/towerd/pkg/game"
	"github.com/gonewx/towerd/pkg/geom"
	"github.com/gonewx/towerd/pkg/systems"
)

// 对局常量
const (
	startingGold  = 200 // 开局金币
	startingLives = 10  // 可承受的突破次数
	playerID      = "p1"
)

// phase 对局阶段
type phase int

const (
	phasePlaying phase = iota
	phaseVictory
	phaseDefeat
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 指定要加载的关卡名（data/levels/ 下的文件名，不含扩展名），为空则默认 level1
	Level string
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	entityManager *ecs.EntityManager

	towerSystem    *systems.TowerSystem
	movementSystem *systems.MovementSystem
	bulletSystem   *systems.BulletSystem
	lifetimeSystem *systems.LifetimeSystem
	waveSystem     *systems.WaveSystem
	renderSystem   *systems.RenderSystem

	towerStats *config.TowerStatsConfig
	level      *config.LevelConfig
	progress   *game.ProgressManager

	towerTypes   []string // 可建造炮塔类型（按名称排序，对应数字键1..n）
	selectedType int      // 当前选中的炮塔类型下标

	gold       int
	goldBanked int // 已入账的击杀奖励（TowerSystem.GoldEarned 是累计值）
	phase      phase
	saved      bool // 结算是否已写入进度
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	levelName := cfg.Level
	if levelName == "" {
		levelName = "level1"
	}

	// 加载配置
	towerStats, err := config.LoadTowerStats("data/towers.yaml")
	if err != nil {
		return nil, fmt.Errorf("炮塔配置加载失败: %w", err)
	}
	level, err := config.LoadLevelConfig("data/levels/" + levelName + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("关卡配置加载失败: %w", err)
	}
	log.Printf("[App] 关卡 %s：%d 条车道，%d 波", level.Name, len(level.Lanes), len(level.Waves))

	// 进度存储：打开失败进入降级模式（仅内存）
	gdataManager, err := gdata.Open(gdata.Config{AppName: "towerd"})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable: %v (progress will not persist)", err)
		gdataManager = nil
	}
	progress, err := game.NewProgressManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("进度管理器创建失败: %w", err)
	}

	em := ecs.NewEntityManager()

	// 按关卡配置摆放障碍物
	for _, o := range level.Obstacles {
		if _, err := entities.NewObstacleEntity(em, geom.Vec2{X: o.X, Y: o.Y}, o.Radius); err != nil {
			return nil, fmt.Errorf("障碍物创建失败: %w", err)
		}
	}

	// 可建造类型按名称排序，绑定数字键
	towerTypes := make([]string, 0, len(towerStats.Towers))
	for name := range towerStats.Towers {
		towerTypes = append(towerTypes, name)
	}
	sort.Strings(towerTypes)

	return &App{
		entityManager:  em,
		towerSystem:    systems.NewTowerSystem(em),
		movementSystem: systems.NewMovementSystem(em),
		bulletSystem:   systems.NewBulletSystem(em),
		lifetimeSystem: systems.NewLifetimeSystem(em),
		waveSystem:     systems.NewWaveSystem(em, level),
		renderSystem:   systems.NewRenderSystem(em),
		towerStats:     towerStats,
		level:          level,
		progress:       progress,
		towerTypes:     towerTypes,
		gold:           startingGold,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	if a.phase != phasePlaying {
		return nil
	}

	a.handleInput()

	const deltaTime = 1.0 / 60.0
	a.waveSystem.Update(deltaTime)
	a.movementSystem.Update(deltaTime)
	a.towerSystem.Update(deltaTime)
	a.bulletSystem.Update(deltaTime)
	a.lifetimeSystem.Update(deltaTime)
	a.entityManager.RemoveMarkedEntities()

	// 击杀奖励入账
	if earned := a.towerSystem.GoldEarned - a.goldBanked; earned > 0 {
		a.gold += earned
		a.goldBanked = a.towerSystem.GoldEarned
	}

	a.checkBattleEnd()
	return nil
}

// handleInput 处理建造输入
// 数字键选择炮塔类型，鼠标左键在光标处建造
func (a *App) handleInput() {
	for i := range a.towerTypes {
		if i >= 9 {
			break
		}
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			a.selectedType = i
			log.Printf("[App] 选中炮塔类型 %s", a.towerTypes[i])
		}
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if len(a.towerTypes) == 0 {
		return
	}

	towerType := a.towerTypes[a.selectedType]
	stats, _ := a.towerStats.GetTowerStats(towerType)
	if a.gold < stats.Price {
		log.Printf("[App] 金币不足：%s 需要 %d，现有 %d", towerType, stats.Price, a.gold)
		return
	}

	mx, my := ebiten.CursorPosition()
	pos := geom.Vec2{X: float64(mx), Y: float64(my)}

	id, err := entities.NewTowerEntity(a.entityManager, towerType, stats, playerID)
	if err != nil {
		log.Printf("[App] 炮塔创建失败: %v", err)
		return
	}
	// 敌人从右侧进场，初始朝向右
	if err := entities.SpawnTower(a.entityManager, id, pos, 0); err != nil {
		log.Printf("[App] 炮塔放置失败: %v", err)
		return
	}

	a.gold -= stats.Price
	log.Printf("[App] 在 (%d, %d) 建造 %s，剩余金币 %d", mx, my, towerType, a.gold)
}

// checkBattleEnd 判定胜负并在结束时写入进度
func (a *App) checkBattleEnd() {
	lives := startingLives - a.waveSystem.Breaches
	switch {
	case lives <= 0:
		a.phase = phaseDefeat
	case a.waveSystem.Finished():
		a.phase = phaseVictory
	default:
		return
	}

	if a.saved {
		return
	}
	a.saved = true

	cleared := a.phase == phaseVictory
	a.progress.RecordLevelResult(a.level.Name, a.towerSystem.Kills, a.towerSystem.GoldEarned, cleared)
	if cleared && a.waveSystem.Breaches == 0 {
		a.progress.RecordStreak(a.progress.BestStreak() + 1)
	}
	if err := a.progress.Save(); err != nil {
		log.Printf("[App] 进度保存失败: %v", err)
	}
	log.Printf("[App] 对局结束：cleared=%v kills=%d gold=%d breaches=%d",
		cleared, a.towerSystem.Kills, a.towerSystem.GoldEarned, a.waveSystem.Breaches)
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.renderSystem.Draw(screen)

	lives := startingLives - a.waveSystem.Breaches
	if lives < 0 {
		lives = 0
	}
	hud := fmt.Sprintf("金币 %d  生命 %d  波次 %d/%d  击杀 %d",
		a.gold, lives, a.waveSystem.CurrentWave(), len(a.level.Waves), a.towerSystem.Kills)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)

	if len(a.towerTypes) > 0 {
		towerType := a.towerTypes[a.selectedType]
		stats, _ := a.towerStats.GetTowerStats(towerType)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("建造: [%d] %s ($%d)", a.selectedType+1, towerType, stats.Price), 8, 24)
	}

	switch a.phase {
	case phaseVictory:
		ebitenutil.DebugPrintAt(screen, "胜利！防线守住了", config.ScreenWidth/2-60, config.ScreenHeight/2)
	case phaseDefeat:
		ebitenutil.DebugPrintAt(screen, "失败……防线被突破", config.ScreenWidth/2-60, config.ScreenHeight/2)
	}
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

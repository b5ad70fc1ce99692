// cmd/simulate - 无头对局模拟器
//
// 不开窗口，以固定步长驱动全部系统跑完一整局，
// 用于验证关卡配置的难度与炮塔布局的有效性。
//
// 用法:
//
//	go run ./cmd/simulate -level level1 -layout opening-defense
//	go run ./cmd/simulate -level level1 -auto
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/entities"
	"github.com/gonewx/towerd/pkg/game"
	"github.com/gonewx/towerd/pkg/geom"
	"github.com/gonewx/towerd/pkg/systems"
)

var (
	levelName  = flag.String("level", "level1", "关卡名（data/levels/ 下的文件名，不含扩展名）")
	layoutName = flag.String("layout", "", "要铺设的布局方案名（data/layouts/ 下）")
	auto       = flag.Bool("auto", false, "自动布防：每条车道中段放一座 cannon")
	maxSeconds = flag.Float64("max-seconds", 300, "模拟时长上限（秒）")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

func main() {
	flag.Parse()
	if !*verbose {
		log.SetFlags(0)
	}

	towerStats, err := config.LoadTowerStats("data/towers.yaml")
	if err != nil {
		log.Fatalf("炮塔配置加载失败: %v", err)
	}
	level, err := config.LoadLevelConfig("data/levels/" + *levelName + ".yaml")
	if err != nil {
		log.Fatalf("关卡配置加载失败: %v", err)
	}

	em := ecs.NewEntityManager()
	for _, o := range level.Obstacles {
		if _, err := entities.NewObstacleEntity(em, geom.Vec2{X: o.X, Y: o.Y}, o.Radius); err != nil {
			log.Fatalf("障碍物创建失败: %v", err)
		}
	}

	placed, err := placeDefense(em, towerStats, level)
	if err != nil {
		log.Fatalf("布防失败: %v", err)
	}
	fmt.Printf("关卡 %s：%d 条车道，%d 波，布防 %d 座炮塔\n",
		level.Name, len(level.Lanes), len(level.Waves), placed)

	towerSystem := systems.NewTowerSystem(em)
	movementSystem := systems.NewMovementSystem(em)
	bulletSystem := systems.NewBulletSystem(em)
	lifetimeSystem := systems.NewLifetimeSystem(em)
	waveSystem := systems.NewWaveSystem(em, level)

	const deltaTime = 1.0 / 60.0
	elapsed := 0.0
	lastWave := 0
	for elapsed < *maxSeconds && !waveSystem.Finished() {
		waveSystem.Update(deltaTime)
		movementSystem.Update(deltaTime)
		towerSystem.Update(deltaTime)
		bulletSystem.Update(deltaTime)
		lifetimeSystem.Update(deltaTime)
		em.RemoveMarkedEntities()
		elapsed += deltaTime

		if wave := waveSystem.CurrentWave(); wave != lastWave {
			lastWave = wave
			fmt.Printf("[%6.1fs] 第 %d 波  击杀 %d  突破 %d\n",
				elapsed, wave, towerSystem.Kills, waveSystem.Breaches)
		}
	}

	fmt.Printf("\n模拟结束（%.1f 秒）\n", elapsed)
	fmt.Printf("  击杀: %d\n", towerSystem.Kills)
	fmt.Printf("  奖励金币: %d\n", towerSystem.GoldEarned)
	fmt.Printf("  突破: %d\n", waveSystem.Breaches)
	fmt.Printf("  残余敌人: %d\n", waveSystem.ActiveEnemies())

	if !waveSystem.Finished() {
		fmt.Println("结果: 超时，防线未能处理全部敌人")
		os.Exit(1)
	}
	if waveSystem.Breaches > 0 {
		fmt.Println("结果: 守住了，但有敌人突破")
		return
	}
	fmt.Println("结果: 完美防守")
}

// placeDefense 按命令行参数铺设防御
func placeDefense(em *ecs.EntityManager, towerStats *config.TowerStatsConfig, level *config.LevelConfig) (int, error) {
	if *layoutName != "" {
		lm, err := game.NewLayoutManager("data/layouts")
		if err != nil {
			return 0, err
		}
		layout, err := lm.LoadLayout(*layoutName)
		if err != nil {
			return 0, fmt.Errorf("布局方案 %q 加载失败: %w", *layoutName, err)
		}
		ids, err := game.ApplyLayout(em, layout, towerStats, "sim")
		if err != nil {
			return 0, err
		}
		return len(ids), nil
	}

	if !*auto {
		return 0, nil
	}

	// 自动布防：每条车道中段一座 cannon，朝向敌人进场方向
	stats, ok := towerStats.GetTowerStats("cannon")
	if !ok {
		return 0, fmt.Errorf("自动布防需要 cannon 炮塔配置")
	}
	midX := (level.SpawnX + level.GoalX) / 2
	for _, lane := range level.Lanes {
		id, err := entities.NewTowerEntity(em, "cannon", stats, "sim")
		if err != nil {
			return 0, err
		}
		if err := entities.SpawnTower(em, id, geom.Vec2{X: midX, Y: lane - 40}, 0); err != nil {
			return 0, err
		}
	}
	return len(level.Lanes), nil
}

package systems

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/ecs"
)

// 渲染尺寸常量
const (
	towerBodyRadius  = 14.0 // 炮塔主体半径（像素）
	towerBarrelLen   = 22.0 // 炮管长度（像素）
	bulletRadius     = 3.0  // 子弹半径（像素）
	healthBarWidth   = 26.0 // 敌人血条宽度（像素）
	healthBarHeight  = 4.0  // 敌人血条高度（像素）
	healthBarOffsetY = 8.0  // 血条相对敌人顶部的偏移（像素）
)

// 调色板
var (
	colorBackground = color.RGBA{R: 34, G: 40, B: 34, A: 255}
	colorObstacle   = color.RGBA{R: 90, G: 90, B: 100, A: 255}
	colorTower      = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	colorTowerOff   = color.RGBA{R: 70, G: 80, B: 90, A: 255}
	colorRangeRing  = color.RGBA{R: 70, G: 130, B: 180, A: 60}
	colorEnemy      = color.RGBA{R: 200, G: 70, B: 60, A: 255}
	colorBullet     = color.RGBA{R: 250, G: 220, B: 100, A: 255}
	colorHealthBack = color.RGBA{R: 60, G: 20, B: 20, A: 255}
	colorHealthFill = color.RGBA{R: 80, G: 200, B: 80, A: 255}
)

// RenderSystem 用向量图元绘制整个场景
// 没有美术资源：炮塔/敌人/障碍物均以几何图形表示
type RenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRenderSystem 创建一个新的渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
	}
}

// Draw 绘制一帧
// 绘制顺序：背景 → 障碍物 → 炮塔 → 敌人 → 子弹
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	s.drawObstacles(screen)
	s.drawTowers(screen)
	s.drawEnemies(screen)
	s.drawBullets(screen)
}

func (s *RenderSystem) drawObstacles(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.ObstacleComponent, *components.TransformComponent](s.entityManager) {
		obstacle, _ := ecs.GetComponent[*components.ObstacleComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		vector.DrawFilledCircle(screen,
			float32(transform.Pos.X), float32(transform.Pos.Y),
			float32(obstacle.Radius), colorObstacle, true)
	}
}

func (s *RenderSystem) drawTowers(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.TowerComponent, *components.TransformComponent](s.entityManager) {
		tower, _ := ecs.GetComponent[*components.TowerComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)

		cx := float32(transform.Pos.X)
		cy := float32(transform.Pos.Y)

		bodyColor := colorTower
		if !tower.IsActive {
			bodyColor = colorTowerOff
		}

		// 射程提示环
		vector.StrokeCircle(screen, cx, cy, float32(tower.Range), 1, colorRangeRing, true)

		// 主体与炮管（炮管指向当前朝向）
		vector.DrawFilledCircle(screen, cx, cy, towerBodyRadius, bodyColor, true)
		tipX := transform.Pos.X + math.Cos(transform.Heading)*towerBarrelLen
		tipY := transform.Pos.Y + math.Sin(transform.Heading)*towerBarrelLen
		vector.StrokeLine(screen, cx, cy, float32(tipX), float32(tipY), 4, bodyColor, true)
	}
}

func (s *RenderSystem) drawEnemies(screen *ebiten.Image) {
	for _, id := range s.entityManager.GetEntitiesWith(typeOfEnemy, typeOfTransform, typeOfHealth) {
		enemy, _ := ecs.GetComponent[*components.EnemyComponent](s.entityManager, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		health, _ := ecs.GetComponent[*components.HealthComponent](s.entityManager, id)

		cx := float32(transform.Pos.X)
		cy := float32(transform.Pos.Y)
		vector.DrawFilledCircle(screen, cx, cy, float32(enemy.Radius), colorEnemy, true)

		// 血条
		ratio := float64(health.CurrentHealth) / float64(health.MaxHealth)
		if ratio < 0 {
			ratio = 0
		}
		barX := cx - healthBarWidth/2
		barY := cy - float32(enemy.Radius) - healthBarOffsetY
		vector.DrawFilledRect(screen, barX, barY, healthBarWidth, healthBarHeight, colorHealthBack, false)
		vector.DrawFilledRect(screen, barX, barY, float32(healthBarWidth*ratio), healthBarHeight, colorHealthFill, false)
	}
}

func (s *RenderSystem) drawBullets(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith2[*components.BulletComponent, *components.TransformComponent](s.entityManager) {
		transform, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		vector.DrawFilledCircle(screen,
			float32(transform.Pos.X), float32(transform.Pos.Y),
			bulletRadius, colorBullet, true)
	}
}

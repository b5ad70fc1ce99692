package config

import (
	"fmt"

	"github.com/gonewx/towerd/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// EnemyStats 单个敌人类型的属性配置
type EnemyStats struct {
	Health int     `yaml:"health"` // 初始生命值
	Speed  float64 `yaml:"speed"`  // 移动速度（世界单位/秒，正值，方向由关卡决定）
	Radius float64 `yaml:"radius"` // 包围圆半径
	Reward int     `yaml:"reward"` // 击杀奖励金币
}

// ObstacleDef 关卡中一个静态障碍物的定义
type ObstacleDef struct {
	X      float64 `yaml:"x"`      // 世界坐标X
	Y      float64 `yaml:"y"`      // 世界坐标Y
	Radius float64 `yaml:"radius"` // 包围圆半径
}

// WaveDef 一波敌人的定义
// 每波从 Delay 秒（相对上一波结束）开始，按 Interval 间隔逐个刷出 Count 个敌人
type WaveDef struct {
	Delay    float64 `yaml:"delay"`    // 距上一波结束的延迟（秒）
	Enemy    string  `yaml:"enemy"`    // 敌人类型ID（必须在 enemies 中定义）
	Count    int     `yaml:"count"`    // 本波敌人数量
	Interval float64 `yaml:"interval"` // 相邻敌人刷出间隔（秒）
}

// LevelConfig 关卡配置文件结构
// 敌人从 spawnX 处按车道Y坐标刷出，向 -X 方向行进，越过 goalX 即突破防线
type LevelConfig struct {
	Name      string                `yaml:"name"`      // 关卡名称
	SpawnX    float64               `yaml:"spawnX"`    // 敌人刷出线X坐标
	GoalX     float64               `yaml:"goalX"`     // 防线X坐标
	Lanes     []float64             `yaml:"lanes"`     // 车道Y坐标列表，敌人依次循环分配
	Enemies   map[string]EnemyStats `yaml:"enemies"`   // 敌人类型到属性的映射
	Obstacles []ObstacleDef         `yaml:"obstacles"` // 静态障碍物列表
	Waves     []WaveDef             `yaml:"waves"`     // 敌人波次列表
}

// LoadLevelConfig 从 YAML 文件加载关卡配置
//
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*LevelConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadLevelConfig(filepath string) (*LevelConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config file %s: %w", filepath, err)
	}

	var config LevelConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse level config YAML from %s: %w", filepath, err)
	}

	if err := validateLevelConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid level config in %s: %w", filepath, err)
	}

	return &config, nil
}

// validateLevelConfig 验证关卡配置的完整性和合法性
func validateLevelConfig(config *LevelConfig) error {
	if config.SpawnX <= config.GoalX {
		return fmt.Errorf("spawnX (%v) must be greater than goalX (%v)", config.SpawnX, config.GoalX)
	}

	if len(config.Lanes) == 0 {
		return fmt.Errorf("at least one lane is required")
	}

	if len(config.Enemies) == 0 {
		return fmt.Errorf("at least one enemy type is required")
	}

	for enemyType, stats := range config.Enemies {
		if stats.Health <= 0 {
			return fmt.Errorf("enemy %s: health must be positive, got %d", enemyType, stats.Health)
		}
		if stats.Speed <= 0 {
			return fmt.Errorf("enemy %s: speed must be positive, got %v", enemyType, stats.Speed)
		}
		if stats.Radius <= 0 {
			return fmt.Errorf("enemy %s: radius must be positive, got %v", enemyType, stats.Radius)
		}
		if stats.Reward < 0 {
			return fmt.Errorf("enemy %s: reward cannot be negative, got %d", enemyType, stats.Reward)
		}
	}

	for i, obstacle := range config.Obstacles {
		if obstacle.Radius <= 0 {
			return fmt.Errorf("obstacle %d: radius must be positive, got %v", i, obstacle.Radius)
		}
	}

	for i, wave := range config.Waves {
		if wave.Count <= 0 {
			return fmt.Errorf("wave %d: count must be positive, got %d", i, wave.Count)
		}
		if wave.Delay < 0 {
			return fmt.Errorf("wave %d: delay cannot be negative, got %v", i, wave.Delay)
		}
		if wave.Interval < 0 {
			return fmt.Errorf("wave %d: interval cannot be negative, got %v", i, wave.Interval)
		}
		if _, ok := config.Enemies[wave.Enemy]; !ok {
			return fmt.Errorf("wave %d: unknown enemy type %q", i, wave.Enemy)
		}
	}

	return nil
}

// GetEnemyStats 获取指定敌人类型的完整属性
// 第二个返回值表示该类型是否存在
func (c *LevelConfig) GetEnemyStats(enemyType string) (EnemyStats, bool) {
	stats, ok := c.Enemies[enemyType]
	return stats, ok
}

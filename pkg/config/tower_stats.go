package config

import (
	"fmt"

	"github.com/gonewx/towerd/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// TowerStats 单个炮塔类型的属性配置
type TowerStats struct {
	Range  float64 `yaml:"range"`  // 索敌/攻击半径
	Damage float64 `yaml:"damage"` // 基础单发伤害
	Price  int     `yaml:"price"`  // 建造价格
	Speed  float64 `yaml:"speed"`  // 子弹飞行速度，0 表示使用默认值
}

// TowerStatsConfig 炮塔属性配置文件结构
type TowerStatsConfig struct {
	Towers map[string]TowerStats `yaml:"towers"` // 炮塔类型到属性的映射
}

// LoadTowerStats 从 YAML 文件加载炮塔属性配置
// 未指定 speed 的炮塔类型在加载时补默认值 DefaultBulletSpeed
//
// 参数：
//
//	filepath - 配置文件路径（相对或绝对路径）
//
// 返回：
//
//	*TowerStatsConfig - 解析后的配置对象
//	error - 如果文件读取或解析失败，返回错误信息
func LoadTowerStats(filepath string) (*TowerStatsConfig, error) {
	data, err := embedded.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read tower stats file %s: %w", filepath, err)
	}

	var config TowerStatsConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse tower stats YAML from %s: %w", filepath, err)
	}

	if err := validateTowerStats(&config); err != nil {
		return nil, fmt.Errorf("invalid tower stats in %s: %w", filepath, err)
	}

	// 补默认子弹速度
	for towerType, stats := range config.Towers {
		if stats.Speed == 0 {
			stats.Speed = DefaultBulletSpeed
			config.Towers[towerType] = stats
		}
	}

	return &config, nil
}

// validateTowerStats 验证炮塔属性配置的完整性和合法性
func validateTowerStats(config *TowerStatsConfig) error {
	if len(config.Towers) == 0 {
		return fmt.Errorf("at least one tower type is required")
	}

	for towerType, stats := range config.Towers {
		if stats.Range <= 0 {
			return fmt.Errorf("tower %s: range must be positive, got %v", towerType, stats.Range)
		}

		if stats.Damage < 0 {
			return fmt.Errorf("tower %s: damage cannot be negative, got %v", towerType, stats.Damage)
		}

		if stats.Price < 0 {
			return fmt.Errorf("tower %s: price cannot be negative, got %d", towerType, stats.Price)
		}

		if stats.Speed < 0 {
			return fmt.Errorf("tower %s: speed cannot be negative, got %v", towerType, stats.Speed)
		}
	}

	return nil
}

// GetTowerStats 获取指定炮塔类型的完整属性
// 第二个返回值表示该类型是否存在
func (c *TowerStatsConfig) GetTowerStats(towerType string) (TowerStats, bool) {
	stats, ok := c.Towers[towerType]
	return stats, ok
}

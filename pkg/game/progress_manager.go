package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// ProgressData 战役进度数据
type ProgressData struct {
	ClearedLevels []string `yaml:"clearedLevels"` // 已通关关卡名列表
	TotalKills    int      `yaml:"totalKills"`    // 累计击杀数
	TotalGold     int      `yaml:"totalGold"`     // 累计获得金币
	BestStreak    int      `yaml:"bestStreak"`    // 单关零突破的最佳连胜
}

// defaultProgress 返回空进度
func defaultProgress() *ProgressData {
	return &ProgressData{
		ClearedLevels: []string{},
	}
}

// ProgressManager 进度管理器
// 负责战役进度的加载、保存和内存管理
type ProgressManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	data         *ProgressData  // 当前进度
}

// 存储路径常量
const (
	progressObject   = "progress"
	progressProperty = "campaign"
)

// NewProgressManager 创建新的进度管理器实例
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，仅内存进度）
//
// 返回：
//   - *ProgressManager: 进度管理器实例
//   - error: 如果加载进度失败返回错误（不影响创建）
func NewProgressManager(gdataManager *gdata.Manager) (*ProgressManager, error) {
	pm := &ProgressManager{
		gdataManager: gdataManager,
		data:         defaultProgress(),
	}

	// 尝试加载已保存的进度
	if err := pm.Load(); err != nil {
		// 加载失败不是致命错误，使用空进度
		log.Printf("[ProgressManager] Warning: Failed to load progress: %v (starting fresh)", err)
	}

	return pm, nil
}

// Load 从 gdata 加载进度
//
// 如果 gdataManager 为 nil 或存档不存在，使用空进度
//
// 返回：
//   - error: 如果反序列化失败返回错误
func (pm *ProgressManager) Load() error {
	// 降级模式：无法持久化，使用空进度
	if pm.gdataManager == nil {
		pm.data = defaultProgress()
		return nil
	}

	if !pm.gdataManager.ObjectPropExists(progressObject, progressProperty) {
		pm.data = defaultProgress()
		return nil
	}

	data, err := pm.gdataManager.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		pm.data = defaultProgress()
		return fmt.Errorf("failed to load progress: %w", err)
	}

	var loaded ProgressData
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		pm.data = defaultProgress()
		return fmt.Errorf("failed to unmarshal progress: %w", err)
	}

	if loaded.ClearedLevels == nil {
		loaded.ClearedLevels = []string{}
	}
	pm.data = &loaded
	log.Printf("[ProgressManager] Progress loaded: %d cleared levels", len(pm.data.ClearedLevels))
	return nil
}

// Save 保存进度到 gdata
//
// 如果 gdataManager 为 nil，返回 nil（降级模式，不报错）
//
// 返回：
//   - error: 如果序列化或保存失败返回错误
func (pm *ProgressManager) Save() error {
	// 降级模式：无法持久化，但不报错
	if pm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(pm.data)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	if err := pm.gdataManager.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}

	return nil
}

// RecordLevelResult 记录一局战斗结果
//
// 通关的关卡加入已通关列表（去重），击杀与金币累计到总数。
// 注意：仅修改内存中的进度，需调用 Save() 方法持久化
//
// 参数：
//   - level: 关卡名
//   - kills: 本局击杀数
//   - gold: 本局获得金币
//   - cleared: 是否通关
func (pm *ProgressManager) RecordLevelResult(level string, kills, gold int, cleared bool) {
	pm.data.TotalKills += kills
	pm.data.TotalGold += gold

	if !cleared {
		return
	}
	for _, name := range pm.data.ClearedLevels {
		if name == level {
			return
		}
	}
	pm.data.ClearedLevels = append(pm.data.ClearedLevels, level)
}

// RecordStreak 记录零突破连胜
// 只有超过历史最佳时才更新
func (pm *ProgressManager) RecordStreak(streak int) {
	if streak > pm.data.BestStreak {
		pm.data.BestStreak = streak
	}
}

// IsLevelCleared 检查关卡是否已通关
func (pm *ProgressManager) IsLevelCleared(level string) bool {
	for _, name := range pm.data.ClearedLevels {
		if name == level {
			return true
		}
	}
	return false
}

// ClearedLevels 获取已通关关卡列表（副本，修改不影响原数据）
func (pm *ProgressManager) ClearedLevels() []string {
	levels := make([]string, len(pm.data.ClearedLevels))
	copy(levels, pm.data.ClearedLevels)
	return levels
}

// TotalKills 获取累计击杀数
func (pm *ProgressManager) TotalKills() int {
	return pm.data.TotalKills
}

// TotalGold 获取累计金币
func (pm *ProgressManager) TotalGold() int {
	return pm.data.TotalGold
}

// BestStreak 获取最佳连胜
func (pm *ProgressManager) BestStreak() int {
	return pm.data.BestStreak
}

package game

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/towerd/pkg/components"
	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/ecs"
	"github.com/gonewx/towerd/pkg/entities"
	"github.com/gonewx/towerd/pkg/geom"
)

// TowerPlacement 单个炮塔的布局记录
type TowerPlacement struct {
	Type    string  `yaml:"type"`    // 炮塔类型ID
	X       float64 `yaml:"x"`       // 世界坐标X
	Y       float64 `yaml:"y"`       // 世界坐标Y
	Heading float64 `yaml:"heading"` // 朝向角（弧度）
}

// TowerLayout 一套防御布局
//
// 记录某关卡中所有已放置炮塔的类型和位置，
// 可以保存为命名方案，在重开关卡时一键铺设。
type TowerLayout struct {
	Level  string           `yaml:"level"`  // 布局对应的关卡名
	Towers []TowerPlacement `yaml:"towers"` // 炮塔放置列表
}

// LayoutManager 布局管理器
//
// 职责：
//   - 从世界中抓取当前炮塔布局
//   - 将布局以 YAML 格式存为命名方案（与项目其他配置文件保持一致）
//   - 加载方案并在世界中重建炮塔
type LayoutManager struct {
	layoutDir string // 方案文件目录
}

// layoutNamePattern 方案名只允许字母、数字、下划线和连字符
var layoutNamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// NewLayoutManager 创建布局管理器
//
// 参数：
//   - layoutDir: 方案文件目录路径（如 "data/layouts"）
//
// 返回：
//   - *LayoutManager: 新创建的布局管理器实例
//   - error: 如果目录创建失败返回错误
func NewLayoutManager(layoutDir string) (*LayoutManager, error) {
	if err := os.MkdirAll(layoutDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create layout directory: %w", err)
	}
	return &LayoutManager{layoutDir: layoutDir}, nil
}

// validateLayoutName 校验方案名合法性
func (lm *LayoutManager) validateLayoutName(name string) error {
	if name == "" {
		return fmt.Errorf("layout name cannot be empty")
	}
	if len(name) > 40 {
		return fmt.Errorf("layout name too long: %d characters", len(name))
	}
	if !layoutNamePattern.MatchString(name) {
		return fmt.Errorf("layout name %q contains invalid characters", name)
	}
	return nil
}

// layoutFilePath 获取方案文件路径
func (lm *LayoutManager) layoutFilePath(name string) string {
	return filepath.Join(lm.layoutDir, name+".yaml")
}

// CaptureLayout 抓取世界中当前的炮塔布局
//
// 只记录已放置（激活过位置）的炮塔；创建后尚未 Spawn 的炮塔不会进入布局。
//
// 参数：
//   - em: 实体管理器
//   - level: 布局对应的关卡名
//
// 返回：
//   - *TowerLayout: 抓取到的布局（可能不含任何炮塔）
func CaptureLayout(em *ecs.EntityManager, level string) *TowerLayout {
	layout := &TowerLayout{Level: level, Towers: []TowerPlacement{}}

	for _, id := range ecs.GetEntitiesWith2[*components.TowerComponent, *components.TransformComponent](em) {
		tower, _ := ecs.GetComponent[*components.TowerComponent](em, id)
		transform, _ := ecs.GetComponent[*components.TransformComponent](em, id)
		if !tower.IsActive {
			continue
		}
		layout.Towers = append(layout.Towers, TowerPlacement{
			Type:    tower.Type,
			X:       transform.Pos.X,
			Y:       transform.Pos.Y,
			Heading: transform.Heading,
		})
	}

	return layout
}

// ApplyLayout 按布局在世界中重建炮塔
//
// 布局中引用了未知炮塔类型时整体失败，不产生部分放置。
//
// 参数：
//   - em: 实体管理器
//   - layout: 要铺设的布局
//   - stats: 炮塔属性配置
//   - owner: 炮塔归属玩家标识
//
// 返回：
//   - []ecs.EntityID: 重建出的炮塔实体ID列表
//   - error: 如果布局引用未知炮塔类型返回错误
func ApplyLayout(em *ecs.EntityManager, layout *TowerLayout, stats *config.TowerStatsConfig, owner string) ([]ecs.EntityID, error) {
	// 先整体校验，避免部分放置
	for _, p := range layout.Towers {
		if _, ok := stats.GetTowerStats(p.Type); !ok {
			return nil, fmt.Errorf("layout references unknown tower type %q", p.Type)
		}
	}

	ids := make([]ecs.EntityID, 0, len(layout.Towers))
	for _, p := range layout.Towers {
		towerStats, _ := stats.GetTowerStats(p.Type)
		id, err := entities.NewTowerEntity(em, p.Type, towerStats, owner)
		if err != nil {
			return nil, fmt.Errorf("failed to create tower %q: %w", p.Type, err)
		}
		if err := entities.SpawnTower(em, id, geom.Vec2{X: p.X, Y: p.Y}, p.Heading); err != nil {
			return nil, fmt.Errorf("failed to place tower %q: %w", p.Type, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// SaveLayout 保存布局为命名方案
//
// 参数：
//   - name: 方案名（字母、数字、下划线、连字符）
//   - layout: 要保存的布局
//
// 返回：
//   - error: 如果保存失败返回错误
func (lm *LayoutManager) SaveLayout(name string, layout *TowerLayout) error {
	if err := lm.validateLayoutName(name); err != nil {
		return err
	}

	data, err := yaml.Marshal(layout)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.WriteFile(lm.layoutFilePath(name), data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}

	return nil
}

// LoadLayout 加载命名方案
//
// 参数：
//   - name: 方案名
//
// 返回：
//   - *TowerLayout: 加载的布局
//   - error: 如果方案不存在或解析失败返回错误
func (lm *LayoutManager) LoadLayout(name string) (*TowerLayout, error) {
	if err := lm.validateLayoutName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(lm.layoutFilePath(name))
	if err != nil {
		return nil, err
	}

	var layout TowerLayout
	if err := yaml.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout %q: %w", name, err)
	}

	return &layout, nil
}

// ListLayouts 列出所有已保存的方案名（按名称排序）
func (lm *LayoutManager) ListLayouts() ([]string, error) {
	dirEntries, err := os.ReadDir(lm.layoutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout directory: %w", err)
	}

	var names []string
	for _, entry := range dirEntries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// DeleteLayout 删除命名方案
// 方案不存在不视为错误
func (lm *LayoutManager) DeleteLayout(name string) error {
	if err := lm.validateLayoutName(name); err != nil {
		return err
	}

	if err := os.Remove(lm.layoutFilePath(name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete layout: %w", err)
	}
	return nil
}

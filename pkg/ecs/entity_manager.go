package ecs

import (
	"reflect"

	"github.com/kamstrup/intmap"
)

// EntityID 是实体的唯一标识符
// 0 保留为无效ID，系统中以 Target == 0 表示"无目标"
type EntityID uint64

// EntityManager 管理所有实体和组件
//
// 设计说明：
//   - 实体按创建顺序保存在 order 切片中，保证每帧遍历顺序确定
//   - 组件按类型分桶存储：ComponentType -> (EntityID -> Component实例)
//   - 删除采用两阶段：DestroyEntity 仅标记，RemoveMarkedEntities 统一清理，
//     避免系统在遍历过程中观察到半销毁状态的实体
type EntityManager struct {
	nextID uint64
	// 存活实体集合，用于 O(1) 存活判定（目标句柄校验依赖此查询）
	alive *intmap.Map[EntityID, struct{}]
	// 按创建顺序排列的存活实体列表
	order []EntityID
	// 组件存储: ComponentType -> EntityID -> Component实例
	stores map[reflect.Type]*intmap.Map[EntityID, any]
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始,0保留为无效ID
		alive:             intmap.New[EntityID, struct{}](64),
		order:             make([]EntityID, 0, 64),
		stores:            make(map[reflect.Type]*intmap.Map[EntityID, any]),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.alive.Put(id, struct{}{})
	em.order = append(em.order, id)
	return id
}

// Exists 判断实体是否仍然存活
// 已被标记删除但尚未清理的实体仍视为存活
func (em *EntityManager) Exists(id EntityID) bool {
	_, ok := em.alive.Get(id)
	return ok
}

// EntityCount 返回当前存活实体数量
func (em *EntityManager) EntityCount() int {
	return len(em.order)
}

// DestroyEntity 标记实体待删除(不立即删除)
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.Exists(id) {
		return
	}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件
// 组件必须以指针形式传入（如 &components.TowerComponent{}），
// 系统通过同一指针读写组件状态
func (em *EntityManager) AddComponent(id EntityID, component any) {
	if !em.Exists(id) {
		return
	}
	componentType := reflect.TypeOf(component)
	store, ok := em.stores[componentType]
	if !ok {
		store = intmap.New[EntityID, any](64)
		em.stores[componentType] = store
	}
	store.Put(id, component)
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if store, ok := em.stores[componentType]; ok {
		store.Del(id)
	}
}

// GetComponentByType 获取实体的特定类型组件
func (em *EntityManager) GetComponentByType(id EntityID, componentType reflect.Type) (any, bool) {
	if store, ok := em.stores[componentType]; ok {
		return store.Get(id)
	}
	return nil, false
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.GetComponentByType(id, componentType)
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 应在每帧所有系统更新完毕后调用一次
func (em *EntityManager) RemoveMarkedEntities() {
	if len(em.entitiesToDestroy) == 0 {
		return
	}

	removed := make(map[EntityID]bool, len(em.entitiesToDestroy))
	for _, id := range em.entitiesToDestroy {
		if removed[id] {
			continue // 同一帧内重复标记
		}
		removed[id] = true
		em.alive.Del(id)
		for _, store := range em.stores {
			store.Del(id)
		}
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]

	// 压缩存活列表，保持创建顺序
	kept := em.order[:0]
	for _, id := range em.order {
		if !removed[id] {
			kept = append(kept, id)
		}
	}
	em.order = kept
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 返回的实体按创建顺序排列（遍历顺序确定，便于稳定的目标选择）
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	result := make([]EntityID, 0)

	for _, id := range em.order {
		hasAll := true
		for _, ct := range componentTypes {
			if !em.HasComponent(id, ct) {
				hasAll = false
				break
			}
		}
		if hasAll {
			result = append(result, id)
		}
	}

	return result
}

// typeOf 返回泛型参数 T 的 reflect.Type
// T 应为组件指针类型（如 *components.TowerComponent）
func typeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

// GetComponent 获取实体的 T 类型组件（泛型便捷封装）
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, ok := em.GetComponentByType(id, typeOf[T]())
	if !ok {
		return zero, false
	}
	return comp.(T), true
}

// GetEntitiesWith1 查询拥有 T 类型组件的所有实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T]())
}

// GetEntitiesWith2 查询同时拥有 T1、T2 两种组件的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

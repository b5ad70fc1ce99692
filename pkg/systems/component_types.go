package systems

import (
	"reflect"

	"github.com/gonewx/towerd/pkg/components"
)

// 常用组件类型的 reflect.Type 缓存，供多组件联合查询使用
var (
	typeOfTransform = reflect.TypeOf(&components.TransformComponent{})
	typeOfEnemy     = reflect.TypeOf(&components.EnemyComponent{})
	typeOfHealth    = reflect.TypeOf(&components.HealthComponent{})
)

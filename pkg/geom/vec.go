// Package geom 提供2D向量与角度运算
//
// 本包承担原引擎内置的空间计算原语：距离/方向计算、朝向插值、
// 以及视线检测所需的线段-圆相交测试。全部为纯函数，无状态。
package geom

import "math"

// Vec2 表示2D向量或世界坐标点
type Vec2 struct {
	X float64
	Y float64
}

// Add 向量加法
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 向量减法
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 向量数乘
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot 向量点积
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len 向量长度
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize 返回单位向量
// 零向量返回零值，调用方需自行处理重合点的方向退化
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dist 两点间欧氏距离
func Dist(a, b Vec2) float64 {
	return b.Sub(a).Len()
}

// Clamp 将 v 限制在 [lo, hi] 范围内
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AngleTo 计算从 from 指向 to 的朝向角（弧度，0 = +X 方向）
func AngleTo(from, to Vec2) float64 {
	d := to.Sub(from)
	return math.Atan2(d.Y, d.X)
}

// NormalizeAngle 将角度归一化到 [-π, π]
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// LerpAngle 沿最短弧从 from 向 to 插值 t（t 会被限制在 [0,1]）
// t=0 返回 from，t=1 返回 to，结果归一化到 [-π, π]
func LerpAngle(from, to, t float64) float64 {
	t = Clamp(t, 0, 1)
	delta := NormalizeAngle(to - from)
	return NormalizeAngle(from + delta*t)
}

// SegmentIntersectsCircle 判断线段 ab 是否与圆 (center, radius) 相交
// 用于视线检测：障碍物以圆形包围体近似
func SegmentIntersectsCircle(a, b, center Vec2, radius float64) bool {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	var closest Vec2
	if lenSq == 0 {
		// 退化为点
		closest = a
	} else {
		t := Clamp(center.Sub(a).Dot(ab)/lenSq, 0, 1)
		closest = a.Add(ab.Scale(t))
	}
	return Dist(closest, center) <= radius
}

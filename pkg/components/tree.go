package components

import (
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/types"
)

// TreeComponent 树木
//
// 树木生命值归零后变为树桩，但不会从世界中移除，仍然是障碍物。
// Fruits[i] 为挂在 FruitSlots[i] 上的果实实体，0 表示该槽位为空。
type TreeComponent struct {
	Kind   types.TreeKind
	Health int
	Alive  bool

	FruitSlots [][2]float64 // 相对树木显示矩形左上角的偏移
	Fruits     []ecs.EntityID

	// WoodCredited 是否已产出木材（只产出一次）
	WoodCredited bool

	// Invulnerable 被砍后的短暂无敌计时
	Invulnerable *Timer
}

// FruitCount 返回当前果实数量
func (t *TreeComponent) FruitCount() int {
	n := 0
	for _, id := range t.Fruits {
		if id != 0 {
			n++
		}
	}
	return n
}

// FruitComponent 果实
type FruitComponent struct {
	Tree ecs.EntityID
	Slot int
}

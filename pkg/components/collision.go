package components

import "github.com/decker502/sunvale/pkg/utils"

// CollisionComponent 物理碰撞盒
//
// 与显示矩形（RectComponent）相互独立，通常比显示矩形小，
// 避免高大的精灵（如树木）产生过大的阻挡区域。
// 拥有此组件的实体都会阻挡其他移动实体。
type CollisionComponent struct {
	Hitbox utils.Rect
}

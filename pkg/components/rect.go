package components

import "github.com/decker502/sunvale/pkg/utils"

// RectComponent 显示矩形（世界坐标）
// 决定绘制位置，其中心Y也是同层深度排序的锚点
type RectComponent struct {
	Rect utils.Rect
}

// DepthComponent 渲染层级
// 层级在创建时确定，只有作物成长时会从地面层提升到主层
type DepthComponent struct {
	Layer int
}

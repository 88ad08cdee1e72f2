package components

import "github.com/decker502/sunvale/pkg/ecs"

// CameraComponent 跟随镜头
//
// OffsetX/OffsetY 为世界坐标到屏幕坐标的平移量:
// screen = world - offset。偏移不做地图边界限制。
type CameraComponent struct {
	// Target 跟随的实体
	Target ecs.EntityID

	// ViewportWidth/ViewportHeight 视口大小（像素）
	ViewportWidth  float64
	ViewportHeight float64

	OffsetX float64
	OffsetY float64
}

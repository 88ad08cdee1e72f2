package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现
//
// Image 为 nil 时以 Color 绘制占位矩形（无素材运行时使用）。
// Alpha 由工厂函数初始化为 1；Silhouette 为 true 时只绘制白色剪影（粒子效果）。
type SpriteComponent struct {
	Image      *ebiten.Image
	Color      color.RGBA
	Alpha      float64
	Silhouette bool
	Hidden     bool
}

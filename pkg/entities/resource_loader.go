package entities

import (
	"image/color"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// ResourceLoader 工厂函数使用的图片来源
//
// key 为相对素材根目录、不带扩展名的路径，如 "soil/lr"、"stumps/small"；
// dir 为帧目录，如 "character/down_idle"，帧按文件名排序。
// 找不到时返回 nil，工厂函数会改用配置尺寸的占位矩形。
// 传入 nil ResourceLoader 等价于所有图片都不存在（无素材运行、测试）。
type ResourceLoader interface {
	GetImage(key string) *ebiten.Image
	GetFrames(dir string) []*ebiten.Image
}

// 占位矩形颜色
var (
	ColorGround     = color.RGBA{R: 120, G: 168, B: 88, A: 255}
	ColorHouse      = color.RGBA{R: 150, G: 110, B: 80, A: 255}
	ColorWater      = color.RGBA{R: 70, G: 130, B: 200, A: 255}
	ColorSoil       = color.RGBA{R: 130, G: 90, B: 55, A: 255}
	ColorSoilWater  = color.RGBA{R: 60, G: 60, B: 120, A: 140}
	ColorPlant      = color.RGBA{R: 60, G: 200, B: 60, A: 255}
	ColorRipe       = color.RGBA{R: 230, G: 190, B: 40, A: 255}
	ColorTree       = color.RGBA{R: 30, G: 110, B: 40, A: 255}
	ColorStump      = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	ColorFruit      = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	ColorPlayer     = color.RGBA{R: 240, G: 220, B: 180, A: 255}
	ColorFence      = color.RGBA{R: 160, G: 120, B: 70, A: 255}
	ColorFlower     = color.RGBA{R: 230, G: 120, B: 200, A: 255}
	ColorRain       = color.RGBA{R: 180, G: 200, B: 255, A: 200}
	ColorInvisible  = color.RGBA{}
	ColorHighlight  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorDecoration = color.RGBA{R: 200, G: 200, B: 160, A: 255}
)

func getImage(rl ResourceLoader, key string) *ebiten.Image {
	if rl == nil {
		return nil
	}
	return rl.GetImage(key)
}

func getFrames(rl ResourceLoader, dir string) []*ebiten.Image {
	if rl == nil {
		return nil
	}
	return rl.GetFrames(dir)
}

// imageSize 有图片时以图片尺寸为准，否则使用给定的占位尺寸
func imageSize(img *ebiten.Image, w, h float64) (float64, float64) {
	if img == nil {
		return w, h
	}
	b := img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func newSprite(img *ebiten.Image, c color.RGBA) *components.SpriteComponent {
	return &components.SpriteComponent{Image: img, Color: c, Alpha: 1}
}

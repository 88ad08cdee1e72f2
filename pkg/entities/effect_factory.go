package entities

import (
	"image/color"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// NewParticleEntity 创建闪白残影
//
// 复制被摧毁物体的图片和显示矩形，以白色剪影绘制，
// 在 duration 秒内淡出后由 LifetimeSystem 移除。
func NewParticleEntity(em *ecs.EntityManager, img *ebiten.Image, c color.RGBA, rect utils.Rect, layer int, duration float64) ecs.EntityID {
	id := em.CreateEntity()

	sprite := newSprite(silhouette(img), c)
	sprite.Silhouette = true

	ecs.AddComponent(em, id, &components.RectComponent{Rect: rect})
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: layer})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: duration})
	ecs.AddComponent(em, id, &components.ParticleComponent{
		Fade: gween.New(1, 0, float32(duration), ease.InQuad),
	})
	return id
}

// silhouette 生成图片的白色剪影（保留原图透明度）
func silhouette(img *ebiten.Image) *ebiten.Image {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	sil := ebiten.NewImage(b.Dx(), b.Dy())
	sil.Fill(color.White)
	op := &ebiten.DrawImageOptions{Blend: ebiten.BlendDestinationIn}
	op.GeoM.Translate(float64(-b.Min.X), float64(-b.Min.Y))
	sil.DrawImage(img, op)
	return sil
}

// NewRainDropEntity 创建雨滴
//
// floor 为 true 时创建落地水花（雨水地面层，不移动），
// 否则创建下落雨滴（雨滴层，以速度 (vx, vy) 运动）。
func NewRainDropEntity(em *ecs.EntityManager, img *ebiten.Image, x, y float64, floor bool, lifetime, vx, vy float64) ecs.EntityID {
	id := em.CreateEntity()

	w, h := imageSize(img, 4, 12)
	layer := config.LayerRainDrops
	if floor {
		w, h = imageSize(img, 10, 4)
		layer = config.LayerRainFloor
	}

	ecs.AddComponent(em, id, &components.RectComponent{Rect: utils.NewRect(x, y, w, h)})
	ecs.AddComponent(em, id, newSprite(img, ColorRain))
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: layer})
	ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: lifetime})
	ecs.AddComponent(em, id, &components.RainDropComponent{Floor: floor})
	if !floor {
		ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	}
	return id
}

package systems

import (
	"image/color"
	"sort"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hitboxDebugColor = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	rectDebugColor   = color.RGBA{R: 255, G: 255, B: 0, A: 160}
	silhouetteColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// RenderSystem 按深度顺序绘制所有可渲染实体
//
// 可渲染实体 = RectComponent + DepthComponent + SpriteComponent。
// 排序键为 (层级, 显示矩形中心Y)，同键实体按创建顺序绘制。
// 使用稳定排序，同一输入每帧得到完全相同的顺序，不会闪烁。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	order         []ecs.EntityID // 复用，避免每帧分配

	// DebugHitboxes 为 true 时额外绘制碰撞盒和显示矩形
	DebugHitboxes bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		order:         make([]ecs.EntityID, 0, 1024),
	}
}

// DrawOrder 返回本帧的绘制顺序
// 返回的切片在下次调用时会被复用
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	// GetEntitiesWith 按ID升序返回，稳定排序后同键实体保持创建顺序
	ids := ecs.GetEntitiesWith3[*components.RectComponent, *components.DepthComponent, *components.SpriteComponent](s.entityManager)

	type key struct {
		layer  int
		anchor float64
	}
	keys := make(map[ecs.EntityID]key, len(ids))
	s.order = s.order[:0]
	for _, id := range ids {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		depth, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, id)
		keys[id] = key{layer: depth.Layer, anchor: rect.Rect.CenterY()}
		s.order = append(s.order, id)
	}

	sort.SliceStable(s.order, func(i, j int) bool {
		a, b := keys[s.order[i]], keys[s.order[j]]
		if a.layer != b.layer {
			return a.layer < b.layer
		}
		return a.anchor < b.anchor
	})
	return s.order
}

// Draw 以镜头偏移绘制全部实体
func (s *RenderSystem) Draw(screen *ebiten.Image, offX, offY float64) {
	for _, id := range s.DrawOrder() {
		s.drawEntity(screen, id, offX, offY)
	}
	if s.DebugHitboxes {
		s.drawDebug(screen, offX, offY)
	}
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, offX, offY float64) {
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
	if sprite.Hidden || sprite.Alpha <= 0 {
		return
	}

	if sprite.Image != nil {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(rect.Rect.X-offX, rect.Rect.Y-offY)
		op.ColorScale.ScaleAlpha(float32(sprite.Alpha))
		screen.DrawImage(sprite.Image, op)
		return
	}

	// 无素材: 绘制占位矩形
	c := sprite.Color
	if sprite.Silhouette {
		c = silhouetteColor
	}
	if c.A == 0 {
		return
	}
	c.A = uint8(float64(c.A) * sprite.Alpha)

	r := rect.Rect
	// 玩家的显示矩形包含大量透明边距，占位时只画碰撞盒
	if ecs.HasComponent[*components.PlayerComponent](s.entityManager, id) {
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
			r = col.Hitbox.Inflate(0, col.Hitbox.H)
		}
	}
	vector.DrawFilledRect(screen, float32(r.X-offX), float32(r.Y-offY), float32(r.W), float32(r.H), c, false)
}

func (s *RenderSystem) drawDebug(screen *ebiten.Image, offX, offY float64) {
	for _, id := range s.order {
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		r := rect.Rect
		vector.StrokeRect(screen, float32(r.X-offX), float32(r.Y-offY), float32(r.W), float32(r.H), 1, rectDebugColor, false)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.CollisionComponent](s.entityManager) {
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		h := col.Hitbox
		vector.StrokeRect(screen, float32(h.X-offX), float32(h.Y-offY), float32(h.W), float32(h.H), 1, hitboxDebugColor, false)
	}
}

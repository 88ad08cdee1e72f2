package entities

import (
	"image/color"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// GenericHitbox 通用碰撞盒: 宽度收缩 20%，高度收缩 75%（只保留底部附近）
func GenericHitbox(rect utils.Rect) utils.Rect {
	return rect.Inflate(-rect.W*0.2, -rect.H*0.75)
}

// NewTileEntity 创建不参与碰撞的地图瓦片（地面、房屋地板、家具底部）
func NewTileEntity(em *ecs.EntityManager, img *ebiten.Image, rect utils.Rect, layer int, c color.RGBA) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RectComponent{Rect: rect})
	ecs.AddComponent(em, id, newSprite(img, c))
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: layer})
	return id
}

// NewWaterEntity 创建动画水面瓦片（5 帧/秒）
func NewWaterEntity(em *ecs.EntityManager, rl ResourceLoader, rect utils.Rect) ecs.EntityID {
	id := NewTileEntity(em, nil, rect, config.LayerWater, ColorWater)
	if frames := getFrames(rl, "water"); len(frames) > 0 {
		ecs.AddComponent(em, id, &components.AnimationComponent{
			Frames: map[string][]*ebiten.Image{"water": frames},
			State:  "water",
			FPS:    5,
		})
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
			sprite.Image = frames[0]
		}
	}
	return id
}

// NewObstacleEntity 创建带通用碰撞盒的静态物体（栅栏、房屋墙体、野花等）
// kind 同时用作装饰类型，便于调试显示
func NewObstacleEntity(em *ecs.EntityManager, img *ebiten.Image, rect utils.Rect, layer int, c color.RGBA, kind string) ecs.EntityID {
	id := NewTileEntity(em, img, rect, layer, c)
	ecs.AddComponent(em, id, &components.CollisionComponent{Hitbox: GenericHitbox(rect)})
	ecs.AddComponent(em, id, &components.DecorationComponent{Kind: kind})
	return id
}

// NewWildflowerEntity 创建野花，碰撞盒比通用规则更扁
func NewWildflowerEntity(em *ecs.EntityManager, rl ResourceLoader, name string, x, y, w, h float64) ecs.EntityID {
	img := getImage(rl, "objects/"+name)
	w, h = imageSize(img, w, h)
	rect := utils.NewRect(x, y, w, h)

	id := NewObstacleEntity(em, img, rect, config.LayerMain, ColorFlower, name)
	ecs.AddComponent(em, id, &components.CollisionComponent{Hitbox: rect.Inflate(-20, -rect.H*0.9)})
	return id
}

// NewCollisionEntity 创建不可见的碰撞格（地图 Collision 层）
func NewCollisionEntity(em *ecs.EntityManager, rect utils.Rect) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RectComponent{Rect: rect})
	ecs.AddComponent(em, id, &components.CollisionComponent{Hitbox: GenericHitbox(rect)})
	return id
}

// NewInteractionEntity 创建交互区域（床、商人），不绘制也不阻挡移动
func NewInteractionEntity(em *ecs.EntityManager, name string, rect utils.Rect) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.RectComponent{Rect: rect})
	ecs.AddComponent(em, id, &components.InteractionComponent{Name: name})
	return id
}

package entities

import (
	"strings"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/types"
	"github.com/decker502/sunvale/pkg/utils"
)

// NewTreeEntity 创建树木实体（不含果实，果实由 TreeSystem.CreateFruit 生成）
//
// 参数:
//   - x, y: 显示矩形左上角（地图对象坐标）
//   - tc: 树木种类配置（尺寸、果实槽位）
//   - rules: 生命值、无敌时间
func NewTreeEntity(em *ecs.EntityManager, rl ResourceLoader, kind types.TreeKind, x, y float64, tc config.TreeConfig, rules config.TreeRulesConfig) ecs.EntityID {
	id := em.CreateEntity()

	img := getImage(rl, "trees/"+strings.ToLower(kind.String()))
	w, h := imageSize(img, tc.Width, tc.Height)
	rect := utils.NewRect(x, y, w, h)

	slots := make([][2]float64, len(tc.FruitSlots))
	copy(slots, tc.FruitSlots)

	ecs.AddComponent(em, id, &components.RectComponent{Rect: rect})
	ecs.AddComponent(em, id, newSprite(img, ColorTree))
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: config.LayerMain})
	ecs.AddComponent(em, id, &components.CollisionComponent{Hitbox: GenericHitbox(rect)})
	ecs.AddComponent(em, id, &components.TreeComponent{
		Kind:         kind,
		Health:       rules.Health,
		Alive:        true,
		FruitSlots:   slots,
		Fruits:       make([]ecs.EntityID, len(slots)),
		Invulnerable: components.NewTimer(rules.InvulDuration, nil),
	})
	return id
}

// StumpAppearance 返回树桩图片和显示矩形（保持原树底边中点）
func StumpAppearance(rl ResourceLoader, kind types.TreeKind, tree utils.Rect, tc config.TreeConfig) (*components.SpriteComponent, utils.Rect) {
	img := getImage(rl, "stumps/"+strings.ToLower(kind.String()))
	w, h := imageSize(img, tc.StumpWidth, tc.StumpHeight)
	mx, by := tree.MidBottom()
	return newSprite(img, ColorStump), utils.RectFromMidBottom(mx, by, w, h)
}

// StumpHitbox 树桩碰撞盒
func StumpHitbox(stump utils.Rect) utils.Rect {
	return stump.Inflate(-10, -stump.H*0.6)
}

// NewFruitEntity 创建挂在树上的果实
// x, y 为果实左上角世界坐标
func NewFruitEntity(em *ecs.EntityManager, rl ResourceLoader, tree ecs.EntityID, slot int, x, y float64, size config.SizeConfig) ecs.EntityID {
	id := em.CreateEntity()

	img := getImage(rl, "fruit/apple")
	w, h := imageSize(img, size.Width, size.Height)

	ecs.AddComponent(em, id, &components.RectComponent{Rect: utils.NewRect(x, y, w, h)})
	ecs.AddComponent(em, id, newSprite(img, ColorFruit))
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: config.LayerFruit})
	ecs.AddComponent(em, id, &components.FruitComponent{Tree: tree, Slot: slot})
	return id
}

package systems

import (
	"log"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/entities"
	"github.com/decker502/sunvale/pkg/events"
	"github.com/decker502/sunvale/pkg/types"
	"github.com/decker502/sunvale/pkg/utils"
)

// TreeSystem 管理树木的生命值、果实和树桩转换
type TreeSystem struct {
	entityManager *ecs.EntityManager
	config        *config.FarmConfig
	resources     entities.ResourceLoader
	bus           *events.Bus
	rng           *utils.RNG
}

// NewTreeSystem 创建树木系统
// rng 为 nil 时使用固定种子
func NewTreeSystem(em *ecs.EntityManager, cfg *config.FarmConfig, rl entities.ResourceLoader, bus *events.Bus, rng *utils.RNG) *TreeSystem {
	if rng == nil {
		rng = utils.NewRNG(1)
	}
	return &TreeSystem{
		entityManager: em,
		config:        cfg,
		resources:     rl,
		bus:           bus,
		rng:           rng,
	}
}

// SpawnTree 创建树木并生成初始果实
func (s *TreeSystem) SpawnTree(kind types.TreeKind, x, y float64) ecs.EntityID {
	id := entities.NewTreeEntity(s.entityManager, s.resources, kind, x, y, s.config.TreeSpec(kind), s.config.Tree)
	s.CreateFruit(id)
	return id
}

// Update 推进所有树木的无敌计时器
func (s *TreeSystem) Update(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.TreeComponent](s.entityManager) {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		if tree.Invulnerable != nil {
			tree.Invulnerable.Update(dt)
		}
	}
}

// Chop 玩家用斧头砍树
// 无敌时间内或树已倒下时无效；成功时造成一次伤害并开始无敌计时。
// 无敌计时在本帧刚结束时也无效，此时计时器不能重新激活。
func (s *TreeSystem) Chop(id ecs.EntityID) bool {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || !tree.Alive {
		return false
	}
	if tree.Invulnerable != nil && (tree.Invulnerable.Active() || tree.Invulnerable.JustFired()) {
		return false
	}
	if !s.Damage(id) {
		return false
	}
	if tree.Invulnerable != nil {
		tree.Invulnerable.Activate()
	}
	return true
}

// Damage 对树造成一点伤害
//
// 有果实时随机打落一个（闪白残影 + 苹果入账），每次最多一个；
// 没有果实时只扣生命值。生命值归零时变为树桩。
// 对已倒下的树是空操作，返回 false。
func (s *TreeSystem) Damage(id ecs.EntityID) bool {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || !tree.Alive {
		return false
	}

	tree.Health--
	s.bus.PlaySound("axe")

	if n := tree.FruitCount(); n > 0 {
		pick := s.rng.IntN(n)
		for slot, fruit := range tree.Fruits {
			if fruit == 0 {
				continue
			}
			if pick == 0 {
				s.dropFruit(tree, slot)
				break
			}
			pick--
		}
	}

	if tree.Health <= 0 {
		s.fell(id, tree)
	}
	return true
}

// dropFruit 移除果实并入账一个苹果
func (s *TreeSystem) dropFruit(tree *components.TreeComponent, slot int) {
	fruit := tree.Fruits[slot]
	tree.Fruits[slot] = 0

	rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, fruit)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, fruit)
	if rect != nil && sprite != nil {
		entities.NewParticleEntity(s.entityManager, sprite.Image, sprite.Color, rect.Rect, config.LayerFruit, s.config.Particle.Duration)
	}
	s.entityManager.DestroyEntity(fruit)
	s.bus.Credit(types.ItemApple)
}

// fell 把树变成树桩: 外观和碰撞盒缩小到树桩大小，木材只入账一次
// 树桩仍留在世界中作为障碍物
func (s *TreeSystem) fell(id ecs.EntityID, tree *components.TreeComponent) {
	rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
	if rect != nil && sprite != nil {
		entities.NewParticleEntity(s.entityManager, sprite.Image, sprite.Color, rect.Rect, config.LayerFruit, s.config.Particle.TreeDuration)

		stumpSprite, stumpRect := entities.StumpAppearance(s.resources, tree.Kind, rect.Rect, s.config.TreeSpec(tree.Kind))
		*sprite = *stumpSprite
		rect.Rect = stumpRect
		if col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id); ok {
			col.Hitbox = entities.StumpHitbox(stumpRect)
		}
	}

	tree.Alive = false
	s.clearFruit(tree)
	if !tree.WoodCredited {
		tree.WoodCredited = true
		s.bus.Credit(types.ItemWood)
	}
	log.Printf("[TreeSystem] 树木 %d (%s) 被砍倒", id, tree.Kind)
}

// CreateFruit 为树的每个空槽位以固定概率生成果实，返回新生成的数量
// 已倒下的树不结果
func (s *TreeSystem) CreateFruit(id ecs.EntityID) int {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || !tree.Alive {
		return 0
	}
	rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
	if !ok {
		return 0
	}

	n := 0
	for slot, offset := range tree.FruitSlots {
		if tree.Fruits[slot] != 0 || !s.rng.Chance(s.config.Tree.FruitChance) {
			continue
		}
		tree.Fruits[slot] = entities.NewFruitEntity(s.entityManager, s.resources, id,
			slot, rect.Rect.X+offset[0], rect.Rect.Y+offset[1], s.config.Fruit)
		n++
	}
	return n
}

// RegrowFruit 清除现有果实后重新生成（新的一天）
func (s *TreeSystem) RegrowFruit(id ecs.EntityID) {
	tree, ok := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
	if !ok || !tree.Alive {
		return
	}
	s.clearFruit(tree)
	s.CreateFruit(id)
}

// RegrowAll 对所有存活的树重新生成果实
func (s *TreeSystem) RegrowAll() {
	for _, id := range ecs.GetEntitiesWith1[*components.TreeComponent](s.entityManager) {
		s.RegrowFruit(id)
	}
}

func (s *TreeSystem) clearFruit(tree *components.TreeComponent) {
	for slot, fruit := range tree.Fruits {
		if fruit != 0 {
			s.entityManager.DestroyEntity(fruit)
			tree.Fruits[slot] = 0
		}
	}
}

// TreesAt 返回显示矩形包含指定点的存活树木
func (s *TreeSystem) TreesAt(x, y float64) []ecs.EntityID {
	var result []ecs.EntityID
	for _, id := range ecs.GetEntitiesWith2[*components.TreeComponent, *components.RectComponent](s.entityManager) {
		tree, _ := ecs.GetComponent[*components.TreeComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if tree.Alive && rect.Rect.Contains(x, y) {
			result = append(result, id)
		}
	}
	return result
}

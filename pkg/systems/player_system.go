package systems

import (
	"log"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/entities"
	"github.com/decker502/sunvale/pkg/events"
	"github.com/decker502/sunvale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlayerSystem 把单帧意图转换为玩家动作
//
// 每帧顺序: 推进动作计时器（到期执行工具/播种）→ 读取意图 →
// 移动与碰撞 → 收获 → 更新动画状态。
// 动作计时器运行期间玩家不能移动，也不能开始新动作。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	playerEntity  ecs.EntityID
	config        *config.FarmConfig
	soil          *SoilSystem
	trees         *TreeSystem
	collision     *CollisionSystem
	animation     *AnimationSystem
	seeds         SeedSupply
	bus           *events.Bus

	onSleep func()
}

// NewPlayerSystem 创建玩家系统
// seeds 为 nil 时种子无限；animation 可为 nil
func NewPlayerSystem(em *ecs.EntityManager, player ecs.EntityID, cfg *config.FarmConfig, soil *SoilSystem, trees *TreeSystem, collision *CollisionSystem, animation *AnimationSystem, seeds SeedSupply, bus *events.Bus) *PlayerSystem {
	return &PlayerSystem{
		entityManager: em,
		playerEntity:  player,
		config:        cfg,
		soil:          soil,
		trees:         trees,
		collision:     collision,
		animation:     animation,
		seeds:         seeds,
		bus:           bus,
	}
}

// SetSleepHandler 设置玩家上床后的回调（开始过夜）
func (s *PlayerSystem) SetSleepHandler(fn func()) {
	s.onSleep = fn
}

// Player 返回玩家组件
func (s *PlayerSystem) Player() *components.PlayerComponent {
	p, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, s.playerEntity)
	return p
}

// Wake 结束睡眠，玩家恢复控制
func (s *PlayerSystem) Wake() {
	if p := s.Player(); p != nil {
		p.Asleep = false
	}
}

// Update 处理一帧
func (s *PlayerSystem) Update(intent components.Intent, dt float64) {
	p := s.Player()
	if p == nil {
		return
	}

	// 计时器必须先于被它门控的动作推进
	s.updateTarget(p)
	if p.ToolUse.Update(dt) {
		s.useTool(p)
	}
	if p.SeedUse.Update(dt) {
		s.useSeed(p)
	}
	p.ToolSwitch.Update(dt)
	p.SeedSwitch.Update(dt)

	if !p.Busy() && !p.Asleep {
		s.handleInput(p, intent)
	} else {
		p.DirX, p.DirY = 0, 0
	}

	if p.DirX != 0 || p.DirY != 0 {
		s.collision.Move(s.playerEntity, p.DirX, p.DirY, p.Speed, dt)
	}
	s.updateTarget(p)

	s.harvest()
	s.updateAnimation(p)
}

func (s *PlayerSystem) handleInput(p *components.PlayerComponent, intent components.Intent) {
	p.DirX, p.DirY = intent.Direction()
	switch {
	case intent.Up:
		p.Facing = types.DirUp
	case intent.Down:
		p.Facing = types.DirDown
	}
	// 水平方向优先决定朝向
	switch {
	case intent.Right:
		p.Facing = types.DirRight
	case intent.Left:
		p.Facing = types.DirLeft
	}

	if intent.Primary {
		p.ToolUse.Activate()
		p.DirX, p.DirY = 0, 0
	}
	if intent.CycleTool && !p.ToolSwitch.Active() {
		p.ToolSwitch.Activate()
		p.Tool = (p.Tool + 1) % len(types.AllTools)
	}
	if intent.Secondary {
		p.SeedUse.Activate()
		p.DirX, p.DirY = 0, 0
	}
	if intent.CycleSeed && !p.SeedSwitch.Active() {
		p.SeedSwitch.Activate()
		p.Seed = (p.Seed + 1) % len(types.AllSeeds)
	}
	if intent.Interact {
		s.interact(p)
	}
}

// updateTarget 作用点 = 碰撞盒中心 + 当前朝向的工具偏移
func (s *PlayerSystem) updateTarget(p *components.PlayerComponent) {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, s.playerEntity)
	if !ok {
		return
	}
	ox, oy := s.config.ToolOffset(p.Facing)
	p.TargetX = col.Hitbox.CenterX() + ox
	p.TargetY = col.Hitbox.CenterY() + oy
}

func (s *PlayerSystem) useTool(p *components.PlayerComponent) {
	switch p.SelectedTool() {
	case types.ToolAxe:
		for _, id := range s.trees.TreesAt(p.TargetX, p.TargetY) {
			s.trees.Chop(id)
		}
	case types.ToolWater:
		if _, err := s.soil.Irrigate(p.TargetX, p.TargetY); err != nil {
			log.Printf("[PlayerSystem] 浇水失败: %v", err)
		}
	case types.ToolHoe:
		if _, err := s.soil.Till(p.TargetX, p.TargetY); err != nil {
			log.Printf("[PlayerSystem] 翻土失败: %v", err)
		}
	}
}

func (s *PlayerSystem) useSeed(p *components.PlayerComponent) {
	col, row, err := s.soil.CellAt(p.TargetX, p.TargetY)
	if err != nil {
		log.Printf("[PlayerSystem] 播种失败: %v", err)
		return
	}
	// 格子不能播种时不消耗种子
	cell, _ := s.soil.Cell(col, row)
	if !cell.Has(components.CellTilled) || cell.Has(components.CellPlanted) {
		return
	}

	seed := p.SelectedSeed()
	if s.seeds != nil && !s.seeds.Take(seed.String()) {
		return
	}
	if _, err := s.soil.Plant(p.TargetX, p.TargetY, seed); err != nil {
		log.Printf("[PlayerSystem] 播种失败: %v", err)
	}
}

// harvest 收获所有与玩家碰撞盒重叠的成熟作物
func (s *PlayerSystem) harvest() {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, s.playerEntity)
	if !ok {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.PlantComponent, *components.RectComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if !plant.Harvestable || !rect.Rect.Overlaps(col.Hitbox) {
			continue
		}

		var img *ebiten.Image
		if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
			img = sprite.Image
		}
		seed, r := plant.Seed, rect.Rect
		if !s.soil.Harvest(id) {
			continue
		}
		s.bus.Credit(seed.String())
		entities.NewParticleEntity(s.entityManager, img, entities.ColorPlant, r, config.LayerMain, s.config.Particle.Duration)
	}
}

// interact 与碰撞盒重叠的交互区域交互
func (s *PlayerSystem) interact(p *components.PlayerComponent) {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, s.playerEntity)
	if !ok {
		return
	}
	for _, id := range ecs.GetEntitiesWith2[*components.InteractionComponent, *components.RectComponent](s.entityManager) {
		ic, _ := ecs.GetComponent[*components.InteractionComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		if !rect.Rect.Overlaps(col.Hitbox) {
			continue
		}
		switch ic.Name {
		case config.MarkerTrader:
			s.bus.ToggleShop()
		case config.MarkerBed:
			p.Asleep = true
			p.Facing = types.DirLeft
			p.DirX, p.DirY = 0, 0
			log.Printf("[PlayerSystem] 上床睡觉")
			if s.onSleep != nil {
				s.onSleep()
			}
		}
		return
	}
}

// AnimationState 返回玩家当前的动画状态名
func AnimationState(p *components.PlayerComponent) string {
	state := p.Facing.String()
	switch {
	case p.ToolUse.Active():
		return state + "_" + p.SelectedTool().String()
	case p.DirX == 0 && p.DirY == 0:
		return state + "_idle"
	}
	return state
}

func (s *PlayerSystem) updateAnimation(p *components.PlayerComponent) {
	if s.animation == nil {
		return
	}
	s.animation.SetState(s.playerEntity, AnimationState(p))
}

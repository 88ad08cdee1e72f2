package scenes

import (
	"log"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/entities"
	"github.com/decker502/sunvale/pkg/events"
	"github.com/decker502/sunvale/pkg/game"
	"github.com/decker502/sunvale/pkg/systems"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// MusicTrack 农场背景音乐
const MusicTrack = "music"

// FarmScene 农场主场景
//
// 持有实体管理器和全部系统，每帧按固定顺序推进：
// 输入 → 树木 → 玩家 → 粒子 → 生命周期 → 动画 → 雨 → 天空 → 日夜循环 → 相机 → 事件派发 → 删除实体。
type FarmScene struct {
	resourceManager *game.ResourceManager
	settings        *game.SettingsManager
	audioManager    *game.AudioManager
	config          *config.FarmConfig

	entityManager *ecs.EntityManager
	bus           *events.Bus
	rng           *utils.RNG
	gameState     *game.GameState
	inventory     *game.Inventory

	inputSystem     *systems.InputSystem
	playerSystem    *systems.PlayerSystem
	soilSystem      *systems.SoilSystem
	treeSystem      *systems.TreeSystem
	collisionSystem *systems.CollisionSystem
	animationSystem *systems.AnimationSystem
	particleSystem  *systems.ParticleSystem
	lifetimeSystem  *systems.LifetimeSystem
	rainSystem      *systems.RainSystem
	skySystem       *systems.SkySystem
	dayCycleSystem  *systems.DayCycleSystem
	cameraSystem    *systems.CameraSystem
	renderSystem    *systems.RenderSystem
	overlaySystem   *systems.OverlaySystem

	playerEntity        ecs.EntityID
	mapWidth, mapHeight float64

	// 离屏世界画布，天空色调作用于整张画布
	world *ebiten.Image
}

// FarmSceneOptions 场景依赖
// ResourceManager、Settings、Audio 均可为 nil（无素材、默认设置、静音）
type FarmSceneOptions struct {
	ResourceManager *game.ResourceManager
	Settings        *game.SettingsManager
	Audio           *game.AudioManager
	Config          *config.FarmConfig
	Layout          config.LayoutSource
	Seed            int64
}

// NewFarmScene 根据地图布局构建农场世界
func NewFarmScene(opts FarmSceneOptions) *FarmScene {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultFarmConfig()
	}

	s := &FarmScene{
		resourceManager: opts.ResourceManager,
		settings:        opts.Settings,
		audioManager:    opts.Audio,
		config:          cfg,
		entityManager:   ecs.NewEntityManager(),
		bus:             events.NewBus(),
		rng:             utils.NewRNG(opts.Seed),
		gameState:       game.NewGameState(),
		inventory:       game.NewInventory(),
	}
	s.gameState.Attach(s.bus)
	s.inventory.Attach(s.bus)
	if s.audioManager != nil {
		s.audioManager.Attach(s.bus)
	}

	var rl entities.ResourceLoader
	if s.resourceManager != nil {
		rl = s.resourceManager
	}

	s.soilSystem = systems.NewSoilSystem(s.entityManager, cfg, rl, s.gameState, s.bus, s.rng)
	s.treeSystem = systems.NewTreeSystem(s.entityManager, cfg, rl, s.bus, s.rng)
	s.collisionSystem = systems.NewCollisionSystem(s.entityManager)
	s.animationSystem = systems.NewAnimationSystem(s.entityManager)
	s.particleSystem = systems.NewParticleSystem(s.entityManager)
	s.lifetimeSystem = systems.NewLifetimeSystem(s.entityManager)
	s.skySystem = systems.NewSkySystem(cfg.Sky)
	s.renderSystem = systems.NewRenderSystem(s.entityManager)
	s.inputSystem = systems.NewInputSystem(systems.DefaultKeyBindings())

	s.buildWorld(opts.Layout, rl)

	s.rainSystem = systems.NewRainSystem(s.entityManager, cfg.Rain, rl, s.gameState, s.rng, s.mapWidth, s.mapHeight)
	s.playerSystem = systems.NewPlayerSystem(s.entityManager, s.playerEntity, cfg, s.soilSystem, s.treeSystem,
		s.collisionSystem, s.animationSystem, s.inventory, s.bus)
	s.dayCycleSystem = systems.NewDayCycleSystem(cfg, s.soilSystem, s.treeSystem, s.skySystem, s.gameState,
		s.playerSystem, s.bus, s.rng)
	s.playerSystem.SetSleepHandler(s.dayCycleSystem.Sleep)
	s.cameraSystem = systems.NewCameraSystem(s.entityManager, s.playerEntity,
		float64(cfg.ScreenWidth), float64(cfg.ScreenHeight))
	s.overlaySystem = systems.NewOverlaySystem(s.playerSystem, s.dayCycleSystem, s.gameState, s.inventory)

	s.bus.OnShopToggled(func(events.ShopToggled) {
		s.overlaySystem.ShopOpen = !s.overlaySystem.ShopOpen
	})

	if s.settings != nil {
		s.renderSystem.DebugHitboxes = s.settings.GetSettings().DebugHitboxes
	}
	if s.audioManager != nil {
		s.audioManager.PlayMusic(MusicTrack)
	}

	s.cameraSystem.Update()
	log.Printf("[FarmScene] 世界构建完成: %.0fx%.0f，实体 %d 个", s.mapWidth, s.mapHeight, s.entityManager.EntityCount())
	return s
}

// Update 读取键盘并推进一帧
func (s *FarmScene) Update(deltaTime float64) {
	intent := s.inputSystem.Capture()

	if s.inputSystem.DebugToggled() {
		s.toggleDebugHitboxes()
	}
	if s.overlaySystem.ShopOpen {
		if s.inputSystem.SellRequested() {
			s.inventory.SellAll()
		}
		if s.inputSystem.BuyRequested() {
			seed := s.playerSystem.Player().SelectedSeed().String()
			if !s.inventory.Buy(seed) {
				log.Printf("[FarmScene] 金币不足，无法购买 %s 种子", seed)
			}
		}
	}

	s.Step(intent, deltaTime)
}

// Step 以给定意图推进一帧模拟（不读取键盘，供无界面运行和测试使用）
func (s *FarmScene) Step(intent components.Intent, dt float64) {
	// 树木无敌计时器先于玩家的砍树动作推进
	s.treeSystem.Update(dt)
	s.playerSystem.Update(intent, dt)
	s.particleSystem.Update(dt)
	s.lifetimeSystem.Update(dt)
	s.animationSystem.Update(dt)
	s.rainSystem.Update()
	s.skySystem.Update(dt)
	s.dayCycleSystem.Update(dt)
	s.cameraSystem.Update()

	s.bus.Dispatch()
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制世界、天空色调和状态面板
func (s *FarmScene) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	if s.world == nil || s.world.Bounds() != b {
		s.world = ebiten.NewImage(b.Dx(), b.Dy())
	}
	s.world.Clear()

	offX, offY := s.cameraSystem.Offset()
	s.renderSystem.Draw(s.world, offX, offY)

	r, g, bl := s.skySystem.ColorScale()
	brightness := float32(s.dayCycleSystem.Brightness())
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.Scale(r*brightness, g*brightness, bl*brightness, 1)
	screen.DrawImage(s.world, op)

	s.overlaySystem.Draw(screen)
}

func (s *FarmScene) toggleDebugHitboxes() {
	if s.settings != nil {
		s.renderSystem.DebugHitboxes = s.settings.ToggleDebugHitboxes()
		return
	}
	s.renderSystem.DebugHitboxes = !s.renderSystem.DebugHitboxes
}

// EntityManager 返回实体管理器
func (s *FarmScene) EntityManager() *ecs.EntityManager { return s.entityManager }

// Soil 返回农田系统
func (s *FarmScene) Soil() *systems.SoilSystem { return s.soilSystem }

// Trees 返回树木系统
func (s *FarmScene) Trees() *systems.TreeSystem { return s.treeSystem }

// Player 返回玩家系统
func (s *FarmScene) Player() *systems.PlayerSystem { return s.playerSystem }

// PlayerEntity 返回玩家实体
func (s *FarmScene) PlayerEntity() ecs.EntityID { return s.playerEntity }

// DayCycle 返回日夜循环系统
func (s *FarmScene) DayCycle() *systems.DayCycleSystem { return s.dayCycleSystem }

// Inventory 返回库存
func (s *FarmScene) Inventory() *game.Inventory { return s.inventory }

// GameState 返回天气和天数
func (s *FarmScene) GameState() *game.GameState { return s.gameState }

// Overlay 返回状态面板
func (s *FarmScene) Overlay() *systems.OverlaySystem { return s.overlaySystem }

// MapSize 返回世界像素尺寸
func (s *FarmScene) MapSize() (float64, float64) { return s.mapWidth, s.mapHeight }

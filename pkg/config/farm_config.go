package config

import (
	"fmt"
	"os"

	"github.com/decker502/sunvale/pkg/types"
	"gopkg.in/yaml.v3"
)

// FarmConfig 农场玩法调优配置
//
// YAML 中以名称为键（便于编辑），加载后 resolve() 把按名称的表
// 转换为按枚举索引的定长数组；运行期只通过访问器读取副本，不再修改。
//
// 配置文件位置: data/config/farm.yaml
type FarmConfig struct {
	ScreenWidth  int     `yaml:"screenWidth"`
	ScreenHeight int     `yaml:"screenHeight"`
	TileSize     float64 `yaml:"tileSize"`

	Player   PlayerConfig            `yaml:"player"`
	Seeds    map[string]SeedConfig   `yaml:"seeds"`
	Trees    map[string]TreeConfig   `yaml:"trees"`
	Tree     TreeRulesConfig         `yaml:"tree"`
	Fruit    SizeConfig              `yaml:"fruit"`
	Tools    map[string]OffsetConfig `yaml:"toolOffsets"`
	Particle ParticleConfig          `yaml:"particle"`
	Weather  WeatherConfig           `yaml:"weather"`
	Sky      SkyConfig               `yaml:"sky"`
	Rain     RainConfig              `yaml:"rain"`

	// 以下为 resolve() 生成的枚举索引表
	seedTable [types.SeedTypeCount]SeedConfig
	treeTable [types.TreeKindCount]TreeConfig
	toolTable [types.DirectionCount]OffsetConfig
}

// PlayerConfig 玩家移动与动作参数
type PlayerConfig struct {
	Speed  float64 `yaml:"speed"`  // 像素/秒
	Width  float64 `yaml:"width"`  // 显示矩形宽度
	Height float64 `yaml:"height"` // 显示矩形高度
	// HitboxInsetX/Y 碰撞盒相对显示矩形的收缩量（像素，正值）
	HitboxInsetX float64 `yaml:"hitboxInsetX"`
	HitboxInsetY float64 `yaml:"hitboxInsetY"`
	// 动作计时器（秒）
	ToolUseDuration float64 `yaml:"toolUseDuration"`
	SeedUseDuration float64 `yaml:"seedUseDuration"`
	SwitchCooldown  float64 `yaml:"switchCooldown"`
	AnimationFPS    float64 `yaml:"animationFps"`
}

// SeedConfig 作物参数
type SeedConfig struct {
	GrowSpeed float64 `yaml:"growSpeed"` // 每次生长推进的年龄增量
	MaxAge    float64 `yaml:"maxAge"`    // 成熟年龄（= 生长帧数 - 1）
	YOffset   float64 `yaml:"yOffset"`   // 相对土块底边中点的纵向偏移
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
}

// TreeConfig 单种树木的尺寸和果实槽位
type TreeConfig struct {
	Width       float64      `yaml:"width"`
	Height      float64      `yaml:"height"`
	StumpWidth  float64      `yaml:"stumpWidth"`
	StumpHeight float64      `yaml:"stumpHeight"`
	FruitSlots  [][2]float64 `yaml:"fruitSlots"` // 相对树木左上角的偏移
}

// TreeRulesConfig 所有树木共享的规则参数
type TreeRulesConfig struct {
	Health        int     `yaml:"health"`
	FruitChance   float64 `yaml:"fruitChance"`
	InvulDuration float64 `yaml:"invulDuration"`
}

// SizeConfig 宽高
type SizeConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// OffsetConfig 二维偏移
type OffsetConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// ParticleConfig 粒子（被摧毁物体的闪白残影）持续时间（秒）
type ParticleConfig struct {
	Duration     float64 `yaml:"duration"`
	TreeDuration float64 `yaml:"treeDuration"`
}

// WeatherConfig 天气参数
type WeatherConfig struct {
	RainChance float64 `yaml:"rainChance"` // 每天下雨的概率
}

// SkyConfig 昼夜色调参数
type SkyConfig struct {
	NightColor     [3]float64 `yaml:"nightColor"`     // 夜晚色调 RGB
	DimSpeed       float64    `yaml:"dimSpeed"`       // 每秒每通道递减量
	TransitionTime float64    `yaml:"transitionTime"` // 睡觉淡出/淡入各自的时长（秒）
}

// RainConfig 雨滴参数
type RainConfig struct {
	LifetimeMin float64 `yaml:"lifetimeMin"`
	LifetimeMax float64 `yaml:"lifetimeMax"`
	SpeedMin    float64 `yaml:"speedMin"`
	SpeedMax    float64 `yaml:"speedMax"`
	DirectionX  float64 `yaml:"directionX"`
	DirectionY  float64 `yaml:"directionY"`
}

// DefaultFarmConfig 返回内置默认配置（与 data/config/farm.yaml 一致）
func DefaultFarmConfig() *FarmConfig {
	cfg := &FarmConfig{
		ScreenWidth:  1280,
		ScreenHeight: 720,
		TileSize:     64,
		Player: PlayerConfig{
			Speed:           200,
			Width:           192,
			Height:          192,
			HitboxInsetX:    126,
			HitboxInsetY:    70,
			ToolUseDuration: 0.35,
			SeedUseDuration: 0.35,
			SwitchCooldown:  0.2,
			AnimationFPS:    4,
		},
		Seeds: map[string]SeedConfig{
			"corn":   {GrowSpeed: 1, MaxAge: 3, YOffset: -16, Width: 48, Height: 64},
			"tomato": {GrowSpeed: 0.7, MaxAge: 3, YOffset: -8, Width: 48, Height: 56},
		},
		Trees: map[string]TreeConfig{
			"Small": {
				Width: 64, Height: 96, StumpWidth: 48, StumpHeight: 32,
				FruitSlots: [][2]float64{{18, 17}, {30, 37}, {12, 50}, {30, 45}, {20, 30}, {30, 10}},
			},
			"Large": {
				Width: 128, Height: 160, StumpWidth: 64, StumpHeight: 48,
				FruitSlots: [][2]float64{{30, 24}, {60, 65}, {50, 50}, {16, 40}, {45, 50}, {42, 70}},
			},
		},
		Tree:  TreeRulesConfig{Health: 5, FruitChance: 0.2, InvulDuration: 0.2},
		Fruit: SizeConfig{Width: 16, Height: 16},
		Tools: map[string]OffsetConfig{
			"left":  {X: -50, Y: 40},
			"right": {X: 50, Y: 40},
			"up":    {X: 0, Y: -10},
			"down":  {X: 0, Y: 50},
		},
		Particle: ParticleConfig{Duration: 0.2, TreeDuration: 0.3},
		Weather:  WeatherConfig{RainChance: 3.0 / 11.0},
		Sky: SkyConfig{
			NightColor:     [3]float64{38, 101, 189},
			DimSpeed:       2,
			TransitionTime: 2,
		},
		Rain: RainConfig{
			LifetimeMin: 0.4, LifetimeMax: 0.5,
			SpeedMin: 200, SpeedMax: 250,
			DirectionX: -2, DirectionY: 4,
		},
	}
	if err := cfg.resolve(); err != nil {
		// 内置默认值必须自洽
		panic(fmt.Sprintf("default farm config invalid: %v", err))
	}
	return cfg
}

// LoadFarmConfig 从文件加载农场配置
//
// 参数:
//   - path: 配置文件路径（如 "data/config/farm.yaml"）
//
// 返回:
//   - *FarmConfig: 校验并解析完成的配置
//   - error: 读取、解析或校验失败时返回错误
func LoadFarmConfig(path string) (*FarmConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read farm config: %w", err)
	}
	return ParseFarmConfig(data)
}

// ParseFarmConfig 解析 YAML 格式的农场配置
// 未出现在 YAML 中的字段保留默认值
func ParseFarmConfig(data []byte) (*FarmConfig, error) {
	cfg := DefaultFarmConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse farm config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid farm config: %w", err)
	}
	if err := cfg.resolve(); err != nil {
		return nil, fmt.Errorf("invalid farm config: %w", err)
	}
	return cfg, nil
}

// Validate 验证配置有效性
func (c *FarmConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize must be positive, got %.1f", c.TileSize)
	}
	if c.Player.Speed <= 0 {
		return fmt.Errorf("player speed must be positive, got %.1f", c.Player.Speed)
	}
	if c.Player.HitboxInsetX >= c.Player.Width || c.Player.HitboxInsetY >= c.Player.Height {
		return fmt.Errorf("player hitbox inset (%.0f, %.0f) leaves no hitbox for %.0fx%.0f sprite",
			c.Player.HitboxInsetX, c.Player.HitboxInsetY, c.Player.Width, c.Player.Height)
	}
	for name, seed := range c.Seeds {
		if seed.GrowSpeed <= 0 {
			return fmt.Errorf("seed %q growSpeed must be positive, got %.2f", name, seed.GrowSpeed)
		}
		if seed.MaxAge <= 0 {
			return fmt.Errorf("seed %q maxAge must be positive, got %.2f", name, seed.MaxAge)
		}
	}
	for name, tree := range c.Trees {
		if tree.Width <= 0 || tree.Height <= 0 {
			return fmt.Errorf("tree %q size must be positive", name)
		}
		for i, slot := range tree.FruitSlots {
			if slot[0] < 0 || slot[1] < 0 || slot[0] > tree.Width || slot[1] > tree.Height {
				return fmt.Errorf("tree %q fruit slot %d (%.0f, %.0f) lies outside the tree", name, i, slot[0], slot[1])
			}
		}
	}
	if c.Tree.Health <= 0 {
		return fmt.Errorf("tree health must be positive, got %d", c.Tree.Health)
	}
	if c.Tree.FruitChance < 0 || c.Tree.FruitChance > 1 {
		return fmt.Errorf("tree fruitChance must be within [0, 1], got %.2f", c.Tree.FruitChance)
	}
	if c.Weather.RainChance < 0 || c.Weather.RainChance > 1 {
		return fmt.Errorf("rainChance must be within [0, 1], got %.2f", c.Weather.RainChance)
	}
	if c.Rain.LifetimeMin > c.Rain.LifetimeMax {
		return fmt.Errorf("rain lifetime range invalid: min(%.2f) > max(%.2f)", c.Rain.LifetimeMin, c.Rain.LifetimeMax)
	}
	if c.Rain.SpeedMin > c.Rain.SpeedMax {
		return fmt.Errorf("rain speed range invalid: min(%.1f) > max(%.1f)", c.Rain.SpeedMin, c.Rain.SpeedMax)
	}
	return nil
}

// resolve 将按名称的配置表展开为按枚举索引的数组，所有枚举值都必须有配置
func (c *FarmConfig) resolve() error {
	for _, seed := range types.AllSeeds {
		sc, ok := c.Seeds[seed.String()]
		if !ok {
			return fmt.Errorf("missing seed config for %q", seed)
		}
		c.seedTable[seed] = sc
	}
	for kind := types.TreeKind(0); kind < types.TreeKindCount; kind++ {
		tc, ok := c.Trees[kind.String()]
		if !ok {
			return fmt.Errorf("missing tree config for %q", kind)
		}
		c.treeTable[kind] = tc
	}
	for dir := types.Direction(0); dir < types.DirectionCount; dir++ {
		oc, ok := c.Tools[dir.String()]
		if !ok {
			return fmt.Errorf("missing tool offset for direction %q", dir)
		}
		c.toolTable[dir] = oc
	}
	return nil
}

// Seed 返回作物配置
func (c *FarmConfig) Seed(seed types.SeedType) SeedConfig {
	return c.seedTable[seed]
}

// TreeSpec 返回树木种类配置
func (c *FarmConfig) TreeSpec(kind types.TreeKind) TreeConfig {
	return c.treeTable[kind]
}

// ToolOffset 返回玩家朝向对应的工具作用点偏移
func (c *FarmConfig) ToolOffset(dir types.Direction) (float64, float64) {
	o := c.toolTable[dir]
	return o.X, o.Y
}

package systems

import (
	"github.com/decker502/sunvale/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyBindings 按键绑定
type KeyBindings struct {
	Up, Down, Left, Right []ebiten.Key

	Primary   ebiten.Key
	Secondary ebiten.Key
	CycleTool ebiten.Key
	CycleSeed ebiten.Key
	Interact  ebiten.Key

	DebugHitboxes ebiten.Key
	SellAll       ebiten.Key
	BuySeed       ebiten.Key
}

// DefaultKeyBindings 默认按键: 方向键/WASD 移动，空格用工具，左 Ctrl 播种，
// Q/E 切换工具/种子，回车交互，F3 显示碰撞盒，商店打开时 1/2 出售/购买
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:            []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:          []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Left:          []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:         []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Primary:       ebiten.KeySpace,
		Secondary:     ebiten.KeyControlLeft,
		CycleTool:     ebiten.KeyQ,
		CycleSeed:     ebiten.KeyE,
		Interact:      ebiten.KeyEnter,
		DebugHitboxes: ebiten.KeyF3,
		SellAll:       ebiten.KeyDigit1,
		BuySeed:       ebiten.KeyDigit2,
	}
}

// KeyState 键盘状态查询
type KeyState interface {
	Pressed(key ebiten.Key) bool
	JustPressed(key ebiten.Key) bool
}

// ebitenKeys 从 ebiten 读取真实键盘
type ebitenKeys struct{}

func (ebitenKeys) Pressed(key ebiten.Key) bool     { return ebiten.IsKeyPressed(key) }
func (ebitenKeys) JustPressed(key ebiten.Key) bool { return inpututil.IsKeyJustPressed(key) }

// InputSystem 把键盘状态转换为单帧意图
// 模拟核心只消费 Intent，不直接访问输入设备
type InputSystem struct {
	bindings KeyBindings
	keys     KeyState

	debugToggled  bool
	sellRequested bool
	buyRequested  bool
}

// NewInputSystem 创建读取 ebiten 键盘的输入系统
func NewInputSystem(bindings KeyBindings) *InputSystem {
	return NewInputSystemWithKeys(bindings, ebitenKeys{})
}

// NewInputSystemWithKeys 使用自定义键盘状态创建输入系统（测试、回放）
func NewInputSystemWithKeys(bindings KeyBindings, keys KeyState) *InputSystem {
	return &InputSystem{bindings: bindings, keys: keys}
}

// Capture 读取本帧意图
func (s *InputSystem) Capture() components.Intent {
	b := s.bindings
	s.debugToggled = s.keys.JustPressed(b.DebugHitboxes)
	s.sellRequested = s.keys.JustPressed(b.SellAll)
	s.buyRequested = s.keys.JustPressed(b.BuySeed)
	return components.Intent{
		Up:        s.anyPressed(b.Up),
		Down:      s.anyPressed(b.Down),
		Left:      s.anyPressed(b.Left),
		Right:     s.anyPressed(b.Right),
		Primary:   s.keys.Pressed(b.Primary),
		Secondary: s.keys.Pressed(b.Secondary),
		CycleTool: s.keys.Pressed(b.CycleTool),
		CycleSeed: s.keys.Pressed(b.CycleSeed),
		Interact:  s.keys.JustPressed(b.Interact),
	}
}

// DebugToggled 本帧是否按下了碰撞盒调试键
func (s *InputSystem) DebugToggled() bool {
	return s.debugToggled
}

// SellRequested 本帧是否按下了出售键
func (s *InputSystem) SellRequested() bool {
	return s.sellRequested
}

// BuyRequested 本帧是否按下了购买键
func (s *InputSystem) BuyRequested() bool {
	return s.buyRequested
}

func (s *InputSystem) anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if s.keys.Pressed(k) {
			return true
		}
	}
	return false
}

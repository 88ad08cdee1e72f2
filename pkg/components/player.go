package components

import "github.com/decker502/sunvale/pkg/types"

// PlayerComponent 玩家状态
//
// 动作计时器: ToolUse/SeedUse 到期时执行工具/播种，
// ToolSwitch/SeedSwitch 为切换冷却。任一动作计时器运行时玩家不能移动或开始新动作。
type PlayerComponent struct {
	Facing types.Direction
	DirX   float64
	DirY   float64
	Speed  float64
	Tool   int // AllTools 下标
	Seed   int // AllSeeds 下标
	Asleep bool

	// TargetX/TargetY 最近一次动作的作用点（世界坐标）
	TargetX float64
	TargetY float64

	ToolUse    *Timer
	SeedUse    *Timer
	ToolSwitch *Timer
	SeedSwitch *Timer
}

// SelectedTool 当前工具
func (p *PlayerComponent) SelectedTool() types.ToolType {
	return types.AllTools[p.Tool]
}

// SelectedSeed 当前种子
func (p *PlayerComponent) SelectedSeed() types.SeedType {
	return types.AllSeeds[p.Seed]
}

// Busy 是否正在执行动作
func (p *PlayerComponent) Busy() bool {
	return p.ToolUse.Active() || p.SeedUse.Active()
}

// InteractionComponent 可交互区域（床、商人）
type InteractionComponent struct {
	Name string
}

// DecorationComponent 静态装饰（野花、栅栏、房屋等）
type DecorationComponent struct {
	Kind string
}

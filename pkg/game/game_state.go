package game

import "github.com/decker502/sunvale/pkg/events"

// GameState 会话级的世界状态（天数、天气）
// 由 DayCycleSystem 通过 SetRaining 修改，SoilSystem/RainSystem 只读
type GameState struct {
	Day     int
	raining bool
}

// NewGameState 创建第 1 天、晴天的状态
func NewGameState() *GameState {
	return &GameState{Day: 1}
}

// IsRaining 是否在下雨
func (gs *GameState) IsRaining() bool {
	return gs.raining
}

// SetRaining 设置天气
func (gs *GameState) SetRaining(raining bool) {
	gs.raining = raining
}

// Attach 订阅新一天事件，同步天数
func (gs *GameState) Attach(bus *events.Bus) {
	bus.OnDayStarted(func(e events.DayStarted) {
		gs.Day = e.Day
	})
}

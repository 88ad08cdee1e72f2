// Package events 模拟核心对外发出的消息
//
// 模拟核心只负责发布事件（物品入账、音效、商店开关、新的一天），
// 库存、界面和音频在各自的订阅回调中处理，核心从不直接回调界面代码。
// 事件在发布时排队，每帧末尾由 Dispatch 统一派发。
package events

import (
	"github.com/yohamta/donburi"
	devents "github.com/yohamta/donburi/features/events"
)

// ItemCredited 物品入账（收获、砍树、摘果）
// Amount 目前固定为 1
type ItemCredited struct {
	Item   string
	Amount int
}

// SoundRequested 请求播放音效
type SoundRequested struct {
	Name string
}

// ShopToggled 玩家与商人交互
type ShopToggled struct{}

// DayStarted 新的一天开始（睡醒后）
type DayStarted struct {
	Day     int
	Raining bool
}

var (
	itemCreditedType   = devents.NewEventType[ItemCredited]()
	soundRequestedType = devents.NewEventType[SoundRequested]()
	shopToggledType    = devents.NewEventType[ShopToggled]()
	dayStartedType     = devents.NewEventType[DayStarted]()
)

// Bus 基于 donburi 世界的事件总线
//
// 订阅按 Bus 隔离，不同 Bus（例如不同测试）之间互不影响。
// nil *Bus 上的发布操作是空操作，便于在没有订阅方的场合（工具、测试）直接使用系统。
type Bus struct {
	world donburi.World
}

// NewBus 创建事件总线
func NewBus() *Bus {
	return &Bus{world: donburi.NewWorld()}
}

// Credit 发布物品入账事件（数量固定为 1）
func (b *Bus) Credit(item string) {
	if b == nil {
		return
	}
	itemCreditedType.Publish(b.world, ItemCredited{Item: item, Amount: 1})
}

// PlaySound 发布音效请求
func (b *Bus) PlaySound(name string) {
	if b == nil {
		return
	}
	soundRequestedType.Publish(b.world, SoundRequested{Name: name})
}

// ToggleShop 发布商店开关事件
func (b *Bus) ToggleShop() {
	if b == nil {
		return
	}
	shopToggledType.Publish(b.world, ShopToggled{})
}

// StartDay 发布新一天事件
func (b *Bus) StartDay(day int, raining bool) {
	if b == nil {
		return
	}
	dayStartedType.Publish(b.world, DayStarted{Day: day, Raining: raining})
}

// OnItemCredited 订阅物品入账
func (b *Bus) OnItemCredited(fn func(ItemCredited)) {
	itemCreditedType.Subscribe(b.world, func(_ donburi.World, e ItemCredited) { fn(e) })
}

// OnSoundRequested 订阅音效请求
func (b *Bus) OnSoundRequested(fn func(SoundRequested)) {
	soundRequestedType.Subscribe(b.world, func(_ donburi.World, e SoundRequested) { fn(e) })
}

// OnShopToggled 订阅商店开关
func (b *Bus) OnShopToggled(fn func(ShopToggled)) {
	shopToggledType.Subscribe(b.world, func(_ donburi.World, e ShopToggled) { fn(e) })
}

// OnDayStarted 订阅新一天
func (b *Bus) OnDayStarted(fn func(DayStarted)) {
	dayStartedType.Subscribe(b.world, func(_ donburi.World, e DayStarted) { fn(e) })
}

// Dispatch 派发所有排队的事件
func (b *Bus) Dispatch() {
	if b == nil {
		return
	}
	devents.ProcessAllEvents(b.world)
}

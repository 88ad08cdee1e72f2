package game

import (
	"log"

	"github.com/decker502/sunvale/pkg/events"
	"github.com/decker502/sunvale/pkg/types"
)

// 出售价格
var salePrices = map[string]int{
	types.ItemWood:   4,
	types.ItemApple:  2,
	types.ItemCorn:   10,
	types.ItemTomato: 20,
}

// 种子购买价格
var purchasePrices = map[string]int{
	types.SeedCorn.String():   4,
	types.SeedTomato.String(): 5,
}

const (
	startingMoney = 200
	startingSeeds = 5
)

// Inventory 玩家库存（物品、种子、金钱）
//
// 物品通过事件总线上的 ItemCredited 入账；种子由 PlayerSystem 通过 Take 消耗。
type Inventory struct {
	items map[string]int
	seeds map[string]int
	money int
}

// NewInventory 创建初始库存: 200 金币、每种种子 5 颗
func NewInventory() *Inventory {
	inv := &Inventory{
		items: make(map[string]int),
		seeds: make(map[string]int),
		money: startingMoney,
	}
	for _, seed := range types.AllSeeds {
		inv.seeds[seed.String()] = startingSeeds
	}
	return inv
}

// Attach 订阅入账事件
func (inv *Inventory) Attach(bus *events.Bus) {
	bus.OnItemCredited(func(e events.ItemCredited) {
		inv.Add(e.Item, e.Amount)
	})
}

// Add 增加物品
func (inv *Inventory) Add(item string, amount int) {
	inv.items[item] += amount
}

// Count 物品数量
func (inv *Inventory) Count(item string) int {
	return inv.items[item]
}

// SeedCount 种子数量
func (inv *Inventory) SeedCount(seed string) int {
	return inv.seeds[seed]
}

// Money 金币
func (inv *Inventory) Money() int {
	return inv.money
}

// Take 消耗一颗种子，库存不足时返回 false
func (inv *Inventory) Take(seed string) bool {
	if inv.seeds[seed] <= 0 {
		return false
	}
	inv.seeds[seed]--
	return true
}

// Sell 出售一个物品，返回是否成功
func (inv *Inventory) Sell(item string) bool {
	price, ok := salePrices[item]
	if !ok || inv.items[item] <= 0 {
		return false
	}
	inv.items[item]--
	inv.money += price
	return true
}

// SellAll 出售全部可出售物品，返回获得的金币
func (inv *Inventory) SellAll() int {
	earned := 0
	for _, item := range types.AllItems {
		n := inv.items[item]
		earned += n * salePrices[item]
		inv.items[item] = 0
	}
	inv.money += earned
	if earned > 0 {
		log.Printf("[Inventory] 出售获得 %d 金币，现有 %d", earned, inv.money)
	}
	return earned
}

// Buy 购买一颗种子，金币不足时返回 false
func (inv *Inventory) Buy(seed string) bool {
	price, ok := purchasePrices[seed]
	if !ok || inv.money < price {
		return false
	}
	inv.money -= price
	inv.seeds[seed]++
	return true
}

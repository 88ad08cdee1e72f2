package game

import (
	"testing"

	"github.com/decker502/sunvale/pkg/events"
)

func TestNewInventory(t *testing.T) {
	inv := NewInventory()
	if inv.Money() != 200 {
		t.Errorf("money = %d, want 200", inv.Money())
	}
	for _, seed := range []string{"corn", "tomato"} {
		if inv.SeedCount(seed) != 5 {
			t.Errorf("%s seeds = %d, want 5", seed, inv.SeedCount(seed))
		}
	}
}

func TestInventoryTakeSeeds(t *testing.T) {
	inv := NewInventory()
	for i := 0; i < 5; i++ {
		if !inv.Take("corn") {
			t.Fatalf("Take #%d failed", i+1)
		}
	}
	if inv.Take("corn") {
		t.Error("Take should fail with no seeds left")
	}
	if inv.Take("pumpkin") {
		t.Error("unknown seed should not be available")
	}
	if inv.SeedCount("tomato") != 5 {
		t.Error("taking corn must not touch tomato seeds")
	}
}

func TestInventoryCreditedThroughBus(t *testing.T) {
	bus := events.NewBus()
	inv := NewInventory()
	inv.Attach(bus)

	bus.Credit("wood")
	bus.Credit("apple")
	bus.Credit("apple")
	if inv.Count("apple") != 0 {
		t.Fatal("credits must wait for dispatch")
	}
	bus.Dispatch()

	if inv.Count("wood") != 1 || inv.Count("apple") != 2 {
		t.Errorf("wood=%d apple=%d, want 1/2", inv.Count("wood"), inv.Count("apple"))
	}
}

func TestInventorySellAndBuy(t *testing.T) {
	tests := []struct {
		name      string
		items     map[string]int
		wantMoney int
	}{
		{"空库存", nil, 200},
		{"木头和苹果", map[string]int{"wood": 3, "apple": 2}, 200 + 12 + 4},
		{"作物", map[string]int{"corn": 1, "tomato": 2}, 200 + 10 + 40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := NewInventory()
			for item, n := range tt.items {
				inv.Add(item, n)
			}
			inv.SellAll()
			if inv.Money() != tt.wantMoney {
				t.Errorf("money = %d, want %d", inv.Money(), tt.wantMoney)
			}
			for item := range tt.items {
				if inv.Count(item) != 0 {
					t.Errorf("%s left after SellAll: %d", item, inv.Count(item))
				}
			}
		})
	}

	inv := NewInventory()
	if inv.Sell("wood") {
		t.Error("selling a missing item must fail")
	}
	inv.Add("tomato", 1)
	if !inv.Sell("tomato") || inv.Money() != 220 {
		t.Errorf("Sell(tomato): money = %d, want 220", inv.Money())
	}

	if !inv.Buy("tomato") || inv.Money() != 215 || inv.SeedCount("tomato") != 6 {
		t.Errorf("Buy(tomato): money=%d seeds=%d", inv.Money(), inv.SeedCount("tomato"))
	}
	if inv.Buy("apple") {
		t.Error("apples are not sold as seeds")
	}

	poor := &Inventory{items: map[string]int{}, seeds: map[string]int{}, money: 3}
	if poor.Buy("corn") {
		t.Error("Buy must fail without enough money")
	}
}

func TestGameStateFollowsDays(t *testing.T) {
	bus := events.NewBus()
	gs := NewGameState()
	gs.Attach(bus)

	if gs.Day != 1 || gs.IsRaining() {
		t.Fatalf("initial state: day=%d raining=%v", gs.Day, gs.IsRaining())
	}
	gs.SetRaining(true)
	bus.StartDay(4, true)
	bus.Dispatch()
	if gs.Day != 4 || !gs.IsRaining() {
		t.Errorf("day=%d raining=%v, want 4/true", gs.Day, gs.IsRaining())
	}
}

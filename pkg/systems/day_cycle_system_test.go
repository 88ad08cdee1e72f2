package systems

import (
	"math"
	"testing"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/events"
	"github.com/decker502/sunvale/pkg/types"
	"github.com/decker502/sunvale/pkg/utils"
)

type fakeSleeper struct{ woken int }

func (f *fakeSleeper) Wake() { f.woken++ }

func TestSkyDimsLinearlyAndStopsAtNight(t *testing.T) {
	cfg := config.DefaultFarmConfig().Sky
	sky := NewSkySystem(cfg)

	if sky.Tint() != [3]float64{255, 255, 255} {
		t.Fatalf("initial tint = %v, want white", sky.Tint())
	}

	sky.Update(10)
	for i, v := range sky.Tint() {
		if math.Abs(v-235) > 0.01 {
			t.Errorf("channel %d after 10s = %.3f, want 235", i, v)
		}
	}

	sky.Update(1000)
	for i, v := range sky.Tint() {
		if math.Abs(v-cfg.NightColor[i]) > 0.01 {
			t.Errorf("channel %d = %.3f, want night %.0f", i, v, cfg.NightColor[i])
		}
	}

	sky.Reset()
	if r, g, b := sky.ColorScale(); r != 1 || g != 1 || b != 1 {
		t.Errorf("ColorScale after reset = (%v, %v, %v), want 1", r, g, b)
	}
}

func TestRainSpawnsOnlyWhileRaining(t *testing.T) {
	cfg := config.DefaultFarmConfig().Rain
	weather := &fakeWeather{}
	em := ecs.NewEntityManager()
	rain := NewRainSystem(em, cfg, nil, weather, utils.NewRNG(3), 640, 480)

	rain.Update()
	if n := liveCount[*components.RainDropComponent](em); n != 0 {
		t.Fatalf("rain drops on a dry day: %d", n)
	}

	weather.raining = true
	for i := 0; i < 50; i++ {
		rain.Update()
	}

	floor, falling := 0, 0
	for _, id := range ecs.GetEntitiesWith1[*components.RainDropComponent](em) {
		drop, _ := ecs.GetComponent[*components.RainDropComponent](em, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](em, id)
		life, _ := ecs.GetComponent[*components.LifetimeComponent](em, id)
		if rect.Rect.X < 0 || rect.Rect.X >= 640 || rect.Rect.Y < 0 || rect.Rect.Y >= 480 {
			t.Errorf("drop %d spawned outside the map at (%.1f, %.1f)", id, rect.Rect.X, rect.Rect.Y)
		}
		if life.MaxLifetime < cfg.LifetimeMin || life.MaxLifetime >= cfg.LifetimeMax {
			t.Errorf("lifetime %.3f outside [%.1f, %.1f)", life.MaxLifetime, cfg.LifetimeMin, cfg.LifetimeMax)
		}

		vel, moving := ecs.GetComponent[*components.VelocityComponent](em, id)
		if drop.Floor {
			floor++
			if moving {
				t.Error("floor splash must not move")
			}
			continue
		}
		falling++
		if !moving {
			t.Fatal("falling drop without velocity")
		}
		speed := vel.VY / cfg.DirectionY
		if math.Abs(vel.VX-cfg.DirectionX*speed) > 1e-9 || speed < cfg.SpeedMin || speed >= cfg.SpeedMax {
			t.Errorf("velocity (%.1f, %.1f) not along direction with speed in range", vel.VX, vel.VY)
		}
	}
	if floor != 50 || falling != 50 {
		t.Errorf("floor = %d falling = %d, want 50 each", floor, falling)
	}
}

// newDayWorld 3x1 网格，(0,0) 种玉米并浇水
func newDayWorld(t *testing.T, rainChance float64) (*DayCycleSystem, *SoilSystem, *fakeWeather, *events.Bus, ecs.EntityID) {
	t.Helper()
	cfg := config.DefaultFarmConfig()
	cfg.Weather.RainChance = rainChance
	cfg.Tree.FruitChance = 0

	weather := &fakeWeather{}
	bus := events.NewBus()
	em := ecs.NewEntityManager()
	soil := NewSoilSystem(em, cfg, nil, weather, bus, utils.NewRNG(1))
	soil.InitGrid(3, 1, allFarmable(3, 1))
	trees := NewTreeSystem(em, cfg, nil, bus, utils.NewRNG(2))

	mustTill(t, soil, 0, 0)
	mustTill(t, soil, 1, 0)
	x, y := cellCenter(0, 0)
	soil.Irrigate(x, y)
	plant, _ := soil.Plant(x, y, types.SeedCorn)

	day := NewDayCycleSystem(cfg, soil, trees, NewSkySystem(cfg.Sky), weather, nil, bus, utils.NewRNG(5))
	return day, soil, weather, bus, plant
}

func TestDayResetGrowsAndDriesWithoutRain(t *testing.T) {
	day, soil, weather, bus, plant := newDayWorld(t, 0)
	var started []events.DayStarted
	bus.OnDayStarted(func(e events.DayStarted) { started = append(started, e) })

	day.Reset()
	bus.Dispatch()

	p, _ := ecs.GetComponent[*components.PlantComponent](soil.entityManager, plant)
	if p.Age != 1 {
		t.Errorf("plant age = %.1f, want 1", p.Age)
	}
	if weather.IsRaining() {
		t.Error("rain chance 0 must not rain")
	}
	if n := soil.WaterTileCount(); n != 0 {
		t.Errorf("water tiles = %d after dry reset, want 0", n)
	}
	for col := 0; col < 3; col++ {
		if cell, _ := soil.Cell(col, 0); cell.Has(components.CellIrrigated) {
			t.Errorf("cell (%d, 0) still irrigated", col)
		}
	}
	if len(started) != 1 || started[0].Day != 2 || started[0].Raining {
		t.Errorf("DayStarted events = %+v", started)
	}

	// 没有浇水，不再生长
	day.Reset()
	if p.Age != 1 {
		t.Errorf("dry plant grew to %.1f", p.Age)
	}
}

func TestDayResetRainIrrigatesAllTilled(t *testing.T) {
	day, soil, weather, _, _ := newDayWorld(t, 1)

	day.Reset()

	if !weather.IsRaining() {
		t.Fatal("rain chance 1 must rain")
	}
	for col := 0; col < 2; col++ {
		if cell, _ := soil.Cell(col, 0); !cell.Has(components.CellIrrigated) {
			t.Errorf("tilled cell (%d, 0) = %s, want irrigated", col, cell)
		}
	}
	if cell, _ := soil.Cell(2, 0); cell.Has(components.CellIrrigated) {
		t.Error("untilled cell must stay dry")
	}
	if n := soil.WaterTileCount(); n != 2 {
		t.Errorf("water tiles = %d, want 2", n)
	}
}

func TestSleepFadesOutResetsAndWakes(t *testing.T) {
	day, _, _, _, _ := newDayWorld(t, 0)
	sleeper := &fakeSleeper{}
	day.sleeper = sleeper

	day.Update(1)
	if day.Sleeping() || day.Day() != 1 {
		t.Fatal("update without sleep must do nothing")
	}

	day.Sleep()
	day.Update(1)
	if math.Abs(day.Brightness()-0.5) > 1e-3 {
		t.Errorf("brightness mid fade-out = %.3f, want 0.5", day.Brightness())
	}
	day.Sleep() // 过夜中重复上床无效

	day.Update(1.5)
	if day.Day() != 2 {
		t.Fatalf("day = %d after fade-out, want 2", day.Day())
	}
	if !day.Sleeping() || sleeper.woken != 0 {
		t.Fatal("player must stay asleep during fade-in")
	}

	day.Update(2.5)
	if day.Sleeping() || sleeper.woken != 1 {
		t.Errorf("sleeping = %v woken = %d after fade-in", day.Sleeping(), sleeper.woken)
	}
	if day.Brightness() != 1 {
		t.Errorf("brightness = %.3f, want 1", day.Brightness())
	}
	if day.Day() != 2 {
		t.Errorf("day = %d, want exactly one reset", day.Day())
	}
}

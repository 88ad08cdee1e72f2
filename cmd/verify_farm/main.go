// verify_farm 无界面运行农场场景，按脚本翻土、播种、浇水并睡过若干天，
// 打印每天的土块变体和作物年龄，用于快速检查农田规则。
//
// 用法:
//
//	go run ./cmd/verify_farm -days 4
//	go run ./cmd/verify_farm -pattern "###./#.##/####" -seed 7 -verbose
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/scenes"
	"github.com/decker502/sunvale/pkg/types"
)

var (
	mapPath    = flag.String("map", "data/maps/farm.yaml", "地图文件")
	configPath = flag.String("config", "data/config/farm.yaml", "农场配置文件")
	pattern    = flag.String("pattern", "###./#.##/####", "翻土图案，'/' 分隔行，'#' 表示翻土，从农田左上角开始")
	days       = flag.Int("days", 4, "睡过的天数")
	noWater    = flag.Bool("no-water", false, "每天不浇水（只靠下雨）")
	seed       = flag.Int64("seed", 1, "随机数种子")
	verbose    = flag.Bool("verbose", false, "显示详细日志")
)

const frame = 1.0 / 60

func main() {
	flag.Parse()
	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg, err := config.LoadFarmConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultFarmConfig()
	}
	layout, err := config.LoadMapConfig(*mapPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load map: %v\n", err)
		os.Exit(1)
	}

	scene := scenes.NewFarmScene(scenes.FarmSceneOptions{Config: cfg, Layout: layout, Seed: *seed})
	farm := &farmScript{scene: scene, tileSize: cfg.TileSize}

	origin, ok := farmOrigin(layout)
	if !ok {
		fmt.Fprintln(os.Stderr, "Map has no farmable cells")
		os.Exit(1)
	}
	cells := farm.till(origin, parsePattern(*pattern))
	fmt.Printf("tilled %d cells from (%d, %d)\n", len(cells), origin.Col, origin.Row)
	farm.plant(cells)
	farm.printState(cells)

	for d := 0; d < *days; d++ {
		if !*noWater {
			farm.water(cells)
		}
		farm.sleep()
		farm.printState(cells)
	}
}

// cell 格子坐标
type cell struct{ Col, Row int }

// farmOrigin 可耕种区域的左上角
func farmOrigin(layout config.LayoutSource) (cell, bool) {
	tiles, _ := layout.TileLayer(config.LayerNameFarmable)
	if len(tiles) == 0 {
		return cell{}, false
	}
	o := cell{tiles[0].Col, tiles[0].Row}
	for _, t := range tiles {
		o.Col = min(o.Col, t.Col)
		o.Row = min(o.Row, t.Row)
	}
	return o, true
}

// parsePattern 把 "##./.##" 解析为相对偏移
func parsePattern(p string) []cell {
	var out []cell
	for row, line := range strings.Split(p, "/") {
		for col, r := range line {
			if r == '#' {
				out = append(out, cell{col, row})
			}
		}
	}
	return out
}

type farmScript struct {
	scene    *scenes.FarmScene
	tileSize float64
}

func (f *farmScript) center(c cell) (float64, float64) {
	return (float64(c.Col) + 0.5) * f.tileSize, (float64(c.Row) + 0.5) * f.tileSize
}

func (f *farmScript) till(origin cell, offsets []cell) []cell {
	var tilled []cell
	for _, o := range offsets {
		c := cell{origin.Col + o.Col, origin.Row + o.Row}
		x, y := f.center(c)
		ok, err := f.scene.Soil().Till(x, y)
		if err != nil {
			fmt.Printf("till (%d, %d): %v\n", c.Col, c.Row, err)
			continue
		}
		if ok {
			tilled = append(tilled, c)
		}
	}
	return tilled
}

// plant 轮流种下全部种子类型，消耗库存中的种子
func (f *farmScript) plant(cells []cell) {
	inv := f.scene.Inventory()
	for i, c := range cells {
		seed := types.AllSeeds[i%len(types.AllSeeds)]
		if !inv.Take(seed.String()) {
			fmt.Printf("out of %s seeds at (%d, %d)\n", seed, c.Col, c.Row)
			continue
		}
		x, y := f.center(c)
		if _, err := f.scene.Soil().Plant(x, y, seed); err != nil {
			fmt.Printf("plant (%d, %d): %v\n", c.Col, c.Row, err)
		}
	}
}

func (f *farmScript) water(cells []cell) {
	for _, c := range cells {
		x, y := f.center(c)
		if _, err := f.scene.Soil().Irrigate(x, y); err != nil {
			fmt.Printf("water (%d, %d): %v\n", c.Col, c.Row, err)
		}
	}
}

// sleep 触发过夜并推进帧直到天亮
func (f *farmScript) sleep() {
	f.scene.DayCycle().Sleep()
	for i := 0; i < 60*60 && f.scene.DayCycle().Sleeping(); i++ {
		f.scene.Step(components.Intent{}, frame)
	}
}

func (f *farmScript) printState(cells []cell) {
	soil := f.scene.Soil()
	raining := ""
	if f.scene.GameState().IsRaining() {
		raining = " (rain)"
	}
	fmt.Printf("\n== day %d%s  water tiles %d\n", f.scene.DayCycle().Day(), raining, soil.WaterTileCount())
	if len(cells) == 0 {
		return
	}

	minC, minR, maxC, maxR := cells[0].Col, cells[0].Row, cells[0].Col, cells[0].Row
	for _, c := range cells {
		minC, minR = min(minC, c.Col), min(minR, c.Row)
		maxC, maxR = max(maxC, c.Col), max(maxR, c.Row)
	}
	for row := minR; row <= maxR; row++ {
		var b strings.Builder
		for col := minC; col <= maxC; col++ {
			v := soil.Variant(col, row)
			if v == "" {
				v = "."
			}
			fmt.Fprintf(&b, "%-6s", v)
		}
		fmt.Println(strings.TrimRight(b.String(), " "))
	}

	em := f.scene.EntityManager()
	for _, c := range cells {
		id := soil.PlantAt(c.Col, c.Row)
		if id == 0 {
			continue
		}
		plant, ok := ecs.GetComponent[*components.PlantComponent](em, id)
		if !ok {
			continue
		}
		state := ""
		if plant.Harvestable {
			state = " ripe"
		}
		fmt.Printf("  (%d, %d) %-6s age %.1f/%.0f%s\n", c.Col, c.Row, plant.Seed, plant.Age, plant.MaxAge, state)
	}
}

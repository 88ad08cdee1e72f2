package main

import (
	"fmt"
	"log"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/game"
	"github.com/decker502/sunvale/pkg/systems"
	"github.com/decker502/sunvale/pkg/types"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/gdamore/tcell/v2"
)

// 格子字符
const (
	glyphBlocked  = ' '
	glyphFarmable = '.'
	glyphTilled   = '#'
	glyphRipe     = '*'
)

var (
	styleDefault   = tcell.StyleDefault
	styleFarmable  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleTilled    = tcell.StyleDefault.Foreground(tcell.ColorOlive)
	styleIrrigated = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	stylePlant     = tcell.StyleDefault.Foreground(tcell.ColorLime)
	styleRipe      = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStatus    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

// Inspector 在终端里直接操作 SoilSystem，不经过玩家和渲染
type Inspector struct {
	entityManager *ecs.EntityManager
	soil          *systems.SoilSystem
	weather       *game.GameState

	cursorCol, cursorRow int
	seed                 types.SeedType
	message              string
}

// NewInspector 用地图的 Farmable 层初始化农田
// layout 为 nil 时整个 cols x rows 网格都可耕种
func NewInspector(cfg *config.FarmConfig, layout config.LayoutSource, cols, rows int, seed int64) *Inspector {
	in := &Inspector{
		entityManager: ecs.NewEntityManager(),
		weather:       game.NewGameState(),
	}
	in.soil = systems.NewSoilSystem(in.entityManager, cfg, nil, in.weather, nil, utils.NewRNG(seed))

	var farmable []config.TilePlacement
	if layout != nil {
		cols, rows = layout.Size()
		farmable, _ = layout.TileLayer(config.LayerNameFarmable)
	} else {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				farmable = append(farmable, config.TilePlacement{Col: col, Row: row, Visual: 'F'})
			}
		}
	}
	in.soil.InitGrid(cols, rows, farmable)

	// 光标放在第一个可耕种格子上
	if len(farmable) > 0 {
		in.cursorCol, in.cursorRow = farmable[0].Col, farmable[0].Row
	}
	return in
}

// cursorPoint 光标格子中心的世界坐标
func (in *Inspector) cursorPoint() (float64, float64) {
	size := in.soil.Grid().TileSize
	return (float64(in.cursorCol) + 0.5) * size, (float64(in.cursorRow) + 0.5) * size
}

func (in *Inspector) moveCursor(dc, dr int) {
	grid := in.soil.Grid()
	if grid.InBounds(in.cursorCol+dc, in.cursorRow+dr) {
		in.cursorCol += dc
		in.cursorRow += dr
	}
}

// HandleKey 处理一次按键，返回 false 表示退出
func (in *Inspector) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		in.moveCursor(0, -1)
	case tcell.KeyDown:
		in.moveCursor(0, 1)
	case tcell.KeyLeft:
		in.moveCursor(-1, 0)
	case tcell.KeyRight:
		in.moveCursor(1, 0)
	case tcell.KeyRune:
		return in.handleRune(r)
	}
	return true
}

func (in *Inspector) handleRune(r rune) bool {
	x, y := in.cursorPoint()
	switch r {
	case 'q':
		return false
	case 't':
		ok, err := in.soil.Till(x, y)
		in.report("till", ok, err)
	case 'w':
		ok, err := in.soil.Irrigate(x, y)
		in.report("water", ok, err)
	case 'p':
		id, err := in.soil.Plant(x, y, in.seed)
		in.report("plant "+in.seed.String(), id != 0, err)
	case 's':
		in.seed = (in.seed + 1) % types.SeedType(len(types.AllSeeds))
		in.message = "seed: " + in.seed.String()
	case 'g':
		in.soil.AdvanceGrowth()
		in.message = "growth advanced"
	case 'r':
		raining := !in.weather.IsRaining()
		in.weather.SetRaining(raining)
		if raining {
			in.message = fmt.Sprintf("rain on, %d cells irrigated", in.soil.IrrigateAll())
		} else {
			in.soil.ClearIrrigation()
			in.message = "rain off, irrigation cleared"
		}
	case 'h':
		in.harvestCursor()
	}
	in.entityManager.RemoveMarkedEntities()
	return true
}

func (in *Inspector) harvestCursor() {
	id := in.soil.PlantAt(in.cursorCol, in.cursorRow)
	if id == 0 {
		in.message = "harvest: nothing planted"
		return
	}
	plant, _ := ecs.GetComponent[*components.PlantComponent](in.entityManager, id)
	if !plant.Harvestable {
		in.message = fmt.Sprintf("harvest: %s not ripe (age %.1f/%.0f)", plant.Seed, plant.Age, plant.MaxAge)
		return
	}
	in.soil.Harvest(id)
	in.message = "harvested " + plant.Seed.String()
}

func (in *Inspector) report(action string, ok bool, err error) {
	switch {
	case err != nil:
		in.message = fmt.Sprintf("%s: %v", action, err)
	case ok:
		in.message = action + ": ok"
	default:
		in.message = action + ": no effect"
	}
	log.Printf("[Inspector] (%d, %d) %s", in.cursorCol, in.cursorRow, in.message)
}

// cellGlyph 返回格子的显示字符和样式
func (in *Inspector) cellGlyph(col, row int) (rune, tcell.Style) {
	grid := in.soil.Grid()
	cell := grid.Cells[grid.Index(col, row)]

	if id := grid.Plants[grid.Index(col, row)]; id != 0 {
		if plant, ok := ecs.GetComponent[*components.PlantComponent](in.entityManager, id); ok {
			if plant.Harvestable {
				return glyphRipe, styleRipe
			}
			style := stylePlant
			if cell.Has(components.CellIrrigated) {
				style = style.Background(tcell.ColorNavy)
			}
			return rune('0' + plant.Stage()), style
		}
	}

	switch {
	case cell.Has(components.CellIrrigated):
		return glyphTilled, styleIrrigated
	case cell.Has(components.CellTilled):
		return glyphTilled, styleTilled
	case cell.Has(components.CellFarmable):
		return glyphFarmable, styleFarmable
	}
	return glyphBlocked, styleDefault
}

// StatusLines 光标格子的状态说明
func (in *Inspector) StatusLines() []string {
	grid := in.soil.Grid()
	cell, _ := in.soil.Cell(in.cursorCol, in.cursorRow)
	lines := []string{
		fmt.Sprintf("cell (%d, %d) flags [%s] variant %q", in.cursorCol, in.cursorRow, cell, in.soil.Variant(in.cursorCol, in.cursorRow)),
		fmt.Sprintf("seed %s  rain %v  water tiles %d", in.seed, in.weather.IsRaining(), in.soil.WaterTileCount()),
		"arrows move  t till  w water  p plant  s seed  g grow  r rain  h harvest  q quit",
	}
	if id := grid.Plants[grid.Index(in.cursorCol, in.cursorRow)]; id != 0 {
		if plant, ok := ecs.GetComponent[*components.PlantComponent](in.entityManager, id); ok {
			lines = append(lines, fmt.Sprintf("plant %s age %.1f/%.0f harvestable %v", plant.Seed, plant.Age, plant.MaxAge, plant.Harvestable))
		}
	}
	if in.message != "" {
		lines = append(lines, in.message)
	}
	return lines
}

// Draw 把网格和状态画到屏幕上
func (in *Inspector) Draw(screen tcell.Screen) {
	screen.Clear()
	grid := in.soil.Grid()
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			r, style := in.cellGlyph(col, row)
			if col == in.cursorCol && row == in.cursorRow {
				style = style.Reverse(true)
			}
			screen.SetContent(col, row, r, nil, style)
		}
	}
	for i, line := range in.StatusLines() {
		drawString(screen, 0, grid.Rows+1+i, line, styleStatus)
	}
	screen.Show()
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

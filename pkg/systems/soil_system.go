package systems

import (
	"fmt"
	"log"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/entities"
	"github.com/decker502/sunvale/pkg/events"
	"github.com/decker502/sunvale/pkg/types"
	"github.com/decker502/sunvale/pkg/utils"
)

// 邻接方向，按字母顺序 b, l, r, t 拼接土块变体名
var soilNeighbors = []struct {
	dCol, dRow int
	letter     string
}{
	{0, 1, "b"},
	{-1, 0, "l"},
	{1, 0, "r"},
	{0, -1, "t"},
}

// SoilVariantIsland 四周都没有已翻土邻居时的变体名
const SoilVariantIsland = "o"

// SoilSystem 农田网格状态机
//
// 负责翻土、浇水、播种、生长和收获，并根据翻土状态重建土块贴图。
// 不合法的状态转换（重复翻土、在未翻土的地上播种等）是静默的空操作，
// 只有越界坐标返回 ErrInvalidCellAddress。
type SoilSystem struct {
	entityManager *ecs.EntityManager
	gridEntity    ecs.EntityID
	config        *config.FarmConfig
	resources     entities.ResourceLoader
	weather       WeatherState
	bus           *events.Bus
	rng           *utils.RNG
}

// NewSoilSystem 创建农田系统
// weather、resources、bus 均可为 nil（视为不下雨、无素材、无订阅方）
func NewSoilSystem(em *ecs.EntityManager, cfg *config.FarmConfig, rl entities.ResourceLoader, weather WeatherState, bus *events.Bus, rng *utils.RNG) *SoilSystem {
	return &SoilSystem{
		entityManager: em,
		config:        cfg,
		resources:     rl,
		weather:       weather,
		bus:           bus,
		rng:           rng,
	}
}

// InitGrid 创建网格实体并标记可耕种格子
func (s *SoilSystem) InitGrid(cols, rows int, farmable []config.TilePlacement) {
	grid := components.NewSoilGridComponent(cols, rows, s.config.TileSize)
	for _, t := range farmable {
		if !grid.InBounds(t.Col, t.Row) {
			log.Printf("[SoilSystem] 忽略越界的可耕种格子 (%d, %d)", t.Col, t.Row)
			continue
		}
		grid.Cells[grid.Index(t.Col, t.Row)] |= components.CellFarmable
	}

	s.gridEntity = s.entityManager.CreateEntity()
	ecs.AddComponent(s.entityManager, s.gridEntity, grid)
	log.Printf("[SoilSystem] 网格 %dx%d，可耕种格子 %d 个", cols, rows, len(farmable))
}

// Grid 返回网格组件（未初始化时返回 nil）
func (s *SoilSystem) Grid() *components.SoilGridComponent {
	grid, ok := ecs.GetComponent[*components.SoilGridComponent](s.entityManager, s.gridEntity)
	if !ok {
		return nil
	}
	return grid
}

// CellAt 将世界坐标映射到格子坐标，越界返回 ErrInvalidCellAddress
func (s *SoilSystem) CellAt(x, y float64) (int, int, error) {
	grid := s.Grid()
	if grid == nil {
		return 0, 0, fmt.Errorf("soil grid not initialized: %w", ErrInvalidCellAddress)
	}
	col, row := utils.WorldToTile(x, y, grid.TileSize)
	if !grid.InBounds(col, row) {
		return col, row, fmt.Errorf("point (%.1f, %.1f) maps to cell (%d, %d) outside %dx%d grid: %w",
			x, y, col, row, grid.Cols, grid.Rows, ErrInvalidCellAddress)
	}
	return col, row, nil
}

// Cell 返回格子状态
func (s *SoilSystem) Cell(col, row int) (components.CellFlags, error) {
	grid := s.Grid()
	if grid == nil || !grid.InBounds(col, row) {
		return 0, fmt.Errorf("cell (%d, %d): %w", col, row, ErrInvalidCellAddress)
	}
	return grid.Cells[grid.Index(col, row)], nil
}

// Till 翻土
//
// 只有可耕种且未翻土的格子才会成功；成功后重建全部土块贴图。
// 下雨天新翻的土会立即被浇湿，与周围的土保持一致。
func (s *SoilSystem) Till(x, y float64) (bool, error) {
	col, row, err := s.CellAt(x, y)
	if err != nil {
		return false, err
	}
	grid := s.Grid()
	idx := grid.Index(col, row)
	cell := grid.Cells[idx]
	if !cell.Has(components.CellFarmable) || cell.Has(components.CellTilled) {
		return false, nil
	}

	grid.Cells[idx] |= components.CellTilled
	s.rebuildSoilTiles(grid)
	s.bus.PlaySound("hoe")

	if s.weather != nil && s.weather.IsRaining() {
		s.irrigateCell(grid, col, row)
	}
	return true, nil
}

// Irrigate 浇水
// 已翻土且未浇水的格子才会成功；重复浇水是空操作，不会生成第二个水渍
func (s *SoilSystem) Irrigate(x, y float64) (bool, error) {
	col, row, err := s.CellAt(x, y)
	if err != nil {
		return false, err
	}
	grid := s.Grid()
	if !s.irrigateCell(grid, col, row) {
		return false, nil
	}
	s.bus.PlaySound("water")
	return true, nil
}

// IrrigateAll 浇湿所有已翻土且未浇水的格子（下雨），返回新浇水的格子数
func (s *SoilSystem) IrrigateAll() int {
	grid := s.Grid()
	if grid == nil {
		return 0
	}
	n := 0
	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if s.irrigateCell(grid, col, row) {
				n++
			}
		}
	}
	return n
}

// ClearIrrigation 清除所有格子的浇水状态并移除全部水渍
func (s *SoilSystem) ClearIrrigation() {
	grid := s.Grid()
	if grid == nil {
		return
	}
	for idx := range grid.Cells {
		grid.Cells[idx] &^= components.CellIrrigated
		if id := grid.WaterTiles[idx]; id != 0 {
			s.entityManager.DestroyEntity(id)
			grid.WaterTiles[idx] = 0
		}
	}
}

func (s *SoilSystem) irrigateCell(grid *components.SoilGridComponent, col, row int) bool {
	idx := grid.Index(col, row)
	cell := grid.Cells[idx]
	if !cell.Has(components.CellTilled) || cell.Has(components.CellIrrigated) {
		return false
	}
	grid.Cells[idx] |= components.CellIrrigated

	frame := 0
	if s.rng != nil {
		frame = s.rng.IntN(3)
	}
	grid.WaterTiles[idx] = entities.NewWaterTileEntity(s.entityManager, s.resources, col, row, grid.TileSize, frame)
	return true
}

// Plant 播种
// 只能种在已翻土且未种植的格子上；成功返回作物实体ID，否则返回 0
func (s *SoilSystem) Plant(x, y float64, seed types.SeedType) (ecs.EntityID, error) {
	col, row, err := s.CellAt(x, y)
	if err != nil {
		return 0, err
	}
	grid := s.Grid()
	idx := grid.Index(col, row)
	cell := grid.Cells[idx]
	if !cell.Has(components.CellTilled) || cell.Has(components.CellPlanted) {
		return 0, nil
	}

	id := entities.NewPlantEntity(s.entityManager, s.resources, seed, s.config.Seed(seed), col, row, grid.TileSize)
	grid.Cells[idx] |= components.CellPlanted
	grid.Plants[idx] = id
	s.bus.PlaySound("plant")
	return id, nil
}

// AdvanceGrowth 推进一次生长（每天一次）
//
// 只有所在格子已浇水的作物才会生长。年龄越过第一个整数阶段后，
// 作物从地面作物层提升到主层；达到最大年龄后被截断并标记为可收获。
func (s *SoilSystem) AdvanceGrowth() {
	grid := s.Grid()
	if grid == nil {
		return
	}
	for _, id := range ecs.GetEntitiesWith1[*components.PlantComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		plant, _ := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
		if !grid.InBounds(plant.Col, plant.Row) {
			continue
		}
		if !grid.Cells[grid.Index(plant.Col, plant.Row)].Has(components.CellIrrigated) {
			continue
		}

		plant.Age += plant.GrowSpeed
		if int(plant.Age) > 0 {
			if depth, ok := ecs.GetComponent[*components.DepthComponent](s.entityManager, id); ok {
				depth.Layer = config.LayerMain
			}
		}
		if plant.Age >= plant.MaxAge {
			plant.Age = plant.MaxAge
			plant.Harvestable = true
		}
		s.refreshPlantAppearance(id, plant, grid.TileSize)
	}
}

// refreshPlantAppearance 按生长阶段更新贴图和显示矩形
func (s *SoilSystem) refreshPlantAppearance(id ecs.EntityID, plant *components.PlantComponent, tileSize float64) {
	img, w, h := entities.PlantStageImage(plant.Frames, s.config.Seed(plant.Seed), plant.Stage())
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		sprite.Image = img
		if plant.Harvestable {
			sprite.Color = entities.ColorRipe
		}
	}
	if rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, id); ok {
		rect.Rect = entities.PlantRect(plant.Col, plant.Row, tileSize, plant.YOffset, w, h)
	}
}

// Harvest 收获作物: 移除作物实体并清除格子的种植标志
// 库存入账由调用方负责。已收获（或不是作物）的实体返回 false
func (s *SoilSystem) Harvest(id ecs.EntityID) bool {
	if s.entityManager.IsMarkedForDestroy(id) {
		return false
	}
	plant, ok := ecs.GetComponent[*components.PlantComponent](s.entityManager, id)
	if !ok {
		return false
	}
	grid := s.Grid()
	if grid != nil && grid.InBounds(plant.Col, plant.Row) {
		idx := grid.Index(plant.Col, plant.Row)
		if grid.Plants[idx] == id {
			grid.Plants[idx] = 0
			grid.Cells[idx] &^= components.CellPlanted
		}
	}
	s.entityManager.DestroyEntity(id)
	return true
}

// PlantAt 返回格子上的作物实体ID（没有则为 0）
func (s *SoilSystem) PlantAt(col, row int) ecs.EntityID {
	grid := s.Grid()
	if grid == nil || !grid.InBounds(col, row) {
		return 0
	}
	return grid.Plants[grid.Index(col, row)]
}

// WaterTileCount 返回当前水渍数量
func (s *SoilSystem) WaterTileCount() int {
	grid := s.Grid()
	if grid == nil {
		return 0
	}
	n := 0
	for _, id := range grid.WaterTiles {
		if id != 0 {
			n++
		}
	}
	return n
}

// Variant 返回已翻土格子的土块变体名；未翻土或越界返回空字符串
func (s *SoilSystem) Variant(col, row int) string {
	grid := s.Grid()
	if grid == nil || !grid.IsTilled(col, row) {
		return ""
	}
	return soilVariant(grid, col, row)
}

// soilVariant 由四个正交邻居的翻土状态决定，越界邻居视为未翻土
func soilVariant(grid *components.SoilGridComponent, col, row int) string {
	key := ""
	for _, n := range soilNeighbors {
		if grid.IsTilled(col+n.dCol, row+n.dRow) {
			key += n.letter
		}
	}
	if key == "" {
		return SoilVariantIsland
	}
	return key
}

// rebuildSoilTiles 清除全部土块贴图并按当前翻土状态重新生成
// 一个格子翻土会改变邻居的变体，因此总是整体重建
func (s *SoilSystem) rebuildSoilTiles(grid *components.SoilGridComponent) {
	for _, id := range grid.SoilTiles {
		s.entityManager.DestroyEntity(id)
	}
	grid.SoilTiles = grid.SoilTiles[:0]

	for row := 0; row < grid.Rows; row++ {
		for col := 0; col < grid.Cols; col++ {
			if !grid.IsTilled(col, row) {
				continue
			}
			id := entities.NewSoilTileEntity(s.entityManager, s.resources, col, row, grid.TileSize, soilVariant(grid, col, row))
			grid.SoilTiles = append(grid.SoilTiles, id)
		}
	}
}

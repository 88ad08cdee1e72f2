package systems

import (
	"testing"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/events"
	"github.com/decker502/sunvale/pkg/utils"
)

const testTile = 64.0

// fakeWeather 可控的天气
type fakeWeather struct{ raining bool }

func (w *fakeWeather) IsRaining() bool { return w.raining }

func (w *fakeWeather) SetRaining(raining bool) { w.raining = raining }

// fakeSeeds 可控的种子库存
type fakeSeeds struct{ left map[string]int }

func (s *fakeSeeds) Take(seed string) bool {
	if s.left[seed] <= 0 {
		return false
	}
	s.left[seed]--
	return true
}

// cellCenter 返回格子中心的世界坐标
func cellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * testTile, (float64(row) + 0.5) * testTile
}

// allFarmable 返回覆盖整个网格的可耕种格子列表
func allFarmable(cols, rows int) []config.TilePlacement {
	var tiles []config.TilePlacement
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tiles = append(tiles, config.TilePlacement{Col: col, Row: row, Visual: 'F'})
		}
	}
	return tiles
}

// newTestSoilSystem 创建全部可耕种的 cols x rows 网格
func newTestSoilSystem(t *testing.T, cols, rows int, weather WeatherState, bus *events.Bus) (*ecs.EntityManager, *SoilSystem) {
	t.Helper()
	em := ecs.NewEntityManager()
	sys := NewSoilSystem(em, config.DefaultFarmConfig(), nil, weather, bus, utils.NewRNG(1))
	sys.InitGrid(cols, rows, allFarmable(cols, rows))
	return em, sys
}

// mustTill 翻指定格子，失败时终止测试
func mustTill(t *testing.T, sys *SoilSystem, col, row int) {
	t.Helper()
	x, y := cellCenter(col, row)
	ok, err := sys.Till(x, y)
	if err != nil || !ok {
		t.Fatalf("Till(%d, %d) = (%v, %v), want (true, nil)", col, row, ok, err)
	}
}

// checkCellInvariants 检查所有格子的标志位约束
func checkCellInvariants(t *testing.T, sys *SoilSystem) {
	t.Helper()
	grid := sys.Grid()
	for idx, cell := range grid.Cells {
		col, row := idx%grid.Cols, idx/grid.Cols
		if cell.Has(components.CellTilled) && !cell.Has(components.CellFarmable) {
			t.Errorf("cell (%d, %d) %s: tilled but not farmable", col, row, cell)
		}
		if cell.Has(components.CellIrrigated) && !cell.Has(components.CellTilled) {
			t.Errorf("cell (%d, %d) %s: irrigated but not tilled", col, row, cell)
		}
		if cell.Has(components.CellPlanted) && !cell.Has(components.CellTilled) {
			t.Errorf("cell (%d, %d) %s: planted but not tilled", col, row, cell)
		}
		if (grid.Plants[idx] != 0) != cell.Has(components.CellPlanted) {
			t.Errorf("cell (%d, %d) %s: plant entity %d disagrees with planted flag", col, row, cell, grid.Plants[idx])
		}
	}
}

// liveCount 统计拥有组件 T 且未被标记删除的实体数量
func liveCount[T any](em *ecs.EntityManager) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[T](em) {
		if !em.IsMarkedForDestroy(id) {
			n++
		}
	}
	return n
}

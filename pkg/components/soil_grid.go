package components

import (
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/utils"
)

// CellFlags 单个土地格子的状态标志位
//
// 各标志相互独立，但需满足:
//   - Tilled ⇒ Farmable
//   - Irrigated ⇒ Tilled
//   - Planted ⇒ Tilled
type CellFlags uint8

const (
	// CellFarmable 可耕种
	CellFarmable CellFlags = 1 << iota
	// CellTilled 已翻土
	CellTilled
	// CellIrrigated 已浇水
	CellIrrigated
	// CellPlanted 已种植
	CellPlanted
)

// Has 判断是否包含全部指定标志
func (f CellFlags) Has(flags CellFlags) bool {
	return f&flags == flags
}

// String 返回调试字符串，如 "FX"、"FXWP"
func (f CellFlags) String() string {
	s := ""
	if f.Has(CellFarmable) {
		s += "F"
	}
	if f.Has(CellTilled) {
		s += "X"
	}
	if f.Has(CellIrrigated) {
		s += "W"
	}
	if f.Has(CellPlanted) {
		s += "P"
	}
	return s
}

// SoilGridComponent 农田网格
//
// 格子按行优先存储: idx = row*Cols + col。
// Plants[idx] 为 0 表示该格子没有植物；每个格子最多一株植物。
// SoilTiles 是根据翻土状态生成的土块贴图实体（可随时整体重建），
// WaterTiles[idx] 为该格子上的浇水贴图实体。
type SoilGridComponent struct {
	Cols, Rows int
	TileSize   float64

	Cells      []CellFlags
	Plants     []ecs.EntityID
	WaterTiles []ecs.EntityID
	SoilTiles  []ecs.EntityID
}

// NewSoilGridComponent 创建指定大小的空网格
func NewSoilGridComponent(cols, rows int, tileSize float64) *SoilGridComponent {
	n := cols * rows
	return &SoilGridComponent{
		Cols:       cols,
		Rows:       rows,
		TileSize:   tileSize,
		Cells:      make([]CellFlags, n),
		Plants:     make([]ecs.EntityID, n),
		WaterTiles: make([]ecs.EntityID, n),
	}
}

// InBounds 判断格子坐标是否在网格内
func (g *SoilGridComponent) InBounds(col, row int) bool {
	return utils.TileInBounds(col, row, g.Cols, g.Rows)
}

// Index 返回格子的线性索引，调用方需先检查 InBounds
func (g *SoilGridComponent) Index(col, row int) int {
	return row*g.Cols + col
}

// IsTilled 越界格子视为未翻土
func (g *SoilGridComponent) IsTilled(col, row int) bool {
	if !g.InBounds(col, row) {
		return false
	}
	return g.Cells[g.Index(col, row)].Has(CellTilled)
}

// SoilTileComponent 土块贴图
// Variant 为邻接字母组合（如 "lr"、"blrt"），孤立土块为 "o"
type SoilTileComponent struct {
	Col, Row int
	Variant  string
}

// WaterTileComponent 浇水贴图
type WaterTileComponent struct {
	Col, Row int
}

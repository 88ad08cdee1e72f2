package components

import (
	"github.com/decker502/sunvale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// PlantComponent 作物
//
// 作物属于唯一一个农田格子。Age 只在每日生长推进时增加，
// 且仅当所在格子已浇水；Age 被限制在 MaxAge 以内，
// Harvestable 当且仅当 Age 达到 MaxAge。
type PlantComponent struct {
	Seed     types.SeedType
	Col, Row int

	Age       float64
	MaxAge    float64
	GrowSpeed float64
	// YOffset 相对土块底边中点的纵向偏移（负值向上）
	YOffset float64

	Harvestable bool

	// Frames 各生长阶段的贴图，无素材时为空
	Frames []*ebiten.Image
}

// Stage 返回当前生长阶段（用于选择贴图帧）
func (p *PlantComponent) Stage() int {
	return int(p.Age)
}

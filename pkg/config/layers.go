package config

// 渲染层级常量
// 层级是绘制顺序的主键：层级小的总是先绘制，无论纵坐标如何；
// 同一层级内再按纵向锚点（显示矩形中心Y）排序，产生前后遮挡效果
const (
	LayerWater       = 0
	LayerGround      = 1
	LayerSoil        = 2
	LayerSoilWater   = 3
	LayerRainFloor   = 4
	LayerHouseBottom = 5
	LayerGroundPlant = 6
	LayerMain        = 7
	LayerHouseTop    = 8
	LayerFruit       = 9
	LayerRainDrops   = 10
)

// LayerName 返回层级名称（调试绘制用）
func LayerName(layer int) string {
	switch layer {
	case LayerWater:
		return "water"
	case LayerGround:
		return "ground"
	case LayerSoil:
		return "soil"
	case LayerSoilWater:
		return "soil water"
	case LayerRainFloor:
		return "rain floor"
	case LayerHouseBottom:
		return "house bottom"
	case LayerGroundPlant:
		return "ground plant"
	case LayerMain:
		return "main"
	case LayerHouseTop:
		return "house top"
	case LayerFruit:
		return "fruit"
	case LayerRainDrops:
		return "rain drops"
	default:
		return "unknown"
	}
}

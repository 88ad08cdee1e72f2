package types

// ToolType 定义玩家工具类型
type ToolType int

const (
	// ToolAxe 斧头：砍树
	ToolAxe ToolType = iota
	// ToolWater 水壶：浇水
	ToolWater
	// ToolHoe 锄头：翻土
	ToolHoe
)

// AllTools 玩家可循环选择的工具顺序
var AllTools = []ToolType{ToolAxe, ToolWater, ToolHoe}

// String 返回工具类型的字符串表示
func (t ToolType) String() string {
	switch t {
	case ToolAxe:
		return "axe"
	case ToolWater:
		return "water"
	case ToolHoe:
		return "hoe"
	default:
		return "unknown"
	}
}

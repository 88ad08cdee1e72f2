// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// SeedType 定义作物种子的类型
type SeedType int

const (
	// SeedCorn 玉米
	SeedCorn SeedType = iota
	// SeedTomato 番茄
	SeedTomato

	// SeedTypeCount 种子类型数量（用于定长配置表）
	SeedTypeCount
)

// AllSeeds 玩家可循环选择的种子顺序
var AllSeeds = []SeedType{SeedCorn, SeedTomato}

// String 返回种子类型的字符串表示（同时也是收获物品的ID）
func (s SeedType) String() string {
	switch s {
	case SeedCorn:
		return "corn"
	case SeedTomato:
		return "tomato"
	default:
		return "unknown"
	}
}

// ParseSeedType 将字符串解析为种子类型
func ParseSeedType(name string) (SeedType, error) {
	for _, s := range AllSeeds {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown seed type %q", name)
}

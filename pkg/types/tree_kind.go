package types

import "fmt"

// TreeKind 树木尺寸种类
type TreeKind int

const (
	// TreeSmall 小树
	TreeSmall TreeKind = iota
	// TreeLarge 大树
	TreeLarge

	// TreeKindCount 树木种类数量
	TreeKindCount
)

// String 返回树木种类名称（与地图对象名一致）
func (k TreeKind) String() string {
	switch k {
	case TreeSmall:
		return "Small"
	case TreeLarge:
		return "Large"
	default:
		return "Unknown"
	}
}

// ParseTreeKind 将地图对象名解析为树木种类
func ParseTreeKind(name string) (TreeKind, error) {
	switch name {
	case "Small":
		return TreeSmall, nil
	case "Large":
		return TreeLarge, nil
	}
	return 0, fmt.Errorf("unknown tree kind %q", name)
}

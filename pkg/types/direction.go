package types

// Direction 玩家朝向
type Direction int

const (
	DirDown Direction = iota
	DirUp
	DirLeft
	DirRight

	// DirectionCount 朝向数量
	DirectionCount
)

// String 返回朝向名称（也是动画状态名前缀，如 "down_idle"）
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "down"
	}
}

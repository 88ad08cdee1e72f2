package components

// Intent 单帧玩家意图快照
//
// 方向和工具/种子动作为按住状态（由玩家的动作计时器限速），
// Interact 为脉冲（仅在按下的那一帧为 true）。
// 模拟核心只读取意图，不直接访问输入设备。
type Intent struct {
	Up, Down, Left, Right bool

	Primary   bool // 使用工具
	Secondary bool // 播种
	CycleTool bool
	CycleSeed bool
	Interact  bool
}

// Direction 返回未归一化的方向向量
func (i Intent) Direction() (float64, float64) {
	var dx, dy float64
	if i.Left {
		dx--
	}
	if i.Right {
		dx++
	}
	if i.Up {
		dy--
	}
	if i.Down {
		dy++
	}
	return dx, dy
}

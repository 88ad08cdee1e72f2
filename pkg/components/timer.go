package components

// Timer 一次性倒计时器
//
// 用于门控玩家动作（工具/种子使用、切换冷却）和树木的短暂无敌窗口。
// 计时器由所属系统每帧推进一次，且必须在被它门控的动作检查之前推进。
//
// 去抖语义: 在某帧触发完成的计时器，在同一帧内调用 Activate 无效，
// 因此同一帧内不会被重新触发。Deactivate 后回调永远不会被调用。
type Timer struct {
	Duration   float64 // 持续时间（秒）
	OnComplete func()  // 完成回调，可为 nil

	active    bool
	elapsed   float64
	justFired bool
}

// NewTimer 创建计时器
func NewTimer(duration float64, onComplete func()) *Timer {
	return &Timer{Duration: duration, OnComplete: onComplete}
}

// Activate 开始倒计时（已在运行时重新计时）
// 本帧刚刚触发过的计时器不会被重新激活
func (t *Timer) Activate() {
	if t.justFired {
		return
	}
	t.active = true
	t.elapsed = 0
}

// Deactivate 取消计时，回调不会触发
func (t *Timer) Deactivate() {
	t.active = false
	t.elapsed = 0
}

// Active 返回计时器是否正在运行
func (t *Timer) Active() bool {
	return t.active
}

// JustFired 返回计时器是否在最近一次 Update 中触发
func (t *Timer) JustFired() bool {
	return t.justFired
}

// Elapsed 返回当前已计时长（秒）
func (t *Timer) Elapsed() float64 {
	return t.elapsed
}

// Update 推进计时器
//
// 到期时先停止计时，再调用回调；返回本次是否触发。
func (t *Timer) Update(dt float64) bool {
	t.justFired = false
	if !t.active {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.Duration {
		return false
	}
	t.active = false
	t.elapsed = 0
	t.justFired = true
	if t.OnComplete != nil {
		t.OnComplete()
	}
	return true
}

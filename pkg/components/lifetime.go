package components

// LifetimeComponent 限时实体（粒子、雨滴）
// 存在时间达到 MaxLifetime 后由 LifetimeSystem 销毁
type LifetimeComponent struct {
	MaxLifetime     float64 // 秒
	CurrentLifetime float64
	IsExpired       bool
}

// VelocityComponent 匀速运动（像素/秒）
type VelocityComponent struct {
	VX, VY float64
}

// RainDropComponent 雨滴
// Floor 为 true 表示落地水花（不移动），否则为下落中的雨滴
type RainDropComponent struct {
	Floor bool
}

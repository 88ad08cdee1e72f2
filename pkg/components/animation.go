package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationComponent 帧动画
//
// Frames 按状态名分组（如 "down_idle"、"left_hoe"、"water"），
// 每帧把当前帧写入 SpriteComponent.Image。
// 某状态没有帧时保持原图不变（占位绘制时即如此）。
type AnimationComponent struct {
	Frames map[string][]*ebiten.Image
	State  string
	FPS    float64
	// FrameIndex 连续帧索引，取整后为当前帧
	FrameIndex float64
}

// CurrentFrames 返回当前状态的帧序列
func (a *AnimationComponent) CurrentFrames() []*ebiten.Image {
	return a.Frames[a.State]
}

package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 可由 SceneManager 切换的场景
type Scene interface {
	// Update 推进一帧，deltaTime 为秒
	Update(deltaTime float64)

	// Draw 绘制到 screen
	Draw(screen *ebiten.Image)
}

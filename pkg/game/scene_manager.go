package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager 持有当前场景，同一时间只有一个场景被更新和绘制
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager 创建没有活动场景的管理器
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo 切换活动场景，nil 表示清空
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Update 推进活动场景
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Update(deltaTime)
}

// Draw 绘制活动场景
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene == nil {
		return
	}
	sm.currentScene.Draw(screen)
}

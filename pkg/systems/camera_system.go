package systems

import (
	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/ecs"
)

// CameraSystem 跟随镜头
//
// 偏移量 = 跟随实体显示矩形中心 - 视口尺寸的一半。
// 偏移不受地图边界限制，地图边缘会露出地图外的背景。
type CameraSystem struct {
	entityManager *ecs.EntityManager
	cameraEntity  ecs.EntityID
}

// NewCameraSystem 创建镜头系统（同时创建镜头实体）
func NewCameraSystem(em *ecs.EntityManager, target ecs.EntityID, viewportW, viewportH float64) *CameraSystem {
	cs := &CameraSystem{entityManager: em}
	cs.cameraEntity = em.CreateEntity()
	ecs.AddComponent(em, cs.cameraEntity, &components.CameraComponent{
		Target:         target,
		ViewportWidth:  viewportW,
		ViewportHeight: viewportH,
	})
	return cs
}

// SetTarget 切换跟随的实体
func (cs *CameraSystem) SetTarget(target ecs.EntityID) {
	if cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity); ok {
		cam.Target = target
	}
}

// Update 根据跟随实体的当前位置重新计算偏移
// 必须在碰撞解析之后调用，保证使用本帧的最终位置
func (cs *CameraSystem) Update() {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return
	}
	rect, ok := ecs.GetComponent[*components.RectComponent](cs.entityManager, cam.Target)
	if !ok {
		return
	}
	cam.OffsetX = rect.Rect.CenterX() - cam.ViewportWidth/2
	cam.OffsetY = rect.Rect.CenterY() - cam.ViewportHeight/2
}

// Offset 返回当前偏移
func (cs *CameraSystem) Offset() (float64, float64) {
	cam, ok := ecs.GetComponent[*components.CameraComponent](cs.entityManager, cs.cameraEntity)
	if !ok {
		return 0, 0
	}
	return cam.OffsetX, cam.OffsetY
}

// WorldToScreen 世界坐标转屏幕坐标
func (cs *CameraSystem) WorldToScreen(x, y float64) (float64, float64) {
	ox, oy := cs.Offset()
	return x - ox, y - oy
}

// ScreenToWorld 屏幕坐标转世界坐标
func (cs *CameraSystem) ScreenToWorld(x, y float64) (float64, float64) {
	ox, oy := cs.Offset()
	return x + ox, y + oy
}

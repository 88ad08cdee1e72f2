package systems

import (
	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/ecs"
)

// AnimationSystem 管理所有实体的帧动画（水面、玩家）
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// Update 更新所有动画实体的帧
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		frames := anim.CurrentFrames()
		if len(frames) == 0 {
			continue
		}

		anim.FrameIndex += anim.FPS * deltaTime
		if int(anim.FrameIndex) >= len(frames) {
			anim.FrameIndex = 0
		}
		sprite.Image = frames[int(anim.FrameIndex)]
	}
}

// SetState 切换动画状态，状态变化时从第0帧开始
func (s *AnimationSystem) SetState(id ecs.EntityID, state string) {
	anim, ok := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
	if !ok || anim.State == state {
		return
	}
	anim.State = state
	anim.FrameIndex = 0
}

package systems

import (
	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/ecs"
)

// LifetimeSystem 推进匀速运动的实体，并销毁到期的限时实体（粒子、雨滴）
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 先移动再计时，到期的实体在本帧被标记删除
func (s *LifetimeSystem) Update(deltaTime float64) {
	s.move(deltaTime)
	s.expire(deltaTime)
}

func (s *LifetimeSystem) move(dt float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.VelocityComponent, *components.RectComponent](s.entityManager) {
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.entityManager, id)
		rect, _ := ecs.GetComponent[*components.RectComponent](s.entityManager, id)
		rect.Rect = rect.Rect.Translate(vel.VX*dt, vel.VY*dt)
	}
}

func (s *LifetimeSystem) expire(dt float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager) {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		lifetime, _ := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		lifetime.CurrentLifetime += dt
		if lifetime.CurrentLifetime >= lifetime.MaxLifetime {
			lifetime.IsExpired = true
			s.entityManager.DestroyEntity(id)
		}
	}
}

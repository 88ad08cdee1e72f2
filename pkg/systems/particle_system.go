package systems

import (
	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/ecs"
)

// ParticleSystem 推进残影粒子的淡出
// 销毁由 LifetimeSystem 负责
type ParticleSystem struct {
	entityManager *ecs.EntityManager
}

// NewParticleSystem 创建粒子系统
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{entityManager: em}
}

// Update 更新所有粒子的透明度
func (s *ParticleSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.SpriteComponent](s.entityManager) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if p.Fade == nil {
			continue
		}
		alpha, _ := p.Fade.Update(float32(deltaTime))
		sprite.Alpha = float64(alpha)
	}
}

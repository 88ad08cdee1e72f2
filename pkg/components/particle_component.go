package components

import "github.com/tanema/gween"

// ParticleComponent 被摧毁物体的闪白残影
// Fade 驱动 SpriteComponent.Alpha 从 1 渐变到 0
type ParticleComponent struct {
	Fade *gween.Tween
}

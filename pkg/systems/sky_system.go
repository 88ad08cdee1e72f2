package systems

import (
	"github.com/decker502/sunvale/pkg/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SkySystem 昼夜色调
//
// 每天从白色开始，三个通道各自以 DimSpeed（单位/秒）线性降到夜晚色调，
// 到达后停住。色调以乘法方式作用于整个世界画面。
type SkySystem struct {
	config config.SkyConfig
	tweens [3]*gween.Tween
	tint   [3]float64 // 0-255
}

// NewSkySystem 创建色调系统（初始为白天）
func NewSkySystem(cfg config.SkyConfig) *SkySystem {
	s := &SkySystem{config: cfg}
	s.Reset()
	return s
}

// Reset 恢复为白色并重新开始变暗
func (s *SkySystem) Reset() {
	for i := range s.tweens {
		s.tint[i] = 255
		target, duration := s.config.NightColor[i], 1.0
		switch {
		case s.config.DimSpeed <= 0 || target >= 255:
			target = 255
		default:
			duration = (255 - target) / s.config.DimSpeed
		}
		s.tweens[i] = gween.New(255, float32(target), float32(duration), ease.Linear)
	}
}

// Update 推进色调变化
func (s *SkySystem) Update(dt float64) {
	for i, tw := range s.tweens {
		v, _ := tw.Update(float32(dt))
		s.tint[i] = float64(v)
	}
}

// Tint 返回当前色调（0-255）
func (s *SkySystem) Tint() [3]float64 {
	return s.tint
}

// ColorScale 返回当前色调的乘法系数（0-1）
func (s *SkySystem) ColorScale() (r, g, b float32) {
	return float32(s.tint[0] / 255), float32(s.tint[1] / 255), float32(s.tint[2] / 255)
}

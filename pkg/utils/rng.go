package utils

import "math/rand/v2"

// RNG 是对 math/rand/v2 的薄封装，支持固定种子以便测试复现
type RNG struct {
	r *rand.Rand
}

// NewRNG 使用给定种子创建确定性的随机数生成器
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0x5eed))}
}

// Float64 返回 [0, 1) 的随机数
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// IntN 返回 [0, n) 的随机整数，n <= 0 时返回 0
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.r.IntN(n)
}

// Range 返回 [min, max) 的随机浮点数
func (r *RNG) Range(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.r.Float64()*(max-min)
}

// Chance 以概率 p 返回 true
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

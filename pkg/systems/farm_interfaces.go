package systems

import "errors"

// ErrInvalidCellAddress 世界坐标落在农田网格之外
// 农田是固定的有限区域，越界坐标直接拒绝，不做截断
var ErrInvalidCellAddress = errors.New("invalid cell address")

// WeatherState 天气信号（由外部的日夜循环持有）
type WeatherState interface {
	IsRaining() bool
}

// SeedSupply 种子库存
// Take 成功时消耗一颗种子并返回 true；nil SeedSupply 表示种子无限
type SeedSupply interface {
	Take(seed string) bool
}

// WeatherControl 可由日夜循环修改的天气
type WeatherControl interface {
	WeatherState
	SetRaining(raining bool)
}

// Sleeper 过夜结束后被唤醒的一方
type Sleeper interface {
	Wake()
}

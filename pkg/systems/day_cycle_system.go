package systems

import (
	"log"

	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/events"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type dayPhase int

const (
	phaseDay dayPhase = iota
	phaseFadeOut
	phaseFadeIn
)

// DayCycleSystem 睡觉过夜
//
// 玩家上床后画面淡出到全黑，全黑时执行新一天的重置，再淡入并唤醒玩家。
// 重置顺序: 作物生长 → 掷骰决定是否下雨 → 下雨浇湿全部土地/否则清除浇水 →
// 树木重新结果 → 天空色调复位 → 发布 DayStarted。
type DayCycleSystem struct {
	config  *config.FarmConfig
	soil    *SoilSystem
	trees   *TreeSystem
	sky     *SkySystem
	weather WeatherControl
	sleeper Sleeper
	bus     *events.Bus
	rng     *utils.RNG

	phase      dayPhase
	fade       *gween.Tween
	brightness float64
	day        int
}

// NewDayCycleSystem 创建日夜循环系统，从第 1 天开始
// sky、sleeper、bus 可为 nil
func NewDayCycleSystem(cfg *config.FarmConfig, soil *SoilSystem, trees *TreeSystem, sky *SkySystem, weather WeatherControl, sleeper Sleeper, bus *events.Bus, rng *utils.RNG) *DayCycleSystem {
	return &DayCycleSystem{
		config:     cfg,
		soil:       soil,
		trees:      trees,
		sky:        sky,
		weather:    weather,
		sleeper:    sleeper,
		bus:        bus,
		rng:        rng,
		brightness: 1,
		day:        1,
	}
}

// Sleep 开始过夜（已在过夜中时忽略）
func (s *DayCycleSystem) Sleep() {
	if s.phase != phaseDay {
		return
	}
	s.phase = phaseFadeOut
	s.fade = gween.New(1, 0, float32(s.transitionTime()), ease.Linear)
}

// Sleeping 是否正在过夜
func (s *DayCycleSystem) Sleeping() bool {
	return s.phase != phaseDay
}

// Brightness 过夜淡入淡出的亮度系数（0-1）
func (s *DayCycleSystem) Brightness() float64 {
	return s.brightness
}

// Day 当前天数
func (s *DayCycleSystem) Day() int {
	return s.day
}

// Update 推进淡入淡出
func (s *DayCycleSystem) Update(dt float64) {
	if s.phase == phaseDay {
		return
	}

	v, done := s.fade.Update(float32(dt))
	s.brightness = float64(v)
	if !done {
		return
	}

	switch s.phase {
	case phaseFadeOut:
		s.Reset()
		s.phase = phaseFadeIn
		s.fade = gween.New(0, 1, float32(s.transitionTime()), ease.Linear)
	case phaseFadeIn:
		s.phase = phaseDay
		s.brightness = 1
		if s.sleeper != nil {
			s.sleeper.Wake()
		}
	}
}

// Reset 开始新的一天
func (s *DayCycleSystem) Reset() {
	s.soil.AdvanceGrowth()

	raining := s.rng.Chance(s.config.Weather.RainChance)
	s.weather.SetRaining(raining)
	if raining {
		s.soil.IrrigateAll()
	} else {
		s.soil.ClearIrrigation()
	}

	if s.trees != nil {
		s.trees.RegrowAll()
	}
	if s.sky != nil {
		s.sky.Reset()
	}

	s.day++
	log.Printf("[DayCycleSystem] 第 %d 天，下雨: %v", s.day, raining)
	s.bus.StartDay(s.day, raining)
}

func (s *DayCycleSystem) transitionTime() float64 {
	if s.config.Sky.TransitionTime <= 0 {
		return 0.01
	}
	return s.config.Sky.TransitionTime
}

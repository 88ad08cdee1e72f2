package systems

import (
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/entities"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// RainSystem 下雨时每帧生成一个落地水花和一个下落雨滴
// 雨滴的位置在地图范围内均匀随机，由 LifetimeSystem 推进和销毁
type RainSystem struct {
	entityManager *ecs.EntityManager
	config        config.RainConfig
	weather       WeatherState
	rng           *utils.RNG

	floorImages []*ebiten.Image
	dropImages  []*ebiten.Image

	mapWidth  float64
	mapHeight float64
}

// NewRainSystem 创建下雨系统
// mapWidth/mapHeight 为地图像素尺寸
func NewRainSystem(em *ecs.EntityManager, cfg config.RainConfig, rl entities.ResourceLoader, weather WeatherState, rng *utils.RNG, mapWidth, mapHeight float64) *RainSystem {
	s := &RainSystem{
		entityManager: em,
		config:        cfg,
		weather:       weather,
		rng:           rng,
		mapWidth:      mapWidth,
		mapHeight:     mapHeight,
	}
	if rl != nil {
		s.floorImages = rl.GetFrames("rain/floor")
		s.dropImages = rl.GetFrames("rain/drops")
	}
	return s
}

// Update 下雨时生成雨滴
func (s *RainSystem) Update() {
	if s.weather == nil || !s.weather.IsRaining() {
		return
	}
	s.spawnFloor()
	s.spawnDrop()
}

func (s *RainSystem) spawnFloor() {
	x, y := s.randomPosition()
	entities.NewRainDropEntity(s.entityManager, s.pick(s.floorImages), x, y, true, s.lifetime(), 0, 0)
}

func (s *RainSystem) spawnDrop() {
	x, y := s.randomPosition()
	speed := s.rng.Range(s.config.SpeedMin, s.config.SpeedMax)
	vx := s.config.DirectionX * speed
	vy := s.config.DirectionY * speed
	entities.NewRainDropEntity(s.entityManager, s.pick(s.dropImages), x, y, false, s.lifetime(), vx, vy)
}

func (s *RainSystem) randomPosition() (float64, float64) {
	return s.rng.Range(0, s.mapWidth), s.rng.Range(0, s.mapHeight)
}

func (s *RainSystem) lifetime() float64 {
	return s.rng.Range(s.config.LifetimeMin, s.config.LifetimeMax)
}

func (s *RainSystem) pick(images []*ebiten.Image) *ebiten.Image {
	if len(images) == 0 {
		return nil
	}
	return images[s.rng.IntN(len(images))]
}

package scenes

import (
	"log"
	"strings"

	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/entities"
	"github.com/decker502/sunvale/pkg/types"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// buildWorld 读取地图布局并创建全部静态实体、树木和玩家
// layout 为 nil 时只创建一个屏幕大小的空世界和玩家
func (s *FarmScene) buildWorld(layout config.LayoutSource, rl entities.ResourceLoader) {
	if layout == nil {
		log.Printf("[FarmScene] Warning: 没有地图布局，使用空世界")
		s.mapWidth, s.mapHeight = float64(s.config.ScreenWidth), float64(s.config.ScreenHeight)
		s.soilSystem.InitGrid(0, 0, nil)
		s.playerEntity = entities.NewPlayerEntity(s.entityManager, rl, s.mapWidth/2, s.mapHeight/2, s.config.Player)
		return
	}

	cols, rows := layout.Size()
	cell := layout.CellSize()
	if cell != s.config.TileSize {
		log.Printf("[FarmScene] Warning: 地图格子 %.0f 与配置 tileSize %.0f 不一致，农田按配置计算", cell, s.config.TileSize)
	}
	s.mapWidth, s.mapHeight = float64(cols)*cell, float64(rows)*cell

	s.initTiles(layout, rl, cell)
	s.initObstacles(layout, rl, cell)

	farmable, _ := layout.TileLayer(config.LayerNameFarmable)
	s.soilSystem.InitGrid(cols, rows, farmable)

	s.initDecorations(layout, rl)
	s.initTrees(layout)
	s.initPlayer(layout, rl)
}

// tileImage 瓦片图片: graphics/tiles/<layer>_<visual>.png
func tileImage(rl entities.ResourceLoader, layer string, visual rune) *ebiten.Image {
	if rl == nil {
		return nil
	}
	return rl.GetImage("tiles/" + strings.ToLower(layer) + "_" + string(visual))
}

// initTiles 地面、房屋地板和家具底部（只绘制，不阻挡）
func (s *FarmScene) initTiles(layout config.LayoutSource, rl entities.ResourceLoader, cell float64) {
	layers := []struct {
		name  string
		layer int
	}{
		{config.LayerNameGround, config.LayerGround},
		{config.LayerNameHouseFloor, config.LayerHouseBottom},
		{config.LayerNameHouseFurniture, config.LayerHouseBottom},
	}
	for _, l := range layers {
		tiles, ok := layout.TileLayer(l.name)
		if !ok {
			log.Printf("[FarmScene] Warning: 地图缺少图层 %s", l.name)
			continue
		}
		c := entities.ColorGround
		if l.layer == config.LayerHouseBottom {
			c = entities.ColorHouse
		}
		for _, t := range tiles {
			rect := utils.TileRect(t.Col, t.Row, cell)
			entities.NewTileEntity(s.entityManager, tileImage(rl, l.name, t.Visual), rect, l.layer, c)
		}
	}

	water, _ := layout.TileLayer(config.LayerNameWater)
	for _, t := range water {
		entities.NewWaterEntity(s.entityManager, rl, utils.TileRect(t.Col, t.Row, cell))
	}
}

// initObstacles 墙体、栅栏和不可见碰撞格
func (s *FarmScene) initObstacles(layout config.LayoutSource, rl entities.ResourceLoader, cell float64) {
	walls, _ := layout.TileLayer(config.LayerNameHouseWalls)
	for _, t := range walls {
		rect := utils.TileRect(t.Col, t.Row, cell)
		entities.NewObstacleEntity(s.entityManager, tileImage(rl, config.LayerNameHouseWalls, t.Visual),
			rect, config.LayerMain, entities.ColorHouse, "wall")
	}

	fences, _ := layout.TileLayer(config.LayerNameFence)
	for _, t := range fences {
		rect := utils.TileRect(t.Col, t.Row, cell)
		entities.NewObstacleEntity(s.entityManager, tileImage(rl, config.LayerNameFence, t.Visual),
			rect, config.LayerMain, entities.ColorFence, "fence")
	}

	blocked, _ := layout.TileLayer(config.LayerNameCollision)
	for _, t := range blocked {
		entities.NewCollisionEntity(s.entityManager, utils.TileRect(t.Col, t.Row, cell))
	}
}

func (s *FarmScene) initDecorations(layout config.LayoutSource, rl entities.ResourceLoader) {
	objects, _ := layout.ObjectLayer(config.ObjectLayerDecoration)
	for _, obj := range objects {
		w, h := obj.Width, obj.Height
		if w == 0 || h == 0 {
			w, h = s.config.TileSize, s.config.TileSize
		}
		entities.NewWildflowerEntity(s.entityManager, rl, obj.Name, obj.X, obj.Y, w, h)
	}
}

func (s *FarmScene) initTrees(layout config.LayoutSource) {
	objects, _ := layout.ObjectLayer(config.ObjectLayerTrees)
	for _, obj := range objects {
		kind, err := types.ParseTreeKind(obj.Name)
		if err != nil {
			log.Printf("[FarmScene] Warning: 跳过树木 (%.0f, %.0f): %v", obj.X, obj.Y, err)
			continue
		}
		s.treeSystem.SpawnTree(kind, obj.X, obj.Y)
	}
}

// initPlayer 玩家出生点和交互区域（床、商人）
// 没有 Start 标记时玩家出生在地图中央
func (s *FarmScene) initPlayer(layout config.LayoutSource, rl entities.ResourceLoader) {
	cx, cy := s.mapWidth/2, s.mapHeight/2
	if start, ok := config.FindObject(layout, config.ObjectLayerPlayer, config.MarkerStart); ok {
		cx, cy = start.X+start.Width/2, start.Y+start.Height/2
	} else {
		log.Printf("[FarmScene] Warning: 地图没有 %s 标记，玩家出生在地图中央", config.MarkerStart)
	}
	s.playerEntity = entities.NewPlayerEntity(s.entityManager, rl, cx, cy, s.config.Player)

	for _, marker := range []string{config.MarkerBed, config.MarkerTrader} {
		obj, ok := config.FindObject(layout, config.ObjectLayerPlayer, marker)
		if !ok {
			continue
		}
		entities.NewInteractionEntity(s.entityManager, marker, utils.NewRect(obj.X, obj.Y, obj.Width, obj.Height))
	}
}

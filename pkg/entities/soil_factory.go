package entities

import (
	"fmt"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/types"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// NewSoilTileEntity 创建土块贴图实体
// variant 为邻接字母组合，对应素材 "soil/<variant>"
func NewSoilTileEntity(em *ecs.EntityManager, rl ResourceLoader, col, row int, tileSize float64, variant string) ecs.EntityID {
	id := em.CreateEntity()
	img := getImage(rl, "soil/"+variant)

	ecs.AddComponent(em, id, &components.RectComponent{Rect: utils.TileRect(col, row, tileSize)})
	ecs.AddComponent(em, id, newSprite(img, ColorSoil))
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: config.LayerSoil})
	ecs.AddComponent(em, id, &components.SoilTileComponent{Col: col, Row: row, Variant: variant})
	return id
}

// NewWaterTileEntity 创建浇水贴图实体
// frame 用于从 "soil_water" 帧目录中挑选一张（调用方随机给出）
func NewWaterTileEntity(em *ecs.EntityManager, rl ResourceLoader, col, row int, tileSize float64, frame int) ecs.EntityID {
	id := em.CreateEntity()

	var sprite *components.SpriteComponent
	if frames := getFrames(rl, "soil_water"); len(frames) > 0 {
		sprite = newSprite(frames[frame%len(frames)], ColorSoilWater)
	} else {
		sprite = newSprite(nil, ColorSoilWater)
	}

	ecs.AddComponent(em, id, &components.RectComponent{Rect: utils.TileRect(col, row, tileSize)})
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: config.LayerSoilWater})
	ecs.AddComponent(em, id, &components.WaterTileComponent{Col: col, Row: row})
	return id
}

// NewPlantEntity 创建作物实体
//
// 作物锚定在土块底边中点，再加上作物种类的纵向偏移；
// 初始位于地面作物层，成长后由 SoilSystem 提升到主层。
func NewPlantEntity(em *ecs.EntityManager, rl ResourceLoader, seed types.SeedType, sc config.SeedConfig, col, row int, tileSize float64) ecs.EntityID {
	id := em.CreateEntity()

	plant := &components.PlantComponent{
		Seed:      seed,
		Col:       col,
		Row:       row,
		MaxAge:    sc.MaxAge,
		GrowSpeed: sc.GrowSpeed,
		YOffset:   sc.YOffset,
		Frames:    getFrames(rl, fmt.Sprintf("fruit/%s", seed)),
	}
	img, w, h := PlantStageImage(plant.Frames, sc, 0)

	ecs.AddComponent(em, id, &components.RectComponent{Rect: PlantRect(col, row, tileSize, sc.YOffset, w, h)})
	ecs.AddComponent(em, id, newSprite(img, ColorPlant))
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: config.LayerGroundPlant})
	ecs.AddComponent(em, id, plant)
	return id
}

// PlantStageImage 返回生长阶段对应的图片和显示尺寸
// 没有素材时占位矩形随阶段变大
func PlantStageImage(frames []*ebiten.Image, sc config.SeedConfig, stage int) (*ebiten.Image, float64, float64) {
	if len(frames) > 0 {
		if stage >= len(frames) {
			stage = len(frames) - 1
		}
		img := frames[stage]
		w, h := imageSize(img, 0, 0)
		return img, w, h
	}
	frac := float64(stage+1) / (sc.MaxAge + 1)
	return nil, sc.Width * frac, sc.Height * frac
}

// PlantRect 计算作物显示矩形: 底边中点 = 土块底边中点 + (0, yOffset)
func PlantRect(col, row int, tileSize, yOffset, w, h float64) utils.Rect {
	soil := utils.TileRect(col, row, tileSize)
	mx, by := soil.MidBottom()
	return utils.RectFromMidBottom(mx, by+yOffset, w, h)
}

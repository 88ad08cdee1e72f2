package entities

import (
	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/types"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// 玩家动画状态后缀
var playerAnimationSuffixes = []string{"", "_idle", "_axe", "_water", "_hoe"}

// NewPlayerEntity 创建玩家实体
//
// 参数:
//   - cx, cy: 显示矩形中心（地图 Start 标记位置）
//   - pc: 玩家配置（速度、尺寸、碰撞盒收缩、动作计时）
//
// 动作计时器不带回调，由 PlayerSystem 根据 Update 的返回值执行动作。
func NewPlayerEntity(em *ecs.EntityManager, rl ResourceLoader, cx, cy float64, pc config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()

	frames := make(map[string][]*ebiten.Image)
	for dir := types.Direction(0); dir < types.DirectionCount; dir++ {
		for _, suffix := range playerAnimationSuffixes {
			state := dir.String() + suffix
			if f := getFrames(rl, "character/"+state); len(f) > 0 {
				frames[state] = f
			}
		}
	}

	sprite := newSprite(nil, ColorPlayer)
	if f := frames["down_idle"]; len(f) > 0 {
		sprite.Image = f[0]
	}

	rect := utils.RectFromCenter(cx, cy, pc.Width, pc.Height)

	ecs.AddComponent(em, id, &components.RectComponent{Rect: rect})
	ecs.AddComponent(em, id, sprite)
	ecs.AddComponent(em, id, &components.DepthComponent{Layer: config.LayerMain})
	ecs.AddComponent(em, id, &components.CollisionComponent{Hitbox: rect.Inflate(-pc.HitboxInsetX, -pc.HitboxInsetY)})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		Frames: frames,
		State:  "down_idle",
		FPS:    pc.AnimationFPS,
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Facing:     types.DirDown,
		Speed:      pc.Speed,
		ToolUse:    components.NewTimer(pc.ToolUseDuration, nil),
		SeedUse:    components.NewTimer(pc.SeedUseDuration, nil),
		ToolSwitch: components.NewTimer(pc.SwitchCooldown, nil),
		SeedSwitch: components.NewTimer(pc.SwitchCooldown, nil),
	})
	return id
}

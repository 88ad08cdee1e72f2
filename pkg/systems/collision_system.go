package systems

import (
	"math"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/utils"
)

// collisionEpsilon 贴边后浮点舍入产生的微小重叠仍视为"在前方"
const collisionEpsilon = 1e-6

// ResolveMovement 分轴移动碰撞盒
//
// 先应用水平位移，与所有挡在前方的障碍物比较，把前沿贴到障碍物的后沿
// （多个障碍物时取限制最严的位置）；再独立地处理垂直位移。
// 轴的顺序固定为先水平后垂直，斜向撞角的结果因此是确定的。
//
// 前方的障碍物用本轴的扫掠区域（起点到终点）检测，单帧位移大于障碍物厚度时也不会穿透；
// 移动前已经重叠的障碍物用移动后的位置检测，同样按移动方向贴边，实体被推出障碍物。
// 重叠判定是严格的: 仅共享边不算重叠，贴边后的碰撞盒可以沿障碍物滑动。
//
// 参数:
//   - hitbox: 移动前的碰撞盒
//   - dx, dy: 本帧期望位移
//   - obstacles: 静态障碍物碰撞盒
//
// 返回:
//   - utils.Rect: 解析后的碰撞盒
func ResolveMovement(hitbox utils.Rect, dx, dy float64, obstacles []utils.Rect) utils.Rect {
	if dx != 0 {
		hitbox.X = resolveAxis(hitbox, dx, obstacles, true)
	}
	if dy != 0 {
		hitbox.Y = resolveAxis(hitbox, dy, obstacles, false)
	}
	return hitbox
}

// resolveAxis 返回沿一个轴移动 delta 并解析碰撞后的坐标（X 或 Y）
func resolveAxis(start utils.Rect, delta float64, obstacles []utils.Rect, horizontal bool) float64 {
	swept := start
	if horizontal {
		swept.W += math.Abs(delta)
		swept.X = math.Min(start.X, start.X+delta)
	} else {
		swept.H += math.Abs(delta)
		swept.Y = math.Min(start.Y, start.Y+delta)
	}

	moved := start
	var pos float64
	if horizontal {
		pos = start.X + delta
		moved.X = pos
	} else {
		pos = start.Y + delta
		moved.Y = pos
	}

	for _, o := range obstacles {
		var ahead bool
		switch {
		case horizontal && delta > 0:
			ahead = o.Left() >= start.Right()-collisionEpsilon
		case horizontal:
			ahead = o.Right() <= start.Left()+collisionEpsilon
		case delta > 0:
			ahead = o.Top() >= start.Bottom()-collisionEpsilon
		default:
			ahead = o.Bottom() <= start.Top()+collisionEpsilon
		}
		// 已经重叠的障碍物只看移动后的位置
		area := moved
		if ahead {
			area = swept
		}
		if !area.Overlaps(o) {
			continue
		}

		switch {
		case horizontal && delta > 0:
			pos = math.Min(pos, o.Left()-start.W)
		case horizontal:
			pos = math.Max(pos, o.Right())
		case delta > 0:
			pos = math.Min(pos, o.Top()-start.H)
		default:
			pos = math.Max(pos, o.Bottom())
		}
	}
	return pos
}

// CollisionSystem 负责移动实体并与静态障碍物做碰撞解析
type CollisionSystem struct {
	entityManager *ecs.EntityManager
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager) *CollisionSystem {
	return &CollisionSystem{entityManager: em}
}

// Obstacles 返回除 exclude 以外所有实体的碰撞盒（按实体创建顺序）
func (s *CollisionSystem) Obstacles(exclude ecs.EntityID) []utils.Rect {
	ids := ecs.GetEntitiesWith1[*components.CollisionComponent](s.entityManager)
	obstacles := make([]utils.Rect, 0, len(ids))
	for _, id := range ids {
		if id == exclude || s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		obstacles = append(obstacles, col.Hitbox)
	}
	return obstacles
}

// Move 按方向移动实体
//
// 方向先归一化（斜向移动不会更快），再乘以 speed*dt 得到位移；
// 碰撞盒是位置的权威来源，解析后显示矩形以碰撞盒中心重新定位。
// 返回实际移动后的碰撞盒。
func (s *CollisionSystem) Move(id ecs.EntityID, dirX, dirY, speed, dt float64) utils.Rect {
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	if !ok {
		return utils.Rect{}
	}

	if mag := math.Hypot(dirX, dirY); mag > 0 {
		dirX /= mag
		dirY /= mag
	}
	dx := dirX * speed * dt
	dy := dirY * speed * dt
	if dx == 0 && dy == 0 {
		return col.Hitbox
	}

	col.Hitbox = ResolveMovement(col.Hitbox, dx, dy, s.Obstacles(id))

	if rect, ok := ecs.GetComponent[*components.RectComponent](s.entityManager, id); ok {
		rect.Rect = rect.Rect.WithCenter(col.Hitbox.CenterX(), col.Hitbox.CenterY())
	}
	return col.Hitbox
}

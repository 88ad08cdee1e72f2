package utils

// Rect 是轴对齐矩形（世界坐标，原点左上角，Y 轴向下）
//
// 显示矩形和碰撞矩形都使用此类型；两者彼此独立，
// 碰撞矩形通常由显示矩形 Inflate 收缩得到。
type Rect struct {
	X, Y, W, H float64
}

// NewRect 创建矩形
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter 以中心点创建矩形
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// RectFromMidBottom 以底边中点创建矩形
func RectFromMidBottom(mx, by, w, h float64) Rect {
	return Rect{X: mx - w/2, Y: by - h, W: w, H: h}
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// MidBottom 返回底边中点
func (r Rect) MidBottom() (float64, float64) {
	return r.CenterX(), r.Bottom()
}

// Contains 判断点是否在矩形内
// 左/上边包含，右/下边不包含，相邻格子不会同时命中同一个点
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W &&
		y >= r.Y && y < r.Y+r.H
}

// Overlaps 判断两个矩形是否有面积重叠
// 仅共享一条边的矩形不算重叠（碰撞修正后贴边的状态必须被视为"未碰撞"）
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Inflate 以中心为基准扩张（负值为收缩）矩形
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, W: r.W + dw, H: r.H + dh}
}

// WithCenter 返回中心移动到 (cx, cy) 的同尺寸矩形
func (r Rect) WithCenter(cx, cy float64) Rect {
	return RectFromCenter(cx, cy, r.W, r.H)
}

// Translate 平移矩形
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

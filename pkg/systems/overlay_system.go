package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/sunvale/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// InventoryView HUD 读取的库存视图
type InventoryView interface {
	Money() int
	Count(item string) int
	SeedCount(seed string) int
}

var (
	overlayPanelColor = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	overlayTextColor  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

const (
	overlayPadding    = 8
	overlayLineHeight = 16
)

// OverlaySystem 屏幕左上角的状态面板（工具、种子、天数、库存）
type OverlaySystem struct {
	player    *PlayerSystem
	day       *DayCycleSystem
	weather   WeatherState
	inventory InventoryView
	face      *text.GoXFace

	// ShopOpen 商人面板是否打开
	ShopOpen bool
}

// NewOverlaySystem 创建 HUD，inventory 可为 nil
func NewOverlaySystem(player *PlayerSystem, day *DayCycleSystem, weather WeatherState, inventory InventoryView) *OverlaySystem {
	return &OverlaySystem{
		player:    player,
		day:       day,
		weather:   weather,
		inventory: inventory,
		face:      text.NewGoXFace(basicfont.Face7x13),
	}
}

// Lines 返回面板文本
func (s *OverlaySystem) Lines() []string {
	var lines []string

	if s.day != nil {
		line := fmt.Sprintf("Day %d", s.day.Day())
		if s.weather != nil && s.weather.IsRaining() {
			line += "  (rain)"
		}
		lines = append(lines, line)
	}

	if p := s.player.Player(); p != nil {
		seed := p.SelectedSeed().String()
		seedLine := "Seed: " + seed
		if s.inventory != nil {
			seedLine += fmt.Sprintf(" x%d", s.inventory.SeedCount(seed))
		}
		lines = append(lines, "Tool: "+p.SelectedTool().String(), seedLine)
	}

	if s.inventory != nil {
		lines = append(lines, fmt.Sprintf("Money: %d", s.inventory.Money()))
		var items []string
		for _, item := range types.AllItems {
			items = append(items, fmt.Sprintf("%s %d", item, s.inventory.Count(item)))
		}
		lines = append(lines, strings.Join(items, "  "))
	}

	if s.ShopOpen {
		lines = append(lines, "[Shop] 1: sell all  2: buy seed")
	}
	return lines
}

// Draw 绘制面板
func (s *OverlaySystem) Draw(screen *ebiten.Image) {
	lines := s.Lines()
	if len(lines) == 0 {
		return
	}

	width := 0
	for _, l := range lines {
		if w := len(l) * 7; w > width {
			width = w
		}
	}
	h := len(lines)*overlayLineHeight + overlayPadding*2
	vector.DrawFilledRect(screen, 0, 0, float32(width+overlayPadding*2), float32(h), overlayPanelColor, false)

	for i, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(overlayPadding, float64(overlayPadding+i*overlayLineHeight))
		op.ColorScale.ScaleWithColor(overlayTextColor)
		text.Draw(screen, l, s.face, op)
	}
}

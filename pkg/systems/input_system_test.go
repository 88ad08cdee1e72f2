package systems

import (
	"testing"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeKeys struct {
	pressed map[ebiten.Key]bool
	just    map[ebiten.Key]bool
}

func (f fakeKeys) Pressed(k ebiten.Key) bool     { return f.pressed[k] }
func (f fakeKeys) JustPressed(k ebiten.Key) bool { return f.just[k] }

func TestInputCapture(t *testing.T) {
	tests := []struct {
		name    string
		pressed []ebiten.Key
		just    []ebiten.Key
		want    components.Intent
	}{
		{"无输入", nil, nil, components.Intent{}},
		{"方向键", []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyArrowLeft}, nil, components.Intent{Up: true, Left: true}},
		{"WASD", []ebiten.Key{ebiten.KeyS, ebiten.KeyD}, nil, components.Intent{Down: true, Right: true}},
		{"工具和播种", []ebiten.Key{ebiten.KeySpace, ebiten.KeyControlLeft}, nil, components.Intent{Primary: true, Secondary: true}},
		{"切换", []ebiten.Key{ebiten.KeyQ, ebiten.KeyE}, nil, components.Intent{CycleTool: true, CycleSeed: true}},
		{"按住回车不重复交互", []ebiten.Key{ebiten.KeyEnter}, nil, components.Intent{}},
		{"按下回车交互", []ebiten.Key{ebiten.KeyEnter}, []ebiten.Key{ebiten.KeyEnter}, components.Intent{Interact: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := fakeKeys{pressed: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
			for _, k := range tt.pressed {
				keys.pressed[k] = true
			}
			for _, k := range tt.just {
				keys.just[k] = true
			}

			got := NewInputSystemWithKeys(DefaultKeyBindings(), keys).Capture()
			if got != tt.want {
				t.Errorf("Capture() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestInputDebugToggle(t *testing.T) {
	keys := fakeKeys{pressed: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{ebiten.KeyF3: true}}
	sys := NewInputSystemWithKeys(DefaultKeyBindings(), keys)
	sys.Capture()
	if !sys.DebugToggled() {
		t.Error("F3 should toggle hitbox debug")
	}

	keys.just[ebiten.KeyF3] = false
	sys.Capture()
	if sys.DebugToggled() {
		t.Error("toggle must only fire on the press frame")
	}
}

func TestInputShopKeys(t *testing.T) {
	keys := fakeKeys{pressed: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{ebiten.KeyDigit1: true}}
	sys := NewInputSystemWithKeys(DefaultKeyBindings(), keys)
	sys.Capture()
	if !sys.SellRequested() || sys.BuyRequested() {
		t.Errorf("sell = %v, buy = %v, want true, false", sys.SellRequested(), sys.BuyRequested())
	}

	keys.just[ebiten.KeyDigit1] = false
	keys.just[ebiten.KeyDigit2] = true
	sys.Capture()
	if sys.SellRequested() || !sys.BuyRequested() {
		t.Errorf("sell = %v, buy = %v, want false, true", sys.SellRequested(), sys.BuyRequested())
	}
}

package scenes

import (
	"testing"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/types"
)

const testMapYAML = `
width: 8
height: 6
tileSize: 64
tileLayers:
  - name: Ground
    rows:
      - "gggggggg"
      - "gggggggg"
      - "gggggggg"
      - "gggggggg"
      - "gggggggg"
      - "gggggggg"
  - name: Collision
    rows:
      - "XXXXXXXX"
      - "X......X"
      - "X......X"
      - "X......X"
      - "X......X"
      - "XXXXXXXX"
  - name: Farmable
    rows:
      - "........"
      - "........"
      - "..FFFF.."
      - "..FFFF.."
      - "........"
      - "........"
objectLayers:
  - name: Trees
    objects:
      - {name: Small, x: 384, y: 64}
      - {name: Oak, x: 100, y: 100}
  - name: Player
    objects:
      - {name: Start, x: 256, y: 192}
      - {name: Trader, x: 240, y: 180, width: 32, height: 32}
      - {name: Bed, x: 64, y: 150, width: 32, height: 32}
`

const frame = 1.0 / 60

func newTestFarmScene(t *testing.T) *FarmScene {
	t.Helper()
	layout, err := config.ParseMapConfig([]byte(testMapYAML))
	if err != nil {
		t.Fatalf("ParseMapConfig: %v", err)
	}
	return NewFarmScene(FarmSceneOptions{Layout: layout, Seed: 1})
}

func playerHitbox(t *testing.T, s *FarmScene) components.CollisionComponent {
	t.Helper()
	col, ok := ecs.GetComponent[*components.CollisionComponent](s.EntityManager(), s.PlayerEntity())
	if !ok {
		t.Fatal("player has no collision component")
	}
	return *col
}

func stepN(s *FarmScene, intent components.Intent, n int) {
	for i := 0; i < n; i++ {
		s.Step(intent, frame)
	}
}

func TestFarmSceneBuildsWorld(t *testing.T) {
	s := newTestFarmScene(t)

	if w, h := s.MapSize(); w != 512 || h != 384 {
		t.Errorf("MapSize() = (%v, %v), want (512, 384)", w, h)
	}

	if n := len(ecs.GetEntitiesWith1[*components.TreeComponent](s.EntityManager())); n != 1 {
		t.Errorf("trees = %d, want 1 (unknown kinds are skipped)", n)
	}

	farmable := 0
	for _, cell := range s.Soil().Grid().Cells {
		if cell.Has(components.CellFarmable) {
			farmable++
		}
	}
	if farmable != 8 {
		t.Errorf("farmable cells = %d, want 8", farmable)
	}

	hb := playerHitbox(t, s).Hitbox
	if hb.CenterX() != 256 || hb.CenterY() != 192 {
		t.Errorf("player hitbox centre = (%v, %v), want (256, 192)", hb.CenterX(), hb.CenterY())
	}

	if n := len(ecs.GetEntitiesWith1[*components.InteractionComponent](s.EntityManager())); n != 2 {
		t.Errorf("interaction areas = %d, want 2", n)
	}
}

func TestFarmSceneWallsBlockPlayer(t *testing.T) {
	s := newTestFarmScene(t)
	stepN(s, components.Intent{Up: true}, 120)

	hb := playerHitbox(t, s).Hitbox
	// 顶部碰撞格的通用碰撞盒底边在 y=40
	if hb.Top() < 40-1e-6 {
		t.Errorf("player hitbox top = %v, walked through the wall at 40", hb.Top())
	}
	if hb.Top() > 41 {
		t.Errorf("player hitbox top = %v, want it resting against the wall", hb.Top())
	}
}

func TestFarmSceneTraderTogglesShop(t *testing.T) {
	s := newTestFarmScene(t)

	s.Step(components.Intent{Interact: true}, frame)
	if !s.Overlay().ShopOpen {
		t.Fatal("shop should open after interacting with the trader")
	}

	s.Step(components.Intent{}, frame)
	s.Step(components.Intent{Interact: true}, frame)
	if s.Overlay().ShopOpen {
		t.Error("second interaction should close the shop")
	}
}

func TestFarmSceneSleepStartsNewDay(t *testing.T) {
	s := newTestFarmScene(t)

	// 走到床边
	stepN(s, components.Intent{Left: true}, 60)
	s.Step(components.Intent{Interact: true}, frame)
	if !s.Player().Player().Asleep {
		t.Fatal("player should be asleep after interacting with the bed")
	}
	if !s.DayCycle().Sleeping() {
		t.Fatal("day cycle should start the night transition")
	}

	// 睡觉时输入被忽略
	before := playerHitbox(t, s).Hitbox
	stepN(s, components.Intent{Right: true}, 10)
	if after := playerHitbox(t, s).Hitbox; after != before {
		t.Errorf("sleeping player moved from %+v to %+v", before, after)
	}

	// 淡出 + 淡入各 2 秒
	stepN(s, components.Intent{}, 300)
	if s.DayCycle().Sleeping() {
		t.Fatal("night transition should have finished")
	}
	if s.Player().Player().Asleep {
		t.Error("player should wake up")
	}
	if got := s.DayCycle().Day(); got != 2 {
		t.Errorf("Day() = %d, want 2", got)
	}
	if got := s.GameState().Day; got != 2 {
		t.Errorf("GameState.Day = %d, want 2 after DayStarted", got)
	}
}

func TestFarmSceneWithoutLayout(t *testing.T) {
	s := NewFarmScene(FarmSceneOptions{Seed: 1})
	if !s.EntityManager().Exists(s.PlayerEntity()) {
		t.Fatal("player should exist without a layout")
	}
	stepN(s, components.Intent{Down: true}, 10)
}

func TestFarmSceneEveryChopStartsInvulnerability(t *testing.T) {
	layout, err := config.ParseMapConfig([]byte(testMapYAML))
	if err != nil {
		t.Fatalf("ParseMapConfig: %v", err)
	}
	// 斧头每 2 帧完成一次，无敌持续 3 帧: 无敌结束的那一帧正好轮到下一次砍树
	cfg := config.DefaultFarmConfig()
	cfg.Player.ToolUseDuration = 0.25
	cfg.Tree.InvulDuration = 0.375
	const dt = 0.125

	s := NewFarmScene(FarmSceneOptions{Config: cfg, Layout: layout, Seed: 1})
	// 玩家面朝下，斧头作用点 (256, 242)
	id := s.Trees().SpawnTree(types.TreeSmall, 224, 200)
	tree, _ := ecs.GetComponent[*components.TreeComponent](s.EntityManager(), id)

	hits := 0
	health := tree.Health
	for i := 0; i < 40 && tree.Alive; i++ {
		s.Step(components.Intent{Primary: true}, dt)
		if tree.Health == health {
			continue
		}
		hits++
		health = tree.Health
		if tree.Alive && !tree.Invulnerable.Active() {
			t.Fatalf("frame %d: hit %d landed without starting invulnerability", i, hits)
		}
	}

	if hits < 2 {
		t.Fatalf("hits = %d, want at least 2", hits)
	}
	if tree.Alive {
		t.Errorf("tree still standing after %d hits", hits)
	}
}

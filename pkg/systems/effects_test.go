package systems

import (
	"math"
	"testing"

	"github.com/decker502/sunvale/pkg/components"
	"github.com/decker502/sunvale/pkg/ecs"
	"github.com/decker502/sunvale/pkg/entities"
	"github.com/decker502/sunvale/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestLifetimeSystemDestroysExpired(t *testing.T) {
	tests := []struct {
		name      string
		max       float64
		steps     int
		dt        float64
		wantAlive bool
	}{
		{"未到期", 0.5, 4, 0.1, true},
		{"刚好到期", 0.5, 5, 0.1, false},
		{"大步长", 0.2, 1, 1.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			id := em.CreateEntity()
			ecs.AddComponent(em, id, &components.LifetimeComponent{MaxLifetime: tt.max})

			sys := NewLifetimeSystem(em)
			for i := 0; i < tt.steps; i++ {
				sys.Update(tt.dt)
			}
			em.RemoveMarkedEntities()

			if em.Exists(id) != tt.wantAlive {
				t.Errorf("alive = %v, want %v", em.Exists(id), tt.wantAlive)
			}
		})
	}
}

func TestLifetimeSystemMovesVelocityEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	id := entities.NewRainDropEntity(em, nil, 100, 100, false, 1, -400, 800)

	NewLifetimeSystem(em).Update(0.25)

	rect, _ := ecs.GetComponent[*components.RectComponent](em, id)
	if rect.Rect.X != 0 || rect.Rect.Y != 300 {
		t.Errorf("drop at (%.1f, %.1f), want (0, 300)", rect.Rect.X, rect.Rect.Y)
	}
}

func TestParticleFadesOut(t *testing.T) {
	em := ecs.NewEntityManager()
	id := entities.NewParticleEntity(em, nil, entities.ColorTree, utils.NewRect(0, 0, 10, 10), 7, 0.2)

	particles := NewParticleSystem(em)
	lifetime := NewLifetimeSystem(em)

	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if !sprite.Silhouette || sprite.Alpha != 1 {
		t.Fatalf("new particle: silhouette=%v alpha=%.2f", sprite.Silhouette, sprite.Alpha)
	}

	prev := sprite.Alpha
	for i := 0; i < 3; i++ {
		particles.Update(0.05)
		lifetime.Update(0.05)
		if sprite.Alpha > prev {
			t.Fatalf("alpha increased at step %d: %.3f > %.3f", i, sprite.Alpha, prev)
		}
		prev = sprite.Alpha
	}
	if prev >= 1 {
		t.Errorf("alpha did not decrease: %.3f", prev)
	}

	particles.Update(0.1)
	lifetime.Update(0.1)
	if math.Abs(sprite.Alpha) > 1e-3 {
		t.Errorf("alpha at end of fade = %.3f, want 0", sprite.Alpha)
	}
	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("particle should be removed after its lifetime")
	}
}

func TestAnimationSystemCyclesFrames(t *testing.T) {
	em := ecs.NewEntityManager()
	frames := []*ebiten.Image{ebiten.NewImage(1, 1), ebiten.NewImage(1, 1), ebiten.NewImage(1, 1)}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SpriteComponent{Alpha: 1})
	ecs.AddComponent(em, id, &components.AnimationComponent{
		Frames: map[string][]*ebiten.Image{"water": frames},
		State:  "water",
		FPS:    4,
	})

	sys := NewAnimationSystem(em)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)

	want := []int{1, 2, 0, 1}
	for i, w := range want {
		sys.Update(0.25)
		if sprite.Image != frames[w] {
			t.Errorf("step %d: expected frame %d", i, w)
		}
	}
}

func TestAnimationSetStateResetsFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.SpriteComponent{Alpha: 1})
	ecs.AddComponent(em, id, &components.AnimationComponent{State: "down_idle", FPS: 4, FrameIndex: 2.5})

	sys := NewAnimationSystem(em)
	sys.SetState(id, "down_idle")
	anim, _ := ecs.GetComponent[*components.AnimationComponent](em, id)
	if anim.FrameIndex != 2.5 {
		t.Errorf("same state should keep frame index, got %.1f", anim.FrameIndex)
	}

	sys.SetState(id, "left")
	if anim.State != "left" || anim.FrameIndex != 0 {
		t.Errorf("state = %q index = %.1f, want left/0", anim.State, anim.FrameIndex)
	}

	// 无帧时不修改图像
	sys.Update(1)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](em, id)
	if sprite.Image != nil {
		t.Error("missing frames must leave the sprite untouched")
	}
}

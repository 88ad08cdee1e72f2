package game

import (
	"testing"

	"github.com/quasilyte/gdata/v2"
)

// openTestGdata 在临时 HOME 下打开 gdata
func openTestGdata(t *testing.T, app string) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.MusicVolume != 0.5 || s.SoundVolume != 0.8 {
		t.Errorf("volumes = %v/%v, want 0.5/0.8", s.MusicVolume, s.SoundVolume)
	}
	if !s.MusicEnabled || !s.SoundEnabled {
		t.Error("audio should be enabled by default")
	}
	if s.Fullscreen || s.DebugHitboxes {
		t.Error("fullscreen and hitbox debug should be off by default")
	}
}

func TestSettingsLoadSave(t *testing.T) {
	m := openTestGdata(t, "sunvale_settings_test")

	sm1 := NewSettingsManager(m)
	sm1.SetMusicVolume(0.3)
	sm1.SetSoundEnabled(false)
	sm1.ToggleDebugHitboxes()
	if err := sm1.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	sm2 := NewSettingsManager(m)
	s := sm2.GetSettings()
	if s.MusicVolume != 0.3 {
		t.Errorf("MusicVolume = %v, want 0.3", s.MusicVolume)
	}
	if s.SoundEnabled {
		t.Error("SoundEnabled should persist as false")
	}
	if !s.DebugHitboxes {
		t.Error("DebugHitboxes should persist as true")
	}
}

func TestSettingsCorruptDataFallsBackToDefaults(t *testing.T) {
	m := openTestGdata(t, "sunvale_settings_corrupt")
	if err := m.SaveObjectProp(settingsObject, settingsProperty, []byte("musicVolume: [oops")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	sm := NewSettingsManager(m)
	if err := sm.Load(); err == nil {
		t.Error("expected error for corrupt settings")
	}
	if sm.GetSettings().MusicVolume != 0.5 {
		t.Errorf("MusicVolume = %v, want default", sm.GetSettings().MusicVolume)
	}
}

func TestSettingsNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() in memory-only mode: %v", err)
	}
	sm.SetFullscreen(true)
	if !sm.GetSettings().Fullscreen {
		t.Error("in-memory setting lost")
	}
	if err := sm.Load(); err != nil || sm.GetSettings().Fullscreen {
		t.Error("Load() without storage should reset to defaults")
	}
}

func TestClampVolume(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.42, 0.42},
		{1, 1},
		{3, 1},
	}
	for _, tt := range tests {
		if got := clampVolume(tt.in); got != tt.want {
			t.Errorf("clampVolume(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	sm := NewSettingsManager(nil)
	sm.SetSoundVolume(2)
	if sm.GetSettings().SoundVolume != 1 {
		t.Errorf("SoundVolume = %v, want clamped to 1", sm.GetSettings().SoundVolume)
	}
}

package game

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"
)

// pngBytes 生成 w x h 的纯色 PNG
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 0, G: 0, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func TestResourceManagerImages(t *testing.T) {
	assets := fstest.MapFS{
		"graphics/soil/blrt.png": {Data: pngBytes(t, 64, 64)},
		"graphics/broken.png":    {Data: []byte("not a png")},
	}
	rm := NewResourceManager(nil, assets)

	img := rm.GetImage("soil/blrt")
	if img == nil {
		t.Fatal("GetImage(soil/blrt) = nil")
	}
	if w, h := img.Bounds().Dx(), img.Bounds().Dy(); w != 64 || h != 64 {
		t.Errorf("size = %dx%d, want 64x64", w, h)
	}
	if rm.GetImage("soil/blrt") != img {
		t.Error("second lookup should hit the cache")
	}

	if rm.GetImage("missing") != nil {
		t.Error("missing image should be nil")
	}
	if _, err := rm.LoadImage("graphics/broken.png"); err == nil {
		t.Error("expected decode error")
	}
}

func TestResourceManagerFramesOrderedNumerically(t *testing.T) {
	assets := fstest.MapFS{
		"graphics/water/10.png":     {Data: pngBytes(t, 10, 1)},
		"graphics/water/2.png":      {Data: pngBytes(t, 2, 1)},
		"graphics/water/0.png":      {Data: pngBytes(t, 1, 1)},
		"graphics/water/readme.txt": {Data: []byte("skip")},
	}
	rm := NewResourceManager(nil, assets)

	frames := rm.GetFrames("water")
	if len(frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(frames))
	}
	for i, want := range []int{1, 2, 10} {
		if w := frames[i].Bounds().Dx(); w != want {
			t.Errorf("frame %d width = %d, want %d", i, w, want)
		}
	}

	if rm.GetFrames("nothing") != nil {
		t.Error("missing directory should yield nil frames")
	}
}

func TestSortFrameNames(t *testing.T) {
	names := []string{"b.png", "11.png", "1.png", "a.png", "3.png"}
	sortFrameNames(names)
	want := []string{"1.png", "3.png", "11.png", "a.png", "b.png"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("sorted = %v, want %v", names, want)
		}
	}
}

func TestResourceManagerWithoutAssets(t *testing.T) {
	rm := NewResourceManager(nil, nil)
	if rm.GetImage("soil/o") != nil || rm.GetFrames("water") != nil {
		t.Error("no asset tree should serve no images")
	}
	if _, ok := rm.FindSound("hoe"); ok {
		t.Error("no asset tree should have no sounds")
	}

	am := NewAudioManager(rm, nil)
	if am.PlaySound("hoe") {
		t.Error("PlaySound should fail without assets")
	}
	if am.PlayMusic("music") {
		t.Error("PlayMusic should fail without assets")
	}
}

func TestFindSoundExtensionOrder(t *testing.T) {
	assets := fstest.MapFS{
		"audio/axe.mp3":   {Data: []byte{}},
		"audio/water.ogg": {Data: []byte{}},
		"audio/hoe.wav":   {Data: []byte{}},
		"audio/hoe.mp3":   {Data: []byte{}},
	}
	rm := NewResourceManager(nil, assets)

	tests := map[string]string{
		"axe":   "audio/axe.mp3",
		"water": "audio/water.ogg",
		"hoe":   "audio/hoe.wav",
	}
	for name, want := range tests {
		if got, ok := rm.FindSound(name); !ok || got != want {
			t.Errorf("FindSound(%q) = %q, %v; want %q", name, got, ok, want)
		}
	}

	if _, err := rm.LoadSoundEffect("audio/axe.mp3"); err == nil {
		t.Error("loading audio without a context should fail")
	}
}

package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"io/fs"
	"log"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// 素材目录布局
const (
	graphicsDir = "graphics"
	audioDir    = "audio"
)

// 音效文件支持的扩展名，按查找顺序
var audioExtensions = []string{".wav", ".mp3", ".ogg"}

// ResourceManager is responsible for centralized management of game resources.
// Images and audio are read from an fs.FS (a directory on disk or an embedded
// tree) and cached by path, so every asset is decoded at most once.
//
// Layout of the asset tree:
//
//	graphics/<key>.png         single images (soil/blrt, trees/small, ...)
//	graphics/<dir>/<n>.png     animation frames, ordered by numeric name
//	audio/<name>.{wav,mp3,ogg} sound effects and music
//
// A ResourceManager with a nil asset FS serves no images; entity factories then
// fall back to coloured placeholders.
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the game loop goroutine.
type ResourceManager struct {
	assets       fs.FS
	imageCache   map[string]*ebiten.Image   // path -> Image
	framesCache  map[string][]*ebiten.Image // dir -> frames
	audioCache   map[string]*audio.Player   // path -> Player
	audioContext *audio.Context
}

// NewResourceManager creates a ResourceManager reading from assets.
// audioContext may be nil, in which case audio loading fails with an error.
func NewResourceManager(audioContext *audio.Context, assets fs.FS) *ResourceManager {
	return &ResourceManager{
		assets:       assets,
		imageCache:   make(map[string]*ebiten.Image),
		framesCache:  make(map[string][]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
	}
}

// LoadImage loads an image file from the asset tree and caches it for future use.
// If the image has already been loaded, it returns the cached version.
func (rm *ResourceManager) LoadImage(p string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[p]; exists {
		return cachedImage, nil
	}
	if rm.assets == nil {
		return nil, fmt.Errorf("no asset directory configured for %s", p)
	}

	file, err := rm.assets.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", p, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", p, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[p] = ebitenImg
	return ebitenImg, nil
}

// GetImage 按素材键返回图片（graphics/<key>.png），不存在时返回 nil
func (rm *ResourceManager) GetImage(key string) *ebiten.Image {
	if rm.assets == nil {
		return nil
	}
	img, err := rm.LoadImage(path.Join(graphicsDir, key+".png"))
	if err != nil {
		return nil
	}
	return img
}

// GetFrames 返回目录下的全部帧（graphics/<dir>/*.png），按数字文件名排序
// 目录不存在时返回 nil
func (rm *ResourceManager) GetFrames(dir string) []*ebiten.Image {
	if frames, ok := rm.framesCache[dir]; ok {
		return frames
	}
	if rm.assets == nil {
		return nil
	}

	full := path.Join(graphicsDir, dir)
	entries, err := fs.ReadDir(rm.assets, full)
	if err != nil {
		rm.framesCache[dir] = nil
		return nil
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(path.Ext(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sortFrameNames(names)

	frames := make([]*ebiten.Image, 0, len(names))
	for _, name := range names {
		img, err := rm.LoadImage(path.Join(full, name))
		if err != nil {
			log.Printf("[ResourceManager] 跳过无法加载的帧 %s: %v", name, err)
			continue
		}
		frames = append(frames, img)
	}
	rm.framesCache[dir] = frames
	return frames
}

// sortFrameNames 数字文件名按数值排序（2.png 在 10.png 之前），其余按字典序排在后面
func sortFrameNames(names []string) {
	num := func(name string) (int, bool) {
		n, err := strconv.Atoi(strings.TrimSuffix(name, path.Ext(name)))
		return n, err == nil
	}
	sort.SliceStable(names, func(i, j int) bool {
		a, aok := num(names[i])
		b, bok := num(names[j])
		switch {
		case aok && bok:
			return a < b
		case aok != bok:
			return aok
		}
		return names[i] < names[j]
	})
}

// LoadAudio loads looping background music.
func (rm *ResourceManager) LoadAudio(p string) (*audio.Player, error) {
	return rm.loadPlayer(p, true)
}

// LoadSoundEffect loads a one-shot sound effect.
func (rm *ResourceManager) LoadSoundEffect(p string) (*audio.Player, error) {
	return rm.loadPlayer(p, false)
}

// FindSound 按名称查找音效文件（audio/<name>.wav|mp3|ogg），返回路径
func (rm *ResourceManager) FindSound(name string) (string, bool) {
	if rm.assets == nil {
		return "", false
	}
	for _, ext := range audioExtensions {
		p := path.Join(audioDir, name+ext)
		if _, err := fs.Stat(rm.assets, p); err == nil {
			return p, true
		}
	}
	return "", false
}

// GetAudioPlayer retrieves a previously loaded audio player from the cache.
func (rm *ResourceManager) GetAudioPlayer(p string) *audio.Player {
	return rm.audioCache[p]
}

func (rm *ResourceManager) loadPlayer(p string, loop bool) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[p]; exists {
		return cachedPlayer, nil
	}
	if rm.audioContext == nil {
		return nil, fmt.Errorf("no audio context for %s", p)
	}
	if rm.assets == nil {
		return nil, fmt.Errorf("no asset directory configured for %s", p)
	}

	// 整个文件读入内存，解码流可以随意 Seek
	audioData, err := fs.ReadFile(rm.assets, p)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", p, err)
	}
	reader := bytes.NewReader(audioData)

	var stream interface {
		io.ReadSeeker
		Length() int64
	}
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".wav":
		stream, err = wav.DecodeWithoutResampling(reader)
	case ".mp3":
		stream, err = mp3.DecodeWithoutResampling(reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithoutResampling(reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", p, err)
	}

	var src io.Reader = stream
	if loop {
		src = audio.NewInfiniteLoop(stream, stream.Length())
	}

	player, err := rm.audioContext.NewPlayer(src)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", p, err)
	}
	rm.audioCache[p] = player
	return player, nil
}

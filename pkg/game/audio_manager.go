package game

import (
	"log"

	"github.com/decker502/sunvale/pkg/events"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 音频管理器
// 职责：
//   - 响应事件总线上的 SoundRequested，按名称播放音效
//   - 播放循环背景音乐
//   - 实现音量控制（从 SettingsManager 读取设置）
//
// 音效名称对应素材目录中的 audio/<name>.wav|mp3|ogg，找不到时静默忽略。
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager
	soundPlayers    map[string]*audio.Player // 名称 -> 播放器（nil 表示已确认不存在）
	currentMusic    *audio.Player
	currentMusicID  string
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取音量设置，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
	}
}

// Attach 订阅事件总线上的音效请求
func (am *AudioManager) Attach(bus *events.Bus) {
	bus.OnSoundRequested(func(e events.SoundRequested) {
		am.PlaySound(e.Name)
	})
}

// PlaySound 播放音效，返回是否成功播放
func (am *AudioManager) PlaySound(name string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.getSoundPlayer(name)
	if player == nil {
		return false
	}

	player.SetVolume(am.getSoundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", name, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐，同一时间只播放一首
func (am *AudioManager) PlayMusic(name string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}
	if am.currentMusicID == name && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}
	am.StopMusic()

	p, ok := am.resourceManager.FindSound(name)
	if !ok {
		log.Printf("[AudioManager] Warning: Music not found: %s", name)
		return false
	}
	player, err := am.resourceManager.LoadAudio(p)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load music %s: %v", name, err)
		return false
	}

	volume := am.getMusicVolume()
	player.SetVolume(volume)
	player.Play()
	am.currentMusic = player
	am.currentMusicID = name

	log.Printf("[AudioManager] Playing music: %s (volume: %.2f)", name, volume)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// getSoundPlayer 获取或加载音效播放器
func (am *AudioManager) getSoundPlayer(name string) *audio.Player {
	if player, exists := am.soundPlayers[name]; exists {
		return player
	}

	var player *audio.Player
	if p, ok := am.resourceManager.FindSound(name); ok {
		loaded, err := am.resourceManager.LoadSoundEffect(p)
		if err != nil {
			log.Printf("[AudioManager] Warning: Failed to load sound %s: %v", name, err)
		} else {
			player = loaded
		}
	}
	// 找不到的音效也缓存，避免每次请求都访问文件系统
	am.soundPlayers[name] = player
	return player
}

func (am *AudioManager) getMusicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 0.7
}

func (am *AudioManager) getSoundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8
}

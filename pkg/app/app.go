// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载配置和地图、创建资源管理器、
// 设置与音频，然后把农场场景交给场景管理器。
package app

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/decker502/sunvale/pkg/config"
	"github.com/decker502/sunvale/pkg/embedded"
	"github.com/decker502/sunvale/pkg/game"
	"github.com/decker502/sunvale/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// 数据文件路径（相对嵌入根目录）
const (
	FarmConfigPath = "data/config/farm.yaml"
	MapPath        = "data/maps/farm.yaml"
)

// AppName gdata 存储目录名
const AppName = "sunvale"

const sampleRate = 48000

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// AssetsDir 素材目录（graphics/、audio/），为空时使用占位图形且没有声音
	AssetsDir string
	// DataDir 覆盖嵌入数据的磁盘目录（目录下包含 data/），为空时只用嵌入数据
	DataDir string
	// Seed 随机数种子
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
	settings     *game.SettingsManager
	farmConfig   *config.FarmConfig
	verbose      bool
}

// LoadWorld 读取农场配置和地图
// 配置文件不存在时使用内置默认值；地图是必需的
func LoadWorld() (*config.FarmConfig, *config.MapConfig, error) {
	cfg := config.DefaultFarmConfig()
	data, err := embedded.ReadFile(FarmConfigPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("[Config] %s 不存在，使用默认配置", FarmConfigPath)
	case err != nil:
		return nil, nil, fmt.Errorf("failed to read %s: %w", FarmConfigPath, err)
	default:
		if cfg, err = config.ParseFarmConfig(data); err != nil {
			return nil, nil, err
		}
		log.Printf("[Config] 加载农场配置: %s", FarmConfigPath)
	}

	data, err = embedded.ReadFile(MapPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", MapPath, err)
	}
	layout, err := config.ParseMapConfig(data)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("[Config] 加载地图: %s (%dx%d)", MapPath, layout.Width, layout.Height)
	return cfg, layout, nil
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	if cfg.DataDir != "" {
		embedded.Overlay(os.DirFS(cfg.DataDir))
		log.Printf("[App] 数据目录覆盖: %s", cfg.DataDir)
	}

	farmConfig, layout, err := LoadWorld()
	if err != nil {
		return nil, fmt.Errorf("世界数据加载失败: %w", err)
	}

	gdataManager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: 无法打开设置存储，设置不会保存: %v", err)
		gdataManager = nil
	}
	settings := game.NewSettingsManager(gdataManager)
	ebiten.SetFullscreen(settings.GetSettings().Fullscreen)

	var (
		resourceManager *game.ResourceManager
		audioManager    *game.AudioManager
	)
	if cfg.AssetsDir != "" {
		info, err := os.Stat(cfg.AssetsDir)
		if err != nil {
			return nil, fmt.Errorf("素材目录不可用: %w", err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("素材路径 %s 不是目录", cfg.AssetsDir)
		}
		resourceManager = game.NewResourceManager(audio.NewContext(sampleRate), os.DirFS(cfg.AssetsDir))
		audioManager = game.NewAudioManager(resourceManager, settings)
		log.Printf("[App] 素材目录: %s", cfg.AssetsDir)
	} else {
		log.Printf("[App] 未指定素材目录，使用占位图形")
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(scenes.NewFarmScene(scenes.FarmSceneOptions{
		ResourceManager: resourceManager,
		Settings:        settings,
		Audio:           audioManager,
		Config:          farmConfig,
		Layout:          layout,
		Seed:            cfg.Seed,
	}))

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		farmConfig:   farmConfig,
		verbose:      cfg.Verbose,
	}, nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		a.settings.SetFullscreen(fullscreen)
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 全屏时两侧填充黑色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.farmConfig.ScreenWidth, a.farmConfig.ScreenHeight
}

// ScreenSize 返回逻辑屏幕尺寸（用于设置初始窗口大小）
func (a *App) ScreenSize() (int, int) {
	return a.farmConfig.ScreenWidth, a.farmConfig.ScreenHeight
}

// Close 保存用户设置
func (a *App) Close() error {
	return a.settings.Save()
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/decker502/sunvale/pkg/app"
	"github.com/decker502/sunvale/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细日志")
	assetsDir = flag.String("assets", "", "素材目录（graphics/、audio/），为空时使用占位图形")
	dataDir   = flag.String("data", "", "覆盖嵌入数据的目录（包含 data/），便于调整配置")
	seed      = flag.Int64("seed", 1, "随机数种子")
)

func main() {
	flag.Parse()

	// 初始化嵌入数据（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:   *verbose,
		AssetsDir: *assetsDir,
		DataDir:   *dataDir,
		Seed:      *seed,
	})
	if err != nil {
		// 非 verbose 模式下日志已被丢弃，直接写 stderr
		fmt.Fprintf(os.Stderr, "游戏初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := gameApp.ScreenSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Sunvale")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
	if err := gameApp.Close(); err != nil {
		log.Printf("[Main] 保存设置失败: %v", err)
	}
}

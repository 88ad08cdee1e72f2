// soil_inspector 在终端中交互式检查农田规则
//
// 用法:
//
//	go run ./cmd/soil_inspector -map data/maps/farm.yaml
//	go run ./cmd/soil_inspector -cols 12 -rows 8
//
// 方向键移动光标，t 翻土，w 浇水，p 播种，s 切换种子，g 推进生长，r 切换下雨，h 收获，q 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/sunvale/pkg/config"
	"github.com/gdamore/tcell/v2"
)

var (
	mapPath    = flag.String("map", "", "地图文件（为空时使用全部可耕种的网格）")
	configPath = flag.String("config", "", "农场配置文件（为空时使用默认配置）")
	cols       = flag.Int("cols", 12, "无地图时的网格列数")
	rows       = flag.Int("rows", 8, "无地图时的网格行数")
	seed       = flag.Int64("seed", 1, "随机数种子")
	logPath    = flag.String("log", "", "日志文件（终端界面运行时默认丢弃日志）")
)

func main() {
	flag.Parse()

	if err := setupLog(*logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
		os.Exit(1)
	}

	cfg := config.DefaultFarmConfig()
	if *configPath != "" {
		loaded, err := config.LoadFarmConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	var layout config.LayoutSource
	if *mapPath != "" {
		m, err := config.LoadMapConfig(*mapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load map: %v\n", err)
			os.Exit(1)
		}
		layout = m
	}

	inspector := NewInspector(cfg, layout, *cols, *rows, *seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, inspector)
}

func setupLog(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	return nil
}

// run 事件循环：每个事件处理后重绘
func run(screen tcell.Screen, inspector *Inspector) {
	inspector.Draw(screen)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			if !inspector.HandleKey(ev.Key(), ev.Rune()) {
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return
		}
		inspector.Draw(screen)
	}
}

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/towerd/pkg/app"
	"github.com/gonewx/towerd/pkg/config"
	"github.com/gonewx/towerd/pkg/embedded"
)

var (
	verbose = flag.Bool("verbose", false, "显示详细调试信息")
	level   = flag.String("level", "", "指定要加载的关卡（如 level1），为空则默认 level1")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源，必须在任何配置加载之前
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose: *verbose,
		Level:   *level,
	})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("塔防 - 前哨防线")

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/milk9111/objectfield/common"
)

func main() {
	sceneName := flag.String("scene", "shapes", "scene name in prefabs/scenes (basename, .yaml optional)")
	watch := flag.Bool("watch", false, "reload the scene when its file or a layout script changes")
	debug := flag.Bool("debug", false, "draw hover and frame info")
	baseURL := flag.String("base-url", "", "prefix for copied links")
	cacheDir := flag.String("cache", "", "asset cache directory (default: user cache dir)")
	flag.Parse()

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(common.BaseWidth, common.BaseHeight, "objectfield")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyNull)

	app, err := newApp(*sceneName, *cacheDir, *baseURL, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer app.close()

	if *watch {
		app.watch()
	}

	for !rl.WindowShouldClose() {
		app.update()
		app.draw()
	}
}

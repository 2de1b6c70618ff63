package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	sceneName := flag.String("scene", "canvas", "canvas scene name in prefabs/scenes")
	watch := flag.Bool("watch", false, "reload the scene when its file changes")
	debug := flag.Bool("debug", false, "draw hover and frame info")
	baseURL := flag.String("base-url", "", "prefix for copied links")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(*sceneName, *baseURL, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()
	if *watch {
		game.Watch()
	}

	w, h := game.canvas.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("objectfield")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

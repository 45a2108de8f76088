package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/angel10x/Maple-Side-Scroller/common"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug HUD, prefab hot reload, and clipboard state capture")
	levelName := flag.String("level", "level1", "level name in prefabs/ (basename, .yaml optional)")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("MapleStory-style Side Scroller")

	game, err := NewGame(*levelName, *debug)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/popper/common"
)

func main() {
	theme := flag.String("theme", "hearts", "theme name in themes/ (basename, .yaml optional)")
	direction := flag.String("direction", "", "burst direction: descending or ascending (default: theme's)")
	noAutoPlay := flag.Bool("no-autoplay", false, "wait for the Pop button instead of bursting on launch")
	watch := flag.Bool("watch", false, "hot-reload theme files from the themes/ directory")
	debug := flag.Bool("debug", false, "enable the debug overlay")
	flag.Parse()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("popper")

	game, err := NewGame(*theme, *direction, !*noAutoPlay, *watch, *debug)
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

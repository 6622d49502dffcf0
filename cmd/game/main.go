package main

import (
	"log"

	"github.com/Garsondee/Grid-Snake/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	ebiten.SetWindowTitle("Grid Snake")
	ebiten.SetWindowSize(game.ScreenWidth, game.ScreenHeight)
	if err := ebiten.RunGame(game.NewApp()); err != nil {
		log.Fatal(err)
	}
}

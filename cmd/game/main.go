package main

import (
	"log"
	"os"

	"github.com/Garsondee/Absorb/internal/config"
	"github.com/Garsondee/Absorb/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load("game", ".env", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("Absorb")
	ebiten.SetWindowSize(cfg.ViewWidth, cfg.ViewHeight)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(game.New(cfg)); err != nil {
		log.Fatal(err)
	}
}

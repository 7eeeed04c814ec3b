//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"life-sim/internal/app"
	"life-sim/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctrl := sim.New(cfg.SimConfig())
	defer ctrl.Close()

	if cfg.LoadPath != "" {
		if err := ctrl.LoadFile(cfg.LoadPath); err != nil {
			log.Fatalf("load %s: %v", cfg.LoadPath, err)
		}
		ctrl.SetPaused(cfg.Paused)
	}

	game := app.New(ctrl, cfg)
	defer game.Close()

	size := ctrl.Size()
	cs := ctrl.CellSize()
	ebiten.SetWindowTitle("life")
	ebiten.SetWindowSize(size.W*cs, size.H*cs)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

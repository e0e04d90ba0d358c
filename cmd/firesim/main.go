//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"firesim/internal/app"
	"firesim/internal/sims/forest"
	"firesim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	wcfg := forest.DefaultConfig()
	wcfg.Width = cfg.Width
	wcfg.Height = cfg.Height
	wcfg.Seed = cfg.Seed
	wcfg.Params.TickRate = cfg.TPS
	if cfg.Realistic {
		tickRate := wcfg.Params.TickRate
		wcfg.Params = forest.Realistic(cfg.Width, cfg.Height, 2, 36).PerTick()
		wcfg.Params.TickRate = tickRate
	}

	world, err := forest.NewWithConfig(wcfg)
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(world, cfg.Scale, cfg.Seed)
	size := world.Size()

	ebiten.SetWindowTitle("firesim — " + world.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+ui.PanelWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"powder-ca/internal/app"
	"powder-ca/internal/sims/powder"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.DefaultConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	pcfg := powder.DefaultConfig()
	if cfg.ConfigPath != "" {
		loaded, err := powder.LoadConfig(cfg.ConfigPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		pcfg = loaded
	}
	pcfg.Width = cfg.Width
	pcfg.Height = cfg.Height
	pcfg.Seed = cfg.Seed

	world := powder.NewWithConfig(pcfg)
	world.Reset(cfg.Seed)

	game := app.New(world, cfg)

	ebiten.SetWindowTitle("powder-ca")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(world.Width()*cfg.Scale+cfg.HUDWidth, world.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

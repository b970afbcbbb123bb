//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"dyeflow/internal/app"
	"dyeflow/internal/core"
	"dyeflow/internal/render"
	_ "dyeflow/internal/sims/fluid"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}
	palette, err := render.ParsePalette(cfg.Palette)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}

	sim := factory(cfg.Set)
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed, palette)
	size := sim.Size()

	ebiten.SetWindowTitle("dyeflow - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}

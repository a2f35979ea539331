package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ha1tch/nestdraw/internal/app"
	"github.com/ha1tch/nestdraw/internal/config"
	"github.com/ha1tch/nestdraw/internal/export"
	"github.com/ha1tch/nestdraw/internal/game"
	"github.com/ha1tch/nestdraw/internal/geom"
	"github.com/ha1tch/nestdraw/internal/logger"
	"github.com/ha1tch/nestdraw/internal/nest"
	"github.com/ha1tch/nestdraw/internal/points"
)

func main() {
	envFile := flag.String("env", ".env", "dotenv file with NESTDRAW_* settings")
	depth := flag.Int("depth", -1, "initial nesting levels (overrides NESTDRAW_DEPTH)")
	ceiling := flag.Int("ceiling", 0, "node budget per frame (overrides NESTDRAW_CEILING)")
	nestMode := flag.String("nest", "", "nest transform: spiral or tile (overrides NESTDRAW_NEST)")
	snapshot := flag.String("snapshot", "", "render one frame to this PNG file and exit")
	pointList := flag.String("points", "0.5,0.5", "anchors for -snapshot as x,y;x,y")
	seed := flag.Float64("seed", 0, "target seed for -snapshot")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	if *depth >= 0 {
		cfg.Depth = *depth
	}
	if *ceiling > 0 {
		cfg.Ceiling = *ceiling
	}
	if *nestMode != "" {
		cfg.Nest = *nestMode
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(os.Stderr, cfg.LogLevel, "nestdraw")

	if *snapshot != "" {
		if err := writeSnapshot(cfg, log.Named("snapshot"), *snapshot, *pointList, *seed); err != nil {
			log.Error("snapshot: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := app.Run(cfg, log); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func writeSnapshot(cfg config.Config, log *logger.Logger, path, pointList string, seed float64) error {
	pts, err := export.ParsePoints(pointList)
	if err != nil {
		return err
	}
	opts, err := cfg.RendererOptions()
	if err != nil {
		return err
	}

	store := points.NewStore(cfg.Depth)
	for _, p := range pts {
		store.Add(p)
	}
	store.ClearSelection()

	viewport := geom.V(float32(cfg.Width), float32(cfg.Height))
	layout := geom.DefaultLayout()
	pass := nest.NewRenderer(opts).Render(store, viewport)

	var g game.Game
	g.Advance(false, 0, seed, layout.Arena(viewport))

	frame := export.Frame{
		Viewport: viewport,
		Layout:   layout,
		Pass:     pass,
		Targets:  g.Targets,
		Depth:    store.Depth(),
		Score:    game.Score(store.Points(), store.Depth()),
	}
	if err := export.SavePNG(frame, path); err != nil {
		return err
	}
	log.Info("wrote %s: %d anchors, %d primitives, budget exceeded: %v", path, store.Len(), pass.Drawn, pass.Exceeded)
	return nil
}

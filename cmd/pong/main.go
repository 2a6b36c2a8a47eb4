package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Pong/internal/config"
	"github.com/Garsondee/Pong/internal/game"
	"github.com/Garsondee/Pong/internal/logging"
	"github.com/Garsondee/Pong/internal/match"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	preset := flag.String("preset", "", "rules preset: classic or versus (overrides the file)")
	logFile := flag.String("log", "", "log file (overrides the file; empty keeps its setting)")
	flag.Parse()

	cfg, err := config.Load(*configPath, *preset)
	if err != nil {
		log.Fatal(err)
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	rng := rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- gameplay only
	g := game.New(match.New(cfg.Rules, rng), cfg.Window.Theme, logger)

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(cfg.Rules.Width*cfg.Window.Scale), int(cfg.Rules.Height*cfg.Window.Scale))
	ebiten.SetTPS(match.TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil {
		logger.Errorw("game stopped", "error", err)
		_ = logger.Sync()
		log.Fatal(err)
	}
}

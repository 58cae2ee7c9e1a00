package main

import (
	"errors"
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
	"go.uber.org/zap"

	"slay/client"
	"slay/logging"
	"slay/utils"
	"slay/world"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML config")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile to the working directory")
	debug := flag.Bool("debug", false, "draw collider outlines")
	flag.Parse()

	if *cpuProfile {
		p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
		defer p.Stop()
	}

	cfg, err := utils.ReadTOML(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	assets, err := client.LoadAssets()
	if err != nil {
		logger.Fatal("load assets", zap.Error(err))
	}
	logger.Info("templates loaded", zap.Strings("names", assets.Names()))

	arena := cfg.Arena()
	logger.Info("starting",
		zap.String("version", client.Version),
		zap.Int("width", cfg.UI.Resolution.X),
		zap.Int("height", cfg.UI.Resolution.Y),
		zap.Float64("arenaWidth", arena.Width),
		zap.Float64("arenaHeight", arena.Height),
	)

	w := world.NewWorld(cfg.World, arena, assets.Table, logger, time.Now().UnixNano())
	if _, err := w.SpawnPlayer(); err != nil {
		logger.Fatal("spawn player", zap.Error(err))
	}

	ebiten.SetWindowSize(cfg.UI.Resolution.X, cfg.UI.Resolution.Y)
	ebiten.SetWindowTitle(cfg.UI.Title)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	game := client.NewGame(w, assets, logger, *debug || cfg.World.Debug)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run game", zap.Error(err))
	}
}

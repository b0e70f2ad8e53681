package main

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"escaperoom/pkg/engine/clock"
	"escaperoom/pkg/game/assets"
	"escaperoom/pkg/game/audio"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/console"
	"escaperoom/pkg/game/gameplay"
	"escaperoom/pkg/game/i18n"
	"escaperoom/pkg/game/logger"
	"escaperoom/pkg/game/renderer"
	ebitenrenderer "escaperoom/pkg/game/renderer/ebiten"
	"escaperoom/pkg/game/renderer/tui"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "escaperoom: %v\n", err)
		os.Exit(1)
	}

	log := logger.Setup(cfg, os.Stderr)
	catalogue := i18n.MustLoadDefault(cfg.Locale)
	log.Info("starting", "locale", catalogue.Tag.String(), "assets", cfg.AssetDir, "headless", cfg.Headless)

	registry := assets.NewDirRegistry(cfg.AssetDir)
	loaded := registry.Preload(assets.Sprites())
	log.Info("sprites preloaded", "loaded", loaded, "total", len(assets.Sprites()))

	sounds := startAudio(cfg, registry, log)
	defer sounds.Cleanup()

	printer := console.New(os.Stdout, catalogue.T)

	if cfg.Headless {
		renderer.SetRenderer(tui.New(tui.Options{
			In:      os.Stdin,
			Out:     os.Stdout,
			Printer: printer,
			T:       catalogue.T,
			Sounds:  sounds,
			TPS:     cfg.TPS,
			Prompt:  term.IsTerminal(int(os.Stdin.Fd())),
		}))
	} else {
		var echo *console.Printer
		if cfg.ConsoleEcho {
			echo = printer
		}
		renderer.SetRenderer(ebitenrenderer.New(ebitenrenderer.Options{
			Assets: registry,
			Sounds: sounds,
			Echo:   echo,
			T:      catalogue.T,
			Title:  catalogue.T("WINDOW_TITLE"),
			TPS:    cfg.TPS,
			Clock:  clock.NewSystem(),
		}))
	}

	if err := renderer.Init(); err != nil {
		logger.WithError(log, err).Error("renderer init failed")
		os.Exit(1)
	}

	g := gameplay.BuildGame()
	if err := renderer.Run(g); err != nil {
		logger.WithError(log, err).Error("game loop failed")
		os.Exit(1)
	}
	log.Info("goodbye", "room", g.Room.String())
}

// startAudio opens the speaker and starts the theme. Any failure leaves the game silent.
func startAudio(cfg config.Config, registry *assets.Registry, log *slog.Logger) *audio.SoundManager {
	sounds := audio.NewSoundManager(cfg.MusicVolume, cfg.Mute)
	if err := sounds.Initialize(); err != nil {
		logger.WithError(log, err).Warn("audio unavailable, continuing silently")
		return sounds
	}
	if !sounds.Initialized() {
		return sounds
	}

	if data, err := registry.ReadFile(assets.SoundDoorOpen); err != nil {
		logger.WithError(log, err).Warn("door sound unavailable")
	} else if err := sounds.LoadDoorSound(data); err != nil {
		logger.WithError(log, err).Warn("door sound unusable")
	}

	if data, err := registry.ReadFile(assets.SoundTheme); err != nil {
		logger.WithError(log, err).Warn("theme unavailable")
	} else if err := sounds.PlayTheme(data); err != nil {
		logger.WithError(log, err).Warn("theme unusable")
	}
	return sounds
}

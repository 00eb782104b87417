package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/sandy-marrero/pebble-says/internal/app"
	"github.com/sandy-marrero/pebble-says/internal/config"
	"github.com/sandy-marrero/pebble-says/internal/haptics"
)

func main() {
	cfgPath := flag.String("config", "", "Path to a yaml config file")
	mute := flag.Bool("mute", false, "Disable audio pulses")
	seed := flag.Uint64("seed", 0, "Sequence RNG seed (0 = random)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the TUI, so logs go to a file or nowhere.
	logger := zerolog.Nop()
	if cfg.Log.Path != "" {
		f, err := os.OpenFile(cfg.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		lvl, err := zerolog.ParseLevel(cfg.Log.Level)
		if err != nil {
			lvl = zerolog.InfoLevel
		}
		logger = zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	}

	var sink haptics.Sink = haptics.Nop{}
	if cfg.Audio.Enabled && !*mute {
		buzzer := haptics.NewBuzzer(cfg.Audio.Volume)
		if err := buzzer.Init(); err != nil {
			// Playable without sound; note it and move on.
			logger.Warn().Err(err).Msg("audio unavailable")
		} else {
			defer buzzer.Close()
			sink = buzzer
		}
	}

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewPCG(*seed, *seed))
	}

	m := app.New(sink, app.Options{
		Log:           logger,
		Rand:          rng,
		FlashInterval: cfg.FlashInterval(),
		Mono:          cfg.UI.Mono,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/sadopc/keepsake/internal/audio"
	"github.com/sadopc/keepsake/internal/clock"
	"github.com/sadopc/keepsake/internal/config"
	"github.com/sadopc/keepsake/internal/engine"
	"github.com/sadopc/keepsake/internal/store"
	"github.com/sadopc/keepsake/internal/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// The program owns the terminal; logs go to a file or nowhere.
	logger := zerolog.Nop()
	if cfg.LogPath != "" {
		f, err := tea.LogToFile(cfg.LogPath, "keepsake")
		if err != nil {
			fmt.Fprintf(os.Stderr, "error opening log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		cw := zerolog.ConsoleWriter{Out: f, TimeFormat: time.RFC3339, NoColor: true}
		logger = zerolog.New(cw).With().Timestamp().Logger()
	}

	journal, err := store.NewMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening journal: %v\n", err)
		os.Exit(1)
	}
	defer journal.Close()

	source := audio.Source(audio.Lullaby)
	if cfg.MusicPath != "" {
		source = audio.WAVFile(cfg.MusicPath)
	}
	player := audio.NewSpeakerPlayer(source, cfg.Gain())
	defer player.Close()

	session := engine.NewSession(clock.Real(), engine.Options{
		Secret:           cfg.Secret,
		Epoch:            cfg.Epoch(),
		TrailProbability: &cfg.TrailProbability,
		MaxEntities:      cfg.MaxEntities,
		Seed:             cfg.Seed,
		Sounds:           audio.NewEffects(player, cfg.Gain(), logger),
		Reveals:          tui.DefaultReveals(),
		Logger:           logger,
	})
	session.Start()
	defer session.Close()

	music := audio.NewCoordinator(player, session.Hub, logger)
	music.Start()
	defer music.Close()

	app := tui.NewApp(session, music, journal, logger)
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

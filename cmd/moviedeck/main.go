package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sebastiantruijens/moviedeck/internal/config"
	"github.com/sebastiantruijens/moviedeck/internal/logger"
	"github.com/sebastiantruijens/moviedeck/internal/movieapi"
	"github.com/sebastiantruijens/moviedeck/internal/store"
	"github.com/sebastiantruijens/moviedeck/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "moviedeck: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file
	log, closer, err := logger.OpenFile(cfg.Logging)
	if err != nil {
		return err
	}
	defer closer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client := movieapi.NewClient(cfg.API.BaseURL, cfg.API.Timeout, log)
	movies := store.New(client, log)

	m := tui.New(ctx, tui.Options{
		Store:          movies,
		PosterURL:      client.PosterURL,
		OpenURL:        movieapi.OpenBrowser,
		Logger:         log,
		AlertTTL:       cfg.UI.AlertTTL,
		SearchDebounce: cfg.UI.SearchDebounce,
	})

	log.Info("starting moviedeck", "base_url", cfg.API.BaseURL)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	log.Info("moviedeck exited")
	return nil
}

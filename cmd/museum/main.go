package main

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/prasanthprabakaran/css-art-museum/internal/config"
	"github.com/prasanthprabakaran/css-art-museum/internal/manifest"
	"github.com/prasanthprabakaran/css-art-museum/internal/museum"
	"github.com/prasanthprabakaran/css-art-museum/internal/prefs"
	"github.com/prasanthprabakaran/css-art-museum/internal/ui"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	userPrefs, err := prefs.Load(cfg.PrefsPath)
	if err != nil {
		log.Printf("Warning: could not load prefs: %v", err)
		userPrefs = prefs.Default()
	}

	client := museum.NewClient(cfg.APIBaseURL)

	opts := ui.Options{
		Prefs:     userPrefs,
		PrefsPath: cfg.PrefsPath,
	}

	arts, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		// The manifest is the one load failure that replaces the gallery
		// with an error instead of degrading.
		opts.LoadErr = err
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		state := museum.LoadState(ctx, client, arts, museum.DefaultPageSize)
		cancel()

		opts.Session = museum.NewSession(client, state, userPrefs.Liked)

		// Register manifest entries the service doesn't know yet.
		// Fire-and-forget: rendering never waits on it.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()
			if err := museum.SyncRegistrations(ctx, client, arts); err != nil {
				log.Printf("Warning: artwork sync failed: %v", err)
			}
		}()
	}

	if _, err := tea.NewProgram(ui.New(opts), tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("museum UI stopped: %v", err)
	}
}

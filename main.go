// parley TUI - A terminal client for the Parley chat service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/morganforge/parley-tui/internal/api"
	"github.com/morganforge/parley-tui/internal/app"
	"github.com/morganforge/parley-tui/internal/config"
	"github.com/morganforge/parley-tui/internal/session"
	"github.com/morganforge/parley-tui/internal/ui/chat"
	"github.com/morganforge/parley-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.2.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	for _, arg := range os.Args[1:] {
		if arg == "--version" || arg == "-v" {
			fmt.Printf("parley %s (%s, built %s)\n", Version, GitCommit, BuildDate)
			return nil
		}
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.Dir(), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Debug logging goes to a file; stderr belongs to the TUI.
	logFile, err := os.OpenFile(config.LogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)
	log.SetPrefix("parley ")

	store, err := session.Open(config.TokenPath())
	if err != nil {
		return err
	}
	session.Attach(store)
	defer session.Detach()

	client := api.NewClient(cfg.Server.URL, store).
		WithTimeout(time.Duration(cfg.Server.TimeoutSecs) * time.Second)

	root := app.New(styles.NewTheme(), client, store, chat.Options{
		ShowTimestamps: cfg.UI.ShowTimestamps,
		RenderMarkdown: cfg.UI.RenderMarkdown,
	})

	p := tea.NewProgram(root, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui exited with error: %w", err)
	}
	return nil
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/sandeepkv93/studyplan/internal/storage"
	"github.com/sandeepkv93/studyplan/internal/update"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "studyplan failed: load .env: %v\n", err)
		os.Exit(1)
	}
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	if cfg.DebugLogPath != "" {
		f, err := tea.LogToFile(cfg.DebugLogPath, "studyplan")
		if err != nil {
			fmt.Fprintf(os.Stderr, "studyplan failed: open debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "studyplan failed: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg update.RuntimeConfig) error {
	store, err := storage.Open(cfg.StorageConfig())
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	schedule, err := store.Load(context.Background())
	if err != nil {
		return fmt.Errorf("load schedule: %w", err)
	}
	log.Printf("studyplan: loaded %d entries from %s (%s)", len(schedule), cfg.StorePath, cfg.Backend)

	var notifier update.DesktopNotifier = update.NoopDesktopNotifier{}
	if cfg.DesktopNotifications {
		notifier = update.ExecDesktopNotifier{}
	}

	program := tea.NewProgram(update.NewModelWithConfig(schedule, store, notifier, cfg))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}

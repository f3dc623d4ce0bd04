package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/TFury30/LagSwitch/internal/config"
	"github.com/TFury30/LagSwitch/internal/eventlog"
	"github.com/TFury30/LagSwitch/internal/journal"
	"github.com/TFury30/LagSwitch/internal/singleinstance"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lagswitch:", err)
		os.Exit(1)
	}
}

func run() error {
	lock, err := singleinstance.TryLock(singleinstance.DefaultMutexName())
	if errors.Is(err, singleinstance.ErrAlreadyRunning) {
		fmt.Println("LagSwitch is already running.")
		return nil
	}
	if err != nil {
		slog.Warn("[main] single-instance check failed, continuing anyway", "error", err)
	}
	if lock != nil {
		defer lock.Release()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := config.NewStore("")
	settings := store.LoadSettings()

	journalPath := settings.JournalPath
	if journalPath == "" {
		journalPath = filepath.Join(store.Dir(), journal.DefaultFileName)
	}
	j, err := journal.Open(journalPath)
	if err != nil {
		slog.Warn("[main] journal unavailable, transitions will not be recorded", "path", journalPath, "error", err)
		j = nil
	}
	if j != nil {
		defer j.Close()
	}

	base := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: settings.Level()})
	slog.SetDefault(slog.New(eventlog.NewTeeHandler(base, slog.LevelWarn, func(at time.Time, level slog.Level, msg string) {
		j.RecordLog(at, level, msg)
	})))

	binding, err := bootstrapBinding(ctx, store)
	if err != nil {
		return err
	}
	mode, err := bootstrapMode(store, os.Stdin)
	if err != nil {
		return err
	}

	return NewApp(store, binding, mode, j).Run(ctx)
}

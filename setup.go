package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/TFury30/LagSwitch/internal/config"
	"github.com/TFury30/LagSwitch/internal/hotkeys"
	"github.com/TFury30/LagSwitch/internal/netswitch"
)

// bootstrapBinding returns the persisted hotkey, prompting for one on the
// first run (or whenever hotkey.txt is missing or unreadable).
func bootstrapBinding(ctx context.Context, store *config.Store) (hotkeys.Binding, error) {
	if binding, ok := store.LoadHotkey(); ok {
		return binding, nil
	}

	fmt.Println("No hotkey configured.")
	fmt.Println("Press the key you want to use as the switch...")
	binding, err := hotkeys.CaptureNext(ctx)
	if err != nil {
		return hotkeys.Binding{}, fmt.Errorf("capture hotkey: %w", err)
	}
	if err := store.SaveHotkey(binding); err != nil {
		slog.Warn("[setup] could not persist hotkey, it will be asked again next run", "error", err)
	}
	fmt.Printf("Hotkey set to %q.\n", binding.Normalized())
	return binding, nil
}

// bootstrapMode returns the persisted mode, prompting on stdin when mode.txt
// is missing or holds an unrecognized value. The reader is a parameter so
// the prompt loop can be tested without a terminal.
func bootstrapMode(store *config.Store, in io.Reader) (netswitch.Mode, error) {
	if mode, ok := store.LoadMode(); ok {
		return mode, nil
	}

	fmt.Println("Select a mode:")
	fmt.Println("  1. Toggle (press once to cut, press again to restore)")
	fmt.Println("  2. Hold (internet is down only while the key is held)")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Print("Mode [1/2]: ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("read mode selection: %w", err)
			}
			return 0, fmt.Errorf("read mode selection: %w", io.ErrUnexpectedEOF)
		}
		mode, ok := netswitch.ParseMode(strings.ToLower(strings.TrimSpace(scanner.Text())))
		if !ok {
			fmt.Println("Please enter 1 or 2.")
			continue
		}
		if err := store.SaveMode(mode); err != nil {
			slog.Warn("[setup] could not persist mode, it will be asked again next run", "error", err)
		}
		return mode, nil
	}
}

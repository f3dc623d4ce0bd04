// Package config persists the hotkey binding and mode as flat one-value
// text files (hotkey.txt, mode.txt) next to the binary, plus an optional
// settings.yaml with advanced overrides. Unreadable or unrecognized values
// are treated as absent so a damaged file re-enters first-run setup instead
// of crashing.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/TFury30/LagSwitch/internal/hotkeys"
	"github.com/TFury30/LagSwitch/internal/netswitch"
)

const (
	// SettingHotkey and SettingMode are the two persisted scalar settings.
	SettingHotkey = "hotkey"
	SettingMode   = "mode"

	settingsFileName = "settings.yaml"
)

// Store reads and writes settings under one directory. The zero directory
// means the working directory, next to the binary in the typical install.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir ("" for the working directory).
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "."
	}
	return &Store{dir: dir}
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

func (s *Store) settingPath(name string) string {
	return filepath.Join(s.dir, name+".txt")
}

// LoadSetting returns the first line of <name>.txt. ok is false when the
// file is missing, unreadable, or empty; read errors are logged, never
// propagated (ConfigReadFailure policy: treat as absent).
func (s *Store) LoadSetting(name string) (string, bool) {
	data, err := os.ReadFile(s.settingPath(name))
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("[config] setting unreadable, treating as absent",
				"setting", name, "error", err)
		}
		return "", false
	}

	value, _, _ := strings.Cut(string(data), "\n")
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	return value, true
}

// SaveSetting writes value as the sole content of <name>.txt.
func (s *Store) SaveSetting(name, value string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}
	path := s.settingPath(name)
	if err := os.WriteFile(path, []byte(value+"\n"), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// LoadHotkey returns the persisted binding. A value that no longer parses
// (edited by hand, stale layout) counts as absent.
func (s *Store) LoadHotkey() (hotkeys.Binding, bool) {
	value, ok := s.LoadSetting(SettingHotkey)
	if !ok {
		return hotkeys.Binding{}, false
	}
	binding, err := hotkeys.ParseBinding(value)
	if err != nil {
		slog.Warn("[config] persisted hotkey invalid, re-entering setup",
			"value", value, "error", err)
		return hotkeys.Binding{}, false
	}
	return binding, true
}

// SaveHotkey persists the binding's normalized identifier.
func (s *Store) SaveHotkey(b hotkeys.Binding) error {
	return s.SaveSetting(SettingHotkey, b.Normalized())
}

// LoadMode returns the persisted interaction mode.
func (s *Store) LoadMode() (netswitch.Mode, bool) {
	value, ok := s.LoadSetting(SettingMode)
	if !ok {
		return 0, false
	}
	mode, ok := netswitch.ParseMode(value)
	if !ok {
		slog.Warn("[config] persisted mode unrecognized, re-entering setup", "value", value)
		return 0, false
	}
	return mode, true
}

// SaveMode persists the mode's wire code ("1" or "2").
func (s *Store) SaveMode(m netswitch.Mode) error {
	return s.SaveSetting(SettingMode, m.Code())
}

package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	// maxRenameRetry and renameRetryBaseDelay cover transient Windows file
	// locks (antivirus, indexers) during the atomic settings rename.
	maxRenameRetry       = 10
	renameRetryBaseDelay = 10 * time.Millisecond
)

// Settings are the optional advanced overrides from settings.yaml. The file
// is entirely optional; the zero value means "all defaults". The binding and
// mode are NOT part of this file, they live in their own flat files and stay
// immutable for the run.
type Settings struct {
	// DisableCommand and EnableCommand replace the platform default network
	// commands. Split with shell-style quoting, run without a shell.
	DisableCommand string `yaml:"disable_command,omitempty"`
	EnableCommand  string `yaml:"enable_command,omitempty"`

	// Notifications toggles desktop notifications. Nil means enabled.
	Notifications *bool `yaml:"notifications,omitempty"`

	// JournalPath overrides where the transition journal database lives.
	// Empty keeps the default next to the other settings files.
	JournalPath string `yaml:"journal_path,omitempty"`

	// LogLevel is one of debug, info, warn, error. Empty means info.
	LogLevel string `yaml:"log_level,omitempty"`
}

// NotificationsEnabled reports the effective notification toggle.
func (s Settings) NotificationsEnabled() bool {
	return s.Notifications == nil || *s.Notifications
}

// Level maps LogLevel onto a slog level, defaulting to info.
func (s Settings) Level() slog.Level {
	switch strings.ToLower(strings.TrimSpace(s.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (s *Store) settingsPath() string {
	return filepath.Join(s.dir, settingsFileName)
}

// LoadSettings reads settings.yaml. A missing file yields defaults; a
// malformed file yields defaults with a warning, consistent with the
// treat-as-absent policy for the flat files.
func (s *Store) LoadSettings() Settings {
	data, err := os.ReadFile(s.settingsPath())
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("[config] settings.yaml unreadable, using defaults", "error", err)
		}
		return Settings{}
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		slog.Warn("[config] settings.yaml malformed, using defaults", "error", err)
		return Settings{}
	}
	return settings
}

// SaveSettings writes settings.yaml atomically: temp file in the same
// directory, then rename with retries for transient Windows locks.
func (s *Store) SaveSettings(settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create settings dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, settingsFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp settings file: %w", err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp settings file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp settings file: %w", err)
	}

	var renameErr error
	for attempt := 1; attempt <= maxRenameRetry; attempt++ {
		renameErr = os.Rename(tmpPath, s.settingsPath())
		if renameErr == nil {
			return nil
		}
		time.Sleep(renameRetryBaseDelay * time.Duration(attempt))
	}
	os.Remove(tmpPath)
	return fmt.Errorf("rename settings file: %w", renameErr)
}

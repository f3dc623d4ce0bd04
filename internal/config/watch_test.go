package config

import (
	"context"
	"testing"
	"time"
)

func TestWatchDeliversReloadedSettings(t *testing.T) {
	store := NewStore(t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Settings, 4)
	if err := store.Watch(ctx, func(s Settings) { changes <- s }); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := store.SaveSettings(Settings{DisableCommand: "nmcli networking off"}); err != nil {
		t.Fatalf("SaveSettings failed: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-changes:
			if got.DisableCommand == "nmcli networking off" {
				return
			}
			// Earlier partial events may carry stale content; keep waiting.
		case <-deadline:
			t.Fatal("no reload observed after settings.yaml write")
		}
	}
}

func TestWatchRequiresCallback(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.Watch(context.Background(), nil); err == nil {
		t.Fatal("Watch with nil callback should fail")
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/TFury30/LagSwitch/internal/config"
	"github.com/TFury30/LagSwitch/internal/hotkeys"
	"github.com/TFury30/LagSwitch/internal/journal"
	"github.com/TFury30/LagSwitch/internal/netctl"
	"github.com/TFury30/LagSwitch/internal/netswitch"
	"github.com/TFury30/LagSwitch/internal/notify"
	"github.com/TFury30/LagSwitch/internal/workerutil"
)

// App owns the wired collaborators for one run: the config store, the
// network controller, the notifier, the journal and the state machine.
type App struct {
	store    *config.Store
	binding  hotkeys.Binding
	mode     netswitch.Mode
	journal  *journal.Journal
	notifier *notify.Desktop

	controller *netctl.Controller
	sw         *netswitch.Switch
}

// NewApp wires an App from bootstrapped configuration. The journal may be
// nil (open failure degrades to no persistent record).
func NewApp(store *config.Store, binding hotkeys.Binding, mode netswitch.Mode, j *journal.Journal) *App {
	return &App{
		store:    store,
		binding:  binding,
		mode:     mode,
		journal:  j,
		notifier: notify.New(),
	}
}

// Run blocks until ctx is cancelled. Failure to install the global hotkey
// hook is the one fatal error: without it the program has no purpose.
func (a *App) Run(ctx context.Context) error {
	settings := a.store.LoadSettings()
	a.notifier.SetEnabled(settings.NotificationsEnabled())

	controller, err := netctl.New(settings.DisableCommand, settings.EnableCommand)
	if err != nil {
		return fmt.Errorf("network commands: %w", err)
	}
	a.controller = controller

	initial := netswitch.StateConnected
	if !netctl.Probe() {
		initial = netswitch.StateDisconnected
		slog.Info("[app] no connectivity detected at startup, starting disconnected")
	}

	a.sw = netswitch.New(a.mode, controller, a.notifier,
		netswitch.WithInitialState(initial),
		netswitch.WithObserver(a.journal.RecordTransition),
	)

	var wg sync.WaitGroup
	workerutil.RunWithPanicRecovery(ctx, "transitions", &wg, a.sw.Run, workerutil.RecoveryOptions{})

	listener, err := hotkeys.NewListener(a.binding)
	if err != nil {
		return err
	}
	press := func() { a.sw.Handle(netswitch.Press) }
	release := func() { a.sw.Handle(netswitch.Release) }
	if err := listener.Start(press, release); err != nil {
		if errors.Is(err, hotkeys.ErrHookUnavailable) {
			return fmt.Errorf("%w (on Linux this usually means missing input permissions; on macOS grant Accessibility access)", err)
		}
		return err
	}
	defer listener.Stop()

	if err := a.store.Watch(ctx, a.applySettings); err != nil {
		// Live-reload is a convenience; run fine without it.
		slog.Warn("[app] settings live-reload unavailable", "error", err)
	}

	a.printStatus(initial)

	<-ctx.Done()
	wg.Wait()
	return nil
}

// applySettings is the live-reload hook for settings.yaml. Only the
// advanced overrides change mid-run; binding and mode stay fixed.
func (a *App) applySettings(settings config.Settings) {
	a.notifier.SetEnabled(settings.NotificationsEnabled())
	if err := a.controller.SetOverrides(settings.DisableCommand, settings.EnableCommand); err != nil {
		slog.Warn("[app] ignoring invalid command override", "error", err)
	}
}

func (a *App) printStatus(initial netswitch.State) {
	fmt.Println("--------------------------------------------------")
	fmt.Println("LagSwitch is running")
	fmt.Printf("  hotkey: %s | mode: %s | state: %s\n",
		a.binding.Normalized(), a.mode, initial)
	fmt.Println("  delete hotkey.txt or mode.txt and restart to reconfigure")
	if entries, err := a.journal.Recent(3); err == nil && len(entries) > 0 {
		fmt.Println("  recent activity:")
		for _, e := range entries {
			line := fmt.Sprintf("    %s  %s", e.At.Local().Format("2006-01-02 15:04:05"), e.Detail)
			if e.Error != "" {
				line += "  (" + e.Error + ")"
			}
			fmt.Println(line)
		}
	}
	fmt.Println("Press Ctrl+C to quit.")
	fmt.Println("--------------------------------------------------")
}

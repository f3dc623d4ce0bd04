// Package netswitch owns the connectivity state machine. It translates
// hotkey press/release events into network enable/disable transitions,
// serialized through a single worker goroutine so the global event listener
// never waits on an ipconfig-class command.
package netswitch

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"
)

// State is the tracked connectivity state. The switch tracks what it last
// did, not what the adapter actually reports; the startup probe seeds the
// initial value.
type State int32

const (
	StateConnected State = iota
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Mode selects how key events map to transitions.
type Mode int

const (
	// ModeToggle flips the state on every press; releases are ignored.
	ModeToggle Mode = iota + 1
	// ModeHold disconnects while the key is held and reconnects on release.
	ModeHold
)

func (m Mode) String() string {
	switch m {
	case ModeToggle:
		return "toggle"
	case ModeHold:
		return "hold"
	default:
		return "unknown"
	}
}

// EventKind is a hotkey event as delivered by the listener.
type EventKind int

const (
	Press EventKind = iota
	Release
)

func (e EventKind) String() string {
	if e == Press {
		return "press"
	}
	return "release"
}

// Toggler flips the host's network connectivity. Both calls are synchronous
// and return an error on non-zero exit or spawn failure. No retries.
type Toggler interface {
	Disable(ctx context.Context) error
	Enable(ctx context.Context) error
}

// Notifier shows a best-effort desktop notification. Implementations swallow
// their own failures.
type Notifier interface {
	Notify(title, message string)
}

// Transition describes one handled event that attempted a state change.
// Err is non-nil when the network command failed; in that case From == To.
type Transition struct {
	At    time.Time
	Event EventKind
	From  State
	To    State
	Err   error
}

const (
	notifyTitle = "LagSwitch"

	msgDisabled      = "Switch Enabled - Internet Disabled"
	msgEnabled       = "Switch Disabled - Internet Enabled"
	msgDisableFailed = "Failed to disable internet"
	msgEnableFailed  = "Failed to enable internet"
)

// eventQueueSize buffers keystrokes while a slow command is in flight so
// the hook callback almost never waits.
const eventQueueSize = 64

// Switch is the hotkey-driven connectivity state machine.
type Switch struct {
	mode     Mode
	toggler  Toggler
	notifier Notifier
	observer func(Transition)

	// state is written only inside the worker goroutine; atomic so the
	// status line can read it from other goroutines.
	state  atomic.Int32
	events chan EventKind
}

// Option configures a Switch.
type Option func(*Switch)

// WithInitialState seeds the state from the startup connectivity probe.
func WithInitialState(s State) Option {
	return func(sw *Switch) { sw.state.Store(int32(s)) }
}

// WithObserver registers a callback invoked after every attempted
// transition, including failed ones. Called from the worker goroutine.
func WithObserver(fn func(Transition)) Option {
	return func(sw *Switch) { sw.observer = fn }
}

// New creates a Switch in StateConnected unless WithInitialState overrides it.
func New(mode Mode, toggler Toggler, notifier Notifier, opts ...Option) *Switch {
	sw := &Switch{
		mode:     mode,
		toggler:  toggler,
		notifier: notifier,
		events:   make(chan EventKind, eventQueueSize),
	}
	sw.state.Store(int32(StateConnected))
	for _, opt := range opts {
		opt(sw)
	}
	return sw
}

// State returns the current connectivity state.
func (sw *Switch) State() State {
	return State(sw.state.Load())
}

// Mode returns the configured interaction mode.
func (sw *Switch) Mode() Mode {
	return sw.mode
}

// Handle enqueues a hotkey event. Events are applied strictly in arrival
// order by the worker goroutine; every event counts toward the press/state
// parity, so when a burst outruns the buffer Handle waits for the worker
// rather than lose a transition.
func (sw *Switch) Handle(ev EventKind) {
	sw.events <- ev
}

// Run consumes and applies events until ctx is cancelled. Exactly one Run
// must be active per Switch; it is the only goroutine that mutates state.
func (sw *Switch) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-sw.events:
			sw.apply(ctx, ev)
		}
	}
}

// apply maps one event onto at most one network command. Redundant events
// (press while already disconnected in hold mode, release while connected)
// are no-ops: no command, no notification.
func (sw *Switch) apply(ctx context.Context, ev EventKind) {
	state := sw.State()

	switch sw.mode {
	case ModeToggle:
		if ev != Press {
			return
		}
		if state == StateConnected {
			sw.disable(ctx, ev)
		} else {
			sw.enable(ctx, ev)
		}
	case ModeHold:
		switch {
		case ev == Press && state == StateConnected:
			sw.disable(ctx, ev)
		case ev == Release && state == StateDisconnected:
			sw.enable(ctx, ev)
		}
	}
}

func (sw *Switch) disable(ctx context.Context, ev EventKind) {
	tr := Transition{At: time.Now(), Event: ev, From: StateConnected, To: StateDisconnected}

	if err := sw.toggler.Disable(ctx); err != nil {
		// State stays Connected; the next matching event retries.
		tr.To = StateConnected
		tr.Err = err
		slog.Error("[switch] disable network failed", "error", err)
		sw.notifier.Notify(notifyTitle, msgDisableFailed)
		sw.observe(tr)
		return
	}

	sw.state.Store(int32(StateDisconnected))
	slog.Info("[switch] network disabled", "mode", sw.mode.String())
	sw.notifier.Notify(notifyTitle, msgDisabled)
	sw.observe(tr)
}

func (sw *Switch) enable(ctx context.Context, ev EventKind) {
	tr := Transition{At: time.Now(), Event: ev, From: StateDisconnected, To: StateConnected}

	if err := sw.toggler.Enable(ctx); err != nil {
		tr.To = StateDisconnected
		tr.Err = err
		slog.Error("[switch] enable network failed", "error", err)
		sw.notifier.Notify(notifyTitle, msgEnableFailed)
		sw.observe(tr)
		return
	}

	sw.state.Store(int32(StateConnected))
	slog.Info("[switch] network enabled", "mode", sw.mode.String())
	sw.notifier.Notify(notifyTitle, msgEnabled)
	sw.observe(tr)
}

func (sw *Switch) observe(tr Transition) {
	if sw.observer != nil {
		sw.observer(tr)
	}
}

package hotkeys

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	hook "github.com/robotn/gohook"
)

// ErrHookUnavailable indicates the OS-level keyboard hook cannot work here
// (missing permissions, no display server). This is fatal to the caller:
// without the hook the program cannot do its job. The hook library itself
// reports success even when it installed nothing, so detection relies on
// hookPrecheck and on the capture timeout below.
var ErrHookUnavailable = errors.New("global keyboard hook unavailable")

// captureTimeout bounds the first-run key capture. A working hook delivers
// the user's keypress well inside this; hitting it means events are not
// flowing at all.
const captureTimeout = 2 * time.Minute

// Listener subscribes to global press/release events for a single binding.
// Callbacks run on the hook's dispatch goroutine and must not block long;
// the state machine's Handle is a buffered enqueue for exactly this reason.
type Listener struct {
	mu      sync.Mutex
	binding Binding
	done    chan bool // closed by the hook processor when End() runs
	running bool
}

// NewListener creates a listener for binding.
func NewListener(binding Binding) (*Listener, error) {
	if binding.IsZero() {
		return nil, fmt.Errorf("listener requires a non-empty binding")
	}
	return &Listener{binding: binding}, nil
}

// Binding returns the bound hotkey.
func (l *Listener) Binding() Binding {
	return l.binding
}

// Start installs the global hook and dispatches onPress/onRelease for the
// bound key. Auto-repeat while the key is held arrives as a hold event and
// is not dispatched, so toggle mode sees one press per physical press.
func (l *Listener) Start(onPress, onRelease func()) error {
	if onPress == nil || onRelease == nil {
		return errors.New("press and release callbacks are required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return errors.New("listener already started")
	}

	if err := hookPrecheck(); err != nil {
		return err
	}

	keys := l.binding.Keys()
	hook.Register(hook.KeyDown, keys, func(hook.Event) { onPress() })
	hook.Register(hook.KeyUp, keys, func(hook.Event) { onRelease() })

	l.done = hook.Process(hook.Start())
	l.running = true
	return nil
}

// Stop uninstalls the hook and waits for the dispatch goroutine to exit.
// Safe to call when the listener never started.
func (l *Listener) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.running {
		return
	}
	hook.End()
	if l.done != nil {
		<-l.done
	}
	l.running = false
}

// CaptureNext blocks until the next key press anywhere on the system and
// returns it as a Binding. Used by the first-run setup prompt. Keys the
// hook tables cannot match again later are skipped, not returned. A silent
// hook surfaces as ErrHookUnavailable after captureTimeout.
func CaptureNext(ctx context.Context) (Binding, error) {
	if err := hookPrecheck(); err != nil {
		return Binding{}, err
	}

	events := hook.Start()
	defer hook.End()

	timeout := time.NewTimer(captureTimeout)
	defer timeout.Stop()

	for {
		select {
		case <-ctx.Done():
			return Binding{}, ctx.Err()
		case <-timeout.C:
			return Binding{}, fmt.Errorf("%w: no key event arrived within %s", ErrHookUnavailable, captureTimeout)
		case ev, ok := <-events:
			if !ok {
				return Binding{}, fmt.Errorf("%w: event stream closed", ErrHookUnavailable)
			}
			if ev.Kind != hook.KeyDown {
				continue
			}
			name := keyName(ev)
			if name == "" {
				continue
			}
			binding, err := ParseBinding(name)
			if err != nil {
				continue
			}
			return binding, nil
		}
	}
}

// keyName resolves an event to the hook-table name for the pressed key.
func keyName(ev hook.Event) string {
	if name := hook.RawcodetoKeychar(ev.Rawcode); name != "" {
		return strings.ToLower(name)
	}
	return ""
}

// Package notify shows best-effort desktop notifications. Failures are
// logged at debug level and swallowed: a broken notification daemon must
// never take down the switch or delay a transition.
package notify

import (
	"log/slog"
	"sync/atomic"
)

const appID = "LagSwitch"

// Desktop sends platform desktop notifications. The zero value is not
// usable; construct with New.
type Desktop struct {
	enabled atomic.Bool
	send    func(title, message string) error // platform implementation, test seam
}

// New returns a Desktop notifier using the platform notification channel.
func New() *Desktop {
	d := &Desktop{send: platformSend}
	d.enabled.Store(true)
	return d
}

// SetEnabled flips notification delivery (settings live-reload hook).
// A disabled notifier still logs the message so the console shows status.
func (d *Desktop) SetEnabled(enabled bool) {
	d.enabled.Store(enabled)
}

// Notify shows title/message without blocking the caller. Delivery failures
// are swallowed.
func (d *Desktop) Notify(title, message string) {
	if !d.enabled.Load() {
		slog.Info("[notify] (notifications disabled)", "message", message)
		return
	}

	go func() {
		if err := d.send(title, message); err != nil {
			slog.Debug("[notify] delivery failed", "error", err, "message", message)
		}
	}()
}

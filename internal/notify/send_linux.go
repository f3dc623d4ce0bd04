//go:build linux

package notify

import "github.com/godbus/dbus/v5"

// notificationTimeoutMs is how long the desktop keeps the toast visible.
const notificationTimeoutMs = 4000

func platformSend(title, message string) error {
	conn, err := dbus.SessionBus()
	if err != nil {
		return err
	}

	// Argument order per org.freedesktop.Notifications: app name, replaces
	// id, icon, summary, body, actions, hints, expire timeout.
	obj := conn.Object("org.freedesktop.Notifications", "/org/freedesktop/Notifications")
	call := obj.Call("org.freedesktop.Notifications.Notify", 0,
		appID, uint32(0), "", title, message,
		[]string{}, map[string]dbus.Variant{}, int32(notificationTimeoutMs))
	return call.Err
}

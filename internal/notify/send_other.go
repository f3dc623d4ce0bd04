//go:build !windows && !linux && !darwin

package notify

import "errors"

func platformSend(_, _ string) error {
	return errors.New("desktop notifications are not supported on this platform")
}

//go:build windows

package notify

import toast "git.sr.ht/~jackmordaunt/go-toast/v2"

func platformSend(title, message string) error {
	n := toast.Notification{
		AppID: appID,
		Title: title,
		Body:  message,
	}
	return n.Push()
}

//go:build windows

package hotkeys

// Low-level keyboard hooks need no special permission on Windows.
func hookPrecheck() error { return nil }

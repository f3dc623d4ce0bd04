//go:build darwin

package hotkeys

// macOS prompts for Accessibility access when the first event tap is
// created; there is no way to query the grant beforehand without linking
// extra frameworks. A denied grant shows up as a silent hook, which the
// capture timeout turns into ErrHookUnavailable.
func hookPrecheck() error { return nil }

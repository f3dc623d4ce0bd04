// Package hotkeys captures and listens for one global key binding. The hook
// layer is robotn/gohook; bindings are validated against the same key-name
// tables the hook uses, so a binding that parses is a binding the hook can
// match.
package hotkeys

import (
	"fmt"
	"strings"

	"github.com/vcaesar/keycode"
)

// Binding describes a parsed global hotkey: zero or more modifiers plus one
// key, e.g. "f10" or "ctrl+shift+a". Construct only via ParseBinding to
// guarantee invariant consistency.
type Binding struct {
	keys       []string // modifiers first, main key last, normalized
	normalized string
}

// Keys returns the hook-table names, modifiers first and the main key last.
func (b Binding) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Key returns the main (non-modifier) key name.
func (b Binding) Key() string {
	if len(b.keys) == 0 {
		return ""
	}
	return b.keys[len(b.keys)-1]
}

// Normalized returns the canonical identifier persisted to hotkey.txt.
func (b Binding) Normalized() string { return b.normalized }

// IsZero reports whether the binding is unset.
func (b Binding) IsZero() bool { return len(b.keys) == 0 }

// modifierAliases normalizes the modifier spellings users type to the names
// the hook tables use.
var modifierAliases = map[string]string{
	"ctrl":    "ctrl",
	"control": "ctrl",
	"shift":   "shift",
	"alt":     "alt",
	"cmd":     "cmd",
	"command": "cmd",
	"win":     "cmd",
	"super":   "cmd",
}

// ParseBinding parses an identifier like "f10" or "ctrl+shift+a".
// Tokens before the last must be modifiers; the last token may be any key
// known to the hook tables, including a bare modifier (the capture flow can
// legitimately bind "shift" alone).
func ParseBinding(spec string) (Binding, error) {
	raw := strings.ToLower(strings.TrimSpace(spec))
	if raw == "" {
		return Binding{}, fmt.Errorf("hotkey identifier is empty")
	}

	parts := strings.Split(raw, "+")
	keys := make([]string, 0, len(parts))
	seen := map[string]struct{}{}

	for i, token := range parts {
		name := strings.TrimSpace(token)
		if name == "" {
			return Binding{}, fmt.Errorf("empty token in hotkey %q", raw)
		}

		if i < len(parts)-1 {
			mod, ok := modifierAliases[name]
			if !ok {
				return Binding{}, fmt.Errorf("unknown modifier %q in hotkey %q", token, raw)
			}
			name = mod
		} else if mod, ok := modifierAliases[name]; ok {
			name = mod
		} else if !knownKey(name) {
			return Binding{}, fmt.Errorf("unknown key %q in hotkey %q", token, raw)
		}

		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		keys = append(keys, name)
	}

	return Binding{
		keys:       keys,
		normalized: strings.Join(keys, "+"),
	}, nil
}

// knownKey reports whether the hook tables can match name. The hook maps
// names outside its table to keycode 0, a binding that never fires, so
// parsing rejects them instead of accepting a dead hotkey.
func knownKey(name string) bool {
	_, ok := keycode.Keycode[name]
	return ok
}

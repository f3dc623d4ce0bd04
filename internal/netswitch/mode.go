package netswitch

// Mode wire codes as persisted in mode.txt. "1" and "2" are the historical
// values; the word forms are accepted for hand-edited files.
const (
	modeCodeToggle = "1"
	modeCodeHold   = "2"
)

// ParseMode interprets a persisted mode value. ok is false for anything
// unrecognized, which callers treat the same as an absent setting.
func ParseMode(value string) (Mode, bool) {
	switch value {
	case modeCodeToggle, "toggle":
		return ModeToggle, true
	case modeCodeHold, "hold":
		return ModeHold, true
	default:
		return 0, false
	}
}

// Code returns the wire value written to mode.txt.
func (m Mode) Code() string {
	if m == ModeHold {
		return modeCodeHold
	}
	return modeCodeToggle
}

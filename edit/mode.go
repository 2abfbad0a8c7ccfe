package edit

import (
	"fmt"
	"strings"
)

// Mode selects the per-vertex weight rule of Apply.
type Mode uint8

const (
	// Smear interpolates the active weight toward a target value.
	Smear Mode = iota
	// Harden pushes the active weight away from 0.5.
	Harden
	// Add offsets the active weight and rescales the other groups around it.
	Add
)

var modeNames = [...]string{
	Smear:  "smear",
	Harden: "harden",
	Add:    "add",
}

// String returns the lower-case mode name.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool { return int(m) < len(modeNames) }

// ParseMode maps a mode name (case-insensitive) to its Mode.
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if n == key {
			return Mode(i), nil
		}
	}

	return 0, fmt.Errorf("ParseMode: unknown mode %q: %w", name, ErrInvalidParameter)
}

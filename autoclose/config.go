package autoclose

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// Mode selects which clicks close an overlay. Escape closes in every mode
// except ModeOff.
type Mode int

const (
	// ModeOff - the overlay is never closed automatically.
	ModeOff Mode = iota
	// ModeAny - clicks outside the overlay close it, and so do clicks inside
	// it. With InsideSelector set, inside clicks close only on matching
	// elements.
	ModeAny
	// ModeInsideOnly - only clicks inside the overlay close it.
	ModeInsideOnly
	// ModeOutsideOnly - only clicks outside the overlay close it.
	ModeOutsideOnly
)

func (m Mode) String() string {
	switch m {
	case ModeOff:
		return "off"
	case ModeAny:
		return "any"
	case ModeInsideOnly:
		return "inside"
	case ModeOutsideOnly:
		return "outside"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "off", "any", "inside" or "outside". "false" and "true"
// are accepted as aliases of "off" and "any".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "false":
		return ModeOff, nil
	case "any", "true":
		return ModeAny, nil
	case "inside":
		return ModeInsideOnly, nil
	case "outside":
		return ModeOutsideOnly, nil
	default:
		return ModeOff, fmt.Errorf("invalid auto close mode '%s'", s)
	}
}

// Config describes an open overlay.
type Config struct {
	Mode Mode
	// Inside - elements of the overlay itself.
	Inside []Element
	// Ignore - elements that never trigger a close, e.g. the toggle button.
	Ignore []Element
	// InsideSelector - when set, only inside elements matching it count for
	// ModeAny and ModeInsideOnly.
	InsideSelector string
	Platform       Platform
}

func DefaultConfig() Config {
	return Config{Mode: ModeAny}
}

// ShouldClose evaluates a press event. It must be called when the press
// happens: by the time the gesture is released the target may already be
// detached from the tree.
func (c Config) ShouldClose(e Event) bool {
	if e.Button == ButtonSecondary || containedIn(e.Target, c.Ignore) {
		return false
	}

	switch c.Mode {
	case ModeInsideOnly:
		return containedIn(e.Target, c.Inside) && c.matchesSelector(e.Target)
	case ModeOutsideOnly:
		return !containedIn(e.Target, c.Inside)
	case ModeAny:
		return c.matchesSelector(e.Target) || !containedIn(e.Target, c.Inside)
	default:
		return false
	}
}

// matchesSelector is true when no selector is set.
func (c Config) matchesSelector(target Element) bool {
	if c.InsideSelector == "" {
		return true
	}

	return target != nil && target.Closest(c.InsideSelector)
}

func containedIn(target Element, elements []Element) bool {
	if target == nil {
		return false
	}

	return lo.SomeBy(elements, func(item Element) bool {
		return item != nil && item.Contains(target)
	})
}

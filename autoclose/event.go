package autoclose

// Element is an opaque handle to a node of the host UI tree.
type Element interface {
	// Contains reports whether other is the element itself or one of its
	// descendants.
	Contains(other Element) bool
	// Closest reports whether the element or one of its ancestors matches
	// selector.
	Closest(selector string) bool
}

// EventKind is a normalized input event kind.
type EventKind int

const (
	KindPointerDown EventKind = iota + 1
	KindPointerUp
	KindTouchStart
	KindTouchEnd
	KindKeyDown
)

func (k EventKind) String() string {
	switch k {
	case KindPointerDown:
		return "pointerdown"
	case KindPointerUp:
		return "pointerup"
	case KindTouchStart:
		return "touchstart"
	case KindTouchEnd:
		return "touchend"
	case KindKeyDown:
		return "keydown"
	default:
		return "unknown"
	}
}

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonAuxiliary
	ButtonSecondary
)

// KeyEscape is the Key of an Escape key-down event.
const KeyEscape = "Escape"

// Event is an input event as seen by the coordinator. Adapters at the UI
// boundary build it from host events.
type Event struct {
	Kind EventKind
	// Target - element the event was dispatched to. May be nil.
	Target Element
	// Button - pressed button, pointer events only.
	Button Button
	// Key - key name, key events only.
	Key string
}

// IsEscape reports whether the event is an Escape key-down.
func (e Event) IsEscape() bool {
	return e.Kind == KindKeyDown && e.Key == KeyEscape
}

// Platform describes input capabilities of the host. It is resolved once by
// the caller and passed in Config.
type Platform struct {
	// TouchPrimary - presses arrive as touch events. Mouse events synthesized
	// after a touch are ignored to avoid handling one gesture twice.
	TouchPrimary bool
}

// PressKind returns the event kind that starts a gesture on the platform.
func (p Platform) PressKind() EventKind {
	if p.TouchPrimary {
		return KindTouchStart
	}

	return KindPointerDown
}

// ReleaseKind returns the event kind that ends a gesture on the platform.
func (p Platform) ReleaseKind() EventKind {
	if p.TouchPrimary {
		return KindTouchEnd
	}

	return KindPointerUp
}

// Package teaevents feeds bubbletea input messages to auto-close
// coordinators.
package teaevents

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Alp4ka/pagenav/autoclose"
)

// HitTester returns the element drawn at the given cell, or nil.
type HitTester func(x, y int) autoclose.Element

// Translate converts a bubbletea message into an autoclose.Event. ok is
// false for messages that are not pointer presses/releases or key presses.
func Translate(msg tea.Msg, hitTest HitTester) (e autoclose.Event, ok bool) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return translateMouse(tea.MouseEvent(msg), hitTest)
	case tea.KeyMsg:
		return translateKey(msg), true
	default:
		return autoclose.Event{}, false
	}
}

func translateMouse(m tea.MouseEvent, hitTest HitTester) (autoclose.Event, bool) {
	if m.IsWheel() {
		return autoclose.Event{}, false
	}

	var kind autoclose.EventKind
	switch m.Action {
	case tea.MouseActionPress:
		kind = autoclose.KindPointerDown
	case tea.MouseActionRelease:
		kind = autoclose.KindPointerUp
	default:
		return autoclose.Event{}, false
	}

	e := autoclose.Event{
		Kind:   kind,
		Button: translateButton(m.Button),
	}
	if hitTest != nil {
		e.Target = hitTest(m.X, m.Y)
	}

	return e, true
}

func translateButton(b tea.MouseButton) autoclose.Button {
	switch b {
	case tea.MouseButtonRight:
		return autoclose.ButtonSecondary
	case tea.MouseButtonMiddle:
		return autoclose.ButtonAuxiliary
	default:
		return autoclose.ButtonPrimary
	}
}

func translateKey(k tea.KeyMsg) autoclose.Event {
	key := k.String()
	if k.Type == tea.KeyEsc {
		key = autoclose.KeyEscape
	}

	return autoclose.Event{Kind: autoclose.KindKeyDown, Key: key}
}

// Bridge is an autoclose.EventSource fed from a bubbletea Update loop:
//
//	func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
//		m.bridge.Feed(msg)
//		...
//	}
type Bridge struct {
	*autoclose.Dispatcher
	hitTest HitTester
}

func NewBridge(hitTest HitTester) *Bridge {
	return &Bridge{
		Dispatcher: autoclose.NewDispatcher(),
		hitTest:    hitTest,
	}
}

// Feed dispatches msg to subscribed coordinators. It returns false when msg
// is not an input event.
func (b *Bridge) Feed(msg tea.Msg) bool {
	e, ok := Translate(msg, b.hitTest)
	if !ok {
		return false
	}

	b.Dispatch(e)

	return true
}

// CloseOverlayMsg is sent by SendClose when a coordinator decides to close.
type CloseOverlayMsg struct {
	Name string
}

// SendClose returns a close callback that posts CloseOverlayMsg through
// send, usually (*tea.Program).Send. The message is sent from a new
// goroutine: the callback may run inside Update, where Send would block.
func SendClose(send func(tea.Msg), name string) func() {
	return func() {
		go send(CloseOverlayMsg{Name: name})
	}
}

var _ autoclose.EventSource = (*Bridge)(nil)

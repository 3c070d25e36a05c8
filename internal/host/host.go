// Package host defines the capability interface the decoration holds into
// the windowing client library. The decoration keeps a non-owning reference
// to a Host; all requests are fire-and-forget and no return value is
// consumed.
package host

import (
	"github.com/waydecor/waydecor/internal/geometry"
)

// Device identifies the input device (seat) an event originated from. The
// decoration treats it as opaque and passes it back verbatim on move, resize
// and menu requests.
type Device interface{}

// MouseButtons is the set of pointer buttons currently held down.
type MouseButtons uint8

const (
	ButtonLeft MouseButtons = 1 << iota
	ButtonRight
	ButtonMiddle
)

// Modifiers is the set of keyboard modifiers held during an input event.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
	ModSuper
)

// Cursor is a cursor shape hint for the host to apply.
type Cursor int

const (
	CursorArrow Cursor = iota
	CursorSizeVer
	CursorSizeHor
	CursorSizeFDiag
	CursorSizeBDiag
)

// TouchPhase is the lifecycle stage of a touch point.
type TouchPhase int

const (
	TouchPressed TouchPhase = iota
	TouchMoved
	TouchStationary
	TouchReleased
)

// Host abstracts the windowing client library the decoration runs inside.
// All methods are called on the host's event-processing thread and must not
// block.
type Host interface {
	// State returns the current window state snapshot.
	State() geometry.WindowState

	// RequestMove asks the compositor to start an interactive move.
	RequestMove(dev Device, buttons MouseButtons)
	// RequestResize asks the compositor to start an interactive resize
	// along the given edges.
	RequestResize(dev Device, edges geometry.Edges, buttons MouseButtons)
	// RequestClose delivers a close event to the window.
	RequestClose()
	// RequestToggleMaximize flips the maximized state.
	RequestToggleMaximize()
	// RequestMinimize minimizes the window.
	RequestMinimize()
	// RequestShowMenu asks the compositor to show the window menu.
	RequestShowMenu(dev Device)

	// SetCursor applies a cursor shape hint for the device.
	SetCursor(dev Device, c Cursor)
	// RestoreCursor restores the device's default cursor.
	RestoreCursor(dev Device)

	// RequestRepaint schedules a decoration repaint.
	RequestRepaint()

	// Post schedules fn on the host's event loop. Asynchronous results
	// (such as the settings fetch) are delivered through Post so all
	// decoration state changes happen on one thread.
	Post(fn func())
}

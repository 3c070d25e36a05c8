// Package input turns raw pointer and touch events over the decoration area
// into window-management requests. The interaction machine tracks the armed
// button, the hovered button and the press-to-press double-click window; the
// classifier maps coordinates to logical regions.
package input

import (
	"time"

	"github.com/waydecor/waydecor/internal/geometry"
	"github.com/waydecor/waydecor/internal/host"
	"github.com/waydecor/waydecor/internal/theme"
)

// doubleClickInterval is the longest press-to-press gap still counting as a
// double click.
const doubleClickInterval = 500 * time.Millisecond

// doubleClickDistance is the largest per-axis pointer travel between the two
// presses of a double click.
const doubleClickDistance = 5.0

// Machine consumes discrete input events and emits host requests. It is
// confined to the host's event thread and holds the only mutable interaction
// state of the decoration.
type Machine struct {
	host       host.Host
	cfg        *theme.Config
	geom       *geometry.Engine
	classifier *Classifier

	clicking     theme.Button // armed button, ButtonNone when idle
	hovered      theme.Button // bitmask, at most one bit in practice
	lastClick    time.Time
	lastClickPos geometry.Point
	buttons      host.MouseButtons // previous pointer button mask

	now func() time.Time
}

// NewMachine returns an idle interaction machine issuing requests to h.
func NewMachine(h host.Host, cfg *theme.Config, geom *geometry.Engine) *Machine {
	return &Machine{
		host:       h,
		cfg:        cfg,
		geom:       geom,
		classifier: NewClassifier(cfg, geom),
		lastClick:  time.Now(),
		now:        time.Now,
	}
}

// Pressed returns the currently armed button.
func (m *Machine) Pressed() theme.Button { return m.clicking }

// Hovered returns the hovered button set.
func (m *Machine) Hovered() theme.Button { return m.hovered }

// HandleMouse processes one pointer event. b is the full button mask after
// the event; presses and releases are detected against the previous mask.
// The return value is always false: the host keeps routing pointer events
// here regardless of what the decoration did with them.
func (m *Machine) HandleMouse(dev host.Device, local, global geometry.Point, b host.MouseButtons, mods host.Modifiers) bool {
	_ = global
	_ = mods

	now := m.now()
	state := m.host.State()
	margins := m.geom.Margins(state, geometry.Full)
	surface := m.geom.ContentGeometry(state)

	if local.Y > float64(margins.Top) {
		m.updateHover(theme.ButtonNone)
	}

	region := m.classifier.Classify(state, local)

	inTop := local.Y <= float64(surface.Y+margins.Top)
	if inTop && !m.classifier.overAnyButtonRect(state, local) {
		m.updateHover(theme.ButtonNone)
	}

	switch region {
	case RegionTopLeftCorner:
		m.host.SetCursor(dev, host.CursorSizeFDiag)
		m.startResize(dev, geometry.TopEdge|geometry.LeftEdge, b)
	case RegionTopRightCorner:
		m.host.SetCursor(dev, host.CursorSizeBDiag)
		m.startResize(dev, geometry.TopEdge|geometry.RightEdge, b)
	case RegionTopEdge:
		m.host.SetCursor(dev, host.CursorSizeVer)
		m.startResize(dev, geometry.TopEdge, b)
	case RegionBottomLeftCorner:
		m.host.SetCursor(dev, host.CursorSizeBDiag)
		m.startResize(dev, geometry.BottomEdge|geometry.LeftEdge, b)
	case RegionBottomRightCorner:
		m.host.SetCursor(dev, host.CursorSizeFDiag)
		m.startResize(dev, geometry.BottomEdge|geometry.RightEdge, b)
	case RegionBottomEdge:
		m.host.SetCursor(dev, host.CursorSizeVer)
		m.startResize(dev, geometry.BottomEdge, b)
	case RegionLeftEdge:
		m.host.SetCursor(dev, host.CursorSizeHor)
		m.startResize(dev, geometry.LeftEdge, b)
	case RegionRightEdge:
		m.host.SetCursor(dev, host.CursorSizeHor)
		m.startResize(dev, geometry.RightEdge, b)
	case RegionCloseButton:
		if m.clickButton(b, theme.ButtonClose) {
			m.host.RequestClose()
			m.hovered &^= theme.ButtonClose
		}
		m.updateHover(theme.ButtonClose)
	case RegionMaximizeButton:
		m.updateHover(theme.ButtonMaximize)
		if m.clickButton(b, theme.ButtonMaximize) {
			m.host.RequestToggleMaximize()
			m.hovered &^= theme.ButtonMaximize
		}
	case RegionMinimizeButton:
		m.updateHover(theme.ButtonMinimize)
		if m.clickButton(b, theme.ButtonMinimize) {
			m.host.RequestMinimize()
			m.hovered &^= theme.ButtonMinimize
		}
	case RegionTitlebar:
		if m.doubleClick(b, local, now) {
			m.host.RequestToggleMaximize()
			break
		}
		if b == host.ButtonRight {
			m.host.RequestShowMenu(dev)
		}
		m.host.RestoreCursor(dev)
		m.startMove(dev, b)
	default:
		m.host.RestoreCursor(dev)
	}

	// A release anywhere disarms, even when it lands outside the armed
	// button's rectangle.
	if m.leftReleased(b) {
		m.clicking = theme.ButtonNone
		m.host.RequestRepaint()
	}

	m.buttons = b
	return false
}

// HandleTouch processes one touch event. Touch is a reduced variant: only
// the press is handled, with an immediate hit test and no arm/fire cycle,
// hover or double-click tracking.
func (m *Machine) HandleTouch(dev host.Device, local, global geometry.Point, phase host.TouchPhase, mods host.Modifiers) bool {
	_ = global
	_ = mods

	handled := phase == host.TouchPressed
	if handled {
		state := m.host.State()
		switch {
		case m.geom.ButtonRect(state, theme.ButtonClose).Contains(local):
			m.host.RequestClose()
		case m.cfg.Has(theme.ButtonMaximize) && m.geom.ButtonRect(state, theme.ButtonMaximize).Contains(local):
			m.host.RequestToggleMaximize()
		case m.cfg.Has(theme.ButtonMinimize) && m.geom.ButtonRect(state, theme.ButtonMinimize).Contains(local):
			m.host.RequestMinimize()
		case local.Y <= float64(m.geom.Margins(state, geometry.Full).Top):
			m.host.RequestMove(dev, 0)
		default:
			handled = false
		}
	}

	return handled
}

// leftPressed reports a left-button press edge in b against the stored mask.
func (m *Machine) leftPressed(b host.MouseButtons) bool {
	return b&host.ButtonLeft != 0 && m.buttons&host.ButtonLeft == 0
}

// leftReleased reports a left-button release edge in b against the stored
// mask.
func (m *Machine) leftReleased(b host.MouseButtons) bool {
	return b&host.ButtonLeft == 0 && m.buttons&host.ButtonLeft != 0
}

func (m *Machine) startMove(dev host.Device, b host.MouseButtons) {
	if m.leftPressed(b) {
		m.host.RequestMove(dev, b)
	}
}

func (m *Machine) startResize(dev host.Device, edges geometry.Edges, b host.MouseButtons) {
	if m.leftPressed(b) {
		m.host.RequestResize(dev, edges, b)
	}
}

// clickButton advances the arm/fire cycle for btn. A press arms it (last
// press wins), a release fires only when the armed button matches; a
// mismatched release cancels. Every call schedules a repaint so the pressed
// visual tracks the cycle.
func (m *Machine) clickButton(b host.MouseButtons, btn theme.Button) bool {
	defer m.host.RequestRepaint()

	if m.leftPressed(b) {
		m.clicking = btn
		return false
	}
	if m.leftReleased(b) {
		if m.clicking == btn {
			m.clicking = theme.ButtonNone
			return true
		}
		m.clicking = theme.ButtonNone
	}
	return false
}

// doubleClick reports whether a left press at local completes a double
// click. The interval is measured press to press and the reference time
// advances on every press, while the reference position advances only on a
// press that did not complete a double click.
func (m *Machine) doubleClick(b host.MouseButtons, local geometry.Point, now time.Time) bool {
	if !m.leftPressed(b) {
		return false
	}

	interval := now.Sub(m.lastClick)
	m.lastClick = now

	dx := m.lastClickPos.X - local.X
	dy := m.lastClickPos.Y - local.Y
	if interval <= doubleClickInterval &&
		dx <= doubleClickDistance && dx >= -doubleClickDistance &&
		dy <= doubleClickDistance && dy >= -doubleClickDistance {
		return true
	}

	m.lastClickPos = local
	return false
}

// updateHover replaces the hover set with at most the given button and
// schedules a repaint only when membership actually changed.
func (m *Machine) updateHover(b theme.Button) bool {
	next := theme.ButtonNone
	switch b {
	case theme.ButtonClose, theme.ButtonMaximize, theme.ButtonMinimize:
		next = b
	}
	if next == m.hovered {
		return false
	}
	m.hovered = next
	m.host.RequestRepaint()
	return true
}

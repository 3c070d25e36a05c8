package waydecor

import (
	"errors"
	"testing"
	"time"
)

// stubHost records requests and runs posted functions inline.
type stubHost struct {
	state WindowState

	moves    int
	closes   int
	toggles  int
	repaints int
	posted   chan func()
}

func newStubHost() *stubHost {
	return &stubHost{
		state: WindowState{
			Active:  true,
			Content: Rect{Width: 300, Height: 200},
			Title:   "terminal",
		},
		posted: make(chan func(), 4),
	}
}

func (h *stubHost) State() WindowState                                   { return h.state }
func (h *stubHost) RequestMove(dev Device, buttons MouseButtons)         { h.moves++ }
func (h *stubHost) RequestResize(dev Device, e Edges, b MouseButtons)    {}
func (h *stubHost) RequestClose()                                        { h.closes++ }
func (h *stubHost) RequestToggleMaximize()                               { h.toggles++ }
func (h *stubHost) RequestMinimize()                                     {}
func (h *stubHost) RequestShowMenu(dev Device)                           {}
func (h *stubHost) SetCursor(dev Device, c Cursor)                       {}
func (h *stubHost) RestoreCursor(dev Device)                             {}
func (h *stubHost) RequestRepaint()                                      { h.repaints++ }
func (h *stubHost) Post(fn func())                                       { h.posted <- fn }

func (h *stubHost) runPosted(t *testing.T) {
	t.Helper()
	select {
	case fn := <-h.posted:
		fn()
	case <-time.After(2 * time.Second):
		t.Fatalf("no function posted to the host")
	}
}

// stubSource serves a fixed snapshot.
type stubSource struct {
	snap       Snapshot
	err        error
	subscribed bool
}

func (s *stubSource) ReadAll(groups []string) (Snapshot, error) { return s.snap, s.err }
func (s *stubSource) Subscribe(fn func(group, key string, value interface{})) error {
	s.subscribed = true
	return nil
}
func (s *stubSource) Close() error { return nil }

func TestCloseClickEmitsSingleCloseRequest(t *testing.T) {
	h := newStubHost()
	d := New(h)

	center := Point{X: 286, Y: 30}
	d.HandleMouse(nil, center, Point{}, ButtonLeft, 0)
	d.HandleMouse(nil, center, Point{}, 0, 0)

	if h.closes != 1 {
		t.Fatalf("closes=%d, want 1", h.closes)
	}
	if h.moves != 0 {
		t.Fatalf("moves=%d, want 0", h.moves)
	}
}

func TestTitlebarPressEmitsMoveRequest(t *testing.T) {
	h := newStubHost()
	d := New(h)

	d.HandleMouse(nil, Point{X: 150, Y: 5}, Point{}, ButtonLeft, 0)

	if h.moves != 1 {
		t.Fatalf("moves=%d, want 1", h.moves)
	}
}

func TestMarginsAndContentGeometry(t *testing.T) {
	h := newStubHost()
	d := New(h)

	if got := d.Margins(Full); got != (Margins{Left: 11, Top: 49, Right: 11, Bottom: 11}) {
		t.Fatalf("margins=%+v", got)
	}
	if got := d.ContentGeometry(); got != (Rect{X: -10, Y: -10, Width: 320, Height: 220}) {
		t.Fatalf("content geometry=%+v", got)
	}
}

func TestApplySettingsReconfigures(t *testing.T) {
	h := newStubHost()
	d := New(h)

	d.ApplySettings(Snapshot{
		"org.gnome.desktop.wm.preferences": {
			"button-layout": "appmenu:minimize,maximize,close",
			"titlebar-font": "Cantarell Bold 11",
		},
		"org.freedesktop.appearance": {
			"color-scheme": uint32(1),
		},
	})

	if h.repaints == 0 {
		t.Fatalf("no repaint requested after settings change")
	}

	// The maximize button now exists at position 2: clicking it toggles.
	center := Point{X: 250, Y: 30}
	d.HandleMouse(nil, center, Point{}, ButtonLeft, 0)
	d.HandleMouse(nil, center, Point{}, 0, 0)
	if h.toggles != 1 {
		t.Fatalf("toggles=%d, want 1", h.toggles)
	}
}

func TestApplySettingsIgnoresMalformedValues(t *testing.T) {
	h := newStubHost()
	d := New(h)

	d.ApplySettings(Snapshot{
		"org.gnome.desktop.wm.preferences": {
			"button-layout": "close",   // one segment: rejected
			"titlebar-font": uint32(7), // wrong type
		},
		"org.freedesktop.appearance": {
			"color-scheme": "dark", // wrong type
		},
	})

	// The default close-only layout is still in effect.
	center := Point{X: 286, Y: 30}
	d.HandleMouse(nil, center, Point{}, ButtonLeft, 0)
	d.HandleMouse(nil, center, Point{}, 0, 0)
	if h.closes != 1 {
		t.Fatalf("closes=%d, want 1", h.closes)
	}
}

func TestInitializeAppliesSnapshotViaPost(t *testing.T) {
	h := newStubHost()
	d := New(h)

	src := &stubSource{snap: Snapshot{
		"org.gnome.desktop.wm.preferences": {
			"button-layout": "appmenu:minimize,maximize,close",
		},
	}}
	d.Initialize(src)

	if !src.subscribed {
		t.Fatalf("Initialize did not subscribe to the source")
	}

	h.runPosted(t)

	center := Point{X: 250, Y: 30}
	d.HandleMouse(nil, center, Point{}, ButtonLeft, 0)
	d.HandleMouse(nil, center, Point{}, 0, 0)
	if h.toggles != 1 {
		t.Fatalf("toggles=%d, want 1", h.toggles)
	}
}

func TestInitializeReadFailureKeepsDefaults(t *testing.T) {
	h := newStubHost()
	d := New(h)

	d.Initialize(&stubSource{err: errors.New("portal gone")})

	select {
	case <-h.posted:
		t.Fatalf("failed read posted a settings update")
	case <-time.After(100 * time.Millisecond):
	}

	center := Point{X: 286, Y: 30}
	d.HandleMouse(nil, center, Point{}, ButtonLeft, 0)
	d.HandleMouse(nil, center, Point{}, 0, 0)
	if h.closes != 1 {
		t.Fatalf("closes=%d, want 1", h.closes)
	}
}

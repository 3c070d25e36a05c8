// Command waydecor-preview hosts the decoration in a plain X11 window so the
// rendering and input translation can be exercised without a Wayland
// compositor. Window-management requests the decoration emits are logged;
// toggle-maximize and close are acted on so the preview feels live.
package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/xevent"
	"github.com/BurntSushi/xgbutil/xgraphics"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/waydecor/waydecor"
	"github.com/waydecor/waydecor/internal/render/imagepaint"
	"github.com/waydecor/waydecor/internal/settings"
)

// clientColor fills the placeholder client area.
var clientColor = color.RGBA{R: 0x35, G: 0x84, B: 0xe4, A: 0xff}

func main() {
	title := flag.String("title", "waydecor preview", "window title")
	width := flag.Int("width", 480, "client area width")
	height := flag.Int("height", 320, "client area height")
	settingsFile := flag.String("settings", "", "YAML settings file (default: desktop portal)")
	flag.Parse()

	X, err := xgbutil.NewConn()
	if err != nil {
		log.Fatalf("preview: connect to X: %v", err)
	}

	h := &previewHost{
		X: X,
		state: waydecor.WindowState{
			Active:  true,
			Content: waydecor.Rect{Width: *width, Height: *height},
			Title:   *title,
		},
	}
	deco := waydecor.New(h)
	h.deco = deco

	surface := deco.ContentGeometry()
	win, err := xwindow.Generate(X)
	if err != nil {
		log.Fatalf("preview: generate window: %v", err)
	}
	err = win.CreateChecked(X.RootWin(), 0, 0, surface.Width, surface.Height, xproto.CwBackPixel, 0x202020)
	if err != nil {
		log.Fatalf("preview: create window: %v", err)
	}
	win.Listen(xproto.EventMaskPointerMotion | xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease | xproto.EventMaskExposure)
	h.win = win

	deco.Initialize(openSource(*settingsFile))

	xevent.MotionNotifyFun(func(X *xgbutil.XUtil, ev xevent.MotionNotifyEvent) {
		h.pointer(int(ev.EventX), int(ev.EventY), int(ev.RootX), int(ev.RootY))
	}).Connect(X, win.Id)

	xevent.ButtonPressFun(func(X *xgbutil.XUtil, ev xevent.ButtonPressEvent) {
		h.buttons |= buttonMask(ev.Detail)
		h.pointer(int(ev.EventX), int(ev.EventY), int(ev.RootX), int(ev.RootY))
	}).Connect(X, win.Id)

	xevent.ButtonReleaseFun(func(X *xgbutil.XUtil, ev xevent.ButtonReleaseEvent) {
		h.buttons &^= buttonMask(ev.Detail)
		h.pointer(int(ev.EventX), int(ev.EventY), int(ev.RootX), int(ev.RootY))
	}).Connect(X, win.Id)

	xevent.ExposeFun(func(X *xgbutil.XUtil, ev xevent.ExposeEvent) {
		h.RequestRepaint()
	}).Connect(X, win.Id)

	win.Map()
	h.RequestRepaint()
	xevent.Main(X)
}

// openSource picks the settings source: a YAML file when one was given, the
// desktop portal otherwise. A missing portal is not fatal; the decoration
// keeps its defaults.
func openSource(path string) waydecor.Source {
	if path != "" {
		return settings.NewFileSource(path)
	}
	src, err := settings.NewPortalSource()
	if err != nil {
		log.Printf("preview: no settings portal, using defaults: %v", err)
		return nil
	}
	return src
}

func buttonMask(detail xproto.Button) waydecor.MouseButtons {
	switch detail {
	case 1:
		return waydecor.ButtonLeft
	case 2:
		return waydecor.ButtonMiddle
	case 3:
		return waydecor.ButtonRight
	}
	return 0
}

// previewHost adapts the X11 window to the decoration's Host interface. The
// X event loop and the settings goroutine both reach the decoration, so a
// mutex serializes everything; a real compositor host would pump Post
// through its event loop instead.
type previewHost struct {
	X    *xgbutil.XUtil
	win  *xwindow.Window
	deco *waydecor.Decoration

	mu      sync.Mutex
	state   waydecor.WindowState
	buttons waydecor.MouseButtons
}

// pointer translates window-relative event coordinates into decoration-local
// ones (content origin, shadow area negative) and feeds the decoration.
func (h *previewHost) pointer(eventX, eventY, rootX, rootY int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	surface := h.deco.ContentGeometry()
	local := waydecor.Point{X: float64(eventX + surface.X), Y: float64(eventY + surface.Y)}
	global := waydecor.Point{X: float64(rootX), Y: float64(rootY)}
	h.deco.HandleMouse(nil, local, global, h.buttons, 0)
}

func (h *previewHost) State() waydecor.WindowState { return h.state }

func (h *previewHost) RequestMove(dev waydecor.Device, buttons waydecor.MouseButtons) {
	log.Printf("host: move requested (buttons %#x)", buttons)
}

func (h *previewHost) RequestResize(dev waydecor.Device, edges waydecor.Edges, buttons waydecor.MouseButtons) {
	log.Printf("host: resize requested (edges %#x)", edges)
}

func (h *previewHost) RequestClose() {
	log.Printf("host: close requested")
	xevent.Quit(h.X)
}

func (h *previewHost) RequestToggleMaximize() {
	h.state.Maximized = !h.state.Maximized
	log.Printf("host: toggle maximize (now %v)", h.state.Maximized)
	h.repaint()
}

func (h *previewHost) RequestMinimize() {
	log.Printf("host: minimize requested")
}

func (h *previewHost) RequestShowMenu(dev waydecor.Device) {
	log.Printf("host: window menu requested")
}

func (h *previewHost) SetCursor(dev waydecor.Device, c waydecor.Cursor) {}

func (h *previewHost) RestoreCursor(dev waydecor.Device) {}

func (h *previewHost) RequestRepaint() { h.repaint() }

// Post serializes against the event handlers with the host mutex; see the
// type comment.
func (h *previewHost) Post(fn func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	fn()
}

// repaint renders the decoration and the client area into a buffer and
// swaps it onto the window.
func (h *previewHost) repaint() {
	if h.win == nil {
		return
	}

	surface := h.deco.ContentGeometry()
	buf := image.NewRGBA(image.Rect(0, 0, surface.Width, surface.Height))
	p := imagepaint.New(buf)

	// Client area placeholder under the decoration.
	m := h.deco.Margins(waydecor.ShadowsOnly)
	client := waydecor.Rect{
		X:      m.Left,
		Y:      h.deco.Margins(waydecor.Full).Top,
		Width:  h.state.Content.Width,
		Height: h.state.Content.Height,
	}
	p.FillRect(client, clientColor)

	h.deco.Paint(p)

	ximg := xgraphics.NewConvert(h.X, buf)
	ximg.XSurfaceSet(h.win.Id)
	ximg.XDraw()
	ximg.XPaint(h.win.Id)
	ximg.Destroy()
}

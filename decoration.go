// Package waydecor renders client-side window decorations (titlebar,
// borders, shadow, buttons) for a toplevel window and translates pointer and
// touch input over the decoration area into window-management requests
// against an injected host. The host is typically a Wayland client library;
// the preview command under cmd/ hosts the decoration in an X11 window.
//
// Construction is side effect free; Initialize starts the asynchronous
// desktop settings fetch. Until it completes the decoration paints with
// built-in defaults: a single close button on the right and the light
// palette.
package waydecor

import (
	"log"
	"os"

	"github.com/waydecor/waydecor/internal/geometry"
	"github.com/waydecor/waydecor/internal/host"
	"github.com/waydecor/waydecor/internal/icons"
	"github.com/waydecor/waydecor/internal/input"
	"github.com/waydecor/waydecor/internal/render"
	"github.com/waydecor/waydecor/internal/settings"
	"github.com/waydecor/waydecor/internal/theme"
)

// Aliases exposing the decoration's contract types from the root package.
type (
	Host         = host.Host
	Device       = host.Device
	MouseButtons = host.MouseButtons
	Modifiers    = host.Modifiers
	Cursor       = host.Cursor
	TouchPhase   = host.TouchPhase

	Point       = geometry.Point
	Rect        = geometry.Rect
	Margins     = geometry.Margins
	Edges       = geometry.Edges
	MarginsKind = geometry.MarginsKind
	WindowState = geometry.WindowState

	Painter = render.Painter

	Source   = settings.Source
	Snapshot = settings.Snapshot
)

// Pointer button masks.
const (
	ButtonLeft   = host.ButtonLeft
	ButtonRight  = host.ButtonRight
	ButtonMiddle = host.ButtonMiddle
)

// Cursor shapes a host must be able to apply.
const (
	CursorArrow     = host.CursorArrow
	CursorSizeVer   = host.CursorSizeVer
	CursorSizeHor   = host.CursorSizeHor
	CursorSizeFDiag = host.CursorSizeFDiag
	CursorSizeBDiag = host.CursorSizeBDiag
)

// Touch phases.
const (
	TouchPressed    = host.TouchPressed
	TouchMoved      = host.TouchMoved
	TouchStationary = host.TouchStationary
	TouchReleased   = host.TouchReleased
)

// Window edges.
const (
	TopEdge    = geometry.TopEdge
	LeftEdge   = geometry.LeftEdge
	RightEdge  = geometry.RightEdge
	BottomEdge = geometry.BottomEdge
)

// Margin selectors.
const (
	Full            = geometry.Full
	ShadowsOnly     = geometry.ShadowsOnly
	ShadowsExcluded = geometry.ShadowsExcluded
)

// Decoration is one window's decoration. All methods must be called on the
// host's event-processing thread; asynchronous work hands its results back
// through Host.Post.
type Decoration struct {
	host     host.Host
	cfg      *theme.Config
	geom     *geometry.Engine
	machine  *input.Machine
	renderer *render.Renderer
}

// New returns a decoration with default configuration attached to h.
func New(h Host) *Decoration {
	cfg := theme.NewConfig()
	geom := geometry.NewEngine(cfg)
	return &Decoration{
		host:     h,
		cfg:      cfg,
		geom:     geom,
		machine:  input.NewMachine(h, cfg, geom),
		renderer: render.NewRenderer(cfg, geom),
	}
}

// Initialize loads button icons and starts fetching settings from src. The
// fetch runs on its own goroutine and applies its result via Host.Post; a
// nil src leaves the defaults in place. Change notifications from src keep
// applying for the decoration's lifetime.
func (d *Decoration) Initialize(src Source) {
	d.cfg.Icons = icons.Load(os.Getenv("WAYDECOR_ICON_THEME"))

	if src == nil {
		return
	}

	err := src.Subscribe(func(group, key string, value interface{}) {
		d.host.Post(func() {
			d.applySetting(group, key, value)
		})
	})
	if err != nil {
		log.Printf("waydecor: settings subscription unavailable: %v", err)
	}

	go func() {
		snap, err := src.ReadAll([]string{settings.GroupWMPreferences, settings.GroupAppearance})
		if err != nil {
			log.Printf("waydecor: settings read failed, keeping defaults: %v", err)
			return
		}
		d.host.Post(func() {
			d.ApplySettings(snap)
		})
	}()
}

// ApplySettings applies a settings snapshot. Keys that are absent or carry
// an unusable type leave the current configuration untouched.
func (d *Decoration) ApplySettings(snap Snapshot) {
	keys := []struct{ group, key string }{
		{settings.GroupAppearance, settings.KeyColorScheme},
		{settings.GroupWMPreferences, settings.KeyButtonLayout},
		{settings.GroupWMPreferences, settings.KeyTitlebarFont},
	}
	for _, k := range keys {
		if v := snap.Get(k.group, k.key); v != nil {
			d.applySetting(k.group, k.key, v)
		}
	}
}

// applySetting applies a single group/key/value triple.
func (d *Decoration) applySetting(group, key string, value interface{}) {
	switch {
	case group == settings.GroupWMPreferences && key == settings.KeyButtonLayout:
		layout, ok := asString(value)
		if !ok || layout == "" {
			return
		}
		if d.cfg.ApplyButtonLayout(layout) {
			d.host.RequestRepaint()
		}
	case group == settings.GroupAppearance && key == settings.KeyColorScheme:
		scheme, ok := asUint(value)
		if !ok {
			return
		}
		d.cfg.ApplyColorScheme(scheme == 1)
		d.host.RequestRepaint()
	case group == settings.GroupWMPreferences && key == settings.KeyTitlebarFont:
		desc, ok := asString(value)
		if !ok {
			return
		}
		d.cfg.ApplyTitlebarFont(desc)
		d.host.RequestRepaint()
	}
}

// Margins returns the decoration extents for the current window state.
func (d *Decoration) Margins(kind MarginsKind) Margins {
	return d.geom.Margins(d.host.State(), kind)
}

// ContentGeometry returns the full decoration surface rectangle in
// decoration-local coordinates.
func (d *Decoration) ContentGeometry() Rect {
	return d.geom.ContentGeometry(d.host.State())
}

// HandleMouse feeds one pointer event to the decoration.
func (d *Decoration) HandleMouse(dev Device, local, global Point, buttons MouseButtons, mods Modifiers) bool {
	return d.machine.HandleMouse(dev, local, global, buttons, mods)
}

// HandleTouch feeds one touch event to the decoration.
func (d *Decoration) HandleTouch(dev Device, local, global Point, phase TouchPhase, mods Modifiers) bool {
	return d.machine.HandleTouch(dev, local, global, phase, mods)
}

// Paint draws the decoration for the current window state.
func (d *Decoration) Paint(p Painter) {
	d.renderer.Paint(p, d.host.State(), d.machine.Pressed(), d.machine.Hovered())
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asUint coerces the numeric types settings sources are known to deliver.
func asUint(v interface{}) (uint64, bool) {
	switch n := v.(type) {
	case uint:
		return uint64(n), true
	case uint32:
		return uint64(n), true
	case uint64:
		return n, true
	case int:
		return uint64(n), true
	case int32:
		return uint64(n), true
	case int64:
		return uint64(n), true
	}
	return 0, false
}

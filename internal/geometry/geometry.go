// Package geometry computes decoration margins and button rectangles as a
// pure function of the current window state. Coordinates are decoration
// local: (0,0) is the top-left of the host-reported content geometry and the
// shadow area extends into negative coordinates.
package geometry

import (
	"github.com/waydecor/waydecor/internal/theme"
)

// Fixed decoration metrics in logical pixels.
const (
	ButtonSpacing  = 12
	ButtonWidth    = 24
	CornerRadius   = 12
	ShadowWidth    = 10
	TitlebarHeight = 38
	BorderWidth    = 1

	// SeparatorWidth is the thickness of the line between titlebar and
	// client area.
	SeparatorWidth = 0.5
)

// Point is a pointer position in decoration-local coordinates.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }

// Contains reports whether the point lies inside the rectangle, edges
// included.
func (r Rect) Contains(p Point) bool {
	return p.X >= float64(r.X) && p.X <= float64(r.Right()) &&
		p.Y >= float64(r.Y) && p.Y <= float64(r.Bottom())
}

// Grow expands the rectangle outward by the given margins.
func (r Rect) Grow(m Margins) Rect {
	return Rect{
		X:      r.X - m.Left,
		Y:      r.Y - m.Top,
		Width:  r.Width + m.Left + m.Right,
		Height: r.Height + m.Top + m.Bottom,
	}
}

// Margins holds per-edge decoration extents.
type Margins struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Edges is a bitmask of window edges, used both for tiling state and for
// resize requests.
type Edges uint8

const (
	TopEdge    Edges = 0x1
	LeftEdge   Edges = 0x2
	RightEdge  Edges = 0x4
	BottomEdge Edges = 0x8
)

// MarginsKind selects which portion of the decoration margins to report.
type MarginsKind int

const (
	// Full is the complete decoration extent: shadow, border and titlebar.
	Full MarginsKind = iota
	// ShadowsOnly is the drop-shadow extent alone, excluded from resize
	// hit-testing.
	ShadowsOnly
	// ShadowsExcluded is the border and titlebar without the shadow.
	ShadowsExcluded
)

// WindowState is an immutable snapshot of the host window, taken once per
// computation. The host owns the source of truth.
type WindowState struct {
	Active    bool
	Maximized bool
	Tiled     Edges
	Content   Rect // host-reported content geometry
	Title     string
}

// Engine derives decoration geometry from a window state snapshot and the
// current configuration. It keeps no state of its own.
type Engine struct {
	cfg *theme.Config
}

// NewEngine returns an engine reading button layout from cfg.
func NewEngine(cfg *theme.Config) *Engine {
	return &Engine{cfg: cfg}
}

// Margins returns the decoration extents for the given state. Maximized
// windows render flush with the screen and report only the titlebar height;
// a tiled edge is flush against a neighbor and drops its margin entirely.
func (e *Engine) Margins(state WindowState, kind MarginsKind) Margins {
	onlyShadows := kind == ShadowsOnly

	if state.Maximized {
		if onlyShadows {
			return Margins{}
		}
		return Margins{Top: TitlebarHeight}
	}

	// Left, right and bottom share the same extent.
	base := ShadowWidth + BorderWidth
	if kind == ShadowsExcluded {
		base = BorderWidth
	}
	side := base
	top := TitlebarHeight + base
	if onlyShadows {
		side = ShadowWidth
		top = ShadowWidth
	}

	m := Margins{Left: side, Top: top, Right: side, Bottom: side}
	if state.Tiled&LeftEdge != 0 {
		m.Left = 0
	}
	if state.Tiled&RightEdge != 0 {
		m.Right = 0
	}
	if state.Tiled&BottomEdge != 0 {
		m.Bottom = 0
	}
	if state.Tiled&TopEdge != 0 {
		m.Top = TitlebarHeight
		if onlyShadows {
			m.Top = 0
		}
	}
	return m
}

// ContentGeometry returns the paintable surface: the host content geometry
// expanded by the shadow margins.
func (e *Engine) ContentGeometry(state WindowState) Rect {
	return state.Content.Grow(e.Margins(state, ShadowsOnly))
}

// ButtonRect returns the rectangle of a titlebar button. The button's
// configured position measures button widths plus spacing from the anchored
// edge, adjusted inward past the shadow. Buttons are square and centered
// vertically in the titlebar band.
func (e *Engine) ButtonRect(state WindowState, b theme.Button) Rect {
	pos := e.cfg.Position(b)

	var x int
	if e.cfg.Placement == theme.PlacementRight {
		x = e.ContentGeometry(state).Width
		x -= ButtonWidth * pos
		x -= ButtonSpacing * pos
		x -= e.Margins(state, ShadowsOnly).Right
	} else {
		x = ButtonWidth * pos
		x += ButtonSpacing * pos
		x += e.Margins(state, ShadowsOnly).Left
		// Painting runs left to right, so the anchored offset backs up
		// by one button width.
		x -= ButtonWidth
	}

	m := e.Margins(state, Full)
	y := (m.Top + m.Bottom - ButtonWidth) / 2

	return Rect{X: x, Y: y, Width: ButtonWidth, Height: ButtonWidth}
}

package input

import (
	"github.com/waydecor/waydecor/internal/geometry"
	"github.com/waydecor/waydecor/internal/theme"
)

// Region is the logical decoration area under a pointer coordinate.
type Region int

const (
	RegionClient Region = iota
	RegionTitlebar
	RegionTopEdge
	RegionTopLeftCorner
	RegionTopRightCorner
	RegionLeftEdge
	RegionRightEdge
	RegionBottomEdge
	RegionBottomLeftCorner
	RegionBottomRightCorner
	RegionCloseButton
	RegionMaximizeButton
	RegionMinimizeButton
)

// Button returns the titlebar button a button region stands for, or
// ButtonNone for every other region.
func (r Region) Button() theme.Button {
	switch r {
	case RegionCloseButton:
		return theme.ButtonClose
	case RegionMaximizeButton:
		return theme.ButtonMaximize
	case RegionMinimizeButton:
		return theme.ButtonMinimize
	}
	return theme.ButtonNone
}

// Classifier maps a pointer coordinate to a Region using the geometry
// engine's current output. The band tests run in a fixed priority order:
// top, bottom, left, right, client area.
type Classifier struct {
	cfg  *theme.Config
	geom *geometry.Engine
}

// NewClassifier returns a classifier reading layout from cfg and rectangles
// from geom.
func NewClassifier(cfg *theme.Config, geom *geometry.Engine) *Classifier {
	return &Classifier{cfg: cfg, geom: geom}
}

// Classify returns the region under local. Coordinates outside the surface
// fall out of every band test and classify as RegionClient; the caller
// routes those elsewhere.
func (c *Classifier) Classify(state geometry.WindowState, local geometry.Point) Region {
	m := c.geom.Margins(state, geometry.Full)
	surface := c.geom.ContentGeometry(state)

	switch {
	case local.Y <= float64(surface.Y+m.Top):
		return c.classifyTop(state, surface, m, local)
	case local.Y > float64(surface.Bottom()-m.Bottom):
		switch {
		case local.X <= float64(m.Left):
			return RegionBottomLeftCorner
		case local.X > float64(state.Content.Width+m.Right):
			return RegionBottomRightCorner
		default:
			return RegionBottomEdge
		}
	case local.X <= float64(surface.X+m.Left):
		return RegionLeftEdge
	case local.X > float64(surface.Right()-m.Right):
		return RegionRightEdge
	default:
		return RegionClient
	}
}

// classifyTop refines the top band: the near-edge strip resizes, then the
// side bands take over, then buttons, then the draggable titlebar. Both
// corner thresholds of the near-edge strip measure against the left margin.
func (c *Classifier) classifyTop(state geometry.WindowState, surface geometry.Rect, m geometry.Margins, local geometry.Point) Region {
	switch {
	case local.Y <= float64(surface.Y+m.Bottom):
		switch {
		case local.X <= float64(m.Left):
			return RegionTopLeftCorner
		case local.X > float64(surface.Right()-m.Left):
			return RegionTopRightCorner
		default:
			return RegionTopEdge
		}
	case local.X <= float64(surface.X+m.Left):
		return RegionLeftEdge
	case local.X > float64(surface.Right()-m.Right):
		return RegionRightEdge
	case c.geom.ButtonRect(state, theme.ButtonClose).Contains(local):
		return RegionCloseButton
	case c.cfg.Has(theme.ButtonMaximize) && c.geom.ButtonRect(state, theme.ButtonMaximize).Contains(local):
		return RegionMaximizeButton
	case c.cfg.Has(theme.ButtonMinimize) && c.geom.ButtonRect(state, theme.ButtonMinimize).Contains(local):
		return RegionMinimizeButton
	default:
		return RegionTitlebar
	}
}

// overAnyButtonRect reports whether local lies inside any button rectangle,
// configured or not. Hover clearing keys off the raw rectangles.
func (c *Classifier) overAnyButtonRect(state geometry.WindowState, local geometry.Point) bool {
	return c.geom.ButtonRect(state, theme.ButtonClose).Contains(local) ||
		c.geom.ButtonRect(state, theme.ButtonMaximize).Contains(local) ||
		c.geom.ButtonRect(state, theme.ButtonMinimize).Contains(local)
}

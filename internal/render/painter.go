// Package render draws the decoration: shadow, titlebar, border, separator,
// title text and buttons. Drawing goes through the Painter interface; the
// render package decides what to draw, a backend decides how.
package render

import (
	"image"
	"image/color"

	"github.com/waydecor/waydecor/internal/geometry"
	"github.com/waydecor/waydecor/internal/theme"
)

// Painter is the drawing surface contract. Coordinates are device pixels
// with the origin at the top-left of the decoration surface (shadow area
// included). Stroked shapes use a one pixel hairline.
type Painter interface {
	// Save pushes the clip state; Restore pops it.
	Save()
	Restore()

	// Clip intersects the current clip with r.
	Clip(r geometry.Rect)

	FillRect(r geometry.Rect, c color.RGBA)
	FillRoundedRect(r geometry.Rect, radius int, c color.RGBA)
	FillEllipse(r geometry.Rect, c color.RGBA)

	StrokeRect(r geometry.Rect, c color.RGBA)
	StrokeRoundedRect(r geometry.Rect, radius int, c color.RGBA)

	DrawLine(from, to geometry.Point, c color.RGBA)

	// DrawText draws a single line with its top-left corner at p.
	DrawText(p geometry.Point, text string, f theme.Font, c color.RGBA)
	// TextSize measures a single line in the given font.
	TextSize(text string, f theme.Font) (w, h int)

	// DrawImage composites img over the surface, img's bounds mapped to r.
	DrawImage(r geometry.Rect, img image.Image)

	// DrawIcon renders a button icon into r. markup is recolored SVG; when
	// it is empty the backend draws its builtin glyph for the icon in c.
	DrawIcon(r geometry.Rect, icon theme.Icon, markup string, c color.RGBA)
}

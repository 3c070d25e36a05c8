// Package imagepaint is a software Painter backend over an *image.RGBA. It
// is used by the preview command and by renderer tests. Text is set in the
// Go fonts; button icons are drawn as builtin glyphs (the backend has no SVG
// rasterizer, so icon markup is ignored).
package imagepaint

import (
	"image"
	"image/color"
	"log"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/waydecor/waydecor/internal/geometry"
	"github.com/waydecor/waydecor/internal/theme"
)

var (
	fontOnce    sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font
)

func loadFonts() {
	var err error
	if regularFont, err = opentype.Parse(goregular.TTF); err != nil {
		log.Printf("imagepaint: parse regular font: %v", err)
	}
	if boldFont, err = opentype.Parse(gobold.TTF); err != nil {
		log.Printf("imagepaint: parse bold font: %v", err)
	}
}

type faceKey struct {
	size int
	bold bool
}

// Painter draws into an RGBA buffer with a stack-managed clip.
type Painter struct {
	img   *image.RGBA
	clips []image.Rectangle
	faces map[faceKey]font.Face
}

// New returns a painter over img, clipped to its bounds.
func New(img *image.RGBA) *Painter {
	fontOnce.Do(loadFonts)
	return &Painter{
		img:   img,
		clips: []image.Rectangle{img.Bounds()},
		faces: make(map[faceKey]font.Face),
	}
}

func (p *Painter) clip() image.Rectangle { return p.clips[len(p.clips)-1] }

// Save pushes the current clip.
func (p *Painter) Save() {
	p.clips = append(p.clips, p.clip())
}

// Restore pops the clip stack; the initial clip is never popped.
func (p *Painter) Restore() {
	if len(p.clips) > 1 {
		p.clips = p.clips[:len(p.clips)-1]
	}
}

// Clip intersects the current clip with r.
func (p *Painter) Clip(r geometry.Rect) {
	p.clips[len(p.clips)-1] = p.clip().Intersect(toImageRect(r))
}

func (p *Painter) FillRect(r geometry.Rect, c color.RGBA) {
	b := toImageRect(r).Intersect(p.clip())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p.img.SetRGBA(x, y, c)
		}
	}
}

func (p *Painter) FillRoundedRect(r geometry.Rect, radius int, c color.RGBA) {
	b := toImageRect(r).Intersect(p.clip())
	rr := radius * radius
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if dx, dy := cornerOffset(r, radius, x, y); dx > 0 && dy > 0 && dx*dx+dy*dy > rr {
				continue
			}
			p.img.SetRGBA(x, y, c)
		}
	}
}

func (p *Painter) FillEllipse(r geometry.Rect, c color.RGBA) {
	b := toImageRect(r).Intersect(p.clip())
	cx := float64(r.X) + float64(r.Width)/2
	cy := float64(r.Y) + float64(r.Height)/2
	rx := float64(r.Width) / 2
	ry := float64(r.Height) / 2
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				p.img.SetRGBA(x, y, c)
			}
		}
	}
}

func (p *Painter) StrokeRect(r geometry.Rect, c color.RGBA) {
	p.hline(r.X, r.Right()-1, r.Y, c)
	p.hline(r.X, r.Right()-1, r.Bottom()-1, c)
	p.vline(r.X, r.Y, r.Bottom()-1, c)
	p.vline(r.Right()-1, r.Y, r.Bottom()-1, c)
}

func (p *Painter) StrokeRoundedRect(r geometry.Rect, radius int, c color.RGBA) {
	p.hline(r.X+radius, r.Right()-1-radius, r.Y, c)
	p.hline(r.X+radius, r.Right()-1-radius, r.Bottom()-1, c)
	p.vline(r.X, r.Y+radius, r.Bottom()-1-radius, c)
	p.vline(r.Right()-1, r.Y+radius, r.Bottom()-1-radius, c)

	// One pixel ring through the corner boxes.
	b := toImageRect(r).Intersect(p.clip())
	inner := (radius - 1) * (radius - 1)
	outer := radius * radius
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx, dy := cornerOffset(r, radius, x, y)
			if dx <= 0 || dy <= 0 {
				continue
			}
			if d := dx*dx + dy*dy; d > inner && d <= outer {
				p.img.SetRGBA(x, y, c)
			}
		}
	}
}

// DrawLine draws a one pixel line. Horizontal and vertical segments are the
// fast path; anything else falls back to point stepping.
func (p *Painter) DrawLine(from, to geometry.Point, c color.RGBA) {
	x0, y0 := int(from.X), int(from.Y)
	x1, y1 := int(to.X), int(to.Y)
	switch {
	case y0 == y1:
		if x1 < x0 {
			x0, x1 = x1, x0
		}
		p.hline(x0, x1, y0, c)
	case x0 == x1:
		if y1 < y0 {
			y0, y1 = y1, y0
		}
		p.vline(x0, y0, y1, c)
	default:
		steps := abs(x1-x0) + abs(y1-y0)
		for i := 0; i <= steps; i++ {
			x := x0 + (x1-x0)*i/steps
			y := y0 + (y1-y0)*i/steps
			p.set(x, y, c)
		}
	}
}

// DrawText draws a single line with its top-left corner at pt.
func (p *Painter) DrawText(pt geometry.Point, text string, f theme.Font, c color.RGBA) {
	face := p.face(f)
	metrics := face.Metrics()
	d := &font.Drawer{
		Dst:  clippedImage{p.img, p.clip()},
		Src:  image.NewUniform(c),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(int(pt.X)),
			Y: fixed.I(int(pt.Y)) + metrics.Ascent,
		},
	}
	d.DrawString(text)
}

// TextSize measures a single line in the given font.
func (p *Painter) TextSize(text string, f theme.Font) (w, h int) {
	face := p.face(f)
	metrics := face.Metrics()
	return font.MeasureString(face, text).Ceil(), (metrics.Ascent + metrics.Descent).Ceil()
}

// DrawImage composites img over the surface with source-over blending,
// restricted to r and the current clip.
func (p *Painter) DrawImage(r geometry.Rect, img image.Image) {
	b := toImageRect(r).Intersect(p.clip())
	sp := img.Bounds().Min.Add(b.Min.Sub(toImageRect(r).Min))
	draw.Draw(p.img, b, img, sp, draw.Over)
}

// DrawIcon draws the builtin glyph for icon; markup is ignored.
func (p *Painter) DrawIcon(r geometry.Rect, icon theme.Icon, markup string, c color.RGBA) {
	_ = markup

	// Glyphs sit inside a further inset so they read at 16px.
	g := geometry.Rect{X: r.X + 3, Y: r.Y + 3, Width: r.Width - 6, Height: r.Height - 6}
	switch icon {
	case theme.IconClose:
		p.DrawLine(geometry.Point{X: float64(g.X), Y: float64(g.Y)},
			geometry.Point{X: float64(g.Right() - 1), Y: float64(g.Bottom() - 1)}, c)
		p.DrawLine(geometry.Point{X: float64(g.Right() - 1), Y: float64(g.Y)},
			geometry.Point{X: float64(g.X), Y: float64(g.Bottom() - 1)}, c)
	case theme.IconMinimize:
		p.hline(g.X, g.Right()-1, g.Bottom()-1, c)
	case theme.IconMaximize:
		p.StrokeRect(g, c)
	case theme.IconRestore:
		off := 3
		p.StrokeRect(geometry.Rect{X: g.X + off, Y: g.Y, Width: g.Width - off, Height: g.Height - off}, c)
		p.StrokeRect(geometry.Rect{X: g.X, Y: g.Y + off, Width: g.Width - off, Height: g.Height - off}, c)
	}
}

// face returns a cached font face for f, falling back to the fixed 7x13
// face when the embedded fonts failed to parse.
func (p *Painter) face(f theme.Font) font.Face {
	key := faceKey{size: f.PointSize, bold: f.Bold}
	if face, ok := p.faces[key]; ok {
		return face
	}

	base := regularFont
	if f.Bold && boldFont != nil {
		base = boldFont
	}
	if base == nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(base, &opentype.FaceOptions{
		Size:    float64(f.PointSize),
		DPI:     96,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("imagepaint: face %dpt: %v", f.PointSize, err)
		return basicfont.Face7x13
	}
	p.faces[key] = face
	return face
}

func (p *Painter) hline(x0, x1, y int, c color.RGBA) {
	for x := x0; x <= x1; x++ {
		p.set(x, y, c)
	}
}

func (p *Painter) vline(x, y0, y1 int, c color.RGBA) {
	for y := y0; y <= y1; y++ {
		p.set(x, y, c)
	}
}

func (p *Painter) set(x, y int, c color.RGBA) {
	if image.Pt(x, y).In(p.clip()) {
		p.img.SetRGBA(x, y, c)
	}
}

// cornerOffset returns how far (x, y) sits inside a corner box of r, zero
// on either axis when it is outside the corner boxes.
func cornerOffset(r geometry.Rect, radius, x, y int) (dx, dy int) {
	if x < r.X+radius {
		dx = r.X + radius - x
	} else if x >= r.Right()-radius {
		dx = x - (r.Right() - radius - 1)
	}
	if y < r.Y+radius {
		dy = r.Y + radius - y
	} else if y >= r.Bottom()-radius {
		dy = y - (r.Bottom() - radius - 1)
	}
	return dx, dy
}

func toImageRect(r geometry.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// clippedImage restricts Set calls to a clip rectangle so the font drawer
// honors the painter's clip.
type clippedImage struct {
	*image.RGBA
	rect image.Rectangle
}

func (c clippedImage) Set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.rect) {
		c.RGBA.Set(x, y, col)
	}
}

package render

import (
	"image"
	"image/color"

	"github.com/cznic/mathutil"

	"github.com/waydecor/waydecor/internal/geometry"
)

// Shadow bitmap parameters: the blur radius applied to the window shape, the
// inset of the darkening rectangle and the resulting shadow opacity.
const (
	shadowBlurRadius = 12
	shadowInset      = 8
	shadowAlpha      = 160
)

// shadowCache holds the blurred shadow bitmap. It is keyed by surface size
// alone: a palette change does not invalidate it, only the next resize does.
type shadowCache struct {
	img    *image.RGBA
	width  int
	height int
}

// image returns the cached bitmap, rebuilding it when the surface size
// changed.
func (s *shadowCache) image(width, height int, border color.RGBA) *image.RGBA {
	if s.img != nil && s.width == width && s.height == height {
		return s.img
	}
	s.img = buildShadow(width, height, border)
	s.width = width
	s.height = height
	return s.img
}

// buildShadow renders the window silhouette (rounded top half, rectangular
// bottom half) in the border color, blurs it, then keeps only the blurred
// alpha as black inside an inset rectangle.
func buildShadow(width, height int, border color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	shape := width - 2*geometry.ShadowWidth
	fillRoundedRect(img,
		geometry.Rect{X: 0, Y: 0, Width: shape, Height: height / 2},
		geometry.CornerRadius, border)
	fillRect(img,
		geometry.Rect{X: 0, Y: height/2 - geometry.ShadowWidth, Width: shape, Height: height/2 - geometry.ShadowWidth},
		border)

	// Three box passes approximate a gaussian of the target radius.
	boxRadius := shadowBlurRadius / 3
	for i := 0; i < 3; i++ {
		boxBlur(img, boxRadius)
	}

	// Source-in: within the inset rectangle the blurred pixels become pure
	// black scaled by both the blurred alpha and the shadow opacity. The
	// ring outside the inset keeps its blurred border color.
	x0 := mathutil.Max(0, shadowInset)
	y0 := mathutil.Max(0, shadowInset)
	x1 := mathutil.Min(width, width-shadowInset)
	y1 := mathutil.Min(height, height-shadowInset)
	for y := y0; y < y1; y++ {
		row := img.Pix[y*img.Stride+x0*4 : y*img.Stride+x1*4]
		for i := 0; i < len(row); i += 4 {
			a := uint32(row[i+3]) * shadowAlpha / 255
			row[i] = 0
			row[i+1] = 0
			row[i+2] = 0
			row[i+3] = uint8(a)
		}
	}

	return img
}

func fillRect(img *image.RGBA, r geometry.Rect, c color.RGBA) {
	b := img.Bounds()
	x0 := mathutil.Max(r.X, b.Min.X)
	y0 := mathutil.Max(r.Y, b.Min.Y)
	x1 := mathutil.Min(r.Right(), b.Max.X)
	y1 := mathutil.Min(r.Bottom(), b.Max.Y)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}

// fillRoundedRect fills r with c, rounding all four corners by radius using
// a per-pixel circle test.
func fillRoundedRect(img *image.RGBA, r geometry.Rect, radius int, c color.RGBA) {
	b := img.Bounds()
	x0 := mathutil.Max(r.X, b.Min.X)
	y0 := mathutil.Max(r.Y, b.Min.Y)
	x1 := mathutil.Min(r.Right(), b.Max.X)
	y1 := mathutil.Min(r.Bottom(), b.Max.Y)
	rr := radius * radius
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			dx := 0
			if x < r.X+radius {
				dx = r.X + radius - x
			} else if x >= r.Right()-radius {
				dx = x - (r.Right() - radius - 1)
			}
			dy := 0
			if y < r.Y+radius {
				dy = r.Y + radius - y
			} else if y >= r.Bottom()-radius {
				dy = y - (r.Bottom() - radius - 1)
			}
			if dx > 0 && dy > 0 && dx*dx+dy*dy > rr {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
}

// boxBlur runs one horizontal and one vertical box pass of the given radius
// over all four premultiplied channels.
func boxBlur(img *image.RGBA, radius int) {
	if radius <= 0 {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	window := uint32(2*radius + 1)
	tmp := make([]uint8, len(img.Pix))

	// Horizontal pass into tmp.
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		out := tmp[y*img.Stride : y*img.Stride+w*4]
		var sum [4]uint32
		for x := -radius; x <= radius; x++ {
			i := mathutil.Max(0, mathutil.Min(x, w-1)) * 4
			for ch := 0; ch < 4; ch++ {
				sum[ch] += uint32(row[i+ch])
			}
		}
		for x := 0; x < w; x++ {
			for ch := 0; ch < 4; ch++ {
				out[x*4+ch] = uint8(sum[ch] / window)
			}
			add := mathutil.Max(0, mathutil.Min(x+radius+1, w-1)) * 4
			sub := mathutil.Max(0, mathutil.Min(x-radius, w-1)) * 4
			for ch := 0; ch < 4; ch++ {
				sum[ch] += uint32(row[add+ch])
				sum[ch] -= uint32(row[sub+ch])
			}
		}
	}

	// Vertical pass back into img.
	for x := 0; x < w; x++ {
		var sum [4]uint32
		for y := -radius; y <= radius; y++ {
			i := mathutil.Max(0, mathutil.Min(y, h-1))*img.Stride + x*4
			for ch := 0; ch < 4; ch++ {
				sum[ch] += uint32(tmp[i+ch])
			}
		}
		for y := 0; y < h; y++ {
			i := y*img.Stride + x*4
			for ch := 0; ch < 4; ch++ {
				img.Pix[i+ch] = uint8(sum[ch] / window)
			}
			add := mathutil.Max(0, mathutil.Min(y+radius+1, h-1))*img.Stride + x*4
			sub := mathutil.Max(0, mathutil.Min(y-radius, h-1))*img.Stride + x*4
			for ch := 0; ch < 4; ch++ {
				sum[ch] += uint32(tmp[add+ch])
				sum[ch] -= uint32(tmp[sub+ch])
			}
		}
	}
}

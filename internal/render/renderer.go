package render

import (
	"github.com/waydecor/waydecor/internal/geometry"
	"github.com/waydecor/waydecor/internal/icons"
	"github.com/waydecor/waydecor/internal/theme"
)

// iconInset is the padding between a button's circle and its icon.
const iconInset = 4

// Renderer paints the decoration for a window state snapshot. It owns the
// shadow cache; everything else is computed per frame.
type Renderer struct {
	cfg    *theme.Config
	geom   *geometry.Engine
	shadow shadowCache
}

// NewRenderer returns a renderer reading palette and layout from cfg.
func NewRenderer(cfg *theme.Config, geom *geometry.Engine) *Renderer {
	return &Renderer{cfg: cfg, geom: geom}
}

// Paint draws one full decoration frame. pressed is the armed button,
// hovered the hovered set; both come from the interaction machine.
func (r *Renderer) Paint(p Painter, state geometry.WindowState, pressed, hovered theme.Button) {
	m := r.geom.Margins(state, geometry.Full)
	surface := r.geom.ContentGeometry(state)

	borderColor := r.cfg.Color(theme.Border, state.Active)
	backgroundColor := r.cfg.Color(theme.Background, state.Active)
	foregroundColor := r.cfg.Color(theme.Foreground, state.Active)

	// Shadow, composited through the four margin strips so nothing lands
	// over the client area.
	if state.Active && !state.Maximized && state.Tiled == 0 {
		img := r.shadow.image(surface.Width, surface.Height, borderColor)
		full := geometry.Rect{Width: surface.Width, Height: surface.Height}
		clips := [4]geometry.Rect{
			{X: 0, Y: 0, Width: surface.Width, Height: m.Top},
			{X: 0, Y: m.Top, Width: m.Left, Height: surface.Height - m.Top - m.Bottom},
			{X: 0, Y: surface.Height - m.Bottom, Width: surface.Width, Height: m.Bottom},
			{X: surface.Width - m.Right, Y: m.Top, Width: m.Right, Height: surface.Height - m.Top - m.Bottom},
		}
		for _, clip := range clips {
			p.Save()
			p.Clip(clip)
			p.DrawImage(full, img)
			p.Restore()
		}
	}

	// Titlebar and window border. The titlebar shape reaches one corner
	// radius below the separator so only its top corners show rounded.
	titleBarWidth := surface.Width - m.Left - m.Right
	borderRectHeight := surface.Height - m.Top - m.Bottom
	if state.Maximized || state.Tiled != 0 {
		bar := geometry.Rect{X: m.Left, Y: m.Bottom, Width: titleBarWidth, Height: m.Top}
		p.FillRect(bar, backgroundColor)
		p.StrokeRect(bar, borderColor)
	} else {
		bar := geometry.Rect{X: m.Left, Y: m.Bottom, Width: titleBarWidth, Height: m.Top + geometry.CornerRadius}
		p.FillRoundedRect(bar, geometry.CornerRadius, backgroundColor)
		p.StrokeRoundedRect(bar, geometry.CornerRadius, borderColor)
	}
	p.StrokeRect(geometry.Rect{X: m.Left, Y: m.Top, Width: titleBarWidth, Height: borderRectHeight}, borderColor)

	// Separator between titlebar and client area.
	p.DrawLine(
		geometry.Point{X: float64(m.Left), Y: float64(m.Top) - geometry.SeparatorWidth},
		geometry.Point{X: float64(surface.Width - m.Right), Y: float64(m.Top) - geometry.SeparatorWidth},
		borderColor,
	)

	// Centered title, clipped against the button cluster.
	if state.Title != "" {
		top := geometry.Rect{X: m.Left, Y: m.Bottom, Width: surface.Width, Height: m.Top - m.Bottom}

		clip := top
		minRect := r.buttonDeviceRect(state, theme.ButtonMinimize)
		if r.cfg.Placement == theme.PlacementRight {
			clip.Width = minRect.X - 8 - clip.X
		} else {
			right := surface.Width - m.Right
			clip.X = minRect.Right() + 8
			clip.Width = right - clip.X
		}

		w, h := p.TextSize(state.Title, r.cfg.Font)
		dx := (top.Width - w) / 2
		dy := (top.Height - h) / 2

		p.Save()
		p.Clip(clip)
		p.DrawText(geometry.Point{X: float64(top.X + dx), Y: float64(top.Y + dy)}, state.Title, r.cfg.Font, foregroundColor)
		p.Restore()
	}

	for _, b := range []theme.Button{theme.ButtonClose, theme.ButtonMaximize, theme.ButtonMinimize} {
		if r.cfg.Has(b) {
			r.paintButton(p, state, b, pressed, hovered)
		}
	}
}

// paintButton draws one button: a flat circle with the icon inset by four
// pixels. The armed state wins over hover.
func (r *Renderer) paintButton(p Painter, state geometry.WindowState, b, pressed, hovered theme.Button) {
	bgRole := theme.ButtonBackground
	switch {
	case pressed == b:
		bgRole = theme.PressedButtonBackground
	case hovered&b != 0:
		bgRole = theme.HoveredButtonBackground
	}
	bg := r.cfg.Color(bgRole, state.Active)
	fg := r.cfg.Color(theme.Foreground, state.Active)

	rect := r.buttonDeviceRect(state, b)
	p.FillEllipse(rect, bg)

	iconRect := geometry.Rect{
		X:      rect.X + iconInset,
		Y:      rect.Y + iconInset,
		Width:  rect.Width - 2*iconInset,
		Height: rect.Height - 2*iconInset,
	}
	icon := iconFor(b, state.Maximized)
	markup := r.cfg.Icons[icon]
	if markup != "" {
		markup = icons.Recolor(markup, fg)
	}
	p.DrawIcon(iconRect, icon, markup, fg)
}

// buttonDeviceRect converts a button's hit rectangle from decoration-local
// coordinates (content origin) to device coordinates (surface origin).
func (r *Renderer) buttonDeviceRect(state geometry.WindowState, b theme.Button) geometry.Rect {
	surface := r.geom.ContentGeometry(state)
	rect := r.geom.ButtonRect(state, b)
	rect.X -= surface.X
	rect.Y -= surface.Y
	return rect
}

// iconFor picks the logical icon for a button; maximize shows the restore
// icon while the window is maximized.
func iconFor(b theme.Button, maximized bool) theme.Icon {
	switch {
	case b == theme.ButtonClose:
		return theme.IconClose
	case b == theme.ButtonMinimize:
		return theme.IconMinimize
	case maximized:
		return theme.IconRestore
	default:
		return theme.IconMaximize
	}
}

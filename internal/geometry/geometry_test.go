package geometry

import (
	"testing"

	"github.com/waydecor/waydecor/internal/theme"
)

func floatingState() WindowState {
	return WindowState{
		Active:  true,
		Content: Rect{X: 0, Y: 0, Width: 300, Height: 200},
	}
}

func TestMarginsFloating(t *testing.T) {
	e := NewEngine(theme.NewConfig())
	state := floatingState()

	got := e.Margins(state, Full)
	want := Margins{Left: 11, Top: 49, Right: 11, Bottom: 11}
	if got != want {
		t.Fatalf("Full margins=%+v, want %+v", got, want)
	}

	got = e.Margins(state, ShadowsOnly)
	want = Margins{Left: 10, Top: 10, Right: 10, Bottom: 10}
	if got != want {
		t.Fatalf("ShadowsOnly margins=%+v, want %+v", got, want)
	}

	got = e.Margins(state, ShadowsExcluded)
	want = Margins{Left: 1, Top: 39, Right: 1, Bottom: 1}
	if got != want {
		t.Fatalf("ShadowsExcluded margins=%+v, want %+v", got, want)
	}
}

func TestMarginsMaximized(t *testing.T) {
	e := NewEngine(theme.NewConfig())
	state := floatingState()
	state.Maximized = true

	got := e.Margins(state, Full)
	want := Margins{Top: TitlebarHeight}
	if got != want {
		t.Fatalf("Full margins=%+v, want %+v", got, want)
	}

	if got := e.Margins(state, ShadowsOnly); got != (Margins{}) {
		t.Fatalf("ShadowsOnly margins=%+v, want zero", got)
	}
}

func TestMarginsTiled(t *testing.T) {
	e := NewEngine(theme.NewConfig())
	state := floatingState()
	state.Tiled = LeftEdge | TopEdge

	got := e.Margins(state, Full)
	want := Margins{Left: 0, Top: TitlebarHeight, Right: 11, Bottom: 11}
	if got != want {
		t.Fatalf("Full margins=%+v, want %+v", got, want)
	}

	// A tiled top edge keeps the titlebar but loses the shadow entirely.
	shadows := e.Margins(state, ShadowsOnly)
	if shadows.Top != 0 {
		t.Fatalf("ShadowsOnly top=%d, want 0", shadows.Top)
	}
	if shadows.Left != 0 || shadows.Right != 10 || shadows.Bottom != 10 {
		t.Fatalf("ShadowsOnly margins=%+v, want {0 0 10 10}", shadows)
	}
}

func TestContentGeometry(t *testing.T) {
	e := NewEngine(theme.NewConfig())
	state := floatingState()

	got := e.ContentGeometry(state)
	want := Rect{X: -10, Y: -10, Width: 320, Height: 220}
	if got != want {
		t.Fatalf("ContentGeometry=%+v, want %+v", got, want)
	}

	state.Maximized = true
	got = e.ContentGeometry(state)
	if got != state.Content {
		t.Fatalf("maximized ContentGeometry=%+v, want %+v", got, state.Content)
	}
}

func TestButtonRectRightPlacement(t *testing.T) {
	cfg := theme.NewConfig()
	if !cfg.ApplyButtonLayout("appmenu:minimize,maximize,close") {
		t.Fatalf("ApplyButtonLayout rejected a valid layout")
	}
	e := NewEngine(cfg)
	state := floatingState()

	tests := []struct {
		b    theme.Button
		want Rect
	}{
		{theme.ButtonClose, Rect{X: 274, Y: 18, Width: 24, Height: 24}},
		{theme.ButtonMaximize, Rect{X: 238, Y: 18, Width: 24, Height: 24}},
		{theme.ButtonMinimize, Rect{X: 202, Y: 18, Width: 24, Height: 24}},
	}
	for _, tc := range tests {
		if got := e.ButtonRect(state, tc.b); got != tc.want {
			t.Fatalf("ButtonRect(%v)=%+v, want %+v", tc.b, got, tc.want)
		}
	}
}

func TestButtonRectLeftPlacement(t *testing.T) {
	cfg := theme.NewConfig()
	if !cfg.ApplyButtonLayout("close:appmenu") {
		t.Fatalf("ApplyButtonLayout rejected a valid layout")
	}
	e := NewEngine(cfg)

	got := e.ButtonRect(floatingState(), theme.ButtonClose)
	want := Rect{X: 22, Y: 18, Width: 24, Height: 24}
	if got != want {
		t.Fatalf("ButtonRect(close)=%+v, want %+v", got, want)
	}
}

func TestRectContainsIncludesEdges(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	for _, p := range []Point{{10, 10}, {30, 30}, {20, 10}, {10, 20}} {
		if !r.Contains(p) {
			t.Fatalf("Contains(%+v)=false, want true", p)
		}
	}
	for _, p := range []Point{{9.5, 10}, {30.5, 30}, {20, 30.5}} {
		if r.Contains(p) {
			t.Fatalf("Contains(%+v)=true, want false", p)
		}
	}
}

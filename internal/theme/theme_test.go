package theme

import (
	"image/color"
	"testing"
)

func TestNewConfigDefaults(t *testing.T) {
	c := NewConfig()

	if c.Placement != PlacementRight {
		t.Fatalf("placement=%v, want right", c.Placement)
	}
	if !c.Has(ButtonClose) || c.Position(ButtonClose) != 1 {
		t.Fatalf("close position=%d, want 1", c.Position(ButtonClose))
	}
	if c.Has(ButtonMinimize) || c.Has(ButtonMaximize) {
		t.Fatalf("default layout has extra buttons: %v", c.Positions)
	}
	if c.Font.Family != "Sans" || c.Font.PointSize != 10 || c.Font.Bold {
		t.Fatalf("font=%+v, want Sans 10 regular", c.Font)
	}
	if got := c.Colors[Background]; got != (color.RGBA{0xff, 0xff, 0xff, 0xff}) {
		t.Fatalf("light background=%v", got)
	}
}

func TestApplyButtonLayoutRightSide(t *testing.T) {
	c := NewConfig()
	if !c.ApplyButtonLayout("appmenu:minimize,maximize,close") {
		t.Fatalf("layout rejected")
	}

	if c.Placement != PlacementRight {
		t.Fatalf("placement=%v, want right", c.Placement)
	}
	// Right-side lists run outermost first, so positions reverse.
	want := map[Button]int{ButtonClose: 1, ButtonMaximize: 2, ButtonMinimize: 3}
	for b, pos := range want {
		if c.Position(b) != pos {
			t.Fatalf("position(%v)=%d, want %d", b, c.Position(b), pos)
		}
	}
}

func TestApplyButtonLayoutLeftSide(t *testing.T) {
	c := NewConfig()
	if !c.ApplyButtonLayout("close,maximize:appmenu") {
		t.Fatalf("layout rejected")
	}

	if c.Placement != PlacementLeft {
		t.Fatalf("placement=%v, want left", c.Placement)
	}
	if c.Position(ButtonClose) != 1 || c.Position(ButtonMaximize) != 2 {
		t.Fatalf("positions=%v, want close@1 maximize@2", c.Positions)
	}
	// The side without close is dropped entirely.
	if c.Has(ButtonMinimize) {
		t.Fatalf("minimize present, want dropped")
	}
}

func TestApplyButtonLayoutUnknownTokenIsMinimize(t *testing.T) {
	c := NewConfig()
	if !c.ApplyButtonLayout("appmenu:spacer,close") {
		t.Fatalf("layout rejected")
	}

	if c.Position(ButtonClose) != 1 {
		t.Fatalf("close position=%d, want 1", c.Position(ButtonClose))
	}
	if c.Position(ButtonMinimize) != 2 {
		t.Fatalf("unknown token position=%d, want minimize@2", c.Position(ButtonMinimize))
	}
}

func TestApplyButtonLayoutMalformed(t *testing.T) {
	c := NewConfig()
	before := map[Button]int{}
	for b, pos := range c.Positions {
		before[b] = pos
	}

	for _, layout := range []string{"close", "a:b:c", ""} {
		if c.ApplyButtonLayout(layout) {
			t.Fatalf("layout %q accepted, want rejected", layout)
		}
	}
	if len(c.Positions) != len(before) || c.Position(ButtonClose) != before[ButtonClose] {
		t.Fatalf("positions changed by rejected layout: %v", c.Positions)
	}
}

func TestApplyColorScheme(t *testing.T) {
	c := NewConfig()

	c.ApplyColorScheme(true)
	if got := c.Colors[Background]; got != (color.RGBA{0x30, 0x30, 0x30, 0xff}) {
		t.Fatalf("dark background=%v", got)
	}
	if got := c.Colors[PressedButtonBackground]; got != (color.RGBA{0x6e, 0x6e, 0x6e, 0xff}) {
		t.Fatalf("dark pressed=%v", got)
	}

	c.ApplyColorScheme(false)
	if got := c.Colors[Foreground]; got != (color.RGBA{0x2e, 0x2e, 0x2e, 0xff}) {
		t.Fatalf("light foreground=%v", got)
	}
}

func TestColorInactiveMapping(t *testing.T) {
	c := NewConfig()

	if got := c.Color(Foreground, false); got != c.Colors[ForegroundInactive] {
		t.Fatalf("inactive foreground=%v, want %v", got, c.Colors[ForegroundInactive])
	}
	// Every button background role collapses to the inactive one.
	for _, role := range []ColorRole{ButtonBackground, HoveredButtonBackground, PressedButtonBackground} {
		if got := c.Color(role, false); got != c.Colors[ButtonBackgroundInactive] {
			t.Fatalf("inactive %v=%v, want %v", role, got, c.Colors[ButtonBackgroundInactive])
		}
	}
	if got := c.Color(Background, true); got != c.Colors[Background] {
		t.Fatalf("active background=%v, want %v", got, c.Colors[Background])
	}
}

func TestApplyTitlebarFont(t *testing.T) {
	c := NewConfig()

	c.ApplyTitlebarFont("Cantarell 11")
	if c.Font.Bold {
		t.Fatalf("regular description set bold")
	}

	c.ApplyTitlebarFont("Cantarell Bold 11")
	if !c.Font.Bold {
		t.Fatalf("bold description did not set bold")
	}
}

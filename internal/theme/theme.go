// Package theme holds the decoration configuration model: which titlebar
// buttons are shown and where, the color palette, the titlebar font and the
// button icon sources. Settings updates replace the affected part of the
// model wholesale; nothing is mutated incrementally.
package theme

import (
	"image/color"
	"strings"
)

// Button identifies a titlebar button. Values combine into a bitmask when a
// set of buttons is needed (for example the hovered set).
type Button uint8

const (
	ButtonNone     Button = 0x0
	ButtonClose    Button = 0x1
	ButtonMinimize Button = 0x2
	ButtonMaximize Button = 0x4
)

func (b Button) String() string {
	switch b {
	case ButtonClose:
		return "close"
	case ButtonMinimize:
		return "minimize"
	case ButtonMaximize:
		return "maximize"
	}
	return "none"
}

// ColorRole names a semantic color slot in the palette. Active/inactive
// variants are separate roles; the caller picks one based on window
// activation.
type ColorRole int

const (
	Background ColorRole = iota
	BackgroundInactive
	Foreground
	ForegroundInactive
	Border
	BorderInactive
	ButtonBackground
	ButtonBackgroundInactive
	HoveredButtonBackground
	PressedButtonBackground
)

// Icon identifies a logical button icon. The maximize button switches to
// IconRestore while the window is maximized.
type Icon int

const (
	IconClose Icon = iota
	IconMinimize
	IconMaximize
	IconRestore
)

// Placement is the side of the titlebar the button cluster anchors to.
type Placement int

const (
	PlacementLeft Placement = iota
	PlacementRight
)

// Font describes the titlebar font. Rendering backends map the description
// onto whatever faces they have available.
type Font struct {
	Family    string
	PointSize int
	Bold      bool
}

// Config is the live decoration configuration. A freshly constructed Config
// carries usable defaults (close button only, anchored right, light palette)
// so a decoration can paint before any settings arrive.
type Config struct {
	Placement Placement
	Positions map[Button]int // 1-based distance from the anchored edge
	Colors    map[ColorRole]color.RGBA
	Font      Font
	Icons     map[Icon]string // raw SVG markup, empty means fallback
}

// NewConfig returns the default configuration.
func NewConfig() *Config {
	c := &Config{
		Placement: PlacementRight,
		Positions: map[Button]int{ButtonClose: 1},
		Font:      Font{Family: "Sans", PointSize: 10},
		Icons:     make(map[Icon]string),
	}
	c.ApplyColorScheme(false)
	return c
}

// Has reports whether the button is part of the current layout.
func (c *Config) Has(b Button) bool {
	_, ok := c.Positions[b]
	return ok
}

// Position returns the button's 1-based position, or 0 if it is not shown.
func (c *Config) Position(b Button) int {
	return c.Positions[b]
}

// ApplyButtonLayout parses a "left:right" button layout specification and
// replaces the button configuration. The side containing "close" anchors the
// cluster; its button list, reversed when it is the right side, gets dense
// positions starting at 1. Tokens other than "close" and "maximize" count as
// minimize. Returns false (and leaves the configuration untouched) when the
// specification does not have exactly two sides.
func (c *Config) ApplyButtonLayout(layout string) bool {
	sides := strings.Split(layout, ":")
	if len(sides) != 2 {
		return false
	}

	left, right := sides[0], sides[1]
	if strings.Contains(left, "close") {
		c.Placement = PlacementLeft
	} else {
		c.Placement = PlacementRight
	}

	cluster := right
	if c.Placement == PlacementLeft {
		cluster = left
	}

	names := strings.Split(cluster, ",")
	if c.Placement == PlacementRight {
		for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
			names[i], names[j] = names[j], names[i]
		}
	}

	c.Positions = make(map[Button]int, len(names))
	pos := 1
	for _, name := range names {
		switch name {
		case "close":
			c.Positions[ButtonClose] = pos
		case "maximize":
			c.Positions[ButtonMaximize] = pos
		default:
			c.Positions[ButtonMinimize] = pos
		}
		pos++
	}
	return true
}

// ApplyColorScheme replaces the whole palette with the light or dark
// variant.
func (c *Config) ApplyColorScheme(preferDark bool) {
	if preferDark {
		c.Colors = map[ColorRole]color.RGBA{
			Background:               rgb(0x303030),
			BackgroundInactive:       rgb(0x242424),
			Foreground:               rgb(0xffffff),
			ForegroundInactive:       rgb(0x919191),
			Border:                   rgb(0x3b3b3b),
			BorderInactive:           rgb(0x303030),
			ButtonBackground:         rgb(0x444444),
			ButtonBackgroundInactive: rgb(0x2e2e2e),
			HoveredButtonBackground:  rgb(0x4f4f4f),
			PressedButtonBackground:  rgb(0x6e6e6e),
		}
		return
	}
	c.Colors = map[ColorRole]color.RGBA{
		Background:               rgb(0xffffff),
		BackgroundInactive:       rgb(0xfafafa),
		Foreground:               rgb(0x2e2e2e),
		ForegroundInactive:       rgb(0x949494),
		Border:                   rgb(0xdbdbdb),
		BorderInactive:           rgb(0xdbdbdb),
		ButtonBackground:         rgb(0xebebeb),
		ButtonBackgroundInactive: rgb(0xf0f0f0),
		HoveredButtonBackground:  rgb(0xe0e0e0),
		PressedButtonBackground:  rgb(0xc2c2c2),
	}
}

// ApplyTitlebarFont applies the titlebar font heuristic: the description is
// not parsed beyond checking for a bold variant, which is the only attribute
// worth carrying without a full font-config dependency.
func (c *Config) ApplyTitlebarFont(desc string) {
	if strings.Contains(strings.ToLower(desc), "bold") {
		c.Font.Bold = true
	}
}

// Color returns the role's color, switching to the inactive variant of the
// paired roles when active is false.
func (c *Config) Color(role ColorRole, active bool) color.RGBA {
	if !active {
		switch role {
		case Background:
			role = BackgroundInactive
		case Foreground:
			role = ForegroundInactive
		case Border:
			role = BorderInactive
		case ButtonBackground, HoveredButtonBackground, PressedButtonBackground:
			role = ButtonBackgroundInactive
		}
	}
	return c.Colors[role]
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

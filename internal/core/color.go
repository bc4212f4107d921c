package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB colour for a screen cell.
// The zero value means "terminal default" so that black stays representable.
type Color uint32

// ColorDefault leaves the terminal's own colour in place.
const ColorDefault Color = 0

const colorSet = 1 << 24

// RGB builds a Color from its components.
func RGB(r, g, b uint8) Color {
	return Color(colorSet | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// IsDefault reports whether the colour is the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Components returns the red, green and blue channels.
func (c Color) Components() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the colour as "#rrggbb". Default colours return "".
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Components()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return c.Hex()
}

// ParseColor parses "#rrggbb" (the leading '#' is optional).
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return ColorDefault, fmt.Errorf("core: invalid colour %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return ColorDefault, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// Palette colours used by the HUD and overlays.
var (
	ColorWhite = RGB(0xff, 0xff, 0xff)
	ColorGray  = RGB(0x8a, 0x8a, 0x8a)
	ColorBlack = RGB(0x00, 0x00, 0x00)
)

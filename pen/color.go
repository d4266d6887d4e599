// Package pen implements the attribute bag that termrb draws with: an
// opaque, reference-counted, value-comparable set of colors and text
// attributes. A RenderBuffer never mutates a Pen in place — every change
// produces a fresh value — so cells and stack frames can safely share one
// by holding a reference to it.
package pen

import "fmt"

// Rgb is a 24-bit color value.
type Rgb struct {
	R, G, B uint8
}

// String renders the color as a hex triplet.
func (c Rgb) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NamedColor is one of the 16 standard terminal colors.
type NamedColor uint8

const (
	Black NamedColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

// ToRgb returns the conventional RGB value for a named color.
func (c NamedColor) ToRgb() Rgb {
	switch c {
	case Black:
		return Rgb{0, 0, 0}
	case Red:
		return Rgb{170, 0, 0}
	case Green:
		return Rgb{0, 170, 0}
	case Yellow:
		return Rgb{170, 85, 0}
	case Blue:
		return Rgb{0, 0, 170}
	case Magenta:
		return Rgb{170, 0, 170}
	case Cyan:
		return Rgb{0, 170, 170}
	case White:
		return Rgb{170, 170, 170}
	case BrightBlack:
		return Rgb{85, 85, 85}
	case BrightRed:
		return Rgb{255, 85, 85}
	case BrightGreen:
		return Rgb{85, 255, 85}
	case BrightYellow:
		return Rgb{255, 255, 85}
	case BrightBlue:
		return Rgb{85, 85, 255}
	case BrightMagenta:
		return Rgb{255, 85, 255}
	case BrightCyan:
		return Rgb{85, 255, 255}
	case BrightWhite:
		return Rgb{255, 255, 255}
	default:
		return Rgb{0, 0, 0}
	}
}

// ansiFg returns the SGR foreground parameter for a named color.
func (c NamedColor) ansiFg() int {
	if c < 8 {
		return 30 + int(c)
	}
	return 90 + int(c-8)
}

func (c NamedColor) ansiBg() int {
	if c < 8 {
		return 40 + int(c)
	}
	return 100 + int(c-8)
}

// ColorType discriminates the representation held by a Color.
type ColorType uint8

const (
	ColorNone ColorType = iota
	ColorNamed
	ColorIndexed
	ColorRGB
)

// Color is a terminal color: unset, a named color, a 256-color palette
// index, or a direct RGB triplet.
type Color struct {
	Type  ColorType
	Named NamedColor
	Index uint8
	RGB   Rgb
}

// Equal reports whether two colors denote the same value.
func (c Color) Equal(o Color) bool {
	if c.Type != o.Type {
		return false
	}
	switch c.Type {
	case ColorNamed:
		return c.Named == o.Named
	case ColorIndexed:
		return c.Index == o.Index
	case ColorRGB:
		return c.RGB == o.RGB
	default:
		return true
	}
}

// fgSequence returns the SGR fragment (without escape/terminator) selecting
// this color as a foreground.
func (c Color) fgSequence() string {
	switch c.Type {
	case ColorNamed:
		return fmt.Sprintf("%d", c.Named.ansiFg())
	case ColorIndexed:
		return fmt.Sprintf("38;5;%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("38;2;%d;%d;%d", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "39"
	}
}

func (c Color) bgSequence() string {
	switch c.Type {
	case ColorNamed:
		return fmt.Sprintf("%d", c.Named.ansiBg())
	case ColorIndexed:
		return fmt.Sprintf("48;5;%d", c.Index)
	case ColorRGB:
		return fmt.Sprintf("48;2;%d;%d;%d", c.RGB.R, c.RGB.G, c.RGB.B)
	default:
		return "49"
	}
}

package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is an 8-bit sRGB triple.
type RGB struct {
	R, G, B uint8
}

var (
	White = RGB{255, 255, 255}
	Black = RGB{0, 0, 0}
)

func channel(v uint8) float64 {
	c := float64(v) / 255.0
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG relative luminance of c in [0, 1].
func Luminance(c RGB) float64 {
	return 0.2126*channel(c.R) + 0.7152*channel(c.G) + 0.0722*channel(c.B)
}

// Mix moves c toward target by t, rounding each channel half away from zero.
func Mix(c, target RGB, t float64) RGB {
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a)*(1.0-t) + float64(b)*t))
	}
	return RGB{mix(c.R, target.R), mix(c.G, target.G), mix(c.B, target.B)}
}

// Colorful converts c for use with go-colorful.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255.0, G: float64(c.G) / 255.0, B: float64(c.B) / 255.0}
}

// Hex formats c as lowercase #rrggbb.
func (c RGB) Hex() string {
	return c.Colorful().Hex()
}

func (c RGB) String() string {
	return c.Hex()
}

// ParseHex parses #rrggbb in either case.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' || strings.Trim(s[1:], "0123456789abcdefABCDEF") != "" {
		return RGB{}, fmt.Errorf("invalid hex color %q", s)
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB{r, g, b}, nil
}

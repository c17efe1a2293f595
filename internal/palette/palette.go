package palette

import "fmt"

// Role names a foreground slot.
type Role int

const (
	Dis Role = iota
	Ker
	Upt
	Mem
	Pipe

	// RoleCount is the number of foreground roles.
	RoleCount = int(Pipe) + 1
)

var roleNames = [RoleCount]string{"DIS", "KER", "UPT", "MEM", "PIPE"}

func (r Role) String() string {
	if r < 0 || int(r) >= RoleCount {
		return fmt.Sprintf("role(%d)", int(r))
	}
	return roleNames[r]
}

// Key is the config key holding this role's color.
func (r Role) Key() string {
	return "FG_" + r.String()
}

// Palette holds the colors for one run.
type Palette struct {
	Background [4]RGB
	Foreground [RoleCount]RGB
	// Source identifies where the colors came from, usually an image path.
	Source string
}

// BG returns the background for row i, cycling every four rows.
func (p Palette) BG(i int) RGB {
	return p.Background[((i%4)+4)%4]
}

// FG returns the foreground for role r.
func (p Palette) FG(r Role) RGB {
	return p.Foreground[r]
}

// RowFG returns the stat foreground for row i, cycling DIS..MEM.
func (p Palette) RowFG(i int) RGB {
	return p.Foreground[((i%4)+4)%4]
}

var defaultBackground = [4]RGB{
	{0x2a, 0x21, 0x39},
	{0x4b, 0x3b, 0x6e},
	{0x7f, 0x5f, 0xa8},
	{0xc4, 0x9e, 0xe0},
}

// Default returns the built-in palette.
func Default() Palette {
	return Derive(defaultBackground, "")
}

// DeriveForeground returns the readable text color paired with background c.
func DeriveForeground(c RGB) RGB {
	if Luminance(c) < 0.55 {
		return Mix(c, White, 0.45)
	}
	return Mix(c, Black, 0.35)
}

// Derive builds a palette around four backgrounds. The pipe color is the
// first background lifted toward white.
func Derive(bg [4]RGB, source string) Palette {
	p := Palette{Background: bg, Source: source}
	for i, c := range bg {
		p.Foreground[i] = DeriveForeground(c)
	}
	p.Foreground[Pipe] = Mix(bg[0], White, 0.3)
	return p
}

// FromPixels runs the full extraction on a decoded image.
func FromPixels(px Pixels, source string) (Palette, error) {
	bg, err := Sample(px)
	if err != nil {
		return Palette{}, err
	}
	return Derive(bg, source), nil
}

package render

import (
	"strconv"

	"github.com/san-kum/glitch/internal/palette"
)

const (
	Reset      = "\x1b[0m"
	Dim        = "\x1b[2m"
	HideCursor = "\x1b[?25l"
	ShowCursor = "\x1b[?25h"
)

func truecolor(layer string, c palette.RGB) string {
	b := make([]byte, 0, 20)
	b = append(b, "\x1b["...)
	b = append(b, layer...)
	b = append(b, ";2;"...)
	b = strconv.AppendUint(b, uint64(c.R), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.G), 10)
	b = append(b, ';')
	b = strconv.AppendUint(b, uint64(c.B), 10)
	b = append(b, 'm')
	return string(b)
}

// Fg is the 24-bit foreground sequence for c.
func Fg(c palette.RGB) string {
	return truecolor("38", c)
}

// Bg is the 24-bit background sequence for c.
func Bg(c palette.RGB) string {
	return truecolor("48", c)
}

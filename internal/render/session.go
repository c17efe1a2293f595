package render

import (
	"fmt"
	"strings"

	"github.com/san-kum/glitch/internal/mask"
	"github.com/san-kum/glitch/internal/noise"
	"github.com/san-kum/glitch/internal/palette"
)

const (
	// ShapeCols is the width of the noise column.
	ShapeCols = 12

	// LabelWidth pads stat labels.
	LabelWidth = 6
)

// Stat is one labelled row of the panel.
type Stat struct {
	Key   string
	Label string
	Value string
}

// Session holds everything fixed for one run.
type Session struct {
	Palette palette.Palette
	Shape   mask.Shape
	Noise   noise.Filler
	// Width is the noise column width; zero means ShapeCols.
	Width int
	// Image is the displayed image, or nil.
	Image *Image
}

// Columns is the noise column width in cells.
func (s *Session) Columns() int {
	if s.Width > 0 {
		return s.Width
	}
	return ShapeCols
}

// Colorize masks row i of a total-row canvas and paints inside cells with
// bg. Outside cells become plain spaces. Color codes are only emitted where
// the mask boundary is crossed.
func Colorize(shape mask.Shape, cells []rune, bg palette.RGB, i, total int) string {
	var sb strings.Builder
	sb.Grow(len(cells) + 32)
	sb.WriteString(Dim)

	bgCode := Bg(bg)
	width := len(cells)
	prev := false
	for x, ch := range cells {
		in := shape.Contains(x, i, width, total)
		switch {
		case in && !prev:
			sb.WriteString(bgCode)
		case !in && prev:
			sb.WriteString(Reset + Dim)
		}
		if !in || ch == 0 {
			ch = ' '
		}
		sb.WriteRune(ch)
		prev = in
	}
	sb.WriteString(Reset)
	return sb.String()
}

// Row renders the masked noise cells for row i.
func (s *Session) Row(frame uint64, i, total int) string {
	cells := s.Noise.Row(frame, i, s.Columns())
	return Colorize(s.Shape, cells, s.Palette.BG(i), i, total)
}

// GapWidth is the lane between the noise column and the panel.
func (s *Session) GapWidth() int {
	if s.Image == nil {
		return 1
	}
	return ImagePad*2 + ImageCols
}

// InDisc reports whether lane cell x of row i lies under the image disc.
// It is always false without an image.
func (s *Session) InDisc(x, i, total int) bool {
	if s.Image == nil {
		return false
	}
	width := s.GapWidth()
	radius := min(width, total) / 2
	dx := x - width/2
	dy := i - total/2
	return dx*dx+dy*dy <= radius*radius
}

// Gap renders the lane for row i. With an image it draws a disc in the row's
// background color behind where the image sits.
func (s *Session) Gap(i, total int) string {
	width := s.GapWidth()
	if s.Image == nil {
		return strings.Repeat(" ", width)
	}

	code := Bg(s.Palette.BG(i))
	var sb strings.Builder
	for x := 0; x < width; x++ {
		if s.InDisc(x, i, total) {
			sb.WriteString(code)
			sb.WriteByte(' ')
			sb.WriteString(Reset)
		} else {
			sb.WriteByte(' ')
		}
	}
	return sb.String()
}

// Line renders one full panel line without a trailing newline.
func (s *Session) Line(frame uint64, i int, stats []Stat) string {
	total := max(len(stats), 1)
	var st Stat
	if i < len(stats) {
		st = stats[i]
	}
	return s.Row(frame, i, total) +
		s.Gap(i, total) +
		" " + Fg(s.Palette.RowFG(i)) + Dim +
		fmt.Sprintf("%-*s  | %s", LabelWidth, st.Label, st.Value) +
		Reset
}

// Frame renders every stat line of one frame, each ending in a newline.
func (s *Session) Frame(frame uint64, stats []Stat) string {
	n := max(len(stats), 1)
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteString(s.Line(frame, i, stats))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Describe summarizes the session choices for logs.
func (s *Session) Describe() string {
	return fmt.Sprintf("shape=%s noise=%s symbol=%q source=%q", s.Shape, s.Noise.Set.Name, s.Noise.Symbol.String(), s.Palette.Source)
}

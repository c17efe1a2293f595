package export

import (
	"encoding/xml"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/san-kum/glitch/internal/palette"
	"github.com/san-kum/glitch/internal/render"
)

// Cell size of one terminal column in SVG user units.
const (
	CellWidth  = 9.0
	CellHeight = 18.0
)

// Backdrop fills the canvas behind the panel.
var Backdrop = palette.RGB{R: 0x0a, G: 0x0a, B: 0x0a}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

func statColumns(stats []render.Stat) int {
	n := 0
	for _, st := range stats {
		n = max(n, utf8.RuneCountInString(st.Value))
	}
	return render.LabelWidth + 4 + n
}

// FrameToSVG draws one frame of s. Masked cells become rectangles in the
// row background, glyphs are drawn over them, and the stat text follows the
// lane in its row color. Drawing advances the session's noise like a
// terminal frame does.
func FrameToSVG(s *render.Session, frame uint64, stats []render.Stat) string {
	rows := max(len(stats), 1)
	cols := s.Columns()
	gap := s.GapWidth()
	width := float64(cols+gap+1+statColumns(stats)) * CellWidth
	height := float64(rows) * CellHeight
	glyph := s.Palette.FG(palette.Pipe).Hex()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g font-family="monospace" font-size="%.0f">
`, width, height, width, height, Backdrop.Hex(), CellHeight*0.8))

	for i := 0; i < rows; i++ {
		y := float64(i) * CellHeight
		base := y + CellHeight*0.75
		bg := s.Palette.BG(i).Hex()

		for x, ch := range s.Noise.Row(frame, i, cols) {
			if !s.Shape.Contains(x, i, cols, rows) {
				continue
			}
			px := float64(x) * CellWidth
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, px, y, CellWidth, CellHeight, bg))
			if ch != 0 && ch != ' ' {
				sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" fill-opacity="0.6">%s</text>
`, px, base, glyph, escape(string(ch))))
			}
		}

		for x := 0; x < gap; x++ {
			if !s.InDisc(x, i, rows) {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, float64(cols+x)*CellWidth, y, CellWidth, CellHeight, bg))
		}

		var st render.Stat
		if i < len(stats) {
			st = stats[i]
		}
		text := fmt.Sprintf("%-*s  | %s", render.LabelWidth, st.Label, st.Value)
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" fill-opacity="0.8" xml:space="preserve">%s</text>
`, float64(cols+gap+1)*CellWidth, base, s.Palette.RowFG(i).Hex(), escape(text)))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

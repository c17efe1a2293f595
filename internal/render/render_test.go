package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/glitch/internal/imagesrc"
	"github.com/san-kum/glitch/internal/mask"
	"github.com/san-kum/glitch/internal/noise"
	"github.com/san-kum/glitch/internal/palette"
	"github.com/san-kum/glitch/internal/prng"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestSGR(t *testing.T) {
	c := palette.RGB{R: 133, G: 7, B: 255}
	if got := Fg(c); got != "\x1b[38;2;133;7;255m" {
		t.Errorf("Fg() = %q", got)
	}
	if got := Bg(c); got != "\x1b[48;2;133;7;255m" {
		t.Errorf("Bg() = %q", got)
	}
}

func TestColorize(t *testing.T) {
	bg := palette.RGB{R: 1, G: 2, B: 3}
	cells := []rune("abcdefghijkl")

	tests := []struct {
		name  string
		shape mask.Shape
		row   int
		want  string
	}{
		{"diamond middle", mask.Diamond, 1, Dim + "   \x1b[48;2;1;2;3mdefghi" + Reset + Dim + "   " + Reset},
		{"diamond edge", mask.Diamond, 0, Dim + strings.Repeat(" ", 12) + Reset},
		{"rect", mask.Rect, 4, Dim + "\x1b[48;2;1;2;3mabcdefghijkl" + Reset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Colorize(tt.shape, cells, bg, tt.row, 5); got != tt.want {
				t.Errorf("Colorize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestColorizeVisibleText(t *testing.T) {
	cells := []rune("0123456789ab")
	for i := 0; i < mask.Count; i++ {
		shape := mask.Shape(i)
		for row := 0; row < 4; row++ {
			out := Colorize(shape, cells, palette.White, row, 4)
			visible := stripSGR(out)
			if len([]rune(visible)) != len(cells) {
				t.Fatalf("%s row %d: visible width %d", shape, row, len([]rune(visible)))
			}
			for x, ch := range []rune(visible) {
				in := shape.Contains(x, row, len(cells), 4)
				if in && ch != cells[x] || !in && ch != ' ' {
					t.Errorf("%s row %d col %d = %q", shape, row, x, ch)
				}
			}
		}
	}
}

func stripSGR(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

func TestGap(t *testing.T) {
	p := palette.Default()
	s := &Session{Palette: p}
	if got := s.Gap(0, 4); got != " " {
		t.Errorf("Gap() without image = %q, want one space", got)
	}

	s.Image = &Image{Path: "logo.png"}
	if s.GapWidth() != 20 {
		t.Fatalf("GapWidth() = %d, want 20", s.GapWidth())
	}
	cell := Bg(p.BG(0)) + " " + Reset
	want := strings.Repeat(" ", 10) + cell + strings.Repeat(" ", 9)
	if got := s.Gap(0, 4); got != want {
		t.Errorf("Gap(0) = %q, want %q", got, want)
	}
	cell = Bg(p.BG(2)) + " " + Reset
	want = strings.Repeat(" ", 8) + strings.Repeat(cell, 5) + strings.Repeat(" ", 7)
	if got := s.Gap(2, 4); got != want {
		t.Errorf("Gap(2) = %q, want %q", got, want)
	}
}

func TestLine(t *testing.T) {
	p := palette.Default()
	s := &Session{
		Palette: p,
		Shape:   mask.Ellipse,
		Noise:   noise.Filler{Set: noise.ByIndex(0), Symbol: 'o'},
	}
	stats := []Stat{{Key: "distro", Label: "DIS", Value: "arch"}}

	want := Dim + Bg(p.BG(0)) + "ooo  ooo  oo" + Reset +
		" " +
		" " + Fg(p.RowFG(0)) + Dim + "DIS     | arch" + Reset
	if got := s.Line(0, 0, stats); got != want {
		t.Errorf("Line() = %q, want %q", got, want)
	}

	frame := s.Frame(0, stats)
	if frame != want+"\n" {
		t.Errorf("Frame() = %q", frame)
	}
}

func TestFrameReservesImageLane(t *testing.T) {
	s := &Session{
		Palette: palette.Default(),
		Shape:   mask.Ellipse,
		Noise:   noise.Filler{Set: noise.ByIndex(0), Symbol: 'o'},
		Image:   &Image{Path: "/tmp/logo.png"},
	}
	stats := []Stat{{Key: "distro", Label: "DIS", Value: "arch"}}

	frame := s.Frame(0, stats)
	if strings.Contains(frame, "\x1b_G") || strings.Contains(frame, "logo.png") {
		t.Errorf("Frame() should not carry image data: %q", frame)
	}
	want := "ooo  ooo  oo" + strings.Repeat(" ", 21) + "DIS     | arch\n"
	if got := stripSGR(frame); got != want {
		t.Errorf("stripped Frame() = %q, want %q", got, want)
	}
}

func TestFrameSeekable(t *testing.T) {
	s := &Session{
		Palette: palette.Default(),
		Shape:   mask.Hex,
		Noise:   noise.Filler{Set: noise.ByIndex(22), Symbol: '#', Rand: prng.NewSeeded(5)},
	}
	stats := []Stat{{Label: "A"}, {Label: "B"}, {Label: "C"}, {Label: "D"}, {Label: "E"}}
	want := s.Frame(41, stats)
	s.Frame(3, stats)
	if got := s.Frame(41, stats); got != want {
		t.Error("Frame(41) differs after rendering another frame")
	}
	if n := strings.Count(want, "\n"); n != 5 {
		t.Errorf("Frame() has %d lines, want 5", n)
	}
}

func TestSupportsImages(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want bool
	}{
		{"kitty term", map[string]string{"TERM": "xterm-kitty"}, true},
		{"ghostty term", map[string]string{"TERM": "xterm-ghostty"}, true},
		{"wezterm program", map[string]string{"TERM_PROGRAM": "WezTerm"}, true},
		{"forced", map[string]string{"TERM": "xterm", "GLITCH_FORCE_KITTY": "1"}, true},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, false},
		{"nothing", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SupportsImages(env(tt.vars)); got != tt.want {
				t.Errorf("SupportsImages() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetectImage(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "logo.png")
	os.WriteFile(png, append(append([]byte{}, imagesrc.PNGSignature...), 0, 0), 0644)
	jpg := filepath.Join(dir, "logo.jpg")
	os.WriteFile(jpg, []byte{0xff, 0xd8, 0xff, 0xe0, 0, 0, 0, 0, 0}, 0644)

	kitty := env(map[string]string{"TERM": "xterm-kitty"})
	if img := DetectImage(png, kitty); img == nil || img.Path != png {
		t.Errorf("DetectImage(png) = %v", img)
	}
	if img := DetectImage(jpg, kitty); img != nil {
		t.Error("DetectImage(jpg) should be nil")
	}
	if img := DetectImage(png, env(nil)); img != nil {
		t.Error("DetectImage() without terminal support should be nil")
	}

	pl := (&Image{Path: png}).Placement(4)
	if pl.Col != 14 || pl.Cols != 18 || pl.Rows != 4 || pl.Row != 1 {
		t.Errorf("Placement() = %+v", pl)
	}
}
